package app

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegramClient) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, m := range f.sent {
		out[i] = m.text
	}
	return out
}

type fetchResult struct {
	payload any
	err     error
}

// fakeFetcher replays results in order and repeats the last one.
type fakeFetcher struct {
	results   []fetchResult
	fromDates []int64
	onFetch   func(n int)
}

func (f *fakeFetcher) FetchStatuses(_ context.Context, fromDate int64) (any, error) {
	f.fromDates = append(f.fromDates, fromDate)
	if f.onFetch != nil {
		f.onFetch(len(f.fromDates))
	}
	if len(f.results) == 0 {
		return nil, errors.New("no results configured")
	}
	i := len(f.fromDates) - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i].payload, f.results[i].err
}

func nullLogger() (*logrus.Entry, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(l), hook
}
