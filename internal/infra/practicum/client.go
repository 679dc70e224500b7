// Package practicum talks to the homework statuses API.
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/codeGROOVE-dev/retry"
	"github.com/sirupsen/logrus"
)

// Client implements homework.Fetcher over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	attempts   uint
	retryDelay time.Duration
	logger     *logrus.Entry
}

// NewClient creates a client. Every request is bounded by timeout; attempts
// below one are treated as one.
func NewClient(endpoint, token string, timeout time.Duration, attempts uint, logger *logrus.Entry) *Client {
	if attempts == 0 {
		attempts = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		attempts:   attempts,
		retryDelay: time.Second,
		logger:     logger,
	}
}

var _ homework.Fetcher = (*Client)(nil)

// FetchStatuses requests homework statuses changed since fromDate and
// returns the decoded JSON body without interpreting it.
// Transport failures and 5xx responses are retried up to the configured
// number of attempts; everything else fails immediately.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	var (
		payload any
		lastErr error
	)

	err := retry.Do(
		func() error {
			p, retryable, err := c.fetchOnce(ctx, fromDate)
			if err != nil {
				lastErr = err
				if !retryable {
					return retry.Unrecoverable(err)
				}
				return err
			}
			payload = p
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(c.retryDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.WithError(err).WithField("attempt", n+1).Warn("Retrying homework statuses request")
		}),
	)

	if err != nil {
		// The retry error aggregates attempts; callers get the last classified one.
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, homework.WrapError(homework.KindFetch, err, "Ошибка при запросе к основному API")
	}
	return payload, nil
}

func (c *Client) fetchOnce(ctx context.Context, fromDate int64) (payload any, retryable bool, err error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, false, homework.WrapError(homework.KindFetch, err, "Некорректный адрес эндпоинта")
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, false, homework.WrapError(homework.KindFetch, err, "Ошибка при запросе к основному API")
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, homework.WrapError(homework.KindFetch, err, "Ошибка при запросе к основному API")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WithError(closeErr).Warn("Failed to close response body")
		}
	}()

	c.logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"from_date":   fromDate,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Homework statuses request completed")

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode >= http.StatusInternalServerError, homework.NewError(homework.KindFetch,
			"Недоступность эндпоинта %s: код ответа %d", c.endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, homework.WrapError(homework.KindFetch, err, "Ответ API не является корректным JSON")
	}
	return payload, false, nil
}
