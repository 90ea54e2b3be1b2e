package qstash

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher enqueues a message for delivery to a destination URL.
type Publisher interface {
	Publish(ctx context.Context, destination string, body any, opts ...PublishOption) (string, error)
}

// PublishOption customizes a single publish call.
type PublishOption func(*publishRequest)

type publishRequest struct {
	deduplicationID string
	retries         int
	delay           time.Duration
}

// WithDeduplicationID suppresses duplicate deliveries for the same ID.
func WithDeduplicationID(id string) PublishOption {
	return func(r *publishRequest) {
		r.deduplicationID = id
	}
}

// WithDelay postpones the first delivery attempt.
func WithDelay(d time.Duration) PublishOption {
	return func(r *publishRequest) {
		r.delay = d
	}
}

type publishResponse struct {
	MessageID string `json:"messageId"`
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Publish posts a JSON message to QStash for delivery to the destination.
// It returns the queue's message ID.
func (c *Client) Publish(ctx context.Context, destination string, body any, opts ...PublishOption) (string, error) {
	request := &publishRequest{retries: c.cfg.QStash.Retries}
	for _, opt := range opts {
		opt(request)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "qstash: serializing message body")
	}

	publishURL := fmt.Sprintf("%s/v2/publish/%s", c.cfg.QStash.URL, destination)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, publishURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "qstash: building publish request")
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.QStash.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Upstash-Retries", strconv.Itoa(request.retries))
	if request.deduplicationID != "" {
		req.Header.Set("Upstash-Deduplication-Id", request.deduplicationID)
	}
	if request.delay > 0 {
		req.Header.Set("Upstash-Delay", fmt.Sprintf("%ds", int(request.delay.Seconds())))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "qstash: publishing message")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "qstash: reading publish response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("qstash: publish failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	response := &publishResponse{}
	if err := json.Unmarshal(responseBody, response); err != nil {
		return "", errors.Wrap(err, "qstash: decoding publish response")
	}

	logrus.WithFields(logrus.Fields{
		"destination": destination,
		"message_id":  response.MessageID,
	}).Debug("qstash: message published")

	return response.MessageID, nil
}
