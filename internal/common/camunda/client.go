package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"deal-advisor-workers/internal/common/errors"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Client wraps the Zeebe gRPC client with connection retry and error mapping.
type Client struct {
	client zbc.Client
	config *ClientConfig
}

type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RetryConfig            *RetryConfig
}

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// NewClient connects with plaintext transport and the default retry policy.
func NewClient(ctx context.Context, address string) (*Client, error) {
	return NewClientWithConfig(ctx, &ClientConfig{
		GatewayAddress:         address,
		UsePlaintextConnection: true,
		ConnectionTimeout:      10 * time.Second,
		RetryConfig:            DefaultRetryConfig,
	})
}

// NewClientWithConfig creates the gateway client and waits until the topology request
// succeeds, retrying transient failures with exponential backoff.
func NewClientWithConfig(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config.RetryConfig == nil {
		config.RetryConfig = DefaultRetryConfig
	}
	if config.ConnectionTimeout == 0 {
		config.ConnectionTimeout = 10 * time.Second
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         config.GatewayAddress,
		UsePlaintextConnection: config.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Zeebe client: %w", err)
	}

	c := &Client{client: zeebeClient, config: config}
	if err := c.ExecuteWithRetry(ctx, c.HealthCheck, "topology"); err != nil {
		_ = zeebeClient.Close()
		return nil, err
	}
	return c, nil
}

// Zeebe returns the raw client used to open job workers.
func (c *Client) Zeebe() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ExecuteWithRetry runs op until it succeeds, fails with a non-transient error or the
// retry budget is exhausted.
func (c *Client) ExecuteWithRetry(ctx context.Context, op func(context.Context) error, operationName string) error {
	rc := c.config.RetryConfig
	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !isRetryableZeebeError(err) || attempt >= rc.MaxRetries {
			return mapZeebeError(err, operationName)
		}

		delay := rc.BaseDelay * time.Duration(1<<attempt)
		if delay > rc.MaxDelay {
			delay = rc.MaxDelay
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return errors.NewBrokerTimeoutError(operationName, ctx.Err())
		}
	}
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func mapZeebeError(err error, operation string) error {
	lowerMsg := strings.ToLower(err.Error())
	if strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "deadline exceeded") {
		return errors.NewBrokerTimeoutError(operation, err)
	}
	return errors.NewBrokerUnavailableError(operation, err)
}

// HealthCheck issues a topology request bounded by the connection timeout.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}
