// Package sdk provides the daraja API client: OAuth token acquisition and
// the six payment operations (callback URL registration, C2B simulation,
// B2C disbursement, B2B transfer, STK push checkout, transaction reversal).
package sdk

import (
	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/net"
)

// Endpoint paths, fixed by the provider.
const (
	generateTokenPath = "/oauth/v1/generate?grant_type=client_credentials"
	registerURLPath   = "/mpesa/c2b/v1/registerurl"
	c2bSimulatePath   = "/mpesa/c2b/v1/simulate"
	b2cPaymentPath    = "/mpesa/b2c/v1/paymentrequest"
	b2bPaymentPath    = "/mpesa/b2b/v1/paymentrequest"
	stkPushPath       = "/mpesa/stkpush/v1/processrequest"
	reversalPath      = "/mpesa/reversal/v1/request"
)

// Client is the entry point for talking to the daraja API.
//
// Configuration is fixed at construction: the environment (hence base URL)
// and the consumer key/secret never change afterwards. The client keeps no
// other state, so concurrent calls on one Client are independent.
type Client struct {
	env            darajaconnect.Environment
	consumerKey    string
	consumerSecret string
	baseURL        string
	transport      *net.Client
	logger         *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTransport sets the underlying HTTP transport for network requests.
func WithTransport(transport *net.Client) ClientOption {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger sets the logger for operation tracing (default: no-op).
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a daraja client for the given environment and consumer
// credentials. Credentials come from the provider's developer portal; the
// environment decides whether they are exercised against the sandbox or the
// live API.
func NewClient(env darajaconnect.Environment, consumerKey, consumerSecret string, opts ...ClientOption) *Client {
	client := &Client{
		env:            env,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		baseURL:        env.BaseURL(),
		transport:      net.NewClient(),
		logger:         zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Environment returns the environment this client was built for.
func (c *Client) Environment() darajaconnect.Environment {
	return c.env
}

// BaseURL returns the provider host this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}
