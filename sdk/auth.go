package sdk

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/errors"
)

// GenerateToken exchanges the consumer key/secret for a bearer token at the
// OAuth client-credentials endpoint.
//
// Token generation is the one place where a provider-side failure does not
// surface as an error: when the exchange comes back without usable JSON or
// with an explicit error field, the zero Token is returned as a sentinel and
// the caller decides what to do with it. A non-nil error means the round
// trip itself never produced a response.
//
// Tokens are short-lived and never cached; every payment operation calls
// this again.
func (c *Client) GenerateToken(ctx context.Context) (darajaconnect.Token, error) {
	// Step 1: Basic auth with the consumer credentials.
	credentials := base64.StdEncoding.EncodeToString([]byte(c.consumerKey + ":" + c.consumerSecret))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}

	// Step 2: one GET against the token endpoint.
	resp, err := c.transport.Get(ctx, c.baseURL+generateTokenPath, headers)
	if err != nil {
		return darajaconnect.Token{}, err
	}

	// Step 3: an error entry in the normalized response means the exchange
	// was rejected. Collapse to the sentinel.
	if msg, rejected := resp.ErrorMessage(); rejected {
		c.logger.Warn("token exchange rejected",
			zap.Int("status", resp.Status),
			zap.String("error", msg),
		)
		return darajaconnect.Token{}, nil
	}

	// Step 4: pull the token out of the response. A missing or non-string
	// field leaves the zero value, which is the same sentinel.
	var token darajaconnect.Token
	if v, ok := resp.Fields["access_token"].(string); ok {
		token.AccessToken = v
	}
	if v, ok := resp.Fields["expires_in"].(string); ok {
		token.ExpiresIn = v
	}
	return token, nil
}

// buildHeaders fetches a fresh token and assembles the header set every
// payment operation sends. A sentinel token converts into the
// INVALID_ACCESS_TOKEN error here, before the payment request goes out.
func (c *Client) buildHeaders(ctx context.Context) (map[string]string, error) {
	token, err := c.GenerateToken(ctx)
	if err != nil {
		return nil, err
	}
	if !token.Valid() {
		return nil, errors.NewClientError(
			errors.INVALID_ACCESS_TOKEN,
			"invalid access token value",
			nil,
		)
	}

	host := c.baseURL
	if u, err := url.Parse(c.baseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return map[string]string{
		"Host":          host,
		"Content-Type":  "application/json",
		"Authorization": fmt.Sprintf("Bearer %s", token.AccessToken),
	}, nil
}
