package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/validate"
	"github.com/daraja-connect/sdk-go/errors"
)

// RegisterURLParams configures callback URL registration for a C2B
// shortcode.
type RegisterURLParams struct {
	// ShortCode is the organization shortcode receiving C2B payments.
	ShortCode string

	// ResponseType selects what the provider does with a payment when the
	// validation URL cannot be reached.
	ResponseType darajaconnect.ResponseType

	// ConfirmationURL receives completed payment notifications.
	ConfirmationURL string

	// ValidationURL receives payment validation requests.
	ValidationURL string
}

// registerURLPayload is the wire shape for POST /mpesa/c2b/v1/registerurl.
type registerURLPayload struct {
	ShortCode       string `json:"ShortCode"`
	ResponseType    string `json:"ResponseType"`
	ConfirmationURL string `json:"ConfirmationURL"`
	ValidationURL   string `json:"ValidationURL"`
}

// RegisterCallbackURLs registers the confirmation and validation URLs the
// provider will call back for C2B payments on the shortcode.
//
// Validation happens before any network traffic: ResponseType must be
// Cancelled or Completed, and both URLs must be well-formed with an explicit
// path.
func (c *Client) RegisterCallbackURLs(ctx context.Context, p RegisterURLParams) (*darajaconnect.Response, error) {
	if p.ResponseType != darajaconnect.ResponseTypeCancelled && p.ResponseType != darajaconnect.ResponseTypeCompleted {
		return nil, errors.NewClientError(
			errors.INVALID_RESPONSE_TYPE,
			fmt.Sprintf("%q is not a valid ResponseType value", p.ResponseType),
			nil,
		)
	}
	if !validate.URL(p.ConfirmationURL) {
		return nil, errors.NewClientError(
			errors.INVALID_URL,
			fmt.Sprintf("%q is not a valid url value", p.ConfirmationURL),
			nil,
		)
	}
	if !validate.URL(p.ValidationURL) {
		return nil, errors.NewClientError(
			errors.INVALID_URL,
			fmt.Sprintf("%q is not a valid url value", p.ValidationURL),
			nil,
		)
	}

	headers, err := c.buildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("registering callback urls", zap.String("shortcode", p.ShortCode))

	payload := registerURLPayload{
		ShortCode:       p.ShortCode,
		ResponseType:    string(p.ResponseType),
		ConfirmationURL: p.ConfirmationURL,
		ValidationURL:   p.ValidationURL,
	}
	return c.transport.Post(ctx, c.baseURL+registerURLPath, headers, payload)
}
