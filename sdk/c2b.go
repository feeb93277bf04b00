package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/validate"
	"github.com/daraja-connect/sdk-go/errors"
)

// C2BParams configures a simulated customer-to-business payment.
type C2BParams struct {
	// ShortCode is the organization shortcode receiving the payment.
	ShortCode string

	// Amount in whole currency units.
	Amount int

	// PhoneNumber is the paying customer's number, in any of the accepted
	// spellings (07..., 2547..., +2547...).
	PhoneNumber string

	// CommandID defaults to CustomerPayBillOnline when empty.
	CommandID darajaconnect.CommandID

	// BillRefNumber defaults to "account" when empty.
	BillRefNumber string
}

// c2bPayload is the wire shape for POST /mpesa/c2b/v1/simulate.
type c2bPayload struct {
	ShortCode     string `json:"ShortCode"`
	CommandID     string `json:"CommandID"`
	Amount        int    `json:"Amount"`
	Msisdn        string `json:"Msisdn"`
	BillRefNumber string `json:"BillRefNumber"`
}

// CustomerToBusiness simulates a customer paying the shortcode. The
// provider only honors this on the sandbox; the client treats it like any
// other operation. PhoneNumber must normalize to a Safaricom MSISDN or the
// call fails before any network traffic.
func (c *Client) CustomerToBusiness(ctx context.Context, p C2BParams) (*darajaconnect.Response, error) {
	msisdn, ok := validate.SafaricomNumber(p.PhoneNumber)
	if !ok {
		return nil, errors.NewClientError(
			errors.INVALID_MSISDN,
			fmt.Sprintf("%q is not a valid phone number", p.PhoneNumber),
			nil,
		)
	}

	headers, err := c.buildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	commandID := p.CommandID
	if commandID == "" {
		commandID = darajaconnect.CommandCustomerPayBillOnline
	}
	billRef := p.BillRefNumber
	if billRef == "" {
		billRef = "account"
	}

	c.logger.Debug("simulating c2b payment",
		zap.String("shortcode", p.ShortCode),
		zap.Int("amount", p.Amount),
	)

	payload := c2bPayload{
		ShortCode:     p.ShortCode,
		CommandID:     string(commandID),
		Amount:        p.Amount,
		Msisdn:        msisdn,
		BillRefNumber: billRef,
	}
	return c.transport.Post(ctx, c.baseURL+c2bSimulatePath, headers, payload)
}
