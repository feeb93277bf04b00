package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/crypto"
	"github.com/daraja-connect/sdk-go/core/validate"
	"github.com/daraja-connect/sdk-go/errors"
)

// PushCheckoutParams configures an STK push (Lipa na M-Pesa Online)
// checkout prompt.
type PushCheckoutParams struct {
	// ShortCode is the Lipa na M-Pesa online shortcode, sent as
	// BusinessShortCode.
	ShortCode string

	// Passkey is the Lipa na M-Pesa online passkey issued with the
	// shortcode. The timestamped password is derived from it per request.
	Passkey string

	// Amount in whole currency units.
	Amount int

	// PartyA is the customer's number. The customer's device receives the
	// authorization prompt, so it doubles as the PhoneNumber wire field.
	PartyA string

	// PartyB is the shortcode receiving the payment, usually ShortCode.
	PartyB string

	// CallbackURL receives the asynchronous checkout result.
	CallbackURL string

	// AccountReference defaults to "account" when empty.
	AccountReference string

	TransactionDesc string

	// TransactionType defaults to CustomerPayBillOnline when empty.
	TransactionType darajaconnect.CommandID
}

// stkPushPayload is the wire shape for POST /mpesa/stkpush/v1/processrequest.
type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// PushCheckout prompts the customer's device to authorize a payment. PartyA
// must normalize to a Safaricom MSISDN; this is checked before any network
// traffic. The password and timestamp are regenerated on every call from
// ShortCode and Passkey.
func (c *Client) PushCheckout(ctx context.Context, p PushCheckoutParams) (*darajaconnect.Response, error) {
	msisdn, ok := validate.SafaricomNumber(p.PartyA)
	if !ok {
		return nil, errors.NewClientError(
			errors.INVALID_MSISDN,
			fmt.Sprintf("%q is not a valid phone number", p.PartyA),
			nil,
		)
	}

	headers, err := c.buildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := crypto.GeneratePassword(p.ShortCode, p.Passkey)

	transactionType := p.TransactionType
	if transactionType == "" {
		transactionType = darajaconnect.CommandCustomerPayBillOnline
	}
	accountReference := p.AccountReference
	if accountReference == "" {
		accountReference = "account"
	}

	c.logger.Debug("dispatching stk push",
		zap.String("shortcode", p.ShortCode),
		zap.Int("amount", p.Amount),
	)

	payload := stkPushPayload{
		BusinessShortCode: p.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   string(transactionType),
		Amount:            p.Amount,
		PartyA:            msisdn,
		PartyB:            p.PartyB,
		PhoneNumber:       msisdn,
		CallBackURL:       p.CallbackURL,
		AccountReference:  accountReference,
		TransactionDesc:   p.TransactionDesc,
	}
	return c.transport.Post(ctx, c.baseURL+stkPushPath, headers, payload)
}
