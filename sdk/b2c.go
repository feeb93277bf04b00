package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/validate"
	"github.com/daraja-connect/sdk-go/errors"
)

// b2cCommands is the set of commands the B2C endpoint accepts.
var b2cCommands = map[darajaconnect.CommandID]bool{
	darajaconnect.CommandSalaryPayment:    true,
	darajaconnect.CommandBusinessPayment:  true,
	darajaconnect.CommandPromotionPayment: true,
}

// B2CParams configures a business-to-customer disbursement.
type B2CParams struct {
	// InitiatorName is the API operator username on the shortcode.
	InitiatorName string

	// SecurityCredential is the encrypted operator password, produced by
	// crypto.GenerateSecurityCredential.
	SecurityCredential string

	// CommandID must be one of SalaryPayment, BusinessPayment,
	// PromotionPayment.
	CommandID darajaconnect.CommandID

	// Amount in whole currency units.
	Amount int

	// PartyA is the organization shortcode the money leaves.
	PartyA string

	// PartyB is the receiving customer's number, in any accepted spelling.
	PartyB string

	Remarks string

	// QueueTimeoutURL receives the result if the request expires in the
	// provider's queue.
	QueueTimeoutURL string

	// ResultURL receives the asynchronous transaction result.
	ResultURL string

	Occasion string
}

// b2cPayload is the wire shape for POST /mpesa/b2c/v1/paymentrequest.
type b2cPayload struct {
	InitiatorName      string `json:"InitiatorName"`
	SecurityCredential string `json:"SecurityCredential"`
	CommandID          string `json:"CommandID"`
	Amount             int    `json:"Amount"`
	PartyA             string `json:"PartyA"`
	PartyB             string `json:"PartyB"`
	Remarks            string `json:"Remarks"`
	QueueTimeOutURL    string `json:"QueueTimeOutURL"`
	ResultURL          string `json:"ResultURL"`
	Occasion           string `json:"Occasion"`
}

// BusinessToCustomer pays a customer from the organization shortcode.
// PartyB must normalize to a Safaricom MSISDN and CommandID must belong to
// the B2C command set; both are checked before any network traffic. The
// transaction result arrives asynchronously at ResultURL.
func (c *Client) BusinessToCustomer(ctx context.Context, p B2CParams) (*darajaconnect.Response, error) {
	msisdn, ok := validate.SafaricomNumber(p.PartyB)
	if !ok {
		return nil, errors.NewClientError(
			errors.INVALID_MSISDN,
			fmt.Sprintf("%q is not a valid phone number", p.PartyB),
			nil,
		)
	}
	if !b2cCommands[p.CommandID] {
		return nil, errors.NewClientError(
			errors.INVALID_COMMAND_ID,
			fmt.Sprintf("%q is not a valid CommandID value", p.CommandID),
			nil,
		)
	}

	headers, err := c.buildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("dispatching b2c payment",
		zap.String("command", string(p.CommandID)),
		zap.Int("amount", p.Amount),
	)

	payload := b2cPayload{
		InitiatorName:      p.InitiatorName,
		SecurityCredential: p.SecurityCredential,
		CommandID:          string(p.CommandID),
		Amount:             p.Amount,
		PartyA:             p.PartyA,
		PartyB:             msisdn,
		Remarks:            p.Remarks,
		QueueTimeOutURL:    p.QueueTimeoutURL,
		ResultURL:          p.ResultURL,
		Occasion:           p.Occasion,
	}
	return c.transport.Post(ctx, c.baseURL+b2cPaymentPath, headers, payload)
}
