package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/errors"
)

// b2bCommands is the set of commands the B2B endpoint accepts, including
// the trailing-dot MerchantToMerchantTransfer variant the provider lists.
var b2bCommands = map[darajaconnect.CommandID]bool{
	darajaconnect.CommandBusinessPayBill:            true,
	darajaconnect.CommandBusinessBuyGoods:           true,
	darajaconnect.CommandDisburseFundsToBusiness:    true,
	darajaconnect.CommandBusinessToBusinessTransfer: true,
	darajaconnect.CommandMerchantToMerchantTransfer: true,
}

// B2BParams configures a business-to-business transfer.
type B2BParams struct {
	// Initiator is the API operator username on the sending shortcode.
	Initiator string

	// SecurityCredential is the encrypted operator password, produced by
	// crypto.GenerateSecurityCredential.
	SecurityCredential string

	// CommandID must be one of BusinessPayBill, BusinessBuyGoods,
	// DisburseFundsToBusiness, BusinessToBusinessTransfer,
	// MerchantToMerchantTransfer.
	CommandID darajaconnect.CommandID

	// Amount in whole currency units.
	Amount int

	// PartyA is the sending organization shortcode.
	PartyA string

	// PartyB is the receiving organization shortcode.
	PartyB string

	// AccountReference is required for BusinessPayBill commands.
	AccountReference string

	Remarks string

	// QueueTimeoutURL receives the result if the request expires in the
	// provider's queue.
	QueueTimeoutURL string

	// ResultURL receives the asynchronous transaction result.
	ResultURL string
}

// b2bPayload is the wire shape for POST /mpesa/b2b/v1/paymentrequest.
// Both parties are identified by shortcode. RecieverIdentifierType is the
// provider's spelling.
type b2bPayload struct {
	Initiator              string `json:"Initiator"`
	SecurityCredential     string `json:"SecurityCredential"`
	CommandID              string `json:"CommandID"`
	SenderIdentifierType   int    `json:"SenderIdentifierType"`
	ReceiverIdentifierType int    `json:"RecieverIdentifierType"`
	Amount                 int    `json:"Amount"`
	PartyA                 string `json:"PartyA"`
	PartyB                 string `json:"PartyB"`
	AccountReference       string `json:"AccountReference"`
	Remarks                string `json:"Remarks"`
	QueueTimeOutURL        string `json:"QueueTimeOutURL"`
	ResultURL              string `json:"ResultURL"`
}

// BusinessToBusiness moves money between two organization shortcodes.
// CommandID must belong to the B2B command set; this is checked before any
// network traffic. The transaction result arrives asynchronously at
// ResultURL.
func (c *Client) BusinessToBusiness(ctx context.Context, p B2BParams) (*darajaconnect.Response, error) {
	if !b2bCommands[p.CommandID] {
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

	c.logger.Debug("dispatching b2b payment",
		zap.String("command", string(p.CommandID)),
		zap.String("party_b", p.PartyB),
	)

	payload := b2bPayload{
		Initiator:              p.Initiator,
		SecurityCredential:     p.SecurityCredential,
		CommandID:              string(p.CommandID),
		SenderIdentifierType:   darajaconnect.IdentifierTypeShortcode,
		ReceiverIdentifierType: darajaconnect.IdentifierTypeShortcode,
		Amount:                 p.Amount,
		PartyA:                 p.PartyA,
		PartyB:                 p.PartyB,
		AccountReference:       p.AccountReference,
		Remarks:                p.Remarks,
		QueueTimeOutURL:        p.QueueTimeoutURL,
		ResultURL:              p.ResultURL,
	}
	return c.transport.Post(ctx, c.baseURL+b2bPaymentPath, headers, payload)
}
