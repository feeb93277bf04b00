package sdk

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/errors"
)

// ReversalParams configures a transaction reversal request.
type ReversalParams struct {
	// Initiator is the API operator username on the shortcode.
	Initiator string

	// SecurityCredential is the encrypted operator password, produced by
	// crypto.GenerateSecurityCredential.
	SecurityCredential string

	// TransactionID identifies the transaction to reverse.
	TransactionID string

	// Amount of the original transaction, in whole currency units.
	Amount int

	// ReceiverParty is the organization shortcode that received the
	// original transaction.
	ReceiverParty string

	// QueueTimeoutURL receives the result if the request expires in the
	// provider's queue.
	QueueTimeoutURL string

	// ResultURL receives the asynchronous reversal result.
	ResultURL string

	Remarks  string
	Occasion string
}

// reversalPayload is the wire shape for POST /mpesa/reversal/v1/request.
// The command is fixed and the receiver is always identified as an
// organization shortcode. RecieverIdentifierType is the provider's spelling.
type reversalPayload struct {
	Initiator              string `json:"Initiator"`
	SecurityCredential     string `json:"SecurityCredential"`
	CommandID              string `json:"CommandID"`
	TransactionID          string `json:"TransactionID"`
	Amount                 int    `json:"Amount"`
	ReceiverParty          string `json:"ReceiverParty"`
	ReceiverIdentifierType int    `json:"RecieverIdentifierType"`
	QueueTimeOutURL        string `json:"QueueTimeOutURL"`
	ResultURL              string `json:"ResultURL"`
	Remarks                string `json:"Remarks"`
	Occasion               string `json:"Occasion"`
}

// Reversal asks the provider to reverse a completed transaction. The only
// pre-flight validation is that the required fields are present; Remarks
// and Occasion are optional pass-through. The reversal result arrives
// asynchronously at ResultURL.
func (c *Client) Reversal(ctx context.Context, p ReversalParams) (*darajaconnect.Response, error) {
	required := []struct {
		name  string
		value string
	}{
		{"Initiator", p.Initiator},
		{"SecurityCredential", p.SecurityCredential},
		{"TransactionID", p.TransactionID},
		{"ReceiverParty", p.ReceiverParty},
		{"QueueTimeoutURL", p.QueueTimeoutURL},
		{"ResultURL", p.ResultURL},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, errors.NewClientError(
				errors.MISSING_PARAMETER,
				fmt.Sprintf("%s is required", field.name),
				nil,
			)
		}
	}
	if p.Amount <= 0 {
		return nil, errors.NewClientError(
			errors.MISSING_PARAMETER,
			"Amount must be positive",
			nil,
		)
	}

	headers, err := c.buildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("dispatching reversal",
		zap.String("transaction_id", p.TransactionID),
		zap.Int("amount", p.Amount),
	)

	payload := reversalPayload{
		Initiator:              p.Initiator,
		SecurityCredential:     p.SecurityCredential,
		CommandID:              string(darajaconnect.CommandTransactionReversal),
		TransactionID:          p.TransactionID,
		Amount:                 p.Amount,
		ReceiverParty:          p.ReceiverParty,
		ReceiverIdentifierType: darajaconnect.IdentifierTypeOrganizationShortcode,
		QueueTimeOutURL:        p.QueueTimeoutURL,
		ResultURL:              p.ResultURL,
		Remarks:                p.Remarks,
		Occasion:               p.Occasion,
	}
	return c.transport.Post(ctx, c.baseURL+reversalPath, headers, payload)
}
