// Package callbacks holds the payload types the daraja API POSTs back to a
// merchant's registered URLs, with parsers for them and the acknowledgement
// body the provider expects in reply.
//
// The provider answers payment operations asynchronously: STK push results
// arrive at the checkout's CallBackURL, B2C/B2B/reversal results at the
// operation's ResultURL, and C2B payments hit the validation and
// confirmation URLs registered for the shortcode.
package callbacks

import (
	"encoding/json"
	"io"

	"github.com/daraja-connect/sdk-go/errors"
)

// STKCallback is the envelope delivered to an STK push CallBackURL. The
// useful content lives in Body.StkCallback.
type STKCallback struct {
	Body struct {
		StkCallback STKResult `json:"stkCallback"`
	} `json:"Body"`
}

// STKResult is the outcome of one STK push checkout.
type STKResult struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []Item `json:"Item"`
	} `json:"CallbackMetadata"`
}

// Item is one Name/Value pair of STK callback metadata.
type Item struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// Succeeded reports whether the customer authorized the payment.
func (r STKResult) Succeeded() bool {
	return r.ResultCode == 0
}

// Metadata flattens the callback metadata items into a map. Successful
// checkouts carry Amount, MpesaReceiptNumber, TransactionDate, and
// PhoneNumber; failed ones carry nothing.
func (r STKResult) Metadata() map[string]any {
	m := make(map[string]any, len(r.CallbackMetadata.Item))
	for _, item := range r.CallbackMetadata.Item {
		m[item.Name] = item.Value
	}
	return m
}

// ResultCallback is the envelope delivered to a B2C, B2B, or reversal
// ResultURL.
type ResultCallback struct {
	Result Result `json:"Result"`
}

// Result is the outcome of one disbursement-class transaction.
type Result struct {
	ResultType               int    `json:"ResultType"`
	ResultCode               int    `json:"ResultCode"`
	ResultDesc               string `json:"ResultDesc"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	TransactionID            string `json:"TransactionID"`
	ResultParameters         struct {
		ResultParameter []Parameter `json:"ResultParameter"`
	} `json:"ResultParameters"`
}

// Parameter is one Key/Value pair of result parameters.
type Parameter struct {
	Key   string `json:"Key"`
	Value any    `json:"Value"`
}

// Succeeded reports whether the transaction completed.
func (r Result) Succeeded() bool {
	return r.ResultCode == 0
}

// Parameters flattens the result parameters into a map. B2C results carry
// entries like TransactionAmount, TransactionReceipt, and
// ReceiverPartyPublicName; the exact set varies per operation.
func (r Result) Parameters() map[string]any {
	m := make(map[string]any, len(r.ResultParameters.ResultParameter))
	for _, p := range r.ResultParameters.ResultParameter {
		m[p.Key] = p.Value
	}
	return m
}

// C2BPayment is the payload delivered to the validation and confirmation
// URLs registered for a shortcode. Money fields arrive as strings.
type C2BPayment struct {
	TransactionType   string `json:"TransactionType"`
	TransID           string `json:"TransID"`
	TransTime         string `json:"TransTime"`
	TransAmount       string `json:"TransAmount"`
	BusinessShortCode string `json:"BusinessShortCode"`
	BillRefNumber     string `json:"BillRefNumber"`
	InvoiceNumber     string `json:"InvoiceNumber"`
	OrgAccountBalance string `json:"OrgAccountBalance"`
	ThirdPartyTransID string `json:"ThirdPartyTransID"`
	MSISDN            string `json:"MSISDN"`
	FirstName         string `json:"FirstName"`
	MiddleName        string `json:"MiddleName"`
	LastName          string `json:"LastName"`
}

// Ack is the body a merchant server answers callbacks with.
type Ack struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// Accept acknowledges a callback, telling the provider to proceed.
func Accept() Ack {
	return Ack{ResultCode: 0, ResultDesc: "Accepted"}
}

// Reject answers a C2B validation request with a refusal, cancelling the
// payment.
func Reject(reason string) Ack {
	if reason == "" {
		reason = "Rejected"
	}
	return Ack{ResultCode: 1, ResultDesc: reason}
}

// ParseSTK decodes an STK push callback.
func ParseSTK(r io.Reader) (*STKCallback, error) {
	var cb STKCallback
	if err := json.NewDecoder(r).Decode(&cb); err != nil {
		return nil, errors.NewClientError(
			errors.MALFORMED_CALLBACK,
			"failed to decode stk push callback",
			err,
		)
	}
	return &cb, nil
}

// ParseResult decodes a B2C, B2B, or reversal result callback.
func ParseResult(r io.Reader) (*ResultCallback, error) {
	var cb ResultCallback
	if err := json.NewDecoder(r).Decode(&cb); err != nil {
		return nil, errors.NewClientError(
			errors.MALFORMED_CALLBACK,
			"failed to decode result callback",
			err,
		)
	}
	return &cb, nil
}

// ParseC2B decodes a C2B validation or confirmation payload.
func ParseC2B(r io.Reader) (*C2BPayment, error) {
	var payment C2BPayment
	if err := json.NewDecoder(r).Decode(&payment); err != nil {
		return nil, errors.NewClientError(
			errors.MALFORMED_CALLBACK,
			"failed to decode c2b payment notification",
			err,
		)
	}
	return &payment, nil
}
