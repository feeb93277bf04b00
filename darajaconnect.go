// Package darajaconnect provides a Go SDK for the Safaricom M-Pesa daraja API.
// It assembles authenticated requests for the daraja payment operations
// (callback URL registration, C2B simulation, B2C and B2B transfers, STK push
// checkout, transaction reversal) and normalizes provider responses, while
// delegating callback hosting, persistence, and business logic to the
// developer.
package darajaconnect

import "fmt"

// Base URLs for the two daraja environments.
const (
	SandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	ProductionBaseURL = "https://api.safaricom.co.ke"
)

// Environment selects which daraja host a client talks to.
type Environment string

const (
	// EnvironmentSandbox targets the daraja developer sandbox.
	EnvironmentSandbox Environment = "sandbox"

	// EnvironmentProduction targets the live daraja API.
	EnvironmentProduction Environment = "production"
)

// BaseURL returns the host for the environment. Any value other than
// EnvironmentProduction resolves to the sandbox host, so a zero-valued
// Environment can never reach the live API.
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

// Token is the OAuth bearer token returned by the daraja auth endpoint.
// The provider encodes expires_in as a decimal string (e.g. "3599"), so it
// is kept as one. Tokens are never cached; every operation fetches a fresh
// one. The zero value is the sentinel for a failed token exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// Valid reports whether the token carries a usable access token.
func (t Token) Valid() bool {
	return t.AccessToken != ""
}

// Response is the normalized provider response shared by every operation.
//
// Fields holds the decoded JSON body when the provider returned one. When the
// body was not JSON, Text holds it raw. When the body was empty, Fields holds
// a synthesized error entry. Status always carries the HTTP status code.
type Response struct {
	Status int
	Fields map[string]any
	Text   string
}

// ErrorMessage returns the error description carried by the response, if any.
// It reads the synthesized "error" key first, then the provider's
// "errorMessage" key.
func (r *Response) ErrorMessage() (string, bool) {
	if r == nil || r.Fields == nil {
		return "", false
	}
	for _, key := range []string{"error", "errorMessage"} {
		if v, ok := r.Fields[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
			return fmt.Sprint(v), true
		}
	}
	return "", false
}

// ResponseType selects what the provider should do with a C2B payment when
// the registered validation URL cannot be reached.
type ResponseType string

const (
	// ResponseTypeCancelled cancels the payment if validation is unreachable.
	ResponseTypeCancelled ResponseType = "Cancelled"

	// ResponseTypeCompleted completes the payment if validation is unreachable.
	ResponseTypeCompleted ResponseType = "Completed"
)

// CommandID identifies the transaction type of a daraja operation.
type CommandID string

// B2C disbursement commands.
const (
	CommandSalaryPayment    CommandID = "SalaryPayment"
	CommandBusinessPayment  CommandID = "BusinessPayment"
	CommandPromotionPayment CommandID = "PromotionPayment"
)

// B2B transfer commands.
const (
	CommandBusinessPayBill            CommandID = "BusinessPayBill"
	CommandBusinessBuyGoods           CommandID = "BusinessBuyGoods"
	CommandDisburseFundsToBusiness    CommandID = "DisburseFundsToBusiness"
	CommandBusinessToBusinessTransfer CommandID = "BusinessToBusinessTransfer"

	// CommandMerchantToMerchantTransfer ends with a dot because that is the
	// value the provider's enum accepts. It looks like a data-entry error
	// upstream, but the API expects it verbatim.
	CommandMerchantToMerchantTransfer CommandID = "MerchantToMerchantTransfer."
)

// Commands applied as defaults when an operation's params leave them unset.
const (
	// CommandCustomerPayBillOnline is the default for C2B simulation and the
	// STK push transaction type.
	CommandCustomerPayBillOnline CommandID = "CustomerPayBillOnline"

	// CommandTransactionReversal is the fixed command for reversals.
	CommandTransactionReversal CommandID = "TransactionReversal"
)

// Identifier types classify the sending and receiving party fields on
// disbursement-class operations.
const (
	IdentifierTypeMSISDN                = 1
	IdentifierTypeTillNumber            = 2
	IdentifierTypeShortcode             = 4
	IdentifierTypeOrganizationShortcode = 11
)
