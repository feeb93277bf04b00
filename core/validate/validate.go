// Package validate holds the pure input checks shared by the SDK: URL
// well-formedness and Safaricom MSISDN normalization. Both are free
// functions with no state; failures are reported as booleans, never errors.
package validate

import (
	"net/url"
	"regexp"
)

// safaricomPlan captures the Safaricom mobile numbering plan: an optional
// 254, +254, or 0 prefix followed by a 7xx block assigned to Safaricom and
// six subscriber digits. Capture group 1 is the nine significant digits.
var safaricomPlan = regexp.MustCompile(`^(?:254|\+254|0)?(7(?:[129][0-9]|0[0-8]|4[0-1]|5[7-9])[0-9]{6})$`)

// URL reports whether raw parses into a URL with non-empty scheme, host,
// and path. A bare host with no path is rejected, matching what the daraja
// API accepts for callback registration.
func URL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != "" && u.Path != ""
}

// SafaricomNumber normalizes raw into the canonical 254XXXXXXXXX MSISDN
// form. It accepts the 0, 254, and +254 prefix spellings as well as the
// bare nine digits, and reports false for any number outside the plan.
func SafaricomNumber(raw string) (string, bool) {
	m := safaricomPlan.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return "254" + m[1], true
}
