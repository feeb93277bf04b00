package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"time"

	"github.com/daraja-connect/sdk-go/errors"
)

// timestampLayout is the provider's required YYYYMMDDHHMMSS timestamp form.
const timestampLayout = "20060102150405"

// GeneratePassword builds the timestamped password required by STK push
// requests: the base64 encoding of shortcode + passkey + timestamp. It
// returns the password together with the timestamp it encoded. The clock is
// read on every call, so results differ across calls; callers that need the
// pair must take both return values from the same call.
func GeneratePassword(shortcode, passkey string) (string, string) {
	timestamp := time.Now().Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
	return password, timestamp
}

// GenerateSecurityCredential encrypts the initiator password under the RSA
// public key of the provider certificate at certPath and returns the
// base64-encoded ciphertext. Disbursement-class operations (B2C, B2B,
// reversal) require the result; the provider issues one certificate per
// environment.
func GenerateSecurityCredential(certPath, password string) (string, error) {
	info, err := os.Stat(certPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", errors.NewCryptoError(
			errors.CERT_NOT_FOUND,
			fmt.Sprintf("no certificate file at %s", certPath),
			err,
		)
	}

	certData, err := os.ReadFile(certPath)
	if err != nil {
		return "", errors.NewCryptoError(
			errors.CERT_NOT_FOUND,
			fmt.Sprintf("failed to read certificate at %s", certPath),
			err,
		)
	}

	block, _ := pem.Decode(certData)
	if block == nil {
		return "", errors.NewCryptoError(
			errors.CERT_INVALID,
			"certificate is not PEM-encoded",
			nil,
		)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return "", errors.NewCryptoError(
			errors.CERT_INVALID,
			"failed to parse certificate",
			err,
		)
	}

	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", errors.NewCryptoError(
			errors.CERT_INVALID,
			"certificate does not carry an RSA public key",
			nil,
		)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, []byte(password))
	if err != nil {
		return "", errors.NewCryptoError(
			errors.ENCRYPT_FAILED,
			"failed to encrypt initiator password",
			err,
		)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
