package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daraja-connect/sdk-go/errors"
)

func TestGeneratePassword(t *testing.T) {
	password, timestamp := GeneratePassword("174379", "passkey-value")

	require.Regexp(t, regexp.MustCompile(`^[0-9]{14}$`), timestamp)
	_, err := time.Parse(timestampLayout, timestamp)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(password)
	require.NoError(t, err)
	require.Equal(t, "174379"+"passkey-value"+timestamp, string(decoded))
}

func TestGenerateSecurityCredential(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	certPath := writeTestCert(t, key)

	credential, err := GenerateSecurityCredential(certPath, "initiator-secret")
	require.NoError(t, err)
	require.NotEmpty(t, credential)

	ciphertext, err := base64.StdEncoding.DecodeString(credential)
	require.NoError(t, err)
	plaintext, err := rsa.DecryptPKCS1v15(nil, key, ciphertext)
	require.NoError(t, err)
	require.Equal(t, "initiator-secret", string(plaintext))
}

func TestGenerateSecurityCredentialMissingFile(t *testing.T) {
	_, err := GenerateSecurityCredential(filepath.Join(t.TempDir(), "nope.pem"), "secret")
	require.Error(t, err)

	var derr *errors.DarajaConnectError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, errors.CERT_NOT_FOUND, derr.Code)
}

func TestGenerateSecurityCredentialDirectoryPath(t *testing.T) {
	_, err := GenerateSecurityCredential(t.TempDir(), "secret")
	require.Error(t, err)

	var derr *errors.DarajaConnectError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, errors.CERT_NOT_FOUND, derr.Code)
}

func TestGenerateSecurityCredentialBadPEM(t *testing.T) {
	certPath := filepath.Join(t.TempDir(), "garbage.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("not a certificate"), 0o600))

	_, err := GenerateSecurityCredential(certPath, "secret")
	require.Error(t, err)

	var derr *errors.DarajaConnectError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, errors.CERT_INVALID, derr.Code)
}

func writeTestCert(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "daraja-connect test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	certPath := filepath.Join(t.TempDir(), "cert.pem")
	out, err := os.Create(certPath)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, pem.Encode(out, &pem.Block{Type: "CERTIFICATE", Bytes: der}))
	return certPath
}
