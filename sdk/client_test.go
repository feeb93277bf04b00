package sdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/core/net"
)

// darajaStub fakes the two provider endpoints an operation touches: the
// token exchange and the operation POST. It records what the client sent.
type darajaStub struct {
	server *httptest.Server

	tokenHits  int
	tokenQuery string
	authHeader string

	opHits   int
	lastPath string
	bearer   string
	host     string
	lastBody map[string]any

	tokenStatus int
	tokenBody   string
	opBody      string
}

func newDarajaStub(t *testing.T) *darajaStub {
	t.Helper()

	s := &darajaStub{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"access_token":"test-token","expires_in":"3599"}`,
		opBody:      `{"ResponseCode":"0","ResponseDescription":"Accept the service request successfully."}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		s.tokenHits++
		s.tokenQuery = r.URL.RawQuery
		s.authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.tokenStatus)
		if s.tokenBody != "" {
			w.Write([]byte(s.tokenBody))
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.opHits++
		s.lastPath = r.URL.Path
		s.bearer = r.Header.Get("Authorization")
		s.host = r.Host
		s.lastBody = map[string]any{}
		json.NewDecoder(r.Body).Decode(&s.lastBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(s.opBody))
	})

	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

// newTestClient builds a sandbox client pointed at the stub.
func newTestClient(t *testing.T, stub *darajaStub) *Client {
	t.Helper()
	client := NewClient(darajaconnect.EnvironmentSandbox, "key", "secret")
	client.baseURL = stub.server.URL
	return client
}

func TestNewClientEnvironmentSelectsBaseURL(t *testing.T) {
	t.Run("sandbox", func(t *testing.T) {
		client := NewClient(darajaconnect.EnvironmentSandbox, "key", "secret")
		require.Equal(t, darajaconnect.SandboxBaseURL, client.BaseURL())
		require.Equal(t, darajaconnect.EnvironmentSandbox, client.Environment())
	})

	t.Run("production", func(t *testing.T) {
		client := NewClient(darajaconnect.EnvironmentProduction, "key", "secret")
		require.Equal(t, darajaconnect.ProductionBaseURL, client.BaseURL())
	})

	t.Run("zero value falls back to sandbox", func(t *testing.T) {
		client := NewClient(darajaconnect.Environment(""), "key", "secret")
		require.Equal(t, darajaconnect.SandboxBaseURL, client.BaseURL())
	})
}

func TestNewClientOptions(t *testing.T) {
	transport := net.NewClient()
	logger := zap.NewNop()

	client := NewClient(darajaconnect.EnvironmentSandbox, "key", "secret",
		WithTransport(transport),
		WithLogger(logger),
	)

	require.Same(t, transport, client.transport)
	require.Same(t, logger, client.logger)
}
