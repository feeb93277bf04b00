package net

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daraja-connect/sdk-go/errors"
)

func TestGetDecodesJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","expires_in":"3599"}`))
	}))
	defer srv.Close()

	resp, err := NewClient().Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "abc123", resp.Fields["access_token"])
	require.Equal(t, "3599", resp.Fields["expires_in"])
	require.Empty(t, resp.Text)
}

func TestGetFallsBackToRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream unavailable</html>"))
	}))
	defer srv.Close()

	resp, err := NewClient().Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.Status)
	require.Nil(t, resp.Fields)
	require.Equal(t, "<html>upstream unavailable</html>", resp.Text)
}

func TestGetEmptyBodySynthesizesWrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	resp, err := NewClient().Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.Status)
	require.Equal(t, "Wrong credentials", resp.Fields["error"])
	require.Equal(t, http.StatusUnauthorized, resp.Fields["status"])
}

func TestPostEmptyBodyCarriesDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp, err := NewClient().Post(context.Background(), srv.URL, nil, map[string]string{"a": "b"})
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	msg, ok := resp.Fields["error"].(string)
	require.True(t, ok)
	require.NotEmpty(t, msg)
	require.NotEqual(t, "Wrong credentials", msg)
	require.Equal(t, http.StatusInternalServerError, resp.Fields["status"])
}

func TestPostSendsJSONPayloadAndHeaders(t *testing.T) {
	var (
		gotHost        string
		gotAuth        string
		gotContentType string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ResponseDescription":"success"}`))
	}))
	defer srv.Close()

	headers := map[string]string{
		"Host":          "sandbox.safaricom.co.ke",
		"Content-Type":  "application/json",
		"Authorization": "Bearer token-value",
	}
	payload := map[string]any{"ShortCode": "600383", "Amount": 100}

	resp, err := NewClient().Post(context.Background(), srv.URL, headers, payload)
	require.NoError(t, err)
	require.Equal(t, "sandbox.safaricom.co.ke", gotHost)
	require.Equal(t, "Bearer token-value", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "600383", gotBody["ShortCode"])
	require.Equal(t, float64(100), gotBody["Amount"])
	require.Equal(t, "success", resp.Fields["ResponseDescription"])
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient().Get(context.Background(), url, nil)
	require.Error(t, err)

	var derr *errors.DarajaConnectError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, errors.NETWORK_ERROR, derr.Code)
	require.Equal(t, "core", derr.Layer)
}
