package labels

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-sync/core/config"
	"store-sync/core/faults"
	"store-sync/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testESLConfig(submitURL, priceURL string) config.ESLConfig {
	return config.ESLConfig{
		SubmitURL:            submitURL,
		PriceURL:             priceURL,
		Sign:                 "secret",
		Device:               "40:d6:3c:5e:11:63",
		BatchSize:            1000,
		MaxRetries:           3,
		SubmitTimeoutSeconds: 5,
		PriceTimeoutSeconds:  5,
	}
}

func TestClient_Submit_Accepted(t *testing.T) {
	var received submitPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{"error_code": 0})
	}))
	defer srv.Close()

	client := NewClient(testESLConfig(srv.URL, ""))
	err := client.Submit(context.Background(), "0001", []tabular.Row{{"pi": "ABC 123", "kc": 4}})
	require.NoError(t, err)

	assert.Equal(t, "0001", received.StoreCode)
	assert.Equal(t, "0", received.IsBase64)
	assert.Equal(t, "40:d6:3c:5e:11:63", received.F2)
	assert.Equal(t, "secret", received.Sign)
	require.Len(t, received.F1, 1)
	assert.Equal(t, "ABC 123", received.F1[0]["pi"])
}

func TestClient_Submit_NonzeroErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error_code": 42, "error_msg": "bad sign"})
	}))
	defer srv.Close()

	client := NewClient(testESLConfig(srv.URL, ""))
	err := client.Submit(context.Background(), "0001", []tabular.Row{{"pi": "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, faults.ErrUpstreamRejected)
	assert.Contains(t, err.Error(), "bad sign")
}

func TestClient_Submit_HTTPErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A 200-looking body must not rescue a failed status.
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{"error_code": 0})
	}))
	defer srv.Close()

	client := NewClient(testESLConfig(srv.URL, ""))
	err := client.Submit(context.Background(), "0001", []tabular.Row{{"pi": "x"}})
	assert.ErrorIs(t, err, faults.ErrTransient)
}

func TestClient_Submit_Unreachable(t *testing.T) {
	client := NewClient(testESLConfig("http://127.0.0.1:1", ""))
	err := client.Submit(context.Background(), "0001", []tabular.Row{{"pi": "x"}})
	assert.ErrorIs(t, err, faults.ErrTransient)
}
