package labels

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-sync/core/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPricingClient_Lookup(t *testing.T) {
	var received priceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getPrices", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{
			"result": {
				"group1": [
					{"MfgCode": "ABC", "PartNum": "123", "Price": {"UnitCost": 19.99}},
					{"MfgCode": "", "PartNum": "456", "Price": {"UnitCost": 1.00}}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := NewPricingClient(testESLConfig("", srv.URL), zap.NewNop())
	rows := []tabular.Row{
		{"Part Number": "ABC 123"},
		{"Part Number": "NOSPACE"},
	}
	priced, err := client.Lookup(context.Background(), rows)
	require.NoError(t, err)

	// The part code without a space separator never reaches the API.
	require.Len(t, received.PriceParams, 1)
	assert.Equal(t, priceParam{Code: "ABC", PartNum: "123"}, received.PriceParams[0])

	// Malformed records are dropped, valid ones priced.
	require.Len(t, priced, 1)
	assert.Equal(t, "ABC 123", priced[0]["Part Number"])
	cost, ok := priced[0]["Price"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromFloat(19.99)))
}

func TestPricingClient_Lookup_NoPriceableParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected when nothing is priceable")
	}))
	defer srv.Close()

	client := NewPricingClient(testESLConfig("", srv.URL), zap.NewNop())
	priced, err := client.Lookup(context.Background(), []tabular.Row{{"Part Number": "NOSPACE"}})
	require.NoError(t, err)
	assert.Empty(t, priced)
}

func TestPricingClient_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewPricingClient(testESLConfig("", srv.URL), zap.NewNop())
	_, err := client.Lookup(context.Background(), []tabular.Row{{"Part Number": "ABC 123"}})
	assert.Error(t, err)
}
