package labels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"store-sync/core/config"
	"store-sync/core/faults"
	"store-sync/core/tabular"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// partCodeKey is the CSV column holding "<mfg code> <part number>".
const partCodeKey = "Part Number"

type priceParam struct {
	Code    string `json:"Code"`
	PartNum string `json:"PartNum"`
}

type priceRequest struct {
	PriceParams []priceParam `json:"priceParams"`
}

type priceRecord struct {
	MfgCode string `json:"MfgCode"`
	PartNum string `json:"PartNum"`
	Price   struct {
		UnitCost decimal.Decimal `json:"UnitCost"`
	} `json:"Price"`
}

type priceResponse struct {
	Result map[string][]priceRecord `json:"result"`
}

// PricingClient resolves unit costs for part codes.
type PricingClient struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

// NewPricingClient creates a pricing client from the ESL configuration.
func NewPricingClient(cfg config.ESLConfig, logger *zap.Logger) *PricingClient {
	return &PricingClient{
		base:   strings.TrimRight(cfg.PriceURL, "/"),
		http:   &http.Client{Timeout: time.Duration(cfg.PriceTimeoutSeconds) * time.Second},
		logger: logger,
	}
}

// Lookup queries the pricing API for the given rows and returns one row per
// priced part, keyed by part code and "Price". Part codes without a space
// separator carry no manufacturer code and are excluded from the query.
func (p *PricingClient) Lookup(ctx context.Context, rows []tabular.Row) ([]tabular.Row, error) {
	params := make([]priceParam, 0, len(rows))
	for _, row := range rows {
		code := strings.TrimSpace(fmt.Sprintf("%v", row[partCodeKey]))
		mfg, num, found := strings.Cut(code, " ")
		if !found {
			continue
		}
		params = append(params, priceParam{Code: mfg, PartNum: num})
	}
	if len(params) == 0 {
		p.logger.Warn("No priceable parts in batch")
		return nil, nil
	}

	body, err := json.Marshal(priceRequest{PriceParams: params})
	if err != nil {
		return nil, fmt.Errorf("encoding price request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.base+"/getPrices", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building price request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, faults.Transient("pricing API unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, faults.Transient("pricing API returned status %d", resp.StatusCode)
	}

	var result priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding price response: %w", err)
	}

	var priced []tabular.Row
	for _, group := range result.Result {
		for _, rec := range group {
			if rec.MfgCode == "" || rec.PartNum == "" {
				p.logger.Warn("Skipping malformed price record",
					zap.String("mfg_code", rec.MfgCode), zap.String("part_num", rec.PartNum))
				continue
			}
			priced = append(priced, tabular.Row{
				partCodeKey: rec.MfgCode + " " + rec.PartNum,
				"Price":     rec.Price.UnitCost,
			})
		}
	}
	return priced, nil
}
