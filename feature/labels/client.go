package labels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"store-sync/core/config"
	"store-sync/core/faults"
	"store-sync/core/tabular"
)

// submitPayload is the wire format of one label submission.
type submitPayload struct {
	StoreCode string        `json:"store_code"`
	F1        []tabular.Row `json:"f1"`
	IsBase64  string        `json:"is_base64"`
	F2        string        `json:"f2"`
	Sign      string        `json:"sign"`
}

type submitResponse struct {
	ErrorCode int    `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// Client submits label batches to the ESL API.
type Client struct {
	url    string
	sign   string
	device string
	http   *http.Client
}

// NewClient creates a label submission client from the ESL configuration.
func NewClient(cfg config.ESLConfig) *Client {
	return &Client{
		url:    cfg.SubmitURL,
		sign:   cfg.Sign,
		device: cfg.Device,
		http:   &http.Client{Timeout: time.Duration(cfg.SubmitTimeoutSeconds) * time.Second},
	}
}

// Submit posts one batch of products. The API accepts a batch only with
// HTTP 200 and error_code 0 in the body; everything else is a failure.
func (c *Client) Submit(ctx context.Context, storeCode string, products []tabular.Row) error {
	payload := submitPayload{
		StoreCode: storeCode,
		F1:        products,
		IsBase64:  "0",
		F2:        c.device,
		Sign:      c.sign,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding label payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building label request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return faults.Transient("label API unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return faults.Transient("label API returned status %d", resp.StatusCode)
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding label response: %w", err)
	}
	if result.ErrorCode != 0 {
		return faults.UpstreamRejected("label API error_code %d: %s", result.ErrorCode, result.ErrorMsg)
	}
	return nil
}
