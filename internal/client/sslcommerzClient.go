package client

import (
	"context"
	"encoding/json"
	"fmt"
	"grocery-bazaar-backend/internal/config"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PaymentClient initiates a hosted-gateway payment session. The gateway
// collects payment details off-system and calls back over HTTP with the
// transaction id embedded in the callback URLs.
type PaymentClient interface {
	InitiatePayment(ctx context.Context, req *InitiationRequest) (*InitiationResponse, error)
}

type InitiationRequest struct {
	TotalAmount     string // two-decimal amount string, e.g. "500.00"
	Currency        string
	TransactionID   string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	ProductName     string // comma-joined item names, submission order
	ProductCategory string // comma-joined item categories, submission order
}

type InitiationResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// GatewayError carries the gateway's diagnostic payload when it rejects an
// initiation request.
type GatewayError struct {
	Status string
	Reason string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway rejected initiation: status=%s reason=%s", e.Status, e.Reason)
}

type sslcommerzClientImpl struct {
	httpClient    *http.Client
	baseApiURL    string
	storeID       string
	storePassword string
}

func NewSslcommerzClient(gatewayCfg *config.Sslcommerz) PaymentClient {
	return &sslcommerzClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:    gatewayCfg.BaseApiURL,
		storeID:       gatewayCfg.StoreID,
		storePassword: gatewayCfg.StorePassword,
	}
}

func (c *sslcommerzClientImpl) InitiatePayment(ctx context.Context, r *InitiationRequest) (*InitiationResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", r.TotalAmount)
	form.Set("currency", r.Currency)
	form.Set("tran_id", r.TransactionID)
	form.Set("success_url", r.SuccessURL)
	form.Set("fail_url", r.FailURL)
	form.Set("cancel_url", r.CancelURL)
	form.Set("cus_name", r.CustomerName)
	form.Set("cus_email", r.CustomerEmail)
	form.Set("cus_add1", r.CustomerAddress)
	form.Set("product_name", r.ProductName)
	form.Set("product_category", r.ProductCategory)
	form.Set("product_profile", "general")
	form.Set("shipping_method", "NO")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/gwprocess/v4/api.php",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway initiation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(b))
	}

	var result InitiationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	if result.Status != "SUCCESS" || result.GatewayPageURL == "" {
		return nil, &GatewayError{Status: result.Status, Reason: result.FailedReason}
	}

	return &result, nil
}
