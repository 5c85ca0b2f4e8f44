// Package payment implements the order gateway against the payment
// provider's hosted checkout API (Checkout v3 wire contract).
package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bufu/storefront-api/configs"
	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/logging"
	"github.com/bufu/storefront-api/internal/usecase"
)

const ordersPath = "/checkout/v3/orders"

// The provider substitutes this token server-side with the real order
// id before redirecting the shopper.
const orderIDPlaceholder = "{checkout.order.id}"

var providerCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_provider_requests_total",
		Help: "Total number of payment provider API calls",
	},
	[]string{"op", "outcome"},
)

type Client struct {
	baseURL          string
	publicKey        string
	secretKey        string
	confirmationBase string
	hc               *http.Client
}

func NewClient(cfg configs.Config) *Client {
	timeout := cfg.Provider.Timeout
	if timeout <= 0 {
		// No timeout is part of the provider contract; this is a
		// safety margin so a stuck provider cannot pin a request.
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:          cfg.Provider.BaseURL,
		publicKey:        cfg.Provider.PublicKey,
		secretKey:        cfg.Provider.SecretKey,
		confirmationBase: cfg.Provider.ConfirmationBaseURL,
		hc:               &http.Client{Timeout: timeout},
	}
}

type orderLine struct {
	Type                string `json:"type"`
	Reference           string `json:"reference"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	QuantityUnit        string `json:"quantity_unit"`
	UnitPrice           int64  `json:"unit_price"`
	TaxRate             int64  `json:"tax_rate"`
	TotalAmount         int64  `json:"total_amount"`
	TotalDiscountAmount int64  `json:"total_discount_amount"`
	TotalTaxAmount      int64  `json:"total_tax_amount"`
	ImageURL            string `json:"image_url"`
}

type merchantURLs struct {
	Terms        string `json:"terms"`
	Checkout     string `json:"checkout"`
	Confirmation string `json:"confirmation"`
	Push         string `json:"push"`
}

type orderRequest struct {
	PurchaseCountry  string       `json:"purchase_country"`
	PurchaseCurrency string       `json:"purchase_currency"`
	Locale           string       `json:"locale"`
	OrderAmount      int64        `json:"order_amount"`
	OrderTaxAmount   int64        `json:"order_tax_amount"`
	OrderLines       []orderLine  `json:"order_lines"`
	MerchantURLs     merchantURLs `json:"merchant_urls"`
}

func (c *Client) buildOrderRequest(p domain.Product) orderRequest {
	a := ComputeAmounts(p.Price)
	return orderRequest{
		PurchaseCountry:  purchaseCountry,
		PurchaseCurrency: purchaseCurrency,
		Locale:           locale,
		OrderAmount:      a.Total,
		OrderTaxAmount:   a.Tax,
		OrderLines: []orderLine{{
			Type:                "physical",
			Reference:           p.ID,
			Name:                p.Title,
			Quantity:            quantity,
			QuantityUnit:        quantityUnit,
			UnitPrice:           a.UnitPrice,
			TaxRate:             taxRateBps,
			TotalAmount:         a.Total,
			TotalDiscountAmount: 0,
			TotalTaxAmount:      a.Tax,
			ImageURL:            p.Image,
		}},
		MerchantURLs: merchantURLs{
			Terms:        "https://www.example.com/terms.html",
			Checkout:     "https://www.example.com/checkout.html",
			Confirmation: c.confirmationBase + "/confirmation?order_id=" + orderIDPlaceholder,
			Push:         "https://www.example.com/api/push",
		},
	}
}

// CreateOrder submits a one-line order for the product. A provider
// error status is not an error here: the rejection carries markup with
// the serialized error body so the checkout page can still render.
func (c *Client) CreateOrder(ctx context.Context, p domain.Product) (domain.OrderResult, error) {
	if err := p.Validate(); err != nil {
		return domain.OrderResult{}, err
	}

	body, err := json.Marshal(c.buildOrderRequest(p))
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return domain.OrderResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", basicAuth(c.publicKey, c.secretKey))

	resp, err := c.hc.Do(req)
	if err != nil {
		providerCalls.WithLabelValues("create", "transport_error").Inc()
		return domain.OrderResult{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		providerCalls.WithLabelValues("create", "transport_error").Inc()
		return domain.OrderResult{}, fmt.Errorf("read create order response: %w", err)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		ord, err := decodeOrder(raw)
		if err != nil {
			providerCalls.WithLabelValues("create", "bad_body").Inc()
			return domain.OrderResult{}, fmt.Errorf("decode order: %w", err)
		}
		providerCalls.WithLabelValues("create", "ok").Inc()
		return domain.OrderResult{Order: ord}, nil
	}

	providerCalls.WithLabelValues("create", "rejected").Inc()
	logging.FromCtx(ctx).Warn("order creation rejected",
		"status", resp.StatusCode, "reference", p.ID)
	return domain.OrderResult{Rejection: &domain.Rejection{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Snippet:    "<h1>" + compactJSON(raw) + "</h1>",
	}}, nil
}

// RetrieveOrder fetches an existing order by its provider-assigned id.
// A non-success status yields a rejection with a "<status> <text>"
// heading; transport failures propagate as errors.
func (c *Client) RetrieveOrder(ctx context.Context, orderID string) (domain.OrderResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ordersPath+"/"+orderID, nil)
	if err != nil {
		return domain.OrderResult{}, err
	}
	req.Header.Set("Authorization", basicAuth(c.publicKey, c.secretKey))

	resp, err := c.hc.Do(req)
	if err != nil {
		providerCalls.WithLabelValues("retrieve", "transport_error").Inc()
		return domain.OrderResult{}, fmt.Errorf("retrieve order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		providerCalls.WithLabelValues("retrieve", "transport_error").Inc()
		return domain.OrderResult{}, fmt.Errorf("read retrieve order response: %w", err)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		ord, err := decodeOrder(raw)
		if err != nil {
			providerCalls.WithLabelValues("retrieve", "bad_body").Inc()
			return domain.OrderResult{}, fmt.Errorf("decode order: %w", err)
		}
		providerCalls.WithLabelValues("retrieve", "ok").Inc()
		return domain.OrderResult{Order: ord}, nil
	}

	providerCalls.WithLabelValues("retrieve", "rejected").Inc()
	return domain.OrderResult{Rejection: &domain.Rejection{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Snippet:    fmt.Sprintf("<h1>%d %s</h1>", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}}, nil
}

func decodeOrder(raw []byte) (*domain.ProviderOrder, error) {
	var ord domain.ProviderOrder
	if err := json.Unmarshal(raw, &ord); err != nil {
		return nil, err
	}
	ord.Raw = raw
	return &ord, nil
}

// basicAuth builds the Authorization header value from the provider
// credentials. Recomputed per call; credentials are validated at
// startup, not here.
func basicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

var _ usecase.OrderGateway = (*Client)(nil)
