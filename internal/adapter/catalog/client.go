// Package catalog is the HTTP client for the external product API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bufu/storefront-api/configs"
	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/usecase"
)

type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(cfg configs.Config) *Client {
	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.Catalog.BaseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// productDTO matches the catalog API's JSON; ids are numeric there.
type productDTO struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (d productDTO) toDomain() domain.Product {
	return domain.Product{
		ID:    strconv.FormatInt(d.ID, 10),
		Title: d.Title,
		Price: d.Price,
		Image: d.Image,
	}
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var dtos []productDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	ps := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		ps = append(ps, d.toDomain())
	}
	return ps, nil
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return domain.Product{}, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetch product %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Product{}, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Product{}, fmt.Errorf("read product %s: %w", id, err)
	}
	// The catalog answers 200 with an empty body for unknown ids.
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return domain.Product{}, domain.ErrProductNotFound
	}

	var dto productDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	return dto.toDomain(), nil
}

var _ usecase.Catalog = (*Client)(nil)
