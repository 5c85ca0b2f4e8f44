package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/logging"
	"github.com/bufu/storefront-api/internal/usecase"
)

const confirmationFailedMsg = "Error retrieving order"

type StorefrontHandler struct {
	list     *usecase.ListProducts
	checkout *usecase.Checkout
	confirm  *usecase.ConfirmOrder
}

func NewStorefrontHandler(list *usecase.ListProducts, checkout *usecase.Checkout, confirm *usecase.ConfirmOrder) *StorefrontHandler {
	return &StorefrontHandler{list: list, checkout: checkout, confirm: confirm}
}

// ListProducts renders the product grid.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	ps, err := h.list.Execute(ctx)
	if err != nil {
		logging.From(c).Error("list products failed", "error", err)
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"Message": "Could not fetch products"})
		return
	}
	c.HTML(http.StatusOK, "store.html", gin.H{"Products": ps})
}

// Checkout fetches the product, creates a provider order and renders
// the page embedding the checkout widget. Serves both /products/:id and
// /checkout/:id. A provider rejection still renders: the snippet then
// describes the refusal.
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 25*time.Second)
	defer cancel()

	out, err := h.checkout.Execute(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Product not found"})
			return
		}
		logging.From(c).Error("checkout failed", "error", err)
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"Message": "Could not start checkout"})
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Product": out.Product,
		"Snippet": template.HTML(out.Result.HTMLSnippet()),
	})
}

// Confirmation retrieves the finalized order and returns its markup
// verbatim. Every failure here collapses to a flat 500 with a fixed
// message.
func (h *StorefrontHandler) Confirmation(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	snippet, err := h.confirm.Execute(ctx, c.Query("order_id"))
	if err != nil {
		logging.From(c).Error("confirmation failed", "error", err)
		c.String(http.StatusInternalServerError, confirmationFailedMsg)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(snippet))
}
