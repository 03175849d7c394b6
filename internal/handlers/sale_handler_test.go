package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func saleRouter(h *SaleHandler) *gin.Engine {
	r := gin.New()
	r.POST("/sales", h.Create)
	r.DELETE("/sales/:id", h.Delete)
	return r
}

func TestSaleCreateValidation(t *testing.T) {
	h := NewSaleHandler(nil, nil, nil)
	r := saleRouter(h)

	// no items
	w := performRequest(r, http.MethodPost, "/sales",
		`{"customer_id": 1, "payment_method": "cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")

	// zero quantity fails the line binding
	w = performRequest(r, http.MethodPost, "/sales",
		`{"customer_id": 1, "payment_method": "cash", "items": [{"product_id": 1, "quantity": 0}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed body
	w = performRequest(r, http.MethodPost, "/sales", `{"customer_id": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleDeleteRejectsNonNumericID(t *testing.T) {
	h := NewSaleHandler(nil, nil, nil)

	w := performRequest(saleRouter(h), http.MethodDelete, "/sales/son", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_id")
}
