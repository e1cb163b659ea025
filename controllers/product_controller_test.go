package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetProductByID_RejectsMalformedID(t *testing.T) {
	ctrl := NewProductController(nil)
	router := gin.New()
	router.GET("/getProductById/:id", ctrl.GetProductByID)

	w := performRequest(router, http.MethodGet, "/getProductById/not-hex", "")
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product id")
}

func TestSearchProducts_RejectsInvalidBody(t *testing.T) {
	ctrl := NewProductController(nil)
	router := gin.New()
	router.POST("/searchProducts", ctrl.SearchProducts)

	w := performRequest(router, http.MethodPost, "/searchProducts", `not-json`)
	assert.Equal(t, 400, w.Code)
}

func TestEditProduct_RejectsMalformedProductID(t *testing.T) {
	ctrl := NewProductController(nil)
	router := gin.New()
	router.PUT("/editProduct", ctrl.EditProduct)

	w := performRequest(router, http.MethodPut, "/editProduct", `{"product_id":"zzz"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product_id")
}

func TestEditProduct_RejectsInvalidEnumValue(t *testing.T) {
	ctrl := NewProductController(nil)
	router := gin.New()
	router.PUT("/editProduct", ctrl.EditProduct)

	body := `{"product_id":"68b1f0aa0000000000000001","product_type":"floating"}`
	w := performRequest(router, http.MethodPut, "/editProduct", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid product_type")
}

func TestGetProductsBySupplierID_RejectsMalformedSupplierID(t *testing.T) {
	ctrl := NewProductController(nil)
	router := gin.New()
	router.POST("/getProductsBySupplierId", ctrl.GetProductsBySupplierID)

	w := performRequest(router, http.MethodPost, "/getProductsBySupplierId", `{"supplier_id":"bad"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid supplier_id")
}
