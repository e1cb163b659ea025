package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	ctrl := NewOrderController(nil, nil)
	router := gin.New()
	router.POST("/createOrder", asUser(primitive.NewObjectID().Hex()), ctrl.CreateOrder)

	w := performRequest(router, http.MethodPost, "/createOrder", `{"items":[],"payment_method":"cod"}`)
	assert.Equal(t, 400, w.Code)
}

func TestUpdateOrderItemStatus_RejectsMalformedIDs(t *testing.T) {
	ctrl := NewOrderController(nil, nil)
	router := gin.New()
	router.PUT("/updateOrderItemStatus", asUser(primitive.NewObjectID().Hex()), ctrl.UpdateOrderItemStatus)

	body := `{"order_id":"bad","product_id":"68b1f0aa0000000000000001","status":"delivered"}`
	w := performRequest(router, http.MethodPut, "/updateOrderItemStatus", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid order_id")

	body = `{"order_id":"68b1f0aa0000000000000001","product_id":"bad","status":"delivered"}`
	w = performRequest(router, http.MethodPut, "/updateOrderItemStatus", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product_id")
}
