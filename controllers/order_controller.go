package controllers

import (
	"errors"
	"fmt"
	"time"

	"plant-market/models"
	"plant-market/repositories"
	"plant-market/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderController struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderController(orders *repositories.OrderRepository, products *repositories.ProductRepository) *OrderController {
	return &OrderController{orders: orders, products: products}
}

// CreateOrder godoc
// @Summary Create an order
// @Description Resolves each item's product to capture its supplier and current price, then stores the order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/createOrder [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
			return
		}

		product, err := ctrl.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(404, gin.H{"message": "Product not found", "status": false})
				return
			}
			c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
			return
		}

		items = append(items, models.OrderItem{
			ProductID:  productID,
			SupplierID: product.SupplierID,
			Quantity:   item.Quantity,
			Status:     "pending",
		})
		totalAmount += float64(item.Quantity) * product.Price
	}

	order := &models.Order{
		OrderID:       fmt.Sprintf("ORD-%d", time.Now().Unix()),
		UserID:        userID,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   totalAmount,
	}

	if err := ctrl.orders.Insert(ctx, order); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(201, gin.H{"message": "Order created successfully", "status": true, "order": order})
}

// GetOrdersBySupplierID godoc
// @Summary List the supplier's order items
// @Description One row per order line item belonging to the supplier, joined with product and customer details
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.Response
// @Router /orders/getOrdersBySupplierId [get]
func (ctrl *OrderController) GetOrdersBySupplierID(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	ctx := requestContext(c)
	page := pageQuery(c)

	orders, err := ctrl.orders.Aggregate(ctx,
		repositories.SupplierOrdersPipeline(supplierID, page, services.PageSize))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	total, err := ctrl.orders.Count(ctx,
		repositories.SupplierOrdersCountPipeline(supplierID))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{
		"status":      true,
		"orders":      orders,
		"totalOrders": total,
		"totalPages":  services.TotalPages(total, services.PageSize),
		"currentPage": page,
	})
}

// UpdateOrderItemStatus godoc
// @Summary Update one line item's delivery status
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateOrderItemStatusRequest true "Status Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/updateOrderItemStatus [put]
func (ctrl *OrderController) UpdateOrderItemStatus(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.UpdateOrderItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid order_id", "status": false})
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	err = ctrl.orders.UpdateItemStatus(requestContext(c), orderID, productID, supplierID, req.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(404, gin.H{"message": "Order item not found", "status": false})
			return
		}
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Order status updated", "status": true})
}
