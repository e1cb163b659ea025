package controllers

import (
	"errors"
	"strconv"

	"plant-market/models"
	"plant-market/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionController struct {
	service *services.TransactionService
}

func NewTransactionController(service *services.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

// pageQuery parses the page query parameter, defaulting to 1 when absent
// or unparseable. Out-of-range values are passed through untouched; the
// repository floors the resulting skip at zero.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		return services.PageSize
	}
	return limit
}

func transactionPageResponse(c *gin.Context, message string, page *models.TransactionPage) {
	c.JSON(200, gin.H{
		"message":           message,
		"status":            true,
		"transactions":      page.Transactions,
		"totalTransactions": page.TotalTransactions,
		"totalPages":        page.TotalPages,
		"currentPage":       page.CurrentPage,
	})
}

// AddTransaction godoc
// @Summary Record a payment transaction
// @Description Creates a transaction for an order and notifies each supplier involved
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddTransactionRequest true "Transaction Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/addTransaction [post]
func (ctrl *TransactionController) AddTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid order_id", "status": false})
		return
	}

	txn, err := ctrl.service.Add(requestContext(c), userID, orderID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(404, gin.H{"message": "Order not found", "status": false})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(404, gin.H{"message": "Product not found", "status": false})
		default:
			c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		}
		return
	}

	c.JSON(201, gin.H{
		"message":     "Transaction added successfully",
		"status":      true,
		"transaction": txn,
	})
}

// GetAllTransactions godoc
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TransactionListRequest true "List Request"
// @Success 200 {object} models.TransactionPage
// @Router /transactions/getAllTransactions [post]
func (ctrl *TransactionController) GetAllTransactions(c *gin.Context) {
	var req models.TransactionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	page, err := ctrl.service.Page(requestContext(c),
		req.Page, services.PageSize, req.SortBy, "")
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	transactionPageResponse(c, "Transactions fetched successfully", page)
}

// GetAllTransactionsByUser godoc
// @Summary List the caller's transactions
// @Description Paginated transactions scoped to the authenticated user, enriched with user and product details
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TransactionListRequest true "List Request"
// @Success 200 {object} models.TransactionPage
// @Router /transactions/getAllTransactionsByUser [post]
func (ctrl *TransactionController) GetAllTransactionsByUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.TransactionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	page, err := ctrl.service.ScopedPage(requestContext(c),
		"user_id", userID, req.Page, req.Search, req.SortBy)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	transactionPageResponse(c, "Transactions fetched successfully", page)
}

// GetAllTransactionsBySupplier godoc
// @Summary List transactions touching the supplier's products
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TransactionListRequest true "List Request"
// @Success 200 {object} models.TransactionPage
// @Router /transactions/getAllTransactionsBySupplier [post]
func (ctrl *TransactionController) GetAllTransactionsBySupplier(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.TransactionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	page, err := ctrl.service.ScopedPage(requestContext(c),
		"items.supplier_id", supplierID, req.Page, req.Search, req.SortBy)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	transactionPageResponse(c, "Transactions fetched successfully", page)
}

// GetAllTransactionsInAdmin godoc
// @Summary Admin transaction listing
// @Description Joined view over transactions, users, orders and suppliers with search across user_name, order_id and supplier_name
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search term"
// @Param sortBy query string false "Sort field"
// @Param order query string false "asc or desc"
// @Success 200 {object} models.TransactionPage
// @Router /transactions/getAllTransactionsInAdmin [get]
func (ctrl *TransactionController) GetAllTransactionsInAdmin(c *gin.Context) {
	page, err := ctrl.service.AdminPage(requestContext(c),
		pageQuery(c), limitQuery(c), c.Query("search"), c.Query("sortBy"), c.Query("order"))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	transactionPageResponse(c, "Transactions fetched successfully", page)
}

// GetAllCodTransactionsInAdmin godoc
// @Summary Admin COD listing
// @Description Delivered cash-on-delivery order items joined with customer and supplier details
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search term"
// @Success 200 {object} models.TransactionPage
// @Router /transactions/getAllCodTransactionsInAdmin [get]
func (ctrl *TransactionController) GetAllCodTransactionsInAdmin(c *gin.Context) {
	page, err := ctrl.service.CodPage(requestContext(c),
		pageQuery(c), limitQuery(c), c.Query("search"))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	transactionPageResponse(c, "COD transactions fetched successfully", page)
}
