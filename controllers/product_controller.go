package controllers

import (
	"errors"

	"plant-market/models"
	"plant-market/repositories"
	"plant-market/services"
	"plant-market/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

func productPageResponse(c *gin.Context, products []models.Product, total int64, page int) {
	c.JSON(200, gin.H{
		"status":        true,
		"products":      products,
		"totalProducts": total,
		"totalPages":    services.TotalPages(total, services.PageSize),
		"page":          page,
	})
}

// GetAllProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.Response
// @Router /products/getAllProducts [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page := pageQuery(c)
	products, total, err := ctrl.products.FindAll(requestContext(c), page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	productPageResponse(c, products, total, page)
}

// GetProductByID godoc
// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/getProductById/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product id", "status": false})
		return
	}

	product, err := ctrl.products.FindByID(requestContext(c), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(404, gin.H{"message": "Product not found", "status": false})
			return
		}
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"status": true, "product": product})
}

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive substring search over the name fields and description
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.SearchProductsRequest true "Search Request"
// @Success 200 {object} models.Response
// @Router /users/searchProducts [post]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	var req models.SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	products, total, err := ctrl.products.Search(requestContext(c), req.Search, req.Page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	productPageResponse(c, products, total, req.Page)
}

// GetProductsBySupplierID godoc
// @Summary List products of one supplier
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.ProductsBySupplierRequest true "Supplier Request"
// @Success 200 {object} models.Response
// @Router /products/getProductsBySupplierId [post]
func (ctrl *ProductController) GetProductsBySupplierID(c *gin.Context) {
	var req models.ProductsBySupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(req.SupplierID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid supplier_id", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	products, total, err := ctrl.products.FindBySupplier(requestContext(c), supplierID, req.Page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	productPageResponse(c, products, total, req.Page)
}

// GetProductsByCategoryID godoc
// @Summary List products of one category
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.ProductsByCategoryRequest true "Category Request"
// @Success 200 {object} models.Response
// @Router /users/getProductByCategory_id [post]
func (ctrl *ProductController) GetProductsByCategoryID(c *gin.Context) {
	var req models.ProductsByCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid category_id", "status": false})
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	products, total, err := ctrl.products.FindByCategory(requestContext(c), categoryID, req.Page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	productPageResponse(c, products, total, req.Page)
}

// EditProduct godoc
// @Summary Edit a product
// @Description Partial update; only the supplied fields change
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.EditProductRequest true "Edit Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/editProduct [post]
func (ctrl *ProductController) EditProduct(c *gin.Context) {
	var req models.EditProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	set, err := services.BuildProductUpdate(req)
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error(), "status": false})
		return
	}

	if err := ctrl.products.Update(requestContext(c), productID, set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(404, gin.H{"message": "Product not found", "status": false})
			return
		}
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	product, err := ctrl.products.FindByID(requestContext(c), productID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Product updated successfully", "status": true, "product": product})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.DeleteProductRequest true "Delete Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/deleteProduct [post]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	var req models.DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	ctx := requestContext(c)

	product, err := ctrl.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(404, gin.H{"message": "Product not found", "status": false})
			return
		}
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	if err := ctrl.products.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(404, gin.H{"message": "Product not found", "status": false})
			return
		}
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	// Stored image cleanup never blocks the delete.
	if product.ProductImage != "" {
		utils.DeleteFile(product.ProductImage)
	}

	c.JSON(200, gin.H{"message": "Product deleted successfully", "status": true})
}
