package controllers

import (
	"plant-market/models"
	"plant-market/repositories"
	"plant-market/services"
	"plant-market/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// UpdateCustomerProfileData godoc
// @Summary Update customer profile
// @Description Partial multipart update for customer accounts
// @Tags Users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string false "Full name"
// @Param mobile formData string false "Mobile"
// @Param email formData string false "Email"
// @Param address formData string false "Address"
// @Param pin_code formData string false "Comma-separated pin codes"
// @Param profile_pic formData file false "Profile picture"
// @Success 200 {object} models.Response
// @Router /users/updateCustomerProfileData [put]
func (ctrl *UserController) UpdateCustomerProfileData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	pins, err := utils.ParsePinCodes(c.PostForm("pin_code"))
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error(), "status": false})
		return
	}

	ctx := requestContext(c)

	existing, err := ctrl.users.FindByID(ctx, userID)
	if err != nil {
		c.JSON(404, gin.H{"message": "User not found", "status": false})
		return
	}

	input := services.ProfileUpdateInput{
		FullName: c.PostForm("full_name"),
		Mobile:   c.PostForm("mobile"),
		Email:    c.PostForm("email"),
		Address:  c.PostForm("address"),
		PinCodes: pins,
	}

	if fileHeader, err := c.FormFile("profile_pic"); err == nil {
		relPath, err := utils.UploadFile(c, fileHeader, "profiles")
		if err != nil {
			c.JSON(400, gin.H{"message": err.Error(), "status": false})
			return
		}
		input.ProfilePic = relPath
		utils.DeleteFile(existing.ProfilePic)
		mirrorUpload(relPath, "profiles")
	}

	user, err := ctrl.users.UpdateProfile(ctx, userID, services.BuildProfileUpdate(input))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Profile updated successfully", "status": true, "user": user})
}

// AddFavoriteProduct godoc
// @Summary Add a product to favorites
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.FavoriteProductRequest true "Favorite Request"
// @Success 200 {object} models.Response
// @Router /users/addFavoriteProduct [post]
func (ctrl *UserController) AddFavoriteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.FavoriteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	if err := ctrl.users.AddFavorite(requestContext(c), userID, productID); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Product added to favorites", "status": true})
}

// RemoveFavoriteProduct godoc
// @Summary Remove a product from favorites
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.FavoriteProductRequest true "Favorite Request"
// @Success 200 {object} models.Response
// @Router /users/removeFavoriteProduct [post]
func (ctrl *UserController) RemoveFavoriteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.FavoriteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	if err := ctrl.users.RemoveFavorite(requestContext(c), userID, productID); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Product removed from favorites", "status": true})
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart Request"
// @Success 200 {object} models.Response
// @Router /users/addToCart [post]
func (ctrl *UserController) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid product_id", "status": false})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := models.CartItem{ProductID: productID, Quantity: quantity}
	if err := ctrl.users.AddToCart(requestContext(c), userID, item); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Product added to cart", "status": true})
}

// RegisterFirebaseToken godoc
// @Summary Register a device token for push notifications
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.FirebaseTokenRequest true "Token Request"
// @Success 200 {object} models.Response
// @Router /users/registerFirebaseToken [post]
func (ctrl *UserController) RegisterFirebaseToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.FirebaseTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	if err := ctrl.users.SetFirebaseToken(requestContext(c), userID, req.FirebaseToken); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Firebase token registered", "status": true})
}

// GetAllSuppliersInAdmin godoc
// @Summary Admin supplier listing
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search term"
// @Success 200 {object} models.Response
// @Router /users/getAllSuppliersInAdmin [get]
func (ctrl *UserController) GetAllSuppliersInAdmin(c *gin.Context) {
	page := pageQuery(c)
	suppliers, total, err := ctrl.users.FindSuppliers(requestContext(c), c.Query("search"), page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{
		"status":         true,
		"suppliers":      suppliers,
		"totalSuppliers": total,
		"totalPages":     services.TotalPages(total, services.PageSize),
		"currentPage":    page,
	})
}
