package controllers

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"plant-market/config"
	"plant-market/libs"
	"plant-market/models"
	"plant-market/repositories"
	"plant-market/services"
	"plant-market/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SupplierController struct {
	users    *repositories.UserRepository
	products *repositories.ProductRepository
	service  *services.ProductService
}

func NewSupplierController(users *repositories.UserRepository, products *repositories.ProductRepository, service *services.ProductService) *SupplierController {
	return &SupplierController{users: users, products: products, service: service}
}

// mirrorUpload pushes a stored asset to the Cloudinary mirror when one is
// configured. Best-effort only.
func mirrorUpload(relPath, folder string) {
	if !libs.CloudinaryEnabled() {
		return
	}
	localPath := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(relPath, "uploads/"))
	if url, err := libs.UploadToCloudinary(localPath, folder); err != nil {
		log.Printf("Cloudinary mirror failed for %s: %v", relPath, err)
	} else {
		log.Printf("Mirrored %s to %s", relPath, url)
	}
}

// UpdateSupplierProfileData godoc
// @Summary Update supplier profile
// @Description Partial multipart update; pin codes union into the existing set and the old profile picture is removed
// @Tags Supplier
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
// @Router /supplier/updateSupplierProfileData [put]
func (ctrl *SupplierController) UpdateSupplierProfileData(c *gin.Context) {
	supplierID, ok := currentUserID(c)
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

	existing, err := ctrl.users.FindByID(ctx, supplierID)
	if err != nil {
		c.JSON(404, gin.H{"message": "Supplier not found", "status": false})
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
		// Old picture removal and mirroring never block the update.
		utils.DeleteFile(existing.ProfilePic)
		mirrorUpload(relPath, "profiles")
	}

	user, err := ctrl.users.UpdateProfile(ctx, supplierID, services.BuildProfileUpdate(input))
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Profile updated successfully", "status": true, "user": user})
}

// GetSupplierProfileData godoc
// @Summary Get supplier profile
// @Tags Supplier
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /supplier/getSupplierProfileData [get]
func (ctrl *SupplierController) GetSupplierProfileData(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	user, err := ctrl.users.FindByID(requestContext(c), supplierID)
	if err != nil {
		c.JSON(404, gin.H{"message": "Supplier not found", "status": false})
		return
	}

	c.JSON(200, gin.H{"status": true, "user": user})
}

// AddProduct godoc
// @Summary Add a product
// @Description Creates a product after checking every declared pin code against the supplier's serviceable set
// @Tags Supplier
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param english_name formData string true "English name"
// @Param local_name formData string false "Local name"
// @Param other_name formData string false "Other name"
// @Param category_id formData string false "Category ID"
// @Param price formData number true "Price"
// @Param quantity formData int true "Quantity"
// @Param product_type formData string false "indoor or outdoor"
// @Param product_size formData string false "small, medium or large"
// @Param description formData string false "Description"
// @Param pin_code formData string false "Comma-separated pin codes"
// @Param product_image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /supplier/addProduct [post]
func (ctrl *SupplierController) AddProduct(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	englishName := c.PostForm("english_name")
	if englishName == "" {
		c.JSON(400, gin.H{"message": "english_name is required", "status": false})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"message": "Invalid price", "status": false})
		return
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "0"))
	if err != nil || quantity < 0 {
		c.JSON(400, gin.H{"message": "Invalid quantity", "status": false})
		return
	}

	pins, err := utils.ParsePinCodes(c.PostForm("pin_code"))
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error(), "status": false})
		return
	}

	product := &models.Product{
		EnglishName: englishName,
		LocalName:   c.PostForm("local_name"),
		OtherName:   c.PostForm("other_name"),
		Price:       price,
		Quantity:    quantity,
		ProductType: c.PostForm("product_type"),
		ProductSize: c.PostForm("product_size"),
		Description: c.PostForm("description"),
		PinCode:     utils.NormalizePinCodes(pins),
	}

	if categoryHex := c.PostForm("category_id"); categoryHex != "" {
		categoryID, err := primitive.ObjectIDFromHex(categoryHex)
		if err != nil {
			c.JSON(400, gin.H{"message": "Invalid category_id", "status": false})
			return
		}
		product.CategoryID = categoryID
	}

	if fileHeader, err := c.FormFile("product_image"); err == nil {
		relPath, err := utils.UploadFile(c, fileHeader, "product")
		if err != nil {
			c.JSON(400, gin.H{"message": err.Error(), "status": false})
			return
		}
		product.ProductImage = relPath
		mirrorUpload(relPath, "product")
	}

	if err := ctrl.service.Create(requestContext(c), supplierID, product); err != nil {
		var pinErr *services.PinCodeError
		switch {
		case errors.As(err, &pinErr):
			c.JSON(400, gin.H{"message": pinErr.Error(), "status": false})
		case errors.Is(err, services.ErrSupplierNotFound):
			c.JSON(404, gin.H{"message": "Supplier not found", "status": false})
		default:
			c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		}
		return
	}

	c.JSON(201, gin.H{"message": "Product added successfully", "status": true, "product": product})
}

// GetProducts godoc
// @Summary List the supplier's own products
// @Tags Supplier
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.Response
// @Router /supplier/getProducts [get]
func (ctrl *SupplierController) GetProducts(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	page := pageQuery(c)
	products, total, err := ctrl.products.FindBySupplier(requestContext(c), supplierID, page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	productPageResponse(c, products, total, page)
}

// GetPincode godoc
// @Summary Get the supplier's serviceable pin codes
// @Tags Supplier
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /supplier/getPincode [get]
func (ctrl *SupplierController) GetPincode(c *gin.Context) {
	supplierID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	user, err := ctrl.users.FindByID(requestContext(c), supplierID)
	if err != nil {
		c.JSON(404, gin.H{"message": "Supplier not found", "status": false})
		return
	}

	c.JSON(200, gin.H{"status": true, "pin_code": user.PinCode})
}
