package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"plant-market/models"
	"plant-market/repositories"
	"plant-market/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSupplierNotFound = errors.New("supplier not found")

// PinCodeError reports product pin codes outside the supplier's
// serviceable set. The offending codes are listed in the message.
type PinCodeError struct {
	Invalid []int
}

func (e *PinCodeError) Error() string {
	codes := make([]string, len(e.Invalid))
	for i, pin := range e.Invalid {
		codes[i] = strconv.Itoa(pin)
	}
	return fmt.Sprintf("Invalid pin codes: %s", strings.Join(codes, ", "))
}

type ProductService struct {
	products *repositories.ProductRepository
	users    *repositories.UserRepository
}

func NewProductService(products *repositories.ProductRepository, users *repositories.UserRepository) *ProductService {
	return &ProductService{products: products, users: users}
}

// Create validates the pin-code invariant before any write: every code the
// product declares must already be in the owning supplier's set, otherwise
// nothing is stored and the offending codes are reported.
func (s *ProductService) Create(ctx context.Context, supplierID primitive.ObjectID, product *models.Product) error {
	supplier, err := s.users.FindByID(ctx, supplierID)
	if err != nil {
		return ErrSupplierNotFound
	}

	if invalid := utils.InvalidPinCodes(product.PinCode, supplier.PinCode); len(invalid) > 0 {
		return &PinCodeError{Invalid: invalid}
	}

	product.SupplierID = supplierID
	return s.products.Insert(ctx, product)
}

// BuildProductUpdate turns the optional edit fields into a partial $set
// document. Only supplied fields are included; everything else keeps its
// prior value.
func BuildProductUpdate(req models.EditProductRequest) (bson.M, error) {
	set := bson.M{}
	if req.EnglishName != "" {
		set["english_name"] = req.EnglishName
	}
	if req.LocalName != "" {
		set["local_name"] = req.LocalName
	}
	if req.OtherName != "" {
		set["other_name"] = req.OtherName
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Price != "" {
		price, err := strconv.ParseFloat(req.Price, 64)
		if err != nil || price < 0 {
			return nil, errors.New("invalid price")
		}
		set["price"] = price
	}
	if req.Quantity != "" {
		quantity, err := strconv.Atoi(req.Quantity)
		if err != nil || quantity < 0 {
			return nil, errors.New("invalid quantity")
		}
		set["quantity"] = quantity
	}
	if req.ProductType != "" {
		if !contains(models.ProductTypes, req.ProductType) {
			return nil, errors.New("invalid product_type")
		}
		set["product_type"] = req.ProductType
	}
	if req.ProductSize != "" {
		if !contains(models.ProductSizes, req.ProductSize) {
			return nil, errors.New("invalid product_size")
		}
		set["product_size"] = req.ProductSize
	}
	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category_id")
		}
		set["category_id"] = categoryID
	}
	return set, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
