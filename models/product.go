package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	EnglishName  string             `bson:"english_name" json:"english_name"`
	LocalName    string             `bson:"local_name,omitempty" json:"local_name,omitempty"`
	OtherName    string             `bson:"other_name,omitempty" json:"other_name,omitempty"`
	ProductImage string             `bson:"product_image,omitempty" json:"product_image,omitempty"`
	CategoryID   primitive.ObjectID `bson:"category_id" json:"category_id"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	ProductType  string             `bson:"product_type" json:"product_type"`
	ProductSize  string             `bson:"product_size" json:"product_size"`
	Description  string             `bson:"description" json:"description"`
	SupplierID   primitive.ObjectID `bson:"supplier_id" json:"supplier_id"`
	PinCode      []int              `bson:"pin_code" json:"pin_code"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

var ProductTypes = []string{"indoor", "outdoor"}

var ProductSizes = []string{"small", "medium", "large"}
