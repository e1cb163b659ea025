package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID       string             `bson:"order_id" json:"order_id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items         []OrderItem        `bson:"items" json:"items"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

type OrderItem struct {
	ProductID  primitive.ObjectID `bson:"product_id" json:"product_id"`
	SupplierID primitive.ObjectID `bson:"supplier_id" json:"supplier_id"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Status     string             `bson:"status" json:"status"`
}
