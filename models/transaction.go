package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrderID       primitive.ObjectID `bson:"order_id" json:"order_id"`
	PaymentID     string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	PaymentStatus string             `bson:"payment_status" json:"payment_status"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	Status        string             `bson:"status" json:"status"`
	Items         []TransactionItem  `bson:"items" json:"items"`
	UserName      string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// TransactionItem freezes the amount at transaction time so later price
// changes to the product never affect historical records.
type TransactionItem struct {
	ProductID  primitive.ObjectID `bson:"product_id" json:"product_id"`
	SupplierID primitive.ObjectID `bson:"supplier_id" json:"supplier_id"`
	Amount     float64            `bson:"amount" json:"amount"`
}
