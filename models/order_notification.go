package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderNotification is written once as a side effect of a transaction or an
// order status change and never updated.
type OrderNotification struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID   `bson:"user_id" json:"user_id"`
	OrderID     primitive.ObjectID   `bson:"order_id" json:"order_id"`
	Message     string               `bson:"message,omitempty" json:"message,omitempty"`
	Title       string               `bson:"title,omitempty" json:"title,omitempty"`
	Type        string               `bson:"type,omitempty" json:"type,omitempty"`
	TotalAmount float64              `bson:"totalamount" json:"totalamount"`
	SupplierIDs []primitive.ObjectID `bson:"supplier_ids,omitempty" json:"supplier_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}
