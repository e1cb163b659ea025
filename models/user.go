package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	FullName      string               `bson:"full_name" json:"full_name"`
	Email         string               `bson:"email" json:"email"`
	Mobile        string               `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Password      string               `bson:"password" json:"-"`
	Role          string               `bson:"role" json:"role"`
	Address       string               `bson:"address,omitempty" json:"address,omitempty"`
	PinCode       []int                `bson:"pin_code,omitempty" json:"pin_code,omitempty"`
	ProfilePic    string               `bson:"profile_pic,omitempty" json:"profile_pic,omitempty"`
	FirebaseToken string               `bson:"firebase_token,omitempty" json:"-"`
	Favorites     []primitive.ObjectID `bson:"favorites,omitempty" json:"favorites,omitempty"`
	Cart          []CartItem           `bson:"cart,omitempty" json:"cart,omitempty"`
	Verified      bool                 `bson:"verified" json:"verified"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
