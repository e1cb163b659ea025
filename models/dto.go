package models

type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Mobile   string `json:"mobile" form:"mobile" binding:"omitempty"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=user supplier admin"`
	Address  string `json:"address" form:"address" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type FirebaseTokenRequest struct {
	FirebaseToken string `json:"firebase_token" binding:"required"`
}

type FavoriteProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type AddTransactionRequest struct {
	OrderID       string  `json:"order_id" binding:"required"`
	PaymentID     string  `json:"payment_id"`
	PaymentStatus string  `json:"payment_status"`
	TotalAmount   float64 `json:"total_amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	UserName      string  `json:"user_name"`
}

type TransactionListRequest struct {
	Page   int    `json:"page"`
	Search string `json:"search"`
	SortBy string `json:"sortBy"`
	UserID string `json:"user_id"`
}

type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                   `json:"payment_method" binding:"required"`
}

type UpdateOrderItemStatusRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type DeleteProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type EditProductRequest struct {
	ProductID   string `json:"product_id" form:"product_id" binding:"required"`
	EnglishName string `json:"english_name" form:"english_name"`
	LocalName   string `json:"local_name" form:"local_name"`
	OtherName   string `json:"other_name" form:"other_name"`
	CategoryID  string `json:"category_id" form:"category_id"`
	Price       string `json:"price" form:"price"`
	Quantity    string `json:"quantity" form:"quantity"`
	ProductType string `json:"product_type" form:"product_type"`
	ProductSize string `json:"product_size" form:"product_size"`
	Description string `json:"description" form:"description"`
}

type SearchProductsRequest struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
}

type ProductsByCategoryRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Page       int    `json:"page"`
}

type ProductsBySupplierRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	Page       int    `json:"page"`
}
