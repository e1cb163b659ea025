package routes

import (
	"plant-market/config"
	"plant-market/controllers"
	"plant-market/middleware"
	"plant-market/repositories"
	"plant-market/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes wires repositories, services and controllers and registers
// every route group on the router.
func SetupRoutes(router *gin.Engine, db *mongo.Database) {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	productService := services.NewProductService(productRepo, userRepo)
	transactionService := services.NewTransactionService(transactionRepo)

	authController := controllers.NewAuthController(userRepo)
	userController := controllers.NewUserController(userRepo)
	supplierController := controllers.NewSupplierController(userRepo, productRepo, productService)
	productController := controllers.NewProductController(productRepo)
	orderController := controllers.NewOrderController(orderRepo, productRepo)
	transactionController := controllers.NewTransactionController(transactionService)
	notificationController := controllers.NewNotificationController(transactionRepo)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", config.AppConfig.UploadDir)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/verifyOtp", authController.VerifyOTP)
		users.POST("/resendOTP", authController.ResendOTP)
		users.PUT("/forgetPassword", authController.ForgetPassword)
		users.PUT("/ChangePassword", middleware.AuthMiddleware(), authController.ChangePassword)

		users.PUT("/updateCustomerProfileData", middleware.AuthMiddleware(), userController.UpdateCustomerProfileData)
		users.POST("/addFavoriteProduct",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("user"),
			userController.AddFavoriteProduct)
		users.POST("/removeFavoriteProduct",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("user"),
			userController.RemoveFavoriteProduct)
		users.POST("/addToCart",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("user"),
			userController.AddToCart)
		users.POST("/searchProducts",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("user"),
			productController.SearchProducts)
		users.POST("/getProductByCategory_id",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("user"),
			productController.GetProductsByCategoryID)
		users.POST("/registerFirebaseToken", middleware.AuthMiddleware(), userController.RegisterFirebaseToken)
		users.GET("/getAllSuppliersInAdmin",
			middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"),
			userController.GetAllSuppliersInAdmin)
	}

	supplier := api.Group("/supplier", middleware.AuthMiddleware())
	{
		supplier.PUT("/updateSupplierProfileData",
			middleware.RoleMiddleware("supplier"),
			supplierController.UpdateSupplierProfileData)
		supplier.GET("/getSupplierProfileData",
			middleware.RoleMiddleware("supplier"),
			supplierController.GetSupplierProfileData)
		supplier.POST("/addProduct",
			middleware.RoleMiddleware("supplier", "admin"),
			supplierController.AddProduct)
		supplier.GET("/getProducts",
			middleware.RoleMiddleware("supplier"),
			supplierController.GetProducts)
		supplier.GET("/getPincode",
			middleware.RoleMiddleware("supplier"),
			supplierController.GetPincode)
	}

	products := api.Group("/products", middleware.AuthMiddleware())
	{
		products.GET("/getAllProducts", productController.GetAllProducts)
		products.GET("/getProductById/:id",
			middleware.RoleMiddleware("supplier", "admin"),
			productController.GetProductByID)
		products.POST("/getProductsBySupplierId", productController.GetProductsBySupplierID)
		products.POST("/editProduct",
			middleware.RoleMiddleware("supplier", "admin"),
			productController.EditProduct)
		products.POST("/deleteProduct",
			middleware.RoleMiddleware("supplier", "admin"),
			productController.DeleteProduct)
	}

	orders := api.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("/createOrder",
			middleware.RoleMiddleware("user"),
			orderController.CreateOrder)
		orders.GET("/getOrdersBySupplierId",
			middleware.RoleMiddleware("supplier", "admin"),
			orderController.GetOrdersBySupplierID)
		orders.PUT("/updateOrderItemStatus",
			middleware.RoleMiddleware("supplier"),
			orderController.UpdateOrderItemStatus)
	}

	transactions := api.Group("/transactions", middleware.AuthMiddleware())
	{
		transactions.POST("/addTransaction", transactionController.AddTransaction)
		transactions.POST("/getAllTransactions", transactionController.GetAllTransactions)
		transactions.POST("/getAllTransactionsByUser", transactionController.GetAllTransactionsByUser)
		transactions.POST("/getAllTransactionsBySupplier",
			middleware.RoleMiddleware("supplier", "admin"),
			transactionController.GetAllTransactionsBySupplier)
		transactions.GET("/getAllTransactionsInAdmin",
			middleware.RoleMiddleware("admin"),
			transactionController.GetAllTransactionsInAdmin)
		transactions.GET("/getAllCodTransactionsInAdmin",
			middleware.RoleMiddleware("admin"),
			transactionController.GetAllCodTransactionsInAdmin)
	}

	notifications := api.Group("/notifications", middleware.AuthMiddleware())
	{
		notifications.GET("/getNotifications", notificationController.GetNotifications)
	}
}
