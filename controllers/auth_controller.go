package controllers

import (
	"context"
	"log"

	"plant-market/models"
	"plant-market/repositories"
	"plant-market/services"
	"plant-market/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController(users *repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}

// currentUserID reads the authenticated user id placed into the context by
// the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// sendOTPMail is best-effort: a missing SMTP config or delivery failure is
// logged and never blocks the caller.
func sendOTPMail(email, otp string) {
	mailer, err := models.NewEmailService()
	if err != nil {
		log.Printf("Email service unavailable: %v", err)
		return
	}
	if err := mailer.SendOTPEmail(email, otp); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", email, err)
	}
}

// Register godoc
// @Summary Register new user
// @Description Register a customer or supplier account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /users/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	exists, err := ctrl.users.EmailExists(ctx, req.Email)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	if exists {
		c.JSON(400, gin.H{"message": "Email already exists", "status": false})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hash,
		Role:     role,
		Address:  req.Address,
	}

	if err := ctrl.users.Insert(ctx, user); err != nil {
		c.JSON(500, gin.H{"message": "Registration failed", "status": false})
		return
	}

	if otp, err := services.GenerateOTP(); err == nil {
		if err := services.StoreOTP(ctx, req.Email, otp); err != nil {
			log.Printf("Failed to store OTP for %s: %v", req.Email, err)
		} else {
			sendOTPMail(req.Email, otp)
		}
	}

	token, _ := utils.GenerateToken(user.ID.Hex(), user.Email, user.Role)

	c.JSON(201, gin.H{
		"message": "Registration successful",
		"status":  true,
		"token":   token,
		"user": gin.H{
			"_id":       user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /users/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	user, err := ctrl.users.FindByEmail(requestContext(c), req.Email)
	if err != nil {
		c.JSON(401, gin.H{"message": "Invalid credentials", "status": false})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"message": "Invalid credentials", "status": false})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{
		"message": "Login successful",
		"status":  true,
		"token":   token,
		"user": gin.H{
			"_id":         user.ID,
			"full_name":   user.FullName,
			"email":       user.Email,
			"role":        user.Role,
			"profile_pic": user.ProfilePic,
		},
	})
}

// VerifyOTP godoc
// @Summary Verify registration OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} models.Response
// @Router /users/verifyOtp [post]
func (ctrl *AuthController) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	ok, err := services.CheckOTP(ctx, req.Email, req.OTP)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	if !ok {
		c.JSON(400, gin.H{"message": "Invalid or expired OTP", "status": false})
		return
	}

	if err := ctrl.users.MarkVerified(ctx, req.Email); err != nil {
		c.JSON(404, gin.H{"message": "User not found", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "OTP verified", "status": true})
}

// ResendOTP godoc
// @Summary Resend OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResendOTPRequest true "Resend Request"
// @Success 200 {object} models.Response
// @Router /users/resendOTP [post]
func (ctrl *AuthController) ResendOTP(c *gin.Context) {
	var req models.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	if _, err := ctrl.users.FindByEmail(ctx, req.Email); err != nil {
		c.JSON(404, gin.H{"message": "User not found", "status": false})
		return
	}

	otp, err := services.GenerateOTP()
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	if err := services.StoreOTP(ctx, req.Email, otp); err != nil {
		c.JSON(500, gin.H{"message": "OTP service unavailable", "status": false})
		return
	}
	sendOTPMail(req.Email, otp)

	c.JSON(200, gin.H{"message": "OTP sent", "status": true})
}

// ForgetPassword godoc
// @Summary Reset password with OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ForgetPasswordRequest true "Reset Request"
// @Success 200 {object} models.Response
// @Router /users/forgetPassword [put]
func (ctrl *AuthController) ForgetPassword(c *gin.Context) {
	var req models.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	ok, err := services.CheckOTP(ctx, req.Email, req.OTP)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}
	if !ok {
		c.JSON(400, gin.H{"message": "Invalid or expired OTP", "status": false})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	if err := ctrl.users.UpdatePasswordByEmail(ctx, req.Email, hash); err != nil {
		c.JSON(404, gin.H{"message": "User not found", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Password updated", "status": true})
}

// ChangePassword godoc
// @Summary Change password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password Request"
// @Success 200 {object} models.Response
// @Router /users/ChangePassword [put]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input", "status": false})
		return
	}

	ctx := requestContext(c)

	user, err := ctrl.users.FindByID(ctx, userID)
	if err != nil {
		c.JSON(404, gin.H{"message": "User not found", "status": false})
		return
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		c.JSON(400, gin.H{"message": "Invalid old password", "status": false})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	if err := ctrl.users.UpdatePassword(ctx, userID, hash); err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{"message": "Password changed", "status": true})
}
