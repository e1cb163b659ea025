package controllers

import (
	"plant-market/repositories"
	"plant-market/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	transactions *repositories.TransactionRepository
}

func NewNotificationController(transactions *repositories.TransactionRepository) *NotificationController {
	return &NotificationController{transactions: transactions}
}

// GetNotifications godoc
// @Summary List the caller's order notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} models.Response
// @Router /notifications/getNotifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Unauthorized", "status": false})
		return
	}

	page := pageQuery(c)
	notifications, total, err := ctrl.transactions.FindNotificationsByUser(requestContext(c), userID, page, services.PageSize)
	if err != nil {
		c.JSON(500, gin.H{"message": "Internal Server Error", "status": false})
		return
	}

	c.JSON(200, gin.H{
		"status":             true,
		"notifications":      notifications,
		"totalNotifications": total,
		"totalPages":         services.TotalPages(total, services.PageSize),
		"currentPage":        page,
	})
}
