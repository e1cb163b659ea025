package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects the authenticated user id the way the auth middleware does.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddTransaction_RequiresAuthenticatedUser(t *testing.T) {
	ctrl := NewTransactionController(nil)
	router := gin.New()
	router.POST("/addTransaction", ctrl.AddTransaction)

	w := performRequest(router, http.MethodPost, "/addTransaction", `{}`)
	assert.Equal(t, 401, w.Code)
}

func TestAddTransaction_RejectsInvalidBody(t *testing.T) {
	ctrl := NewTransactionController(nil)
	router := gin.New()
	router.POST("/addTransaction", asUser(primitive.NewObjectID().Hex()), ctrl.AddTransaction)

	w := performRequest(router, http.MethodPost, "/addTransaction", `{"order_id":""}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}

func TestAddTransaction_RejectsMalformedOrderID(t *testing.T) {
	ctrl := NewTransactionController(nil)
	router := gin.New()
	router.POST("/addTransaction", asUser(primitive.NewObjectID().Hex()), ctrl.AddTransaction)

	body := `{"order_id":"not-hex","total_amount":100,"payment_method":"cod","status":"completed"}`
	w := performRequest(router, http.MethodPost, "/addTransaction", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid order_id")
}

func TestGetAllTransactionsByUser_RejectsInvalidBody(t *testing.T) {
	ctrl := NewTransactionController(nil)
	router := gin.New()
	router.POST("/getAllTransactionsByUser", asUser(primitive.NewObjectID().Hex()), ctrl.GetAllTransactionsByUser)

	w := performRequest(router, http.MethodPost, "/getAllTransactionsByUser", `not-json`)
	assert.Equal(t, 400, w.Code)
}

func TestPageQuery(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=abc", 1},
		{"?page=-2", -2},
	}

	for _, tc := range cases {
		router := gin.New()
		var got int
		router.GET("/t", func(c *gin.Context) {
			got = pageQuery(c)
			c.Status(200)
		})
		performRequest(router, http.MethodGet, "/t"+tc.raw, "")
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestLimitQuery(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"?limit=25", 25},
		{"?limit=0", 10},
		{"?limit=abc", 10},
	}

	for _, tc := range cases {
		router := gin.New()
		var got int
		router.GET("/t", func(c *gin.Context) {
			got = limitQuery(c)
			c.Status(200)
		})
		performRequest(router, http.MethodGet, "/t"+tc.raw, "")
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}
