package models

import "go.mongodb.org/mongo-driver/bson"

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// TransactionPage is the envelope the admin listing endpoints return.
type TransactionPage struct {
	Transactions      []bson.M `json:"transactions"`
	TotalTransactions int64    `json:"totalTransactions"`
	TotalPages        int      `json:"totalPages"`
	CurrentPage       int      `json:"currentPage"`
}
