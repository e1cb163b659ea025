package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"plant-market/libs"
	"plant-market/models"
	"plant-market/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSize is the fixed page size for the listing endpoints.
const PageSize = 10

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

type TransactionService struct {
	repo *repositories.TransactionRepository
}

func NewTransactionService(repo *repositories.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// TotalPages is ceil(total/limit); a total of zero yields zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// BuildTransactionItems freezes quantity × current product price into each
// line item so the stored amounts survive later price changes.
func BuildTransactionItems(order *models.Order, products map[primitive.ObjectID]models.Product) ([]models.TransactionItem, error) {
	items := make([]models.TransactionItem, 0, len(order.Items))
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		items = append(items, models.TransactionItem{
			ProductID:  item.ProductID,
			SupplierID: item.SupplierID,
			Amount:     float64(item.Quantity) * product.Price,
		})
	}
	return items, nil
}

// DistinctSupplierIDs returns each supplier among the line items once,
// keeping first-occurrence order.
func DistinctSupplierIDs(items []models.TransactionItem) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(items))
	out := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		if seen[item.SupplierID] {
			continue
		}
		seen[item.SupplierID] = true
		out = append(out, item.SupplierID)
	}
	return out
}

// SupplierAmounts sums the frozen item amounts per supplier.
func SupplierAmounts(items []models.TransactionItem) map[primitive.ObjectID]float64 {
	amounts := make(map[primitive.ObjectID]float64, len(items))
	for _, item := range items {
		amounts[item.SupplierID] += item.Amount
	}
	return amounts
}

func NotificationBody(amount float64) string {
	return fmt.Sprintf("A new transaction of %.2f has been made for your products.", amount)
}

// Add creates a transaction against an existing order. The transaction is
// durably saved before any notification work starts; notification failures
// are logged and never invalidate the saved transaction.
func (s *TransactionService) Add(ctx context.Context, userID primitive.ObjectID, orderID primitive.ObjectID, req models.AddTransactionRequest) (*models.Transaction, error) {
	order, err := s.repo.FindOneOrder(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	productIDs := make([]primitive.ObjectID, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.repo.FindProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	items, err := BuildTransactionItems(order, products)
	if err != nil {
		return nil, err
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	txn := &models.Transaction{
		UserID:        userID,
		OrderID:       orderID,
		PaymentID:     req.PaymentID,
		PaymentStatus: paymentStatus,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Items:         items,
		UserName:      req.UserName,
	}

	if err := s.repo.Insert(ctx, txn); err != nil {
		return nil, err
	}

	s.notifySuppliers(ctx, txn)

	return txn, nil
}

// notifySuppliers pushes one message per distinct supplier holding a
// registered device token and records an OrderNotification for each.
// Everything here is best-effort.
func (s *TransactionService) notifySuppliers(ctx context.Context, txn *models.Transaction) {
	amounts := SupplierAmounts(txn.Items)

	for _, supplierID := range DistinctSupplierIDs(txn.Items) {
		supplier, err := s.repo.FindSupplier(ctx, supplierID)
		if err != nil {
			log.Printf("Failed to load supplier %s for notification: %v", supplierID.Hex(), err)
			continue
		}
		if supplier.FirebaseToken == "" {
			continue
		}

		title := "Product Purchase"
		body := NotificationBody(amounts[supplierID])

		if err := libs.SendFCMNotification(supplier.FirebaseToken, title, body); err != nil {
			log.Printf("Failed to send notification to supplier %s: %v", supplierID.Hex(), err)
		} else {
			log.Printf("Notification sent to supplier %s", supplierID.Hex())
		}

		notification := &models.OrderNotification{
			UserID:      txn.UserID,
			OrderID:     txn.OrderID,
			Message:     body,
			Title:       title,
			Type:        txn.PaymentMethod,
			TotalAmount: txn.TotalAmount,
			SupplierIDs: []primitive.ObjectID{supplierID},
		}
		if err := s.repo.InsertNotification(ctx, notification); err != nil {
			log.Printf("Failed to record notification for supplier %s: %v", supplierID.Hex(), err)
		}
	}
}

func (s *TransactionService) AdminPage(ctx context.Context, page, limit int, search, sortBy, order string) (*models.TransactionPage, error) {
	rows, err := s.repo.Aggregate(ctx, "transactions",
		repositories.AdminTransactionsPipeline(page, limit, search, sortBy, order))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, "transactions",
		repositories.AdminTransactionsCountPipeline(search))
	if err != nil {
		return nil, err
	}
	return &models.TransactionPage{
		Transactions:      rows,
		TotalTransactions: total,
		TotalPages:        TotalPages(total, limit),
		CurrentPage:       page,
	}, nil
}

func (s *TransactionService) CodPage(ctx context.Context, page, limit int, search string) (*models.TransactionPage, error) {
	rows, err := s.repo.Aggregate(ctx, "orders",
		repositories.CodTransactionsPipeline(page, limit, search))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, "orders",
		repositories.CodTransactionsCountPipeline(search))
	if err != nil {
		return nil, err
	}
	return &models.TransactionPage{
		Transactions:      rows,
		TotalTransactions: total,
		TotalPages:        TotalPages(total, limit),
		CurrentPage:       page,
	}, nil
}

func (s *TransactionService) Page(ctx context.Context, page, limit int, sortBy, order string) (*models.TransactionPage, error) {
	rows, err := s.repo.Find(ctx, page, limit, sortBy, order)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return &models.TransactionPage{
		Transactions:      rows,
		TotalTransactions: total,
		TotalPages:        TotalPages(total, limit),
		CurrentPage:       page,
	}, nil
}

// ScopedPage lists transactions for one user ("user_id") or one supplier
// ("items.supplier_id").
func (s *TransactionService) ScopedPage(ctx context.Context, field string, id primitive.ObjectID, page int, search, sortBy string) (*models.TransactionPage, error) {
	rows, err := s.repo.Aggregate(ctx, "transactions",
		repositories.ScopedTransactionsPipeline(field, id, page, PageSize, search, sortBy))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, "transactions",
		repositories.ScopedTransactionsCountPipeline(field, id, search))
	if err != nil {
		return nil, err
	}
	return &models.TransactionPage{
		Transactions:      rows,
		TotalTransactions: total,
		TotalPages:        TotalPages(total, PageSize),
		CurrentPage:       page,
	}, nil
}
