package services

import (
	"testing"

	"plant-market/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalPages(0, PageSize))
	assert.Equal(t, 1, TotalPages(1, PageSize))
	assert.Equal(t, 1, TotalPages(10, PageSize))
	assert.Equal(t, 2, TotalPages(11, PageSize))
	assert.Equal(t, 5, TotalPages(45, PageSize))
	assert.Equal(t, 0, TotalPages(-3, PageSize))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestBuildTransactionItems_FreezesAmounts(t *testing.T) {
	t.Parallel()

	productID := primitive.NewObjectID()
	supplierID := primitive.NewObjectID()

	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: productID, SupplierID: supplierID, Quantity: 3},
		},
	}
	products := map[primitive.ObjectID]models.Product{
		productID: {ID: productID, Price: 250.50, SupplierID: supplierID},
	}

	items, err := BuildTransactionItems(order, products)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, supplierID, items[0].SupplierID)
	assert.InDelta(t, 751.50, items[0].Amount, 0.0001)

	// Later price changes must not affect the already built items.
	changed := products[productID]
	changed.Price = 999
	products[productID] = changed
	assert.InDelta(t, 751.50, items[0].Amount, 0.0001)
}

func TestBuildTransactionItems_MissingProduct(t *testing.T) {
	t.Parallel()

	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: primitive.NewObjectID(), Quantity: 1},
		},
	}

	_, err := BuildTransactionItems(order, map[primitive.ObjectID]models.Product{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDistinctSupplierIDs(t *testing.T) {
	t.Parallel()

	supplierA := primitive.NewObjectID()
	supplierB := primitive.NewObjectID()

	items := []models.TransactionItem{
		{SupplierID: supplierA, Amount: 10},
		{SupplierID: supplierB, Amount: 20},
		{SupplierID: supplierA, Amount: 30},
	}

	distinct := DistinctSupplierIDs(items)
	require.Len(t, distinct, 2)
	assert.Equal(t, supplierA, distinct[0])
	assert.Equal(t, supplierB, distinct[1])
}

func TestSupplierAmounts(t *testing.T) {
	t.Parallel()

	supplierA := primitive.NewObjectID()
	supplierB := primitive.NewObjectID()

	items := []models.TransactionItem{
		{SupplierID: supplierA, Amount: 10.5},
		{SupplierID: supplierB, Amount: 20},
		{SupplierID: supplierA, Amount: 4.5},
	}

	amounts := SupplierAmounts(items)
	assert.InDelta(t, 15.0, amounts[supplierA], 0.0001)
	assert.InDelta(t, 20.0, amounts[supplierB], 0.0001)
}

func TestNotificationBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"A new transaction of 751.50 has been made for your products.",
		NotificationBody(751.5))
}
