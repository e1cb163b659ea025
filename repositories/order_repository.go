package repositories

import (
	"context"
	"time"

	"plant-market/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	db *mongo.Database
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) coll() *mongo.Collection {
	return r.db.Collection("orders")
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	order.CreatedAt = time.Now()
	res, err := r.coll().InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SupplierOrdersPipeline lists the order items belonging to one supplier,
// joined with the product and the ordering customer.
func SupplierOrdersPipeline(supplierID primitive.ObjectID, page, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$match", Value: bson.M{"items.supplier_id": supplierID}}},
		lookupStage("products", "items.product_id", "product"),
		unwindStage("$product"),
		lookupStage("users", "user_id", "customer"),
		unwindStage("$customer"),
		sortStage("", ""),
	}
	pipeline = append(pipeline, paginationStages(page, limit)...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 1},
		{Key: "order_id", Value: 1},
		{Key: "payment_method", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "quantity", Value: "$items.quantity"},
		{Key: "item_status", Value: "$items.status"},
		{Key: "product_id", Value: "$items.product_id"},
		{Key: "product_name", Value: bson.M{"$ifNull": bson.A{"$product.english_name", "N/A"}}},
		{Key: "product_price", Value: "$product.price"},
		{Key: "customer_name", Value: bson.M{"$ifNull": bson.A{"$customer.full_name", "N/A"}}},
	}}})
	return pipeline
}

func SupplierOrdersCountPipeline(supplierID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$match", Value: bson.M{"items.supplier_id": supplierID}}},
		{{Key: "$count", Value: "total"}},
	}
}

func (r *OrderRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := r.coll().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *OrderRepository) Count(ctx context.Context, pipeline mongo.Pipeline) (int64, error) {
	results, err := r.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	switch v := results[0]["total"].(type) {
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	}
	return 0, nil
}

// UpdateItemStatus sets the delivery status of one line item. The supplier
// id is part of the filter so a supplier can only touch its own items.
func (r *OrderRepository) UpdateItemStatus(ctx context.Context, orderID, productID, supplierID primitive.ObjectID, status string) error {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{
			"_id": orderID,
			"items": bson.M{"$elemMatch": bson.M{
				"product_id":  productID,
				"supplier_id": supplierID,
			}},
		},
		bson.M{"$set": bson.M{"items.$.status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
