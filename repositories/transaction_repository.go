package repositories

import (
	"context"
	"time"

	"plant-market/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepository struct {
	db *mongo.Database
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func regexMatch(field, search string) bson.M {
	return bson.M{field: bson.M{"$regex": search, "$options": "i"}}
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

// sortStage orders by the named key when one is supplied, by recency
// otherwise. The record id is always appended so ordering stays
// deterministic across equal keys.
func sortStage(sortBy, order string) bson.D {
	dir := -1
	if order == "asc" {
		dir = 1
	}
	if sortBy == "" {
		sortBy = "created_at"
	}
	sort := bson.D{{Key: sortBy, Value: dir}}
	if sortBy != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: dir})
	}
	return bson.D{{Key: "$sort", Value: sort}}
}

// paginationStages computes skip/limit from a 1-based page. Page values
// below 1 are accepted as given; the skip is only floored at zero so the
// store call cannot fail.
func paginationStages(page, limit int) []bson.D {
	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	return []bson.D{
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
}

func adminTransactionJoins() []bson.D {
	return []bson.D{
		lookupStage("users", "user_id", "userDetails"),
		unwindStage("$userDetails"),
		lookupStage("orders", "order_id", "orderDetails"),
		unwindStage("$orderDetails"),
		lookupStage("users", "items.supplier_id", "supplierDetails"),
		unwindStage("$supplierDetails"),
	}
}

func adminTransactionSearch(search string) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{"$or": []bson.M{
		regexMatch("userDetails.full_name", search),
		regexMatch("orderDetails.order_id", search),
		regexMatch("payment_id", search),
		regexMatch("supplierDetails.full_name", search),
	}}}}
}

func adminTransactionProject() bson.D {
	return bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 1},
		{Key: "user_name", Value: bson.M{"$ifNull": bson.A{"$userDetails.full_name", "N/A"}}},
		{Key: "order_id", Value: bson.M{"$ifNull": bson.A{"$orderDetails.order_id", "N/A"}}},
		{Key: "supplier_name", Value: bson.M{"$ifNull": bson.A{"$supplierDetails.full_name", "N/A"}}},
		{Key: "total_amount", Value: 1},
		{Key: "payment_status", Value: 1},
		{Key: "payment_method", Value: 1},
		{Key: "payment_id", Value: 1},
		{Key: "created_at", Value: bson.M{"$ifNull": bson.A{"$created_at", time.Unix(0, 0).UTC()}}},
	}}}
}

// AdminTransactionsPipeline joins transactions with users, orders and the
// suppliers referenced from line items, optionally filters by a
// case-insensitive search term, sorts and paginates, and flattens the
// joined documents into one response object per transaction.
func AdminTransactionsPipeline(page, limit int, search, sortBy, order string) mongo.Pipeline {
	pipeline := mongo.Pipeline(adminTransactionJoins())
	if search != "" {
		pipeline = append(pipeline, adminTransactionSearch(search))
	}
	pipeline = append(pipeline, sortStage(sortBy, order))
	pipeline = append(pipeline, paginationStages(page, limit)...)
	pipeline = append(pipeline, adminTransactionProject())
	return pipeline
}

// AdminTransactionsCountPipeline mirrors AdminTransactionsPipeline without
// sort/skip/limit so the count covers every matching document.
func AdminTransactionsCountPipeline(search string) mongo.Pipeline {
	pipeline := mongo.Pipeline(adminTransactionJoins())
	if search != "" {
		pipeline = append(pipeline, adminTransactionSearch(search))
	}
	pipeline = append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	return pipeline
}

func codOrderStages() []bson.D {
	return []bson.D{
		{{Key: "$match", Value: bson.M{"payment_method": "cod"}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$match", Value: bson.M{"items.status": "delivered"}}},
		lookupStage("users", "user_id", "user"),
		unwindStage("$user"),
		lookupStage("users", "items.supplier_id", "supplier"),
		unwindStage("$supplier"),
	}
}

func codOrderSearch(search string) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{"$or": []bson.M{
		regexMatch("user.full_name", search),
		regexMatch("order_id", search),
		regexMatch("supplier.full_name", search),
	}}}}
}

// CodTransactionsPipeline lists delivered cash-on-delivery order items from
// the orders collection, joined with customer and supplier names.
func CodTransactionsPipeline(page, limit int, search string) mongo.Pipeline {
	pipeline := mongo.Pipeline(codOrderStages())
	if search != "" {
		pipeline = append(pipeline, codOrderSearch(search))
	}
	pipeline = append(pipeline, sortStage("", ""))
	pipeline = append(pipeline, paginationStages(page, limit)...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 1},
		{Key: "order_id", Value: 1},
		{Key: "payment_method", Value: 1},
		{Key: "total_amount", Value: 1},
		{Key: "item_status", Value: "$items.status"},
		{Key: "created_at", Value: 1},
		{Key: "user_name", Value: bson.M{"$ifNull": bson.A{"$user.full_name", "N/A"}}},
		{Key: "supplier_name", Value: bson.M{"$ifNull": bson.A{"$supplier.full_name", "N/A"}}},
	}}})
	return pipeline
}

func CodTransactionsCountPipeline(search string) mongo.Pipeline {
	pipeline := mongo.Pipeline(codOrderStages())
	if search != "" {
		pipeline = append(pipeline, codOrderSearch(search))
	}
	pipeline = append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	return pipeline
}

// ScopedTransactionsPipeline lists transactions for one user or one
// supplier (field is "user_id" or "items.supplier_id"), joined with the
// customer and order documents.
func ScopedTransactionsPipeline(field string, id primitive.ObjectID, page, limit int, search, sortBy string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: id}}},
	}
	pipeline = append(pipeline, adminTransactionJoins()...)
	if search != "" {
		pipeline = append(pipeline, adminTransactionSearch(search))
	}
	if sortBy == "amount" {
		pipeline = append(pipeline, sortStage("total_amount", ""))
	} else {
		pipeline = append(pipeline, sortStage("_id", ""))
	}
	pipeline = append(pipeline, paginationStages(page, limit)...)
	pipeline = append(pipeline, adminTransactionProject())
	return pipeline
}

func ScopedTransactionsCountPipeline(field string, id primitive.ObjectID, search string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: id}}},
	}
	pipeline = append(pipeline, adminTransactionJoins()...)
	if search != "" {
		pipeline = append(pipeline, adminTransactionSearch(search))
	}
	pipeline = append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	return pipeline
}

func (r *TransactionRepository) Insert(ctx context.Context, txn *models.Transaction) error {
	txn.CreatedAt = time.Now()
	res, err := r.db.Collection("transactions").InsertOne(ctx, txn)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		txn.ID = oid
	}
	return nil
}

// Aggregate runs a pipeline against the named collection and decodes every
// resulting document.
func (r *TransactionRepository) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
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

// Count runs a $count pipeline and returns 0 when nothing matched.
func (r *TransactionRepository) Count(ctx context.Context, collection string, pipeline mongo.Pipeline) (int64, error) {
	results, err := r.Aggregate(ctx, collection, pipeline)
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

// Find returns a plain page of transactions sorted by the requested key,
// each with the human order code resolved from the orders collection.
func (r *TransactionRepository) Find(ctx context.Context, page, limit int, sortBy, order string) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		lookupStage("orders", "order_id", "orderDetails"),
		unwindStage("$orderDetails"),
		sortStage(sortBy, order),
	}
	pipeline = append(pipeline, paginationStages(page, limit)...)
	pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "order_code", Value: bson.M{"$ifNull": bson.A{"$orderDetails.order_id", "N/A"}}},
	}}})
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.D{{Key: "orderDetails", Value: 0}}}})
	return r.Aggregate(ctx, "transactions", pipeline)
}

func (r *TransactionRepository) CountAll(ctx context.Context) (int64, error) {
	return r.db.Collection("transactions").CountDocuments(ctx, bson.M{})
}

// FindOneOrder resolves the order a transaction is being created against.
func (r *TransactionRepository) FindOneOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindProducts loads the products referenced by an order's line items.
func (r *TransactionRepository) FindProducts(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := map[primitive.ObjectID]models.Product{}
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, cursor.Err()
}

func (r *TransactionRepository) FindSupplier(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var supplier models.User
	err := r.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&supplier)
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *TransactionRepository) InsertNotification(ctx context.Context, n *models.OrderNotification) error {
	n.CreatedAt = time.Now()
	_, err := r.db.Collection("ordernotifications").InsertOne(ctx, n)
	return err
}

// FindNotificationsByUser returns a recency-sorted page of notification
// records for one user.
func (r *TransactionRepository) FindNotificationsByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.OrderNotification, int64, error) {
	coll := r.db.Collection("ordernotifications")
	filter := bson.M{"user_id": userID}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * limit)
	if skip < 0 {
		skip = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	notifications := []models.OrderNotification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}
