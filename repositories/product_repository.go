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

type ProductRepository struct {
	db *mongo.Database
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) coll() *mongo.Collection {
	return r.db.Collection("products")
}

func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	res, err := r.coll().InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	if err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) findPage(ctx context.Context, filter bson.M, page, limit int) ([]models.Product, int64, error) {
	total, err := r.coll().CountDocuments(ctx, filter)
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

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	return r.findPage(ctx, bson.M{}, page, limit)
}

func (r *ProductRepository) FindBySupplier(ctx context.Context, supplierID primitive.ObjectID, page, limit int) ([]models.Product, int64, error) {
	return r.findPage(ctx, bson.M{"supplier_id": supplierID}, page, limit)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID, page, limit int) ([]models.Product, int64, error) {
	return r.findPage(ctx, bson.M{"category_id": categoryID}, page, limit)
}

// Search matches a case-insensitive substring across the product name
// fields and description, combined with OR. An empty term matches all.
func (r *ProductRepository) Search(ctx context.Context, search string, page, limit int) ([]models.Product, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": []bson.M{
			regexMatch("english_name", search),
			regexMatch("local_name", search),
			regexMatch("other_name", search),
			regexMatch("description", search),
		}}
	}
	return r.findPage(ctx, filter, page, limit)
}

// Update applies a partial $set; fields absent from the document keep
// their prior values.
func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
