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

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) coll() *mongo.Collection {
	return r.db.Collection("users")
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	res, err := r.coll().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.coll().CountDocuments(ctx, bson.M{"email": email})
	return count > 0, err
}

// UpdateProfile applies the update document built by the service layer:
// a $set of the supplied fields plus an $addToSet union of pin codes.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	res := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	var user models.User
	if err := res.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password": hash}})
	return err
}

func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, hash string) error {
	res, err := r.coll().UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, email string) error {
	res, err := r.coll().UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"verified": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) SetFirebaseToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"firebase_token": token}})
	return err
}

func (r *UserRepository) AddFavorite(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.coll().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favorites": productID}})
	return err
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.coll().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favorites": productID}})
	return err
}

func (r *UserRepository) AddToCart(ctx context.Context, userID primitive.ObjectID, item models.CartItem) error {
	_, err := r.coll().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"cart": item}})
	return err
}

// FindSuppliers returns a paginated page of supplier accounts, optionally
// filtered by a case-insensitive search over name, email and mobile.
func (r *UserRepository) FindSuppliers(ctx context.Context, search string, page, limit int) ([]models.User, int64, error) {
	filter := bson.M{"role": "supplier"}
	if search != "" {
		filter = bson.M{"role": "supplier", "$or": []bson.M{
			regexMatch("full_name", search),
			regexMatch("email", search),
			regexMatch("mobile", search),
		}}
	}

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
		SetLimit(int64(limit)).
		SetProjection(bson.M{"password": 0, "firebase_token": 0})

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	suppliers := []models.User{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}
