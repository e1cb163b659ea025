package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"plant-market/models"
	"plant-market/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const otpTTL = 5 * time.Minute

var ErrOTPUnavailable = errors.New("OTP service unavailable")

// ProfileUpdateInput carries the optional profile fields; empty values are
// left untouched on the stored document.
type ProfileUpdateInput struct {
	FullName   string
	Mobile     string
	Email      string
	Address    string
	ProfilePic string
	PinCodes   []int
}

// BuildProfileUpdate produces the partial update document: a $set of the
// supplied fields and an $addToSet union of the deduplicated pin codes, so
// repeated codes never create duplicates in the stored set.
func BuildProfileUpdate(input ProfileUpdateInput) bson.M {
	set := bson.M{}
	if input.FullName != "" {
		set["full_name"] = input.FullName
	}
	if input.Mobile != "" {
		set["mobile"] = input.Mobile
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.ProfilePic != "" {
		set["profile_pic"] = input.ProfilePic
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if pins := utils.NormalizePinCodes(input.PinCodes); len(pins) > 0 {
		update["$addToSet"] = bson.M{"pin_code": bson.M{"$each": pins}}
	}
	if len(update) == 0 {
		// FindOneAndUpdate rejects empty update documents.
		update["$set"] = bson.M{"updated_at": time.Now()}
	}
	return update
}

// GenerateOTP returns a 6-digit one-time password.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func otpKey(email string) string {
	return "otp:" + email
}

// StoreOTP keeps the code in Redis with a 5 minute TTL.
func StoreOTP(ctx context.Context, email, otp string) error {
	if models.RedisClient == nil {
		return ErrOTPUnavailable
	}
	return models.RedisClient.Set(ctx, otpKey(email), otp, otpTTL).Err()
}

// CheckOTP compares the submitted code and consumes it on success.
func CheckOTP(ctx context.Context, email, otp string) (bool, error) {
	if models.RedisClient == nil {
		return false, ErrOTPUnavailable
	}
	stored, err := models.RedisClient.Get(ctx, otpKey(email)).Result()
	if err != nil {
		return false, nil
	}
	if stored != otp {
		return false, nil
	}
	models.RedisClient.Del(ctx, otpKey(email))
	return true, nil
}
