package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildProfileUpdate_SetsOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	update := BuildProfileUpdate(ProfileUpdateInput{
		FullName: "Asha Gowda",
		Address:  "Bengaluru",
	})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "Asha Gowda", set["full_name"])
	assert.Equal(t, "Bengaluru", set["address"])
	assert.NotContains(t, set, "mobile")
	assert.NotContains(t, set, "email")
	assert.NotContains(t, update, "$addToSet")
}

func TestBuildProfileUpdate_PinCodesUnionDeduplicated(t *testing.T) {
	t.Parallel()

	update := BuildProfileUpdate(ProfileUpdateInput{
		PinCodes: []int{560001, 560002, 560001},
	})

	addToSet, ok := update["$addToSet"].(bson.M)
	require.True(t, ok)
	each, ok := addToSet["pin_code"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, []int{560001, 560002}, each["$each"])
	assert.NotContains(t, update, "$set")
}

func TestBuildProfileUpdate_EmptyInputStillValid(t *testing.T) {
	t.Parallel()

	update := BuildProfileUpdate(ProfileUpdateInput{})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, set, "updated_at")
}

func TestGenerateOTP(t *testing.T) {
	t.Parallel()

	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}
