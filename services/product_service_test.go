package services

import (
	"testing"

	"plant-market/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinCodeErrorMessage(t *testing.T) {
	t.Parallel()

	err := &PinCodeError{Invalid: []int{560099, 560100}}
	assert.Equal(t, "Invalid pin codes: 560099, 560100", err.Error())
}

func TestBuildProductUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	set, err := BuildProductUpdate(models.EditProductRequest{
		EnglishName: "Snake Plant",
		Price:       "129.99",
	})
	require.NoError(t, err)

	assert.Equal(t, "Snake Plant", set["english_name"])
	assert.InDelta(t, 129.99, set["price"].(float64), 0.0001)
	assert.NotContains(t, set, "local_name")
	assert.NotContains(t, set, "quantity")
	assert.NotContains(t, set, "description")
}

func TestBuildProductUpdate_InvalidPrice(t *testing.T) {
	t.Parallel()

	_, err := BuildProductUpdate(models.EditProductRequest{Price: "abc"})
	assert.Error(t, err)

	_, err = BuildProductUpdate(models.EditProductRequest{Price: "-1"})
	assert.Error(t, err)
}

func TestBuildProductUpdate_InvalidEnums(t *testing.T) {
	t.Parallel()

	_, err := BuildProductUpdate(models.EditProductRequest{ProductType: "floating"})
	assert.Error(t, err)

	_, err = BuildProductUpdate(models.EditProductRequest{ProductSize: "gigantic"})
	assert.Error(t, err)

	set, err := BuildProductUpdate(models.EditProductRequest{
		ProductType: "indoor",
		ProductSize: "medium",
	})
	require.NoError(t, err)
	assert.Equal(t, "indoor", set["product_type"])
	assert.Equal(t, "medium", set["product_size"])
}

func TestBuildProductUpdate_InvalidCategoryID(t *testing.T) {
	t.Parallel()

	_, err := BuildProductUpdate(models.EditProductRequest{CategoryID: "not-an-id"})
	assert.Error(t, err)
}
