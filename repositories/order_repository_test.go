package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSupplierOrdersPipeline_ScopesToSupplier(t *testing.T) {
	t.Parallel()

	supplierID := primitive.NewObjectID()
	pipeline := SupplierOrdersPipeline(supplierID, 1, 10)

	require.Equal(t, "$unwind", pipeline[0][0].Key)
	require.Equal(t, "$match", pipeline[1][0].Key)
	match := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, supplierID, match["items.supplier_id"])

	keys := stageKeys(pipeline)
	assert.Equal(t, "$project", keys[len(keys)-1])
	assert.Contains(t, keys, "$skip")
	assert.Contains(t, keys, "$limit")
}

func TestSupplierOrdersCountPipeline(t *testing.T) {
	t.Parallel()

	supplierID := primitive.NewObjectID()
	pipeline := SupplierOrdersCountPipeline(supplierID)

	keys := stageKeys(pipeline)
	assert.Equal(t, []string{"$unwind", "$match", "$count"}, keys)
}
