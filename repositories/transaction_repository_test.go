package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stageKeys(pipeline []bson.D) []string {
	keys := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestPaginationStages(t *testing.T) {
	t.Parallel()

	stages := paginationStages(3, 10)
	require.Len(t, stages, 2)
	assert.Equal(t, bson.D{{Key: "$skip", Value: 20}}, stages[0])
	assert.Equal(t, bson.D{{Key: "$limit", Value: 10}}, stages[1])
}

func TestPaginationStages_FloorsNegativeSkip(t *testing.T) {
	t.Parallel()

	for _, page := range []int{0, -1, -100} {
		stages := paginationStages(page, 10)
		assert.Equal(t, bson.D{{Key: "$skip", Value: 0}}, stages[0])
	}
}

func TestSortStage_Defaults(t *testing.T) {
	t.Parallel()

	stage := sortStage("", "")
	sort, ok := stage[0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 2)
	assert.Equal(t, bson.E{Key: "created_at", Value: -1}, sort[0])
	assert.Equal(t, bson.E{Key: "_id", Value: -1}, sort[1])
}

func TestSortStage_AscendingAndIDTiebreak(t *testing.T) {
	t.Parallel()

	stage := sortStage("total_amount", "asc")
	sort := stage[0].Value.(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, bson.E{Key: "total_amount", Value: 1}, sort[0])
	assert.Equal(t, bson.E{Key: "_id", Value: 1}, sort[1])

	// Sorting on _id itself must not duplicate the tiebreak.
	stage = sortStage("_id", "")
	sort = stage[0].Value.(bson.D)
	require.Len(t, sort, 1)
	assert.Equal(t, bson.E{Key: "_id", Value: -1}, sort[0])
}

func TestAdminTransactionsPipeline_StageOrder(t *testing.T) {
	t.Parallel()

	pipeline := AdminTransactionsPipeline(2, 10, "rose", "", "")
	assert.Equal(t, []string{
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$match",
		"$sort", "$skip", "$limit",
		"$project",
	}, stageKeys(pipeline))
}

func TestAdminTransactionsPipeline_NoSearchSkipsMatch(t *testing.T) {
	t.Parallel()

	pipeline := AdminTransactionsPipeline(1, 10, "", "", "")
	assert.NotContains(t, stageKeys(pipeline), "$match")
}

func TestAdminTransactionsPipeline_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	pipeline := AdminTransactionsPipeline(1, 10, "Rose", "", "")

	var match bson.M
	for _, stage := range pipeline {
		if stage[0].Key == "$match" {
			match = stage[0].Value.(bson.M)
		}
	}
	require.NotNil(t, match)

	ors, ok := match["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, ors, 4)
	for _, clause := range ors {
		for _, cond := range clause {
			expr := cond.(bson.M)
			assert.Equal(t, "Rose", expr["$regex"])
			assert.Equal(t, "i", expr["$options"])
		}
	}
}

func TestAdminTransactionsCountPipeline_EndsWithCount(t *testing.T) {
	t.Parallel()

	pipeline := AdminTransactionsCountPipeline("rose")
	keys := stageKeys(pipeline)
	assert.Equal(t, "$count", keys[len(keys)-1])
	assert.NotContains(t, keys, "$skip")
	assert.NotContains(t, keys, "$limit")
	assert.NotContains(t, keys, "$sort")
}

func TestUnwindStage_PreservesEmptyJoins(t *testing.T) {
	t.Parallel()

	stage := unwindStage("$userDetails")
	spec := stage[0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "path", Value: "$userDetails"}, spec[0])
	assert.Equal(t, bson.E{Key: "preserveNullAndEmptyArrays", Value: true}, spec[1])
}

func TestScopedTransactionsPipeline_MatchesScopeFirst(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	pipeline := ScopedTransactionsPipeline("user_id", userID, 1, 10, "", "")

	require.Equal(t, "$match", pipeline[0][0].Key)
	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, userID, match["user_id"])
}

func TestScopedTransactionsPipeline_AmountSort(t *testing.T) {
	t.Parallel()

	supplierID := primitive.NewObjectID()
	pipeline := ScopedTransactionsPipeline("items.supplier_id", supplierID, 1, 10, "", "amount")

	var sort bson.D
	for _, stage := range pipeline {
		if stage[0].Key == "$sort" {
			sort = stage[0].Value.(bson.D)
		}
	}
	require.NotNil(t, sort)
	assert.Equal(t, bson.E{Key: "total_amount", Value: -1}, sort[0])
}

func TestCodTransactionsPipeline_FiltersCodAndDelivered(t *testing.T) {
	t.Parallel()

	pipeline := CodTransactionsPipeline(1, 10, "")

	require.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, bson.M{"payment_method": "cod"}, pipeline[0][0].Value)

	require.Equal(t, "$unwind", pipeline[1][0].Key)
	assert.Equal(t, "$items", pipeline[1][0].Value)

	require.Equal(t, "$match", pipeline[2][0].Key)
	assert.Equal(t, bson.M{"items.status": "delivered"}, pipeline[2][0].Value)
}

func TestCodTransactionsCountPipeline_EndsWithCount(t *testing.T) {
	t.Parallel()

	pipeline := CodTransactionsCountPipeline("green")
	keys := stageKeys(pipeline)
	assert.Equal(t, "$count", keys[len(keys)-1])
	assert.Contains(t, keys[:len(keys)-1], "$match")
}

func TestLookupStage(t *testing.T) {
	t.Parallel()

	stage := lookupStage("users", "user_id", "userDetails")
	spec := stage[0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "from", Value: "users"}, spec[0])
	assert.Equal(t, bson.E{Key: "localField", Value: "user_id"}, spec[1])
	assert.Equal(t, bson.E{Key: "foreignField", Value: "_id"}, spec[2])
	assert.Equal(t, bson.E{Key: "as", Value: "userDetails"}, spec[3])
}
