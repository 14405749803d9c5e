package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAncestorsPipeline_MatchesStartAndCapsDepth(t *testing.T) {
	id := bson.NewObjectID()

	pipeline := ancestorsPipeline(id, 5)

	require.Len(t, pipeline, 2)

	matchStage := pipeline[0]
	require.Len(t, matchStage, 1)
	assert.Equal(t, "$match", matchStage[0].Key)
	assert.Equal(t, bson.M{"_id": id}, matchStage[0].Value)

	lookupStage := pipeline[1]
	require.Len(t, lookupStage, 1)
	assert.Equal(t, "$graphLookup", lookupStage[0].Key)

	lookup, ok := lookupStage[0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, CollCatalogueCategories, lookup["from"])
	assert.Equal(t, "$parent_id", lookup["startWith"])
	assert.Equal(t, "parent_id", lookup["connectFromField"])
	assert.Equal(t, "_id", lookup["connectToField"])
	assert.Equal(t, 4, lookup["maxDepth"])
}
