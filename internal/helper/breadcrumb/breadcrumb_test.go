package breadcrumb

import (
	"testing"

	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuild_EmptyAncestors(t *testing.T) {
	_, err := Build(nil)

	assert.True(t, errs.Is(err, errs.KindMissing))
}

func TestBuild_ReachesRoot(t *testing.T) {
	leaf := bson.NewObjectID()
	mid := bson.NewObjectID()
	root := bson.NewObjectID()

	ancestors := []Node{
		{ID: leaf, Name: "Leaf", ParentID: &mid},
		{ID: mid, Name: "Mid", ParentID: &root},
		{ID: root, Name: "Root"},
	}

	trail, err := Build(ancestors)

	require.NoError(t, err)
	assert.True(t, trail.FullTrail)
	require.Len(t, trail.Trail, 3)
	assert.Equal(t, "Root", trail.Trail[0].Name)
	assert.Equal(t, "Mid", trail.Trail[1].Name)
	assert.Equal(t, "Leaf", trail.Trail[2].Name)
}

func TestBuild_CutShortBelowMaxDepthIsIntegrityError(t *testing.T) {
	leaf := bson.NewObjectID()
	parent := bson.NewObjectID()

	// Two hops, still has a ParentID (walk was truncated before reaching an
	// actual root) and did not hit TrailMaxLength.
	ancestors := []Node{
		{ID: leaf, Name: "Leaf", ParentID: &parent},
		{ID: parent, Name: "Parent", ParentID: &parent},
	}

	_, err := Build(ancestors)

	assert.True(t, errs.Is(err, errs.KindDatabaseIntegrity))
}

func TestBuild_CutShortAtMaxDepthIsNotAnError(t *testing.T) {
	ancestors := make([]Node, TrailMaxLength)
	for i := range ancestors {
		parent := bson.NewObjectID()
		ancestors[i] = Node{ID: bson.NewObjectID(), Name: "N", ParentID: &parent}
	}

	trail, err := Build(ancestors)

	require.NoError(t, err)
	assert.False(t, trail.FullTrail)
	assert.Len(t, trail.Trail, TrailMaxLength)
}
