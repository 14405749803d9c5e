package mongo

import (
	"context"
	"errors"
	"sort"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SystemRepository is the Mongo-backed repositories.SystemRepository. It
// mirrors CatalogueCategoryRepository's tree operations against an
// independent collection.
type SystemRepository struct {
	coll *mongo.Collection
}

// NewSystemRepository constructs a SystemRepository.
func NewSystemRepository(db *Database) *SystemRepository {
	return &SystemRepository{coll: db.collection(CollSystems)}
}

var _ repositories.SystemRepository = (*SystemRepository)(nil)

func (r *SystemRepository) Create(ctx context.Context, s *entities.System) error {
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *SystemRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.System, error) {
	var s entities.System
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SystemRepository) List(ctx context.Context, filter repositories.TreeFilter) ([]*entities.System, error) {
	query := bson.M{}
	switch {
	case filter.RootsOnly:
		query["parent_id"] = bson.M{"$exists": false}
	case filter.ParentID != nil:
		query["parent_id"] = *filter.ParentID
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.System
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SystemRepository) Update(ctx context.Context, s *entities.System) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	return err
}

func (r *SystemRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *SystemRepository) CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error) {
	query := bson.M{"code": code}
	if parentID != nil {
		query["parent_id"] = *parentID
	} else {
		query["parent_id"] = bson.M{"$exists": false}
	}
	if excludeID != nil {
		query["_id"] = bson.M{"$ne": *excludeID}
	}
	return r.coll.CountDocuments(ctx, query)
}

func (r *SystemRepository) CountChildSystems(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"parent_id": parentID})
}

func (r *SystemRepository) Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.System, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$graphLookup", Value: bson.M{
			"from":             CollSystems,
			"startWith":        "$parent_id",
			"connectFromField": "parent_id",
			"connectToField":   "_id",
			"as":               "_ancestors",
			"maxDepth":         maxDepth - 1,
			"depthField":       "_depth",
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	type ancestorDoc struct {
		entities.System `bson:",inline"`
		Depth           int32 `bson:"_depth"`
	}
	var docs []struct {
		entities.System `bson:",inline"`
		Ancestors       []ancestorDoc `bson:"_ancestors"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	doc := docs[0]
	sort.Slice(doc.Ancestors, func(i, j int) bool { return doc.Ancestors[i].Depth < doc.Ancestors[j].Depth })

	out := make([]*entities.System, 0, len(doc.Ancestors)+1)
	head := doc.System
	out = append(out, &head)
	for i := range doc.Ancestors {
		a := doc.Ancestors[i].System
		out = append(out, &a)
	}
	return out, nil
}

func (r *SystemRepository) IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error) {
	if ancestorID == candidateID {
		return true, nil
	}
	chain, err := r.Ancestors(ctx, candidateID, 1<<20)
	if err != nil {
		return false, err
	}
	for _, c := range chain {
		if c.ID == ancestorID {
			return true, nil
		}
	}
	return false, nil
}
