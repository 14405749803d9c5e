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

// CatalogueCategoryRepository is the Mongo-backed
// repositories.CatalogueCategoryRepository. Ancestor walks use a single
// $graphLookup stage rather than the nested-set left/right numbering an
// RDBMS-backed tree would use, since category moves are first-class here
// and a parent-pointer tree does not carry renumberable nested-set bounds.
type CatalogueCategoryRepository struct {
	coll *mongo.Collection
}

// NewCatalogueCategoryRepository constructs a CatalogueCategoryRepository.
func NewCatalogueCategoryRepository(db *Database) *CatalogueCategoryRepository {
	return &CatalogueCategoryRepository{coll: db.collection(CollCatalogueCategories)}
}

var _ repositories.CatalogueCategoryRepository = (*CatalogueCategoryRepository)(nil)

func (r *CatalogueCategoryRepository) Create(ctx context.Context, c *entities.CatalogueCategory) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *CatalogueCategoryRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error) {
	var c entities.CatalogueCategory
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogueCategoryRepository) List(ctx context.Context, filter repositories.TreeFilter) ([]*entities.CatalogueCategory, error) {
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

	var out []*entities.CatalogueCategory
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogueCategoryRepository) Update(ctx context.Context, c *entities.CatalogueCategory) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

func (r *CatalogueCategoryRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CatalogueCategoryRepository) CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error) {
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

func (r *CatalogueCategoryRepository) CountChildCategories(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"parent_id": parentID})
}

func (r *CatalogueCategoryRepository) CountReferencingUnit(ctx context.Context, unitID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"properties.unit_id": unitID})
}

// ancestorsPipeline builds the single-round-trip $graphLookup walk from
// startID up the parent_id chain, capped at maxDepth hops. The matched start
// document carries its ancestors in _ancestors; Ancestors puts the start
// document at the front of its result.
func ancestorsPipeline(startID bson.ObjectID, maxDepth int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": startID}}},
		{{Key: "$graphLookup", Value: bson.M{
			"from":             CollCatalogueCategories,
			"startWith":        "$parent_id",
			"connectFromField": "parent_id",
			"connectToField":   "_id",
			"as":               "_ancestors",
			"maxDepth":         maxDepth - 1,
			"depthField":       "_depth",
		}}},
	}
}

// Ancestors returns the entity and its ancestor chain, entity first, ordered
// nearest-to-farthest, via a single $graphLookup aggregation.
func (r *CatalogueCategoryRepository) Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.CatalogueCategory, error) {
	cur, err := r.coll.Aggregate(ctx, ancestorsPipeline(id, maxDepth))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	type ancestorDoc struct {
		entities.CatalogueCategory `bson:",inline"`
		Depth                      int32 `bson:"_depth"`
	}
	var docs []struct {
		entities.CatalogueCategory `bson:",inline"`
		Ancestors                  []ancestorDoc `bson:"_ancestors"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	doc := docs[0]
	sort.Slice(doc.Ancestors, func(i, j int) bool { return doc.Ancestors[i].Depth < doc.Ancestors[j].Depth })

	out := make([]*entities.CatalogueCategory, 0, len(doc.Ancestors)+1)
	head := doc.CatalogueCategory
	out = append(out, &head)
	for i := range doc.Ancestors {
		a := doc.Ancestors[i].CatalogueCategory
		out = append(out, &a)
	}
	return out, nil
}

// IsDescendant reports whether candidateID lies in the subtree rooted at
// ancestorID (i.e. ancestorID appears somewhere in candidateID's ancestor
// chain, including candidateID itself).
func (r *CatalogueCategoryRepository) IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error) {
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
