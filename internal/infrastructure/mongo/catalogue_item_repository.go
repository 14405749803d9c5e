package mongo

import (
	"context"
	"errors"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CatalogueItemRepository is the Mongo-backed
// repositories.CatalogueItemRepository.
type CatalogueItemRepository struct {
	coll *mongo.Collection
}

// NewCatalogueItemRepository constructs a CatalogueItemRepository.
func NewCatalogueItemRepository(db *Database) *CatalogueItemRepository {
	return &CatalogueItemRepository{coll: db.collection(CollCatalogueItems)}
}

var _ repositories.CatalogueItemRepository = (*CatalogueItemRepository)(nil)

func (r *CatalogueItemRepository) Create(ctx context.Context, ci *entities.CatalogueItem) error {
	_, err := r.coll.InsertOne(ctx, ci)
	return err
}

func (r *CatalogueItemRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueItem, error) {
	var ci entities.CatalogueItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ci)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *CatalogueItemRepository) ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]*entities.CatalogueItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"catalogue_category_id": categoryID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.CatalogueItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogueItemRepository) Update(ctx context.Context, ci *entities.CatalogueItem) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ci.ID}, ci)
	return err
}

func (r *CatalogueItemRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CatalogueItemRepository) CountByCategory(ctx context.Context, categoryID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"catalogue_category_id": categoryID})
}

func (r *CatalogueItemRepository) CountByManufacturer(ctx context.Context, manufacturerID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"manufacturer_id": manufacturerID})
}
