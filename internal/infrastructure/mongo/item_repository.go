package mongo

import (
	"context"
	"errors"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ItemRepository is the Mongo-backed repositories.ItemRepository.
type ItemRepository struct {
	coll *mongo.Collection
}

// NewItemRepository constructs an ItemRepository.
func NewItemRepository(db *Database) *ItemRepository {
	return &ItemRepository{coll: db.collection(CollItems)}
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) Create(ctx context.Context, it *entities.Item) error {
	_, err := r.coll.InsertOne(ctx, it)
	return err
}

func (r *ItemRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.Item, error) {
	var it entities.Item
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepository) List(ctx context.Context, catalogueItemID, systemID *bson.ObjectID) ([]*entities.Item, error) {
	query := bson.M{}
	if catalogueItemID != nil {
		query["catalogue_item_id"] = *catalogueItemID
	}
	if systemID != nil {
		query["system_id"] = *systemID
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.Item
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *entities.Item) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": it.ID}, it)
	return err
}

func (r *ItemRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ItemRepository) CountByCatalogueItem(ctx context.Context, catalogueItemID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"catalogue_item_id": catalogueItemID})
}

func (r *ItemRepository) CountBySystem(ctx context.Context, systemID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"system_id": systemID})
}

func (r *ItemRepository) CountByUsageStatus(ctx context.Context, usageStatusID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"usage_status_id": usageStatusID})
}
