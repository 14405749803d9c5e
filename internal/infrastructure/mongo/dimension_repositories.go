package mongo

import (
	"context"
	"errors"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UnitRepository is the Mongo-backed repositories.UnitRepository.
type UnitRepository struct {
	coll *mongo.Collection
}

// NewUnitRepository constructs a UnitRepository.
func NewUnitRepository(db *Database) *UnitRepository {
	return &UnitRepository{coll: db.collection(CollUnits)}
}

var _ repositories.UnitRepository = (*UnitRepository)(nil)

func (r *UnitRepository) Create(ctx context.Context, u *entities.Unit) error {
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *UnitRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.Unit, error) {
	var u entities.Unit
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepository) List(ctx context.Context) ([]*entities.Unit, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.Unit
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnitRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UnitRepository) CountByCode(ctx context.Context, code string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"code": code})
}

// UsageStatusRepository is the Mongo-backed
// repositories.UsageStatusRepository.
type UsageStatusRepository struct {
	coll *mongo.Collection
}

// NewUsageStatusRepository constructs a UsageStatusRepository.
func NewUsageStatusRepository(db *Database) *UsageStatusRepository {
	return &UsageStatusRepository{coll: db.collection(CollUsageStatuses)}
}

var _ repositories.UsageStatusRepository = (*UsageStatusRepository)(nil)

func (r *UsageStatusRepository) Create(ctx context.Context, u *entities.UsageStatus) error {
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *UsageStatusRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.UsageStatus, error) {
	var u entities.UsageStatus
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsageStatusRepository) List(ctx context.Context) ([]*entities.UsageStatus, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.UsageStatus
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UsageStatusRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UsageStatusRepository) CountByCode(ctx context.Context, code string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"code": code})
}

// ManufacturerRepository is the Mongo-backed
// repositories.ManufacturerRepository.
type ManufacturerRepository struct {
	coll *mongo.Collection
}

// NewManufacturerRepository constructs a ManufacturerRepository.
func NewManufacturerRepository(db *Database) *ManufacturerRepository {
	return &ManufacturerRepository{coll: db.collection(CollManufacturers)}
}

var _ repositories.ManufacturerRepository = (*ManufacturerRepository)(nil)

func (r *ManufacturerRepository) Create(ctx context.Context, m *entities.Manufacturer) error {
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *ManufacturerRepository) Get(ctx context.Context, id bson.ObjectID) (*entities.Manufacturer, error) {
	var m entities.Manufacturer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepository) List(ctx context.Context) ([]*entities.Manufacturer, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entities.Manufacturer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ManufacturerRepository) Update(ctx context.Context, m *entities.Manufacturer) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	return err
}

func (r *ManufacturerRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ManufacturerRepository) CountByCode(ctx context.Context, code string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"code": code})
}
