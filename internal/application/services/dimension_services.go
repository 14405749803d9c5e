package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/facilityinv/catalogue-api/internal/helper/codeslug"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UnitService orchestrates the flat Unit dimension, guarding deletes through
// the ReferentialGuard.
type UnitService struct {
	units repositories.UnitRepository
	guard *ReferentialGuard
}

// NewUnitService constructs a UnitService.
func NewUnitService(units repositories.UnitRepository, guard *ReferentialGuard) *UnitService {
	return &UnitService{units: units, guard: guard}
}

var _ ports.UnitService = (*UnitService)(nil)

// Create validates and inserts a new Unit.
func (s *UnitService) Create(ctx context.Context, value string) (*entities.Unit, error) {
	code := codeslug.Generate(value)
	if n, err := s.units.CountByCode(ctx, code); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Duplicate("unit", code)
	}
	u := entities.NewUnit(value, code)
	if err := s.units.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get fetches a Unit by id.
func (s *UnitService) Get(ctx context.Context, id bson.ObjectID) (*entities.Unit, error) {
	u, err := s.units.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.Missing("unit", id.Hex())
	}
	return u, nil
}

// List returns all Units.
func (s *UnitService) List(ctx context.Context) ([]*entities.Unit, error) {
	return s.units.List(ctx)
}

// Delete removes a Unit, rejecting if any category property still
// references it.
func (s *UnitService) Delete(ctx context.Context, id bson.ObjectID) error {
	u, err := s.units.Get(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return errs.Missing("unit", id.Hex())
	}
	if err := s.guard.CheckUnit(ctx, id); err != nil {
		return err
	}
	return s.units.Delete(ctx, id)
}

// UsageStatusService orchestrates the flat UsageStatus dimension, guarding
// deletes through the ReferentialGuard.
type UsageStatusService struct {
	usageStatuses repositories.UsageStatusRepository
	guard         *ReferentialGuard
}

// NewUsageStatusService constructs a UsageStatusService.
func NewUsageStatusService(usageStatuses repositories.UsageStatusRepository, guard *ReferentialGuard) *UsageStatusService {
	return &UsageStatusService{usageStatuses: usageStatuses, guard: guard}
}

var _ ports.UsageStatusService = (*UsageStatusService)(nil)

// Create validates and inserts a new UsageStatus.
func (s *UsageStatusService) Create(ctx context.Context, value string) (*entities.UsageStatus, error) {
	code := codeslug.Generate(value)
	if n, err := s.usageStatuses.CountByCode(ctx, code); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Duplicate("usage status", code)
	}
	u := entities.NewUsageStatus(value, code)
	if err := s.usageStatuses.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get fetches a UsageStatus by id.
func (s *UsageStatusService) Get(ctx context.Context, id bson.ObjectID) (*entities.UsageStatus, error) {
	u, err := s.usageStatuses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.Missing("usage status", id.Hex())
	}
	return u, nil
}

// List returns all UsageStatuses.
func (s *UsageStatusService) List(ctx context.Context) ([]*entities.UsageStatus, error) {
	return s.usageStatuses.List(ctx)
}

// Delete removes a UsageStatus, rejecting if any item still references it.
func (s *UsageStatusService) Delete(ctx context.Context, id bson.ObjectID) error {
	u, err := s.usageStatuses.Get(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return errs.Missing("usage status", id.Hex())
	}
	if err := s.guard.CheckUsageStatus(ctx, id); err != nil {
		return err
	}
	return s.usageStatuses.Delete(ctx, id)
}

// ManufacturerService orchestrates the flat Manufacturer dimension, guarding
// deletes through the ReferentialGuard.
type ManufacturerService struct {
	manufacturers repositories.ManufacturerRepository
	guard         *ReferentialGuard
}

// NewManufacturerService constructs a ManufacturerService.
func NewManufacturerService(manufacturers repositories.ManufacturerRepository, guard *ReferentialGuard) *ManufacturerService {
	return &ManufacturerService{manufacturers: manufacturers, guard: guard}
}

var _ ports.ManufacturerService = (*ManufacturerService)(nil)

// Create validates and inserts a new Manufacturer.
func (s *ManufacturerService) Create(ctx context.Context, in ports.ManufacturerInput) (*entities.Manufacturer, error) {
	code := codeslug.Generate(in.Name)
	if n, err := s.manufacturers.CountByCode(ctx, code); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Duplicate("manufacturer", code)
	}
	m := entities.NewManufacturer(in.Name, code)
	m.URL = in.URL
	m.Address = in.Address
	if err := s.manufacturers.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get fetches a Manufacturer by id.
func (s *ManufacturerService) Get(ctx context.Context, id bson.ObjectID) (*entities.Manufacturer, error) {
	m, err := s.manufacturers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errs.Missing("manufacturer", id.Hex())
	}
	return m, nil
}

// List returns all Manufacturers.
func (s *ManufacturerService) List(ctx context.Context) ([]*entities.Manufacturer, error) {
	return s.manufacturers.List(ctx)
}

// Update applies a partial update to a Manufacturer, recomputing its code on
// rename.
func (s *ManufacturerService) Update(ctx context.Context, id bson.ObjectID, in ports.ManufacturerInput) (*entities.Manufacturer, error) {
	m, err := s.manufacturers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errs.Missing("manufacturer", id.Hex())
	}

	if in.Name != "" && in.Name != m.Name {
		code := codeslug.Generate(in.Name)
		if n, err := s.manufacturers.CountByCode(ctx, code); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, errs.Duplicate("manufacturer", code)
		}
		m.Name = in.Name
		m.Code = code
	}
	if in.URL != nil {
		m.URL = in.URL
	}
	if in.Address != nil {
		m.Address = in.Address
	}

	m.Touch()
	if err := s.manufacturers.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a Manufacturer, rejecting if any catalogue item still
// references it.
func (s *ManufacturerService) Delete(ctx context.Context, id bson.ObjectID) error {
	m, err := s.manufacturers.Get(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return errs.Missing("manufacturer", id.Hex())
	}
	if err := s.guard.CheckManufacturer(ctx, id); err != nil {
		return err
	}
	return s.manufacturers.Delete(ctx, id)
}
