package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/facilityinv/catalogue-api/internal/helper/breadcrumb"
	"github.com/facilityinv/catalogue-api/internal/helper/codeslug"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// SystemService orchestrates the system tree. It mirrors
// CatalogueCategoryService's move/create/delete semantics minus anything
// property-related, since systems carry no Property schema.
type SystemService struct {
	systems repositories.SystemRepository
}

// NewSystemService constructs a SystemService.
func NewSystemService(systems repositories.SystemRepository) *SystemService {
	return &SystemService{systems: systems}
}

var _ ports.SystemService = (*SystemService)(nil)

// Create validates and inserts a new system.
func (s *SystemService) Create(ctx context.Context, in ports.CreateSystemInput) (*entities.System, error) {
	if in.ParentID != nil {
		parent, err := s.systems.Get(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errs.Missing("system", in.ParentID.Hex())
		}
	}
	if !in.Importance.Valid() {
		return nil, errs.New(errs.KindInvalidAction, "invalid importance: %q", in.Importance)
	}

	code := codeslug.Generate(in.Name)
	if n, err := s.systems.CountBySiblingCode(ctx, in.ParentID, code, nil); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Duplicate("system", code)
	}

	system := entities.NewSystem(in.Name, code, in.ParentID, in.Importance)
	system.Description = in.Description
	system.Location = in.Location
	system.Owner = in.Owner
	if err := s.systems.Create(ctx, system); err != nil {
		return nil, err
	}
	return system, nil
}

// Get fetches a system by id.
func (s *SystemService) Get(ctx context.Context, id bson.ObjectID) (*entities.System, error) {
	sys, err := s.systems.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sys == nil {
		return nil, errs.Missing("system", id.Hex())
	}
	return sys, nil
}

// List returns systems matching the given parent filter.
func (s *SystemService) List(ctx context.Context, parentID *bson.ObjectID, rootsOnly bool) ([]*entities.System, error) {
	return s.systems.List(ctx, repositories.TreeFilter{ParentID: parentID, RootsOnly: rootsOnly})
}

// Delete removes a system, rejecting if it still has children.
func (s *SystemService) Delete(ctx context.Context, id bson.ObjectID) error {
	sys, err := s.systems.Get(ctx, id)
	if err != nil {
		return err
	}
	if sys == nil {
		return errs.Missing("system", id.Hex())
	}
	n, err := s.systems.CountChildSystems(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ChildrenExist("system")
	}
	return s.systems.Delete(ctx, id)
}

// Breadcrumbs returns the root-to-entity trail for a system.
func (s *SystemService) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*breadcrumb.Trail, error) {
	ancestors, err := s.systems.Ancestors(ctx, id, breadcrumb.TrailMaxLength)
	if err != nil {
		return nil, err
	}
	nodes := make([]breadcrumb.Node, len(ancestors))
	for i, a := range ancestors {
		nodes[i] = breadcrumb.Node{ID: a.ID, Name: a.Name, ParentID: a.ParentID}
	}
	return breadcrumb.Build(nodes)
}

// Update applies a partial update to a system, including moves (parent_id
// change, cycle-checked).
func (s *SystemService) Update(ctx context.Context, id bson.ObjectID, patch ports.UpdateSystemInput) (*entities.System, error) {
	system, err := s.systems.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, errs.Missing("system", id.Hex())
	}

	renamed := patch.Name != nil && *patch.Name != system.Name
	moved := patch.ParentSet && !samePointer(patch.ParentID, system.ParentID)

	newParentID := system.ParentID
	if patch.ParentSet {
		newParentID = patch.ParentID
	}

	if moved && patch.ParentID != nil {
		destination, err := s.systems.Get(ctx, *patch.ParentID)
		if err != nil {
			return nil, err
		}
		if destination == nil {
			return nil, errs.Missing("system", patch.ParentID.Hex())
		}
		descendant, err := s.systems.IsDescendant(ctx, id, *patch.ParentID)
		if err != nil {
			return nil, err
		}
		if descendant {
			return nil, errs.New(errs.KindInvalidAction, "Cannot move a system into its own subtree")
		}
	}

	newName := system.Name
	if patch.Name != nil {
		newName = *patch.Name
	}

	if renamed || moved {
		code := codeslug.Generate(newName)
		if n, err := s.systems.CountBySiblingCode(ctx, newParentID, code, &id); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, errs.Duplicate("system", code)
		}
		system.Code = code
	}

	system.Name = newName
	system.ParentID = newParentID
	if patch.Importance != nil {
		if !patch.Importance.Valid() {
			return nil, errs.New(errs.KindInvalidAction, "invalid importance: %q", *patch.Importance)
		}
		system.Importance = *patch.Importance
	}
	if patch.Description != nil {
		system.Description = patch.Description
	}
	if patch.Location != nil {
		system.Location = patch.Location
	}
	if patch.Owner != nil {
		system.Owner = patch.Owner
	}

	system.Touch()
	if err := s.systems.Update(ctx, system); err != nil {
		return nil, err
	}
	return system, nil
}
