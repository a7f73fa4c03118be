package service

import (
	"context"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/store"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"go.uber.org/zap"
)

// HouseService manages houses.
type HouseService struct {
	houses  *store.Store[*domain.House]
	persons *store.Store[*domain.Person]
	opts    options
}

// NewHouseService creates a HouseService. persons is consulted before a
// house is deleted.
func NewHouseService(houses *store.Store[*domain.House], persons *store.Store[*domain.Person], opts ...Option) *HouseService {
	return &HouseService{houses: houses, persons: persons, opts: buildOptions(opts)}
}

func (s *HouseService) FindByID(ctx context.Context, id uuid.UUID) (domain.HouseResponse, error) {
	h, err := s.houses.FindByID(ctx, id)
	if err != nil {
		return domain.HouseResponse{}, err
	}
	return domain.ToHouseResponse(h), nil
}

func (s *HouseService) FindAll(ctx context.Context, page paging.Page) (paging.Result[domain.HouseResponse], error) {
	records, total, err := s.houses.List(ctx, page)
	if err != nil {
		return paging.Result[domain.HouseResponse]{}, err
	}
	return paging.Map(paging.NewResult(records, page, total), domain.ToHouseResponse), nil
}

func (s *HouseService) Save(ctx context.Context, req domain.HouseRequest) (domain.HouseResponse, error) {
	h := &domain.House{ID: uuid.New(), CreateDate: s.opts.now()}
	req.Apply(h)

	if _, err := s.houses.Save(ctx, h); err != nil {
		return domain.HouseResponse{}, err
	}
	s.opts.logger.Info("house created", zap.Stringer("uuid", h.ID))
	return s.FindByID(ctx, h.ID)
}

// Update replaces the editable fields of the house and returns the row as
// stored afterwards.
func (s *HouseService) Update(ctx context.Context, id uuid.UUID, req domain.HouseRequest) (domain.HouseResponse, error) {
	h, err := s.houses.FindByID(ctx, id)
	if err != nil {
		return domain.HouseResponse{}, err
	}
	req.Apply(h)

	if _, err := s.houses.Update(ctx, h); err != nil {
		return domain.HouseResponse{}, err
	}
	return s.FindByID(ctx, id)
}

// Delete removes an empty house. Houses with residents are a conflict.
func (s *HouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.houses.FindByID(ctx, id); err != nil {
		return err
	}

	residents, err := s.persons.CountWhere(ctx, "house_id", id)
	if err != nil {
		return err
	}
	if residents > 0 {
		return errors.WithContext(
			errors.Newf(errors.CodeConflict, "house with uuid %s still has %d residents", id, residents),
			"uuid", id.String(),
		)
	}

	if _, err := s.houses.Delete(ctx, id); err != nil {
		return err
	}
	s.opts.logger.Info("house deleted", zap.Stringer("uuid", id))
	return nil
}
