package service

import (
	"context"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/store"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PersonService manages persons and their house membership.
type PersonService struct {
	persons *store.Store[*domain.Person]
	houses  *store.Store[*domain.House]
	opts    options
}

// NewPersonService creates a PersonService.
func NewPersonService(persons *store.Store[*domain.Person], houses *store.Store[*domain.House], opts ...Option) *PersonService {
	return &PersonService{persons: persons, houses: houses, opts: buildOptions(opts)}
}

func (s *PersonService) FindByID(ctx context.Context, id uuid.UUID) (domain.PersonResponse, error) {
	p, err := s.persons.FindByID(ctx, id)
	if err != nil {
		return domain.PersonResponse{}, err
	}
	return domain.ToPersonResponse(p), nil
}

func (s *PersonService) FindAll(ctx context.Context, page paging.Page) (paging.Result[domain.PersonResponse], error) {
	records, total, err := s.persons.List(ctx, page)
	if err != nil {
		return paging.Result[domain.PersonResponse]{}, err
	}
	return paging.Map(paging.NewResult(records, page, total), domain.ToPersonResponse), nil
}

func (s *PersonService) Save(ctx context.Context, req domain.PersonRequest) (domain.PersonResponse, error) {
	houseID, err := s.resolveHouse(ctx, req.HouseUUID)
	if err != nil {
		return domain.PersonResponse{}, err
	}

	now := s.opts.now()
	p := &domain.Person{ID: uuid.New(), CreateDate: now, UpdateDate: now}
	req.Apply(p, houseID)

	if _, err := s.persons.Save(ctx, p); err != nil {
		return domain.PersonResponse{}, err
	}
	s.opts.logger.Info("person created", zap.Stringer("uuid", p.ID), zap.Stringer("house", houseID))
	return s.FindByID(ctx, p.ID)
}

// Update replaces the editable fields, bumps the update date and returns the
// row as stored afterwards.
func (s *PersonService) Update(ctx context.Context, id uuid.UUID, req domain.PersonRequest) (domain.PersonResponse, error) {
	p, err := s.persons.FindByID(ctx, id)
	if err != nil {
		return domain.PersonResponse{}, err
	}
	houseID, err := s.resolveHouse(ctx, req.HouseUUID)
	if err != nil {
		return domain.PersonResponse{}, err
	}

	req.Apply(p, houseID)
	p.UpdateDate = s.opts.now()

	if _, err := s.persons.Update(ctx, p); err != nil {
		return domain.PersonResponse{}, err
	}
	return s.FindByID(ctx, id)
}

func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.persons.Delete(ctx, id); err != nil {
		return err
	}
	s.opts.logger.Info("person deleted", zap.Stringer("uuid", id))
	return nil
}

func (s *PersonService) resolveHouse(ctx context.Context, raw string) (uuid.UUID, error) {
	houseID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.InvalidInput("house_uuid %q is not a valid uuid", raw)
	}
	if _, err := s.houses.FindByID(ctx, houseID); err != nil {
		return uuid.Nil, err
	}
	return houseID, nil
}
