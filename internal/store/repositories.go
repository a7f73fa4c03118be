package store

import (
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewHouseRepository builds the bun repository for houses.
func NewHouseRepository(db *bun.DB) repository.Repository[*domain.House] {
	return repository.NewRepository[*domain.House](db, repository.ModelHandlers[*domain.House]{
		NewRecord: func() *domain.House { return &domain.House{} },
		GetID: func(h *domain.House) uuid.UUID {
			if h == nil {
				return uuid.Nil
			}
			return h.ID
		},
		SetID:         func(h *domain.House, id uuid.UUID) { h.ID = id },
		GetIdentifier: func() string { return "id" },
	})
}

// NewPersonRepository builds the bun repository for persons.
func NewPersonRepository(db *bun.DB) repository.Repository[*domain.Person] {
	return repository.NewRepository[*domain.Person](db, repository.ModelHandlers[*domain.Person]{
		NewRecord: func() *domain.Person { return &domain.Person{} },
		GetID: func(p *domain.Person) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID:         func(p *domain.Person, id uuid.UUID) { p.ID = id },
		GetIdentifier: func() string { return "id" },
	})
}
