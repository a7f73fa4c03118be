// Package store is the persistence collaborator of the entity services: a
// thin layer over go-repository-bun that speaks uuids and the domain error
// codes.
package store

import (
	"context"
	"database/sql"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"github.com/uptrace/bun"
)

// Store persists records of one entity type.
type Store[T any] struct {
	repo repository.Repository[T]
	kind string
}

// New wraps repo. kind names the entity in error messages ("House").
func New[T any](repo repository.Repository[T], kind string) *Store[T] {
	return &Store[T]{repo: repo, kind: kind}
}

// FindByID returns the record with id or a CodeNotFound error.
func (s *Store[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	record, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		var zero T
		return zero, s.translate(err, id, "find")
	}
	return record, nil
}

// Save inserts record. The caller assigns the id.
func (s *Store[T]) Save(ctx context.Context, record T) (T, error) {
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, errors.CodeDatabase, "save %s", s.kind)
	}
	return created, nil
}

// Update writes record over the existing row with the same id.
func (s *Store[T]) Update(ctx context.Context, record T) (T, error) {
	id := s.repo.Handlers().GetID(record)
	if _, err := s.FindByID(ctx, id); err != nil {
		var zero T
		return zero, err
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		var zero T
		return zero, s.translate(err, id, "update")
	}
	return updated, nil
}

// Delete removes the row with id and returns what was deleted.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) (T, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := s.repo.Delete(ctx, record); err != nil {
		var zero T
		return zero, s.translate(err, id, "delete")
	}
	return record, nil
}

// List returns one page ordered by creation date, plus the total row count.
func (s *Store[T]) List(ctx context.Context, page paging.Page) ([]T, int, error) {
	page = page.Normalize()
	records, total, err := s.repo.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("create_date ASC", "id ASC").Limit(page.Size).Offset(page.Offset())
	})
	if err != nil {
		return nil, 0, errors.Wrapf(err, errors.CodeDatabase, "list %s", s.kind)
	}
	return records, total, nil
}

// CountWhere counts rows whose column equals value.
func (s *Store[T]) CountWhere(ctx context.Context, column string, value any) (int, error) {
	n, err := s.repo.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? = ?", bun.Ident(column), value)
	})
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeDatabase, "count %s", s.kind)
	}
	return n, nil
}

func (s *Store[T]) translate(err error, id uuid.UUID, op string) error {
	if repository.IsRecordNotFound(err) || errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(s.kind, id)
	}
	return errors.WithContext(
		errors.Wrapf(err, errors.CodeDatabase, "%s %s", op, s.kind),
		"uuid", id.String(),
	)
}
