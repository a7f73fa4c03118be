package store

import (
	"context"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/jmgilman/go/errors"
	"github.com/uptrace/bun"
)

// CreateSchema creates the houses and persons tables when they are missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{(*domain.House)(nil), (*domain.Person)(nil)}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CodeDatabase, "create table")
		}
	}

	_, err := db.NewCreateIndex().
		Model((*domain.Person)(nil)).
		Index("persons_house_id_idx").
		Column("house_id").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "create persons_house_id_idx")
	}
	return nil
}
