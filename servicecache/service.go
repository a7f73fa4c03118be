package servicecache

import (
	"context"

	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/google/uuid"
)

// EntityService is the CRUD contract shared by the persistence-backed services
// and the cached decorator. Req is the inbound payload, Resp the outbound view.
type EntityService[Req, Resp any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (Resp, error)
	FindAll(ctx context.Context, page paging.Page) (paging.Result[Resp], error)
	Save(ctx context.Context, req Req) (Resp, error)
	Update(ctx context.Context, id uuid.UUID, req Req) (Resp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
