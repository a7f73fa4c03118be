package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/Nikolay1992167/SpringMVC-sub000/servicecache"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"go.uber.org/zap"
)

// entityHandler serves the CRUD routes of one entity type.
type entityHandler[Req, Resp any] struct {
	svc       servicecache.EntityService[Req, Resp]
	validator *requestValidator
	logger    *zap.Logger
	kind      string
}

func newEntityHandler[Req, Resp any](svc servicecache.EntityService[Req, Resp], v *requestValidator, logger *zap.Logger, kind string) *entityHandler[Req, Resp] {
	return &entityHandler[Req, Resp]{
		svc:       svc,
		validator: v,
		logger:    logger.With(zap.String("entity", kind)),
		kind:      kind,
	}
}

// get handles GET /{uuid}. Cache-Control: no-cache forces a reload.
func (h *entityHandler[Req, Resp]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	ctx := r.Context()
	if noCache(r) {
		ctx = servicecache.WithCacheBypass(ctx)
	}

	resp, err := h.svc.FindByID(ctx, id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// list handles GET / with page and size query parameters.
func (h *entityHandler[Req, Resp]) list(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	result, err := h.svc.FindAll(r.Context(), page)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *entityHandler[Req, Resp]) create(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.svc.Save(r.Context(), req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *entityHandler[Req, Resp]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	req, err := h.decode(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *entityHandler[Req, Resp]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *entityHandler[Req, Resp]) decode(r *http.Request) (Req, error) {
	var req Req
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrapf(err, errors.CodeInvalidInput, "invalid %s request body", h.kind)
	}
	if err := h.validator.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func pathUUID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "uuid")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.InvalidInput("%q is not a valid uuid", raw)
	}
	return id, nil
}

func pageFromQuery(r *http.Request) (paging.Page, error) {
	var page paging.Page
	q := r.URL.Query()
	for name, dst := range map[string]*int{"page": &page.Number, "size": &page.Size} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return paging.Page{}, domain.InvalidInput("query parameter %s must be a positive integer", name)
		}
		*dst = n
	}
	return page.Normalize(), nil
}

func noCache(r *http.Request) bool {
	for _, directive := range strings.Split(r.Header.Get("Cache-Control"), ",") {
		if strings.EqualFold(strings.TrimSpace(directive), "no-cache") {
			return true
		}
	}
	return false
}
