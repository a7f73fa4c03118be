package di

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/google/uuid"
)

// apiClient issues JSON requests against the container's handler.
type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func (c apiClient) do(method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

// deleteRow removes a row behind the services' back so that only a cached
// copy can still answer.
func deleteRow(t *testing.T, container *Container, model any, id uuid.UUID) {
	t.Helper()
	_, err := container.DB().NewDelete().Model(model).Where("id = ?", id).Exec(context.Background())
	if err != nil {
		t.Fatalf("delete row: %v", err)
	}
}

func TestEndToEndCachedHouseFlow(t *testing.T) {
	container := newTestContainer(t, testConfig(), nil)
	api := apiClient{t: t, handler: container.Handler()}

	rec := api.do(http.MethodPost, "/api/v1/houses", domain.HouseRequest{
		Area: 64, Country: "Belarus", City: "Minsk", Street: "Surganova", Number: 21,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.HouseResponse](t, rec)

	// The write-through put makes the house readable even once the row is gone.
	deleteRow(t, container, (*domain.House)(nil), created.UUID)

	rec = api.do(http.MethodGet, "/api/v1/houses/"+created.UUID.String(), nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected cached 200, got %d", rec.Code)
	}
	if got := decode[domain.HouseResponse](t, rec); got.City != "Minsk" {
		t.Errorf("expected cached city Minsk, got %q", got.City)
	}

	rec = api.do(http.MethodGet, "/api/v1/houses/"+created.UUID.String(), nil, http.Header{"Cache-Control": {"no-cache"}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected bypassed read to reach the store and miss, got %d", rec.Code)
	}
}

func TestEndToEndPersonLifecycle(t *testing.T) {
	container := newTestContainer(t, testConfig(), nil)
	api := apiClient{t: t, handler: container.Handler()}

	rec := api.do(http.MethodPost, "/api/v1/houses", domain.HouseRequest{
		Area: 80, Country: "Belarus", City: "Grodno", Street: "Ozheshko", Number: 5,
	}, nil)
	house := decode[domain.HouseResponse](t, rec)

	person := domain.PersonRequest{
		Name: "Anna", Surname: "Ivanova", Sex: domain.SexFemale,
		PassportSeries: "KH", PassportNumber: "7654321", HouseUUID: house.UUID.String(),
	}
	rec = api.do(http.MethodPost, "/api/v1/persons", person, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.PersonResponse](t, rec)

	rec = api.do(http.MethodDelete, "/api/v1/houses/"+house.UUID.String(), nil, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 while the house has residents, got %d", rec.Code)
	}

	person.Name = "Hanna"
	rec = api.do(http.MethodPut, "/api/v1/persons/"+created.UUID.String(), person, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[domain.PersonResponse](t, rec); got.Name != "Hanna" {
		t.Errorf("expected updated name, got %q", got.Name)
	}

	rec = api.do(http.MethodGet, "/api/v1/persons/"+created.UUID.String(), nil, nil)
	if got := decode[domain.PersonResponse](t, rec); got.Name != "Hanna" {
		t.Errorf("expected cached value to follow the update, got %q", got.Name)
	}

	rec = api.do(http.MethodDelete, "/api/v1/persons/"+created.UUID.String(), nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = api.do(http.MethodGet, "/api/v1/persons/"+created.UUID.String(), nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}

	rec = api.do(http.MethodDelete, "/api/v1/houses/"+house.UUID.String(), nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected house delete to succeed once empty, got %d", rec.Code)
	}
}

func TestFailedWriteKeepsCachedEntity(t *testing.T) {
	container := newTestContainer(t, testConfig(), nil)
	ctx := context.Background()
	houses := container.Houses()

	created, err := houses.Save(ctx, domain.HouseRequest{
		Area: 30, Country: "Belarus", City: "Brest", Street: "Sovetskaya", Number: 9,
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	_, err = container.Persons().Save(ctx, domain.PersonRequest{
		Name: "Oleg", Surname: "Sidorov", Sex: domain.SexMale,
		PassportSeries: "MP", PassportNumber: "1111111", HouseUUID: created.UUID.String(),
	})
	if err != nil {
		t.Fatalf("person Save() failed: %v", err)
	}

	if err := houses.Delete(ctx, created.UUID); err == nil {
		t.Fatal("expected delete of an occupied house to fail")
	}

	deleteRow(t, container, (*domain.House)(nil), created.UUID)
	got, err := houses.FindByID(ctx, created.UUID)
	if err != nil {
		t.Fatalf("expected the cached house to survive the failed delete, got %v", err)
	}
	if got.City != "Brest" {
		t.Errorf("expected Brest, got %q", got.City)
	}
}

func TestListQueryCacheInvalidation(t *testing.T) {
	container := newTestContainer(t, testConfig(), nil)
	ctx := context.Background()
	houses := container.Houses()

	save := func(city string) {
		t.Helper()
		if _, err := houses.Save(ctx, domain.HouseRequest{
			Area: 50, Country: "Belarus", City: city, Street: "Lenina", Number: 1,
		}); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	save("Minsk")
	first, err := houses.FindAll(ctx, paging.Page{})
	if err != nil {
		t.Fatalf("FindAll() failed: %v", err)
	}
	if first.Total != 1 {
		t.Fatalf("expected 1 house, got %d", first.Total)
	}

	save("Vitebsk")
	second, err := houses.FindAll(ctx, paging.Page{})
	if err != nil {
		t.Fatalf("FindAll() failed: %v", err)
	}
	if second.Total != 2 {
		t.Errorf("expected the listing to be refreshed after save, got total %d", second.Total)
	}
}

func TestCachingDisabledReadsThrough(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Algorithm = ""
	container := newTestContainer(t, cfg, nil)
	ctx := context.Background()

	created, err := container.Houses().Save(ctx, domain.HouseRequest{
		Area: 45, Country: "Belarus", City: "Mogilev", Street: "Pervomayskaya", Number: 3,
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	deleteRow(t, container, (*domain.House)(nil), created.UUID)

	if _, err := container.Houses().FindByID(ctx, created.UUID); !domain.IsNotFound(err) {
		t.Errorf("expected not found without a cache, got %v", err)
	}
}

func TestEvictionThroughContainer(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Algorithm = "LRUCache"
	cfg.Cache.Capacity = 2
	container := newTestContainer(t, cfg, nil)
	ctx := context.Background()
	houses := container.Houses()

	ids := make([]uuid.UUID, 0, 3)
	for _, city := range []string{"Minsk", "Brest", "Gomel"} {
		h, err := houses.Save(ctx, domain.HouseRequest{
			Area: 50, Country: "Belarus", City: city, Street: "Lenina", Number: 1,
		})
		if err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		ids = append(ids, h.UUID)
	}
	for _, id := range ids {
		deleteRow(t, container, (*domain.House)(nil), id)
	}

	if _, err := houses.FindByID(ctx, ids[0]); !domain.IsNotFound(err) {
		t.Errorf("expected the oldest house to be evicted, got %v", err)
	}
	for _, id := range ids[1:] {
		if _, err := houses.FindByID(ctx, id); err != nil {
			t.Errorf("expected %s to be cached, got %v", id, err)
		}
	}
}
