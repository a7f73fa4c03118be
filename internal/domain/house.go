package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// House is the persisted house row.
type House struct {
	bun.BaseModel `bun:"table:houses,alias:h"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	Area       float64   `bun:"area,notnull"`
	Country    string    `bun:"country,notnull"`
	City       string    `bun:"city,notnull"`
	Street     string    `bun:"street,notnull"`
	Number     int       `bun:"number,notnull"`
	CreateDate time.Time `bun:"create_date,notnull"`
}

// HouseRequest is the client payload for creating or replacing a house.
type HouseRequest struct {
	Area    float64 `json:"area" validate:"required,gt=0"`
	Country string  `json:"country" validate:"required,max=50"`
	City    string  `json:"city" validate:"required,max=50"`
	Street  string  `json:"street" validate:"required,max=50"`
	Number  int     `json:"number" validate:"required,gt=0"`
}

// HouseResponse is the snapshot returned to clients and held by the house cache.
type HouseResponse struct {
	UUID       uuid.UUID `json:"uuid"`
	Area       float64   `json:"area"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	Number     int       `json:"number"`
	CreateDate time.Time `json:"create_date"`
}

// Apply copies the request fields onto h.
func (r HouseRequest) Apply(h *House) {
	h.Area = r.Area
	h.Country = r.Country
	h.City = r.City
	h.Street = r.Street
	h.Number = r.Number
}

// ToHouseResponse maps a persisted house to its response snapshot.
func ToHouseResponse(h *House) HouseResponse {
	return HouseResponse{
		UUID:       h.ID,
		Area:       h.Area,
		Country:    h.Country,
		City:       h.City,
		Street:     h.Street,
		Number:     h.Number,
		CreateDate: h.CreateDate,
	}
}

// HouseKey identifies a house snapshot in the cache.
func HouseKey(r HouseResponse) uuid.UUID { return r.UUID }
