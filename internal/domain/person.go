package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Sex of a person.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// Person is the persisted person row. Every person lives in exactly one house.
type Person struct {
	bun.BaseModel `bun:"table:persons,alias:p"`

	ID             uuid.UUID `bun:"id,pk,type:uuid"`
	Name           string    `bun:"name,notnull"`
	Surname        string    `bun:"surname,notnull"`
	Sex            Sex       `bun:"sex,notnull"`
	PassportSeries string    `bun:"passport_series,notnull"`
	PassportNumber string    `bun:"passport_number,notnull"`
	HouseID        uuid.UUID `bun:"house_id,type:uuid,notnull"`
	CreateDate     time.Time `bun:"create_date,notnull"`
	UpdateDate     time.Time `bun:"update_date,notnull"`
}

// PersonRequest is the client payload for creating or replacing a person.
type PersonRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=15"`
	Surname        string `json:"surname" validate:"required,min=2,max=15"`
	Sex            Sex    `json:"sex" validate:"required,oneof=Male Female"`
	PassportSeries string `json:"passport_series" validate:"required,len=2,alpha"`
	PassportNumber string `json:"passport_number" validate:"required,len=7,numeric"`
	HouseUUID      string `json:"house_uuid" validate:"required,uuid"`
}

// PersonResponse is the snapshot returned to clients and held by the person cache.
type PersonResponse struct {
	UUID           uuid.UUID `json:"uuid"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Sex            Sex       `json:"sex"`
	PassportSeries string    `json:"passport_series"`
	PassportNumber string    `json:"passport_number"`
	HouseUUID      uuid.UUID `json:"house_uuid"`
	CreateDate     time.Time `json:"create_date"`
	UpdateDate     time.Time `json:"update_date"`
}

// Apply copies the request fields onto p. houseID is the parsed HouseUUID.
func (r PersonRequest) Apply(p *Person, houseID uuid.UUID) {
	p.Name = r.Name
	p.Surname = r.Surname
	p.Sex = r.Sex
	p.PassportSeries = r.PassportSeries
	p.PassportNumber = r.PassportNumber
	p.HouseID = houseID
}

// ToPersonResponse maps a persisted person to its response snapshot.
func ToPersonResponse(p *Person) PersonResponse {
	return PersonResponse{
		UUID:           p.ID,
		Name:           p.Name,
		Surname:        p.Surname,
		Sex:            p.Sex,
		PassportSeries: p.PassportSeries,
		PassportNumber: p.PassportNumber,
		HouseUUID:      p.HouseID,
		CreateDate:     p.CreateDate,
		UpdateDate:     p.UpdateDate,
	}
}

// PersonKey identifies a person snapshot in the cache.
func PersonKey(r PersonResponse) uuid.UUID { return r.UUID }
