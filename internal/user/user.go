package user

import "github.com/gvormbrock/user-registry-backend/internal/country"

// User is the stored representation. A persisted user always carries a
// non-empty name and a resolved country.
type User struct {
	ID          int64
	Gender      string
	Name        string
	Birthday    Date
	Country     country.Country
	PhoneNumber string
}

// Dto is the wire representation. Country may arrive as a name, a code, or
// both; responses always carry both. Nulls are serialized on purpose.
type Dto struct {
	ID          *int64  `json:"id"`
	Gender      *string `json:"gender"`
	Name        string  `json:"name"`
	Birthday    *Date   `json:"birthday"`
	CountryName *string `json:"countryName"`
	CountryCode *string `json:"countryCode"`
	PhoneNumber *string `json:"phoneNumber"`
}

func toDto(u User) Dto {
	id := u.ID
	birthday := u.Birthday
	name := u.Country.Name
	code := u.Country.Code

	dto := Dto{
		ID:          &id,
		Name:        u.Name,
		Birthday:    &birthday,
		CountryName: &name,
		CountryCode: &code,
	}

	if u.Gender != "" {
		gender := u.Gender
		dto.Gender = &gender
	}
	if u.PhoneNumber != "" {
		phone := u.PhoneNumber
		dto.PhoneNumber = &phone
	}

	return dto
}

func toUser(dto Dto, c country.Country) User {
	u := User{
		Name:    dto.Name,
		Country: c,
	}

	if dto.ID != nil {
		u.ID = *dto.ID
	}
	if dto.Gender != nil {
		u.Gender = *dto.Gender
	}
	if dto.Birthday != nil {
		u.Birthday = *dto.Birthday
	}
	if dto.PhoneNumber != nil {
		u.PhoneNumber = *dto.PhoneNumber
	}

	return u
}
