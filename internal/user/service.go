package user

import (
	"fmt"
	"time"

	"github.com/gvormbrock/user-registry-backend/internal/apperr"
	"github.com/gvormbrock/user-registry-backend/internal/country"
)

type Service struct {
	repo      Repository
	countries *country.Service
}

func NewService(repo Repository, countries *country.Service) *Service {
	return &Service{repo: repo, countries: countries}
}

// Save validates and persists a transfer record. Checks run in fixed order
// and the first failure wins: field validation, country resolution, the
// nationality rule, the age rule, then (when verifyUnique is set) the
// duplicate check. Skipping the duplicate check is what makes updating an
// existing user under the same name and birthday possible; there is no
// separate update entry point.
func (s *Service) Save(dto Dto, verifyUnique bool) (Dto, error) {
	if msg := validate(dto); msg != "" {
		return Dto{}, apperr.NewServerError(apperr.CodeValidation, "Validation error : "+msg)
	}

	var code, name string
	if dto.CountryCode != nil {
		code = *dto.CountryCode
	}
	if dto.CountryName != nil {
		name = *dto.CountryName
	}

	resolved, err := s.countries.Resolve(code, name)
	if err != nil {
		return Dto{}, err
	}

	u := toUser(dto, resolved)
	if resolved.Code != "fr" {
		return Dto{}, apperr.NewServerError(apperr.CodeNotFrench, "User must be french to be added")
	}

	if countYears(dto.Birthday) < 18 {
		return Dto{}, apperr.NewServerError(apperr.CodeUnderage, "User must be at least 18 years old to be added")
	}

	if verifyUnique {
		if _, found := s.FindByNameAndBirthday(u.Name, u.Birthday); found {
			return Dto{}, apperr.NewServerError(
				apperr.CodeDuplicateUser,
				fmt.Sprintf("The user of name %s borne the %s ever exists", u.Name, u.Birthday),
			)
		}
	}

	saved, err := s.repo.Save(u)
	if err != nil {
		return Dto{}, err
	}

	// The caller may have supplied only one of the two country fields;
	// the response always carries both.
	dto.ID = &saved.ID
	dto.CountryName = &resolved.Name
	dto.CountryCode = &resolved.Code
	return dto, nil
}

func (s *Service) FindAll() []Dto {
	users := s.repo.List()
	dtos := make([]Dto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDto(u))
	}
	return dtos
}

func (s *Service) FindByID(id int64) (Dto, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return Dto{}, apperr.NewNotFoundError(
				apperr.CodeUserNotFound,
				fmt.Sprintf("User with id = %d does not exists", id),
			)
		}
		return Dto{}, err
	}

	return toDto(u), nil
}

func (s *Service) FindByNameAndBirthday(name string, birthday Date) (Dto, bool) {
	u, err := s.repo.GetByNameAndBirthday(name, birthday)
	if err != nil {
		return Dto{}, false
	}

	return toDto(u), true
}

// DeleteByID removes the record after confirming it really exists. The
// storage layer may hand back a placeholder with empty fields instead of
// failing on a missing id, so an empty name counts as absent.
func (s *Service) DeleteByID(id int64) error {
	u, err := s.repo.GetByID(id)
	if err != nil && err != ErrNotFound {
		return err
	}
	if err == ErrNotFound || u.Name == "" {
		return apperr.NewNotFoundError(
			apperr.CodeDeleteNotFound,
			fmt.Sprintf("User of id = %d does not exist.", id),
		)
	}

	return s.repo.Delete(id)
}

// countYears is the whole-year truncation of the absolute day distance to
// now, divided by 365. A missing birthday counts as age 0; the validator
// rejects it before this runs.
func countYears(birthday *Date) int64 {
	if birthday == nil {
		return 0
	}

	days := int64(time.Since(birthday.Time).Abs().Hours() / 24)
	return days / 365
}
