package country

import (
	"fmt"

	"github.com/gvormbrock/user-registry-backend/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Country {
	return s.repo.List()
}

func (s *Service) FindByCode(code string) (Country, error) {
	return s.repo.GetByCode(code)
}

func (s *Service) FindByName(name string) (Country, error) {
	return s.repo.GetByName(name)
}

// Resolve looks a country up by code when one is given, otherwise by name.
// Exactly one lookup runs per call. A miss yields the coded country-not-found
// failure naming both attempted values.
func (s *Service) Resolve(code, name string) (Country, error) {
	var (
		found Country
		err   error
	)

	if code != "" {
		found, err = s.repo.GetByCode(code)
	} else {
		found, err = s.repo.GetByName(name)
	}

	if err != nil {
		if err == ErrNotFound {
			return Country{}, apperr.NewServerError(
				apperr.CodeCountryNotFound,
				fmt.Sprintf("The country code %s does not exists or the country name %s does not exists.", code, name),
			)
		}
		return Country{}, err
	}

	return found, nil
}
