package country

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("country not found")

type Repository interface {
	List() []Country
	GetByCode(code string) (Country, error)
	GetByName(name string) (Country, error)
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	countries []Country
}

func NewInMemoryRepository(seed []Country) *InMemoryRepository {
	repo := &InMemoryRepository{
		countries: make([]Country, 0, len(seed)),
	}

	nextID := int64(1)
	for _, c := range seed {
		if c.ID == 0 {
			c.ID = nextID
		}
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
		repo.countries = append(repo.countries, c)
	}

	return repo
}

func (r *InMemoryRepository) List() []Country {
	r.mu.RLock()
	defer r.mu.RUnlock()

	countries := make([]Country, len(r.countries))
	copy(countries, r.countries)
	return countries
}

func (r *InMemoryRepository) GetByCode(code string) (Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.countries {
		if c.Code == code {
			return c, nil
		}
	}

	return Country{}, ErrNotFound
}

func (r *InMemoryRepository) GetByName(name string) (Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.countries {
		if c.Name == name {
			return c, nil
		}
	}

	return Country{}, ErrNotFound
}
