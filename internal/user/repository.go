package user

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	List() []User
	GetByID(id int64) (User, error)
	GetByNameAndBirthday(name string, birthday Date) (User, error)
	Save(user User) (User, error)
	Delete(id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}

	var maxID int64
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *InMemoryRepository) GetByID(id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByNameAndBirthday(name string, birthday Date) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Name == name && u.Birthday.String() == birthday.String() {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

// Save upserts: a user carrying an id replaces the stored record with that
// id (or is inserted under it when none exists); otherwise a fresh id is
// assigned.
func (r *InMemoryRepository) Save(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		r.users = append(r.users, user)
		return user, nil
	}

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return user, nil
		}
	}

	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
