package user

import (
	"database/sql"

	"github.com/gvormbrock/user-registry-backend/internal/country"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT u.id, u.gender, u.name, u.birthday, u.phone_number, c.id, c.name, c.country_code
		FROM users u
		JOIN countries c ON c.id = u.country_id
		ORDER BY u.id
	`
	getUserByIDQuery = `
		SELECT u.id, u.gender, u.name, u.birthday, u.phone_number, c.id, c.name, c.country_code
		FROM users u
		JOIN countries c ON c.id = u.country_id
		WHERE u.id = $1
	`
	getUserByNameAndBirthdayQuery = `
		SELECT u.id, u.gender, u.name, u.birthday, u.phone_number, c.id, c.name, c.country_code
		FROM users u
		JOIN countries c ON c.id = u.country_id
		WHERE u.name = $1 AND u.birthday = $2
		ORDER BY u.id
	`

	insertUserQuery = `
		INSERT INTO users (gender, name, birthday, country_id, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	insertUserWithIDQuery = `
		INSERT INTO users (id, gender, name, birthday, country_id, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	updateUserQuery = `
		UPDATE users
		SET gender = $1,
			name = $2,
			birthday = $3,
			country_id = $4,
			phone_number = $5
		WHERE id = $6
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, u)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int64) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *PostgresRepository) GetByNameAndBirthday(name string, birthday Date) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByNameAndBirthdayQuery, name, birthday))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

// Save upserts. With an id the existing row is updated; if no row matches,
// the record is inserted under that id. Without an id a fresh id is
// assigned by the database.
func (r *PostgresRepository) Save(user User) (User, error) {
	if user.ID == 0 {
		var id int64
		err := r.db.QueryRow(
			insertUserQuery,
			nullable(user.Gender),
			user.Name,
			user.Birthday,
			user.Country.ID,
			nullable(user.PhoneNumber),
		).Scan(&id)
		if err != nil {
			return User{}, err
		}

		user.ID = id
		return user, nil
	}

	result, err := r.db.Exec(
		updateUserQuery,
		nullable(user.Gender),
		user.Name,
		user.Birthday,
		user.Country.ID,
		nullable(user.PhoneNumber),
		user.ID,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		if _, err := r.db.Exec(
			insertUserWithIDQuery,
			user.ID,
			nullable(user.Gender),
			user.Name,
			user.Birthday,
			user.Country.ID,
			nullable(user.PhoneNumber),
		); err != nil {
			return User{}, err
		}
	}

	return user, nil
}

func (r *PostgresRepository) Delete(id int64) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var gender sql.NullString
	var phone sql.NullString
	var c country.Country

	if err := scanner.Scan(
		&u.ID,
		&gender,
		&u.Name,
		&u.Birthday,
		&phone,
		&c.ID,
		&c.Name,
		&c.Code,
	); err != nil {
		return User{}, err
	}

	if gender.Valid {
		u.Gender = gender.String
	}
	if phone.Valid {
		u.PhoneNumber = phone.String
	}
	u.Country = c

	return u, nil
}
