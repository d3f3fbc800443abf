package country

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCountriesQuery = `
		SELECT id, name, country_code
		FROM countries
		ORDER BY id
	`
	getCountryByCodeQuery = `
		SELECT id, name, country_code
		FROM countries
		WHERE country_code = $1
	`
	getCountryByNameQuery = `
		SELECT id, name, country_code
		FROM countries
		WHERE name = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Country {
	rows, err := r.db.Query(listCountriesQuery)
	if err != nil {
		return []Country{}
	}
	defer rows.Close()

	countries := make([]Country, 0)
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			continue
		}
		countries = append(countries, c)
	}

	return countries
}

func (r *PostgresRepository) GetByCode(code string) (Country, error) {
	return r.scanOne(r.db.QueryRow(getCountryByCodeQuery, code))
}

func (r *PostgresRepository) GetByName(name string) (Country, error) {
	return r.scanOne(r.db.QueryRow(getCountryByNameQuery, name))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (Country, error) {
	var c Country
	if err := row.Scan(&c.ID, &c.Name, &c.Code); err != nil {
		if err == sql.ErrNoRows {
			return Country{}, ErrNotFound
		}
		return Country{}, err
	}

	return c, nil
}
