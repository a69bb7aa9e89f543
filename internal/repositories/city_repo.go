package repositories

import (
	"database/sql"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type CityRepo struct {
	DB *sql.DB
}

func (r CityRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CityRepo) List() ([]models.City, error) {
	rows, err := r.db().Query(`SELECT id, name FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepo) GetByID(id int64) (models.City, error) {
	var c models.City
	err := r.db().QueryRow(`SELECT id, name FROM cities WHERE id = ?`, id).
		Scan(&c.ID, &c.Name)
	return c, err
}

func (r CityRepo) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO cities (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CityRepo) Update(id int64, name string) error {
	_, err := r.db().Exec(`UPDATE cities SET name = ? WHERE id = ?`, name, id)
	return err
}

func (r CityRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM cities WHERE id = ?`, id)
	return err
}
