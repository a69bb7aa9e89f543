package repositories

import (
	"database/sql"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type OperatorRepo struct {
	DB *sql.DB
}

func (r OperatorRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OperatorRepo) List() ([]models.Operator, error) {
	rows, err := r.db().Query(`SELECT id, name, contact_email, phone FROM operators ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Operator{}
	for rows.Next() {
		var o models.Operator
		if err := rows.Scan(&o.ID, &o.Name, &o.ContactEmail, &o.Phone); err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OperatorRepo) GetByID(id int64) (models.Operator, error) {
	var o models.Operator
	err := r.db().QueryRow(`SELECT id, name, contact_email, phone FROM operators WHERE id = ?`, id).
		Scan(&o.ID, &o.Name, &o.ContactEmail, &o.Phone)
	return o, err
}

func (r OperatorRepo) Create(o models.Operator) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO operators (name, contact_email, phone) VALUES (?, ?, ?)`,
		o.Name, o.ContactEmail, o.Phone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r OperatorRepo) Update(id int64, o models.Operator) error {
	_, err := r.db().Exec(`UPDATE operators SET name = ?, contact_email = ?, phone = ? WHERE id = ?`,
		o.Name, o.ContactEmail, o.Phone, id)
	return err
}

func (r OperatorRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM operators WHERE id = ?`, id)
	return err
}
