package repositories

import (
	"database/sql"

	intconfig "busticket/internal/config"
	intdb "busticket/internal/db"
	"busticket/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, COALESCE(address, ''), role, created_at
		FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Address, &u.Role, &u.CreatedAt)
	return u, err
}

// GetCredentials looks a user up by email or username and returns the
// stored password hash alongside the profile.
func (r UserRepo) GetCredentials(login string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, COALESCE(address, ''), role, created_at, password_hash
		FROM users WHERE email = ? OR username = ?
	`, login, login).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Address, &u.Role, &u.CreatedAt, &hash)
	return u, hash, err
}

func (r UserRepo) Exists(email, username string) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, email, username).Scan(&n)
	return n > 0, err
}

func (r UserRepo) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, address, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.Name, u.Username, u.Email, u.Phone, intdb.NullIfEmpty(u.Address), passwordHash, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) UpdateProfile(id int64, phone, address string) error {
	_, err := r.db().Exec(`UPDATE users SET phone = ?, address = ? WHERE id = ?`, phone, address, id)
	return err
}
