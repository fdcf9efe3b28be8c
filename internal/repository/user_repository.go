package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cargolink/freight-backend/internal/model"
)

// UserRepo persists accounts in the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and populates the generated ID. The caller supplies
// a ready bcrypt hash; plaintext never reaches this layer. Email is
// normalized to lower case before insert.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, email, password_hash, company_name, phone_number, role) VALUES (?,?,?,?,?,?)",
		u.FullName, u.Email, u.PasswordHash, u.CompanyName, u.PhoneNumber, string(u.Role))
	if err != nil {
		if isDuplicateKey(err) {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, email, password_hash, company_name, phone_number, role, created_at, updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CompanyName, &u.PhoneNumber, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, email, password_hash, company_name, phone_number, role, created_at, updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CompanyName, &u.PhoneNumber, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
