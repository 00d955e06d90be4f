package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/utils"
)

// AdminUserRepo is the credential store for admin accounts. Every write
// path that touches the password hashes the plaintext here, so records
// can never be persisted with the original secret.
type AdminUserRepo struct {
	db   *gorm.DB
	cost int // bcrypt cost factor
}

func NewAdminUserRepo(db *gorm.DB, cost int) *AdminUserRepo {
	return &AdminUserRepo{db: db, cost: cost}
}

// validateNewUser rejects records before any hashing happens.
func validateNewUser(u *model.AdminUser, plaintext string) error {
	if strings.TrimSpace(u.Username) == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if strings.TrimSpace(u.Name) == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}
	if len(plaintext) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	return nil
}

// Create validates the record, hashes the plaintext password and inserts
// the user. The plaintext never reaches the database.
func (r *AdminUserRepo) Create(ctx context.Context, u *model.AdminUser, plaintext string) error {
	if err := validateNewUser(u, plaintext); err != nil {
		return err
	}
	hash, err := utils.HashPassword(plaintext, r.cost)
	if err != nil {
		return err
	}
	u.Password = hash
	if u.Role == "" {
		u.Role = "admin"
	}
	err = r.db.WithContext(ctx).Create(u).Error
	if err != nil && isDuplicateKey(err) {
		return ErrUsernameExists
	}
	return err
}

// GetByUsername fetches a user by exact username.
func (r *AdminUserRepo) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by primary key.
func (r *AdminUserRepo) GetByID(ctx context.Context, id uint64) (model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, ErrNotFound
	}
	return u, err
}

// List returns all admin users ordered by username.
func (r *AdminUserRepo) List(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}

// UpdatePassword re-hashes and stores a new password for the given user.
func (r *AdminUserRepo) UpdatePassword(ctx context.Context, id uint64, plaintext string) error {
	if len(plaintext) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	hash, err := utils.HashPassword(plaintext, r.cost)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&model.AdminUser{}).Where("id = ?", id).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful authentication.
func (r *AdminUserRepo) TouchLastLogin(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AdminUser{}).Where("id = ?", id).
		Update("last_login", at).Error
}

// isDuplicateKey matches the MySQL unique-constraint violation (1062).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}
