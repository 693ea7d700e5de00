package repositories

import (
	"errors"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	EmailExists(email string) (bool, error)
	SearchUsers(keyword string, offset, limit int) ([]models.UserRow, error)
	MaxNumericID() (int, error)
}

// GormUserRepository implements UserRepository on the relational store
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateUser creates a new user account
func (r *GormUserRepository) CreateUser(user *models.User) error {
	return storageErr("create user", r.db.Create(user).Error)
}

// GetUserByID retrieves a user by ID
func (r *GormUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "user", ID: id}
		}
		return nil, &models.StorageError{Op: "get user", Err: err}
	}
	return &user, nil
}

// EmailExists reports whether an account already uses the email (case-insensitive)
func (r *GormUserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, &models.StorageError{Op: "check email", Err: err}
	}
	return count > 0, nil
}

// SearchUsers searches for users by name (case-insensitive), shortest names first
func (r *GormUserRepository) SearchUsers(keyword string, offset, limit int) ([]models.UserRow, error) {
	var users []models.UserRow
	err := r.db.Model(&models.User{}).
		Select("id, name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+keyword+"%").
		Order("LENGTH(name) ASC").
		Limit(limit).
		Offset(offset).
		Scan(&users).Error
	if err != nil {
		return nil, &models.StorageError{Op: "search users", Err: err}
	}
	return users, nil
}

// MaxNumericID returns the highest user ID interpreted as an integer, or 0 if
// there are no users. New IDs are allocated one past this value.
func (r *GormUserRepository) MaxNumericID() (int, error) {
	var maxID int
	err := r.db.Model(&models.User{}).
		Select("COALESCE(MAX(CAST(id AS INTEGER)), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, &models.StorageError{Op: "max user id", Err: err}
	}
	return maxID, nil
}
