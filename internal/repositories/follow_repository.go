package repositories

import (
	"gorm.io/gorm"

	"chirp/internal/models"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	IsFollowing(followerID, followeeID string) (bool, error)
	GetFollowersCount(userID string) (int64, error)
	GetFollowingCount(userID string) (int64, error)
	GetFollowers(userID string, offset, limit int) ([]models.UserRow, error)
}

// GormFollowRepository implements FollowRepository on the relational store
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) CreateFollow(follow *models.Follow) error {
	return storageErr("create follow", r.db.Create(follow).Error)
}

func (r *GormFollowRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, &models.StorageError{Op: "check follow", Err: err}
	}
	return count > 0, nil
}

func (r *GormFollowRepository) GetFollowersCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, storageErr("count followers", err)
}

func (r *GormFollowRepository) GetFollowingCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, storageErr("count following", err)
}

// GetFollowers lists the user's followers ordered by name
func (r *GormFollowRepository) GetFollowers(userID string, offset, limit int) ([]models.UserRow, error) {
	var rows []models.UserRow
	err := r.db.Table("follows").
		Select("users.id AS id, users.name AS name").
		Joins("JOIN users ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("users.name").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, &models.StorageError{Op: "list followers", Err: err}
	}
	return rows, nil
}
