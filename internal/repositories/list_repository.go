package repositories

import (
	"gorm.io/gorm"

	"chirp/internal/models"
)

// ListRepository defines the interface for favorite-list data operations
type ListRepository interface {
	CreateList(list *models.FavoriteList) error
	ListExists(ownerID, name string) (bool, error)
	ListNames(ownerID string) ([]string, error)
	EntryTweetIDs(ownerID, name string) ([]int, error)
	HasEntry(ownerID, name string, tweetID int) (bool, error)
	AddEntry(entry *models.ListEntry) error
}

// GormListRepository implements ListRepository on the relational store
type GormListRepository struct {
	db *gorm.DB
}

// NewGormListRepository creates a new GormListRepository
func NewGormListRepository(db *gorm.DB) *GormListRepository {
	return &GormListRepository{db: db}
}

func (r *GormListRepository) CreateList(list *models.FavoriteList) error {
	return storageErr("create list", r.db.Create(list).Error)
}

func (r *GormListRepository) ListExists(ownerID, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.FavoriteList{}).Where("owner_id = ? AND name = ?", ownerID, name).Count(&count).Error; err != nil {
		return false, &models.StorageError{Op: "check list", Err: err}
	}
	return count > 0, nil
}

// ListNames returns the names of every list owned by the user
func (r *GormListRepository) ListNames(ownerID string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.FavoriteList{}).
		Where("owner_id = ?", ownerID).
		Pluck("name", &names).Error
	if err != nil {
		return nil, &models.StorageError{Op: "list names", Err: err}
	}
	return names, nil
}

// EntryTweetIDs returns the tweet IDs stored in one list
func (r *GormListRepository) EntryTweetIDs(ownerID, name string) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.ListEntry{}).
		Where("owner_id = ? AND list_name = ?", ownerID, name).
		Pluck("tweet_id", &ids).Error
	if err != nil {
		return nil, &models.StorageError{Op: "list entries", Err: err}
	}
	return ids, nil
}

func (r *GormListRepository) HasEntry(ownerID, name string, tweetID int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ListEntry{}).Where("owner_id = ? AND list_name = ? AND tweet_id = ?", ownerID, name, tweetID).Count(&count).Error; err != nil {
		return false, &models.StorageError{Op: "check list entry", Err: err}
	}
	return count > 0, nil
}

func (r *GormListRepository) AddEntry(entry *models.ListEntry) error {
	return storageErr("add list entry", r.db.Create(entry).Error)
}
