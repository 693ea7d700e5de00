package repositories

import (
	"gorm.io/gorm"

	"chirp/internal/models"
)

// RetweetRepository defines the interface for retweet data operations
type RetweetRepository interface {
	CreateRetweet(retweet *models.Retweet) error
	HasRetweeted(tweetID int, userID string) (bool, error)
	CountRetweets(tweetID int) (int64, error)
}

// GormRetweetRepository implements RetweetRepository on the relational store
type GormRetweetRepository struct {
	db *gorm.DB
}

// NewGormRetweetRepository creates a new GormRetweetRepository
func NewGormRetweetRepository(db *gorm.DB) *GormRetweetRepository {
	return &GormRetweetRepository{db: db}
}

func (r *GormRetweetRepository) CreateRetweet(retweet *models.Retweet) error {
	return storageErr("create retweet", r.db.Create(retweet).Error)
}

func (r *GormRetweetRepository) HasRetweeted(tweetID int, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Retweet{}).Where("tweet_id = ? AND retweeter_id = ?", tweetID, userID).Count(&count).Error; err != nil {
		return false, &models.StorageError{Op: "check retweet", Err: err}
	}
	return count > 0, nil
}

// CountRetweets counts non-spam retweets of the tweet
func (r *GormRetweetRepository) CountRetweets(tweetID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Retweet{}).Where("tweet_id = ? AND spam = ?", tweetID, false).Count(&count).Error
	return count, storageErr("count retweets", err)
}
