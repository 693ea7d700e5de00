package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chirp/internal/models"
)

// newTestDB opens a fresh in-memory store and migrates the full schema.
// The pool is pinned to one connection so every statement sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Follow{},
		&models.Retweet{},
		&models.HashtagMention{},
		&models.FavoriteList{},
		&models.ListEntry{},
	)
	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func seedUser(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	mustCreate(t, db, &models.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Phone:    "5550100",
		Password: "hash",
	})
}

func seedTweet(t *testing.T, db *gorm.DB, id int, writerID, text, date, timeOfDay string) {
	t.Helper()
	mustCreate(t, db, &models.Tweet{
		ID:       id,
		WriterID: writerID,
		Text:     text,
		Date:     date,
		Time:     timeOfDay,
	})
}

func seedFollow(t *testing.T, db *gorm.DB, followerID, followeeID string) {
	t.Helper()
	mustCreate(t, db, &models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		StartDate:  "2024-01-01",
	})
}

func seedRetweet(t *testing.T, db *gorm.DB, tweetID int, retweeterID, writerID string, spam bool, date string) {
	t.Helper()
	mustCreate(t, db, &models.Retweet{
		TweetID:     tweetID,
		RetweeterID: retweeterID,
		WriterID:    writerID,
		Spam:        spam,
		Date:        date,
	})
}
