package repositories

import (
	"testing"

	"chirp/internal/models"
)

func TestHasRetweetedIsPerUser(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "1", "alice")
	seedUser(t, db, "2", "bob")
	seedTweet(t, db, 5, "1", "hello", "2024-01-01", "09:00:00")
	repo := NewGormRetweetRepository(db)

	err := repo.CreateRetweet(&models.Retweet{
		TweetID:     5,
		RetweeterID: "2",
		WriterID:    "1",
		Date:        "2024-01-02",
	})
	if err != nil {
		t.Fatalf("CreateRetweet() error = %v", err)
	}

	has, err := repo.HasRetweeted(5, "2")
	if err != nil {
		t.Fatalf("HasRetweeted() error = %v", err)
	}
	if !has {
		t.Error("HasRetweeted(5, 2) = false, want true")
	}

	has, err = repo.HasRetweeted(5, "1")
	if err != nil {
		t.Fatalf("HasRetweeted() error = %v", err)
	}
	if has {
		t.Error("HasRetweeted(5, 1) = true, want false")
	}
}

func TestCountRetweetsExcludesSpam(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "1", "alice")
	seedUser(t, db, "2", "bob")
	seedUser(t, db, "3", "carol")
	seedTweet(t, db, 5, "1", "hello", "2024-01-01", "09:00:00")
	seedRetweet(t, db, 5, "2", "1", false, "2024-01-02")
	seedRetweet(t, db, 5, "3", "1", true, "2024-01-03")
	repo := NewGormRetweetRepository(db)

	count, err := repo.CountRetweets(5)
	if err != nil {
		t.Fatalf("CountRetweets() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountRetweets(5) = %d, want 1 (spam excluded)", count)
	}
}
