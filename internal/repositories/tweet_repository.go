package repositories

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// feedQuery merges tweets written by followed users with non-spam retweets
// made by followed users. Retweet rows carry the original tweet's date and
// time. The union is ordered globally before the page is sliced off.
const feedQuery = `
SELECT kind, id, date, time, text, spam
FROM (
    SELECT 'tweet' AS kind, t.id AS id, COALESCE(t.date, '') AS date, COALESCE(t.time, '') AS time, t.text AS text, false AS spam
    FROM tweets t
    JOIN follows f ON t.writer_id = f.followee_id
    WHERE f.follower_id = ?
    UNION ALL
    SELECT 'retweet' AS kind, t.id AS id, COALESCE(t.date, '') AS date, COALESCE(t.time, '') AS time, t.text AS text, r.spam AS spam
    FROM retweets r
    JOIN tweets t ON t.id = r.tweet_id
    JOIN follows f ON r.retweeter_id = f.followee_id
    WHERE f.follower_id = ? AND r.spam = ?
) feed
ORDER BY date DESC, time DESC
LIMIT ? OFFSET ?`

// recentQuery merges a single user's tweets with their non-spam retweets.
// Unlike the feed, retweet rows are dated by the retweet itself.
const recentQuery = `
SELECT kind, id, date, time, text, spam
FROM (
    SELECT 'tweet' AS kind, id, COALESCE(date, '') AS date, COALESCE(time, '') AS time, text, false AS spam
    FROM tweets
    WHERE writer_id = ?
    UNION ALL
    SELECT 'retweet' AS kind, t.id AS id, COALESCE(r.date, '') AS date, COALESCE(t.time, '') AS time, t.text AS text, r.spam AS spam
    FROM retweets r
    JOIN tweets t ON t.id = r.tweet_id
    WHERE r.retweeter_id = ? AND r.spam = ?
) recent
ORDER BY date DESC, time DESC
LIMIT ?`

const searchTextQuery = `
SELECT 'tweet' AS kind, id, COALESCE(date, '') AS date, COALESCE(time, '') AS time, text, false AS spam
FROM tweets
WHERE LOWER(text) LIKE LOWER(?)
ORDER BY date DESC, time DESC`

const searchHashtagQuery = `
SELECT 'tweet' AS kind, t.id AS id, COALESCE(t.date, '') AS date, COALESCE(t.time, '') AS time, t.text AS text, false AS spam
FROM tweets t
JOIN hashtag_mentions h ON h.tweet_id = t.id
WHERE LOWER(h.term) = LOWER(?)
ORDER BY date DESC, time DESC`

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(tweet *models.Tweet, terms []string) error
	GetTweetByID(id int) (*models.Tweet, error)
	MaxTweetID() (int, error)
	CountReplies(tweetID int) (int64, error)
	CountByWriter(userID string) (int64, error)
	FeedPage(userID string, offset, limit int) ([]models.TweetRow, error)
	SearchByText(word string) ([]models.TweetRow, error)
	SearchByHashtag(term string) ([]models.TweetRow, error)
	RecentByUser(userID string, limit int) ([]models.TweetRow, error)
}

// GormTweetRepository implements TweetRepository on the relational store
type GormTweetRepository struct {
	db *gorm.DB
}

// NewGormTweetRepository creates a new GormTweetRepository
func NewGormTweetRepository(db *gorm.DB) *GormTweetRepository {
	return &GormTweetRepository{db: db}
}

// CreateTweet stores a tweet and one hashtag mention per term. Mentions are
// inserted after the tweet, so a mention failure leaves the tweet in place.
func (r *GormTweetRepository) CreateTweet(tweet *models.Tweet, terms []string) error {
	if err := r.db.Create(tweet).Error; err != nil {
		return &models.StorageError{Op: "create tweet", Err: err}
	}
	for _, term := range terms {
		mention := models.HashtagMention{TweetID: tweet.ID, Term: term}
		if err := r.db.Create(&mention).Error; err != nil {
			return &models.StorageError{Op: "create hashtag mention", Err: err}
		}
	}
	return nil
}

// GetTweetByID retrieves a tweet by ID
func (r *GormTweetRepository) GetTweetByID(id int) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "tweet", ID: strconv.Itoa(id)}
		}
		return nil, &models.StorageError{Op: "get tweet", Err: err}
	}
	return &tweet, nil
}

// MaxTweetID returns the highest tweet ID, or 0 if there are no tweets
func (r *GormTweetRepository) MaxTweetID() (int, error) {
	var maxID int
	err := r.db.Model(&models.Tweet{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, &models.StorageError{Op: "max tweet id", Err: err}
	}
	return maxID, nil
}

// CountReplies counts tweets whose reply target is the given tweet
func (r *GormTweetRepository) CountReplies(tweetID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tweet{}).
		Where("reply_to = ?", tweetID).
		Count(&count).Error
	if err != nil {
		return 0, &models.StorageError{Op: "count replies", Err: err}
	}
	return count, nil
}

// CountByWriter counts the tweets authored by the user
func (r *GormTweetRepository) CountByWriter(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tweet{}).
		Where("writer_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, &models.StorageError{Op: "count tweets", Err: err}
	}
	return count, nil
}

// FeedPage returns one page of the home feed for the given follower
func (r *GormTweetRepository) FeedPage(userID string, offset, limit int) ([]models.TweetRow, error) {
	var rows []models.TweetRow
	err := r.db.Raw(feedQuery, userID, userID, false, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, &models.StorageError{Op: "feed page", Err: err}
	}
	return rows, nil
}

// SearchByText returns all tweets whose text contains the word (case-insensitive)
func (r *GormTweetRepository) SearchByText(word string) ([]models.TweetRow, error) {
	var rows []models.TweetRow
	err := r.db.Raw(searchTextQuery, "%"+word+"%").Scan(&rows).Error
	if err != nil {
		return nil, &models.StorageError{Op: "search tweets by text", Err: err}
	}
	return rows, nil
}

// SearchByHashtag returns all tweets with a stored mention equal to the term
// (case-insensitive; the term includes the leading '#')
func (r *GormTweetRepository) SearchByHashtag(term string) ([]models.TweetRow, error) {
	var rows []models.TweetRow
	err := r.db.Raw(searchHashtagQuery, term).Scan(&rows).Error
	if err != nil {
		return nil, &models.StorageError{Op: "search tweets by hashtag", Err: err}
	}
	return rows, nil
}

// RecentByUser returns the user's most recent tweets and non-spam retweets
func (r *GormTweetRepository) RecentByUser(userID string, limit int) ([]models.TweetRow, error) {
	var rows []models.TweetRow
	err := r.db.Raw(recentQuery, userID, userID, false, limit).Scan(&rows).Error
	if err != nil {
		return nil, &models.StorageError{Op: "recent tweets", Err: err}
	}
	return rows, nil
}
