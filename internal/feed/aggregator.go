// Package feed builds the tweet streams shown to the operator: the home
// feed, keyword search results, and per-user recent activity. It also owns
// the compose and retweet write paths.
package feed

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"chirp/internal/models"
	"chirp/internal/repositories"
)

const maxTweetLength = 280

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// Aggregator merges tweets and retweets into display streams and performs
// the tweet-side writes.
type Aggregator struct {
	tweets   repositories.TweetRepository
	retweets repositories.RetweetRepository
	now      func() time.Time
}

// NewAggregator creates a new Aggregator
func NewAggregator(tweets repositories.TweetRepository, retweets repositories.RetweetRepository) *Aggregator {
	return &Aggregator{
		tweets:   tweets,
		retweets: retweets,
		now:      time.Now,
	}
}

// FeedPage returns one page of the home feed for the given follower. The
// store orders the full tweet/retweet union by date and time before slicing.
func (a *Aggregator) FeedPage(userID string, offset, limit int) ([]models.TweetRow, error) {
	return a.tweets.FeedPage(userID, offset, limit)
}

// SearchTweets runs a comma-separated keyword search. A token starting with
// '#' matches stored hashtag mentions only; a plain token matches tweet text
// as a substring and the mention "#token" as well. Results are deduplicated
// by tweet id (first occurrence wins), sorted newest first, and sliced by
// offset and limit.
func (a *Aggregator) SearchTweets(keywords string, offset, limit int) ([]models.TweetRow, error) {
	var all []models.TweetRow
	for _, word := range strings.Split(keywords, ",") {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if strings.HasPrefix(word, "#") {
			rows, err := a.tweets.SearchByHashtag(word)
			if err != nil {
				return nil, err
			}
			all = append(all, rows...)
			continue
		}
		rows, err := a.tweets.SearchByText(word)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		rows, err = a.tweets.SearchByHashtag("#" + word)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}

	seen := make(map[int]bool, len(all))
	unique := make([]models.TweetRow, 0, len(all))
	for _, row := range all {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		unique = append(unique, row)
	}

	// Missing dates and times are stored as empty strings, which sort last
	// under descending order.
	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Date != unique[j].Date {
			return unique[i].Date > unique[j].Date
		}
		return unique[i].Time > unique[j].Time
	})

	if offset >= len(unique) {
		return nil, nil
	}
	return unique[offset:min(offset+limit, len(unique))], nil
}

// ComposeTweet validates and stores a new tweet, allocating its id as one
// past the current maximum. Hashtag mentions found in the raw text are
// stored alongside it. The new id is returned in string form.
func (a *Aggregator) ComposeTweet(userID, text string, replyTo *int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &models.ValidationError{Field: "text", Reason: "Tweet cannot be empty"}
	}
	validate := validator.New()
	if err := validate.Struct(models.ComposeTweetRequest{Text: text}); err != nil {
		return "", &models.ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("Tweet exceeds maximum length of %d", maxTweetLength),
		}
	}

	maxID, err := a.tweets.MaxTweetID()
	if err != nil {
		return "", err
	}

	now := a.now()
	tweet := &models.Tweet{
		ID:       maxID + 1,
		WriterID: userID,
		Text:     text,
		Date:     now.Format("2006-01-02"),
		Time:     now.Format("15:04:05"),
		ReplyTo:  replyTo,
	}
	if err := a.tweets.CreateTweet(tweet, ExtractHashtags(text)); err != nil {
		return "", err
	}
	return strconv.Itoa(tweet.ID), nil
}

// Retweet records a retweet of an existing tweet. A user may retweet a
// given tweet once; a second attempt is a conflict and writes nothing.
func (a *Aggregator) Retweet(userID string, tweetID int) error {
	tweet, err := a.tweets.GetTweetByID(tweetID)
	if err != nil {
		return err
	}

	retweeted, err := a.retweets.HasRetweeted(tweetID, userID)
	if err != nil {
		return err
	}
	if retweeted {
		return &models.ConflictError{Resource: "retweet", Detail: "already retweeted"}
	}

	return a.retweets.CreateRetweet(&models.Retweet{
		TweetID:     tweetID,
		RetweeterID: userID,
		WriterID:    tweet.WriterID,
		Spam:        false,
		Date:        a.now().Format("2006-01-02"),
	})
}

// TweetStats returns the non-spam retweet count and the reply count for a
// tweet.
func (a *Aggregator) TweetStats(tweetID int) (retweets, replies int64, err error) {
	retweets, err = a.retweets.CountRetweets(tweetID)
	if err != nil {
		return 0, 0, err
	}
	replies, err = a.tweets.CountReplies(tweetID)
	if err != nil {
		return 0, 0, err
	}
	return retweets, replies, nil
}

// ExtractHashtags returns the distinct hashtags in the text, in first-seen
// order. A hashtag is '#' followed by one or more letters, digits, or
// underscores in any script; case is preserved, so #World and #world are
// distinct.
func ExtractHashtags(text string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, tag := range hashtagPattern.FindAllString(text, -1) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
