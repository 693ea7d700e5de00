package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"chirp/internal/models"
	"chirp/internal/ui"
)

// testConsole returns a Prompter fed by the scripted input lines and a
// buffer capturing everything the handlers print through it.
func testConsole(input string) (*ui.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewPrompter(strings.NewReader(input), out, "!exit"), out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users     map[string]*models.User
	maxID     int
	userRows  []models.UserRow
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, &models.NotFoundError{Resource: "user", ID: id}
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) SearchUsers(keyword string, offset, limit int) ([]models.UserRow, error) {
	if offset >= len(f.userRows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.userRows) {
		end = len(f.userRows)
	}
	return f.userRows[offset:end], nil
}

func (f *fakeUserRepo) MaxNumericID() (int, error) {
	return f.maxID, nil
}

type fakeTweetRepo struct {
	tweets  map[int]*models.Tweet
	terms   map[int][]string
	feed    []models.TweetRow
	recent  map[string][]models.TweetRow
	written map[string]int64
}

func newFakeTweetRepo() *fakeTweetRepo {
	return &fakeTweetRepo{
		tweets:  make(map[int]*models.Tweet),
		terms:   make(map[int][]string),
		recent:  make(map[string][]models.TweetRow),
		written: make(map[string]int64),
	}
}

func (f *fakeTweetRepo) CreateTweet(tweet *models.Tweet, terms []string) error {
	f.tweets[tweet.ID] = tweet
	f.terms[tweet.ID] = terms
	return nil
}

func (f *fakeTweetRepo) GetTweetByID(id int) (*models.Tweet, error) {
	if tweet, ok := f.tweets[id]; ok {
		return tweet, nil
	}
	return nil, &models.NotFoundError{Resource: "tweet", ID: strconv.Itoa(id)}
}

func (f *fakeTweetRepo) MaxTweetID() (int, error) {
	max := 0
	for id := range f.tweets {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (f *fakeTweetRepo) CountReplies(tweetID int) (int64, error) {
	var count int64
	for _, tweet := range f.tweets {
		if tweet.ReplyTo != nil && *tweet.ReplyTo == tweetID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTweetRepo) CountByWriter(userID string) (int64, error) {
	return f.written[userID], nil
}

func (f *fakeTweetRepo) FeedPage(userID string, offset, limit int) ([]models.TweetRow, error) {
	if offset >= len(f.feed) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.feed) {
		end = len(f.feed)
	}
	return f.feed[offset:end], nil
}

func (f *fakeTweetRepo) SearchByText(word string) ([]models.TweetRow, error) {
	return nil, nil
}

func (f *fakeTweetRepo) SearchByHashtag(term string) ([]models.TweetRow, error) {
	return nil, nil
}

func (f *fakeTweetRepo) RecentByUser(userID string, limit int) ([]models.TweetRow, error) {
	rows := f.recent[userID]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeRetweetRepo struct {
	created  []models.Retweet
	existing map[string]bool
	counts   map[int]int64
}

func newFakeRetweetRepo() *fakeRetweetRepo {
	return &fakeRetweetRepo{existing: make(map[string]bool), counts: make(map[int]int64)}
}

func retweetKey(tweetID int, userID string) string {
	return strconv.Itoa(tweetID) + "/" + userID
}

func (f *fakeRetweetRepo) CreateRetweet(retweet *models.Retweet) error {
	f.created = append(f.created, *retweet)
	f.existing[retweetKey(retweet.TweetID, retweet.RetweeterID)] = true
	return nil
}

func (f *fakeRetweetRepo) HasRetweeted(tweetID int, userID string) (bool, error) {
	return f.existing[retweetKey(tweetID, userID)], nil
}

func (f *fakeRetweetRepo) CountRetweets(tweetID int) (int64, error) {
	return f.counts[tweetID], nil
}

type fakeFollowRepo struct {
	created   []models.Follow
	following map[string]bool
	followers map[string][]models.UserRow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{
		following: make(map[string]bool),
		followers: make(map[string][]models.UserRow),
	}
}

func followKey(followerID, followeeID string) string {
	return followerID + "/" + followeeID
}

func (f *fakeFollowRepo) CreateFollow(follow *models.Follow) error {
	f.created = append(f.created, *follow)
	f.following[followKey(follow.FollowerID, follow.FolloweeID)] = true
	return nil
}

func (f *fakeFollowRepo) IsFollowing(followerID, followeeID string) (bool, error) {
	return f.following[followKey(followerID, followeeID)], nil
}

func (f *fakeFollowRepo) GetFollowersCount(userID string) (int64, error) {
	return int64(len(f.followers[userID])), nil
}

func (f *fakeFollowRepo) GetFollowingCount(userID string) (int64, error) {
	var count int64
	for key := range f.following {
		if strings.HasPrefix(key, userID+"/") {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) GetFollowers(userID string, offset, limit int) ([]models.UserRow, error) {
	rows := f.followers[userID]
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

type fakeListRepo struct {
	names   map[string][]string
	entries map[string][]int
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		names:   make(map[string][]string),
		entries: make(map[string][]int),
	}
}

func entryKey(ownerID, name string) string {
	return ownerID + "/" + name
}

func (f *fakeListRepo) CreateList(list *models.FavoriteList) error {
	f.names[list.OwnerID] = append(f.names[list.OwnerID], list.Name)
	return nil
}

func (f *fakeListRepo) ListExists(ownerID, name string) (bool, error) {
	for _, have := range f.names[ownerID] {
		if have == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeListRepo) ListNames(ownerID string) ([]string, error) {
	return f.names[ownerID], nil
}

func (f *fakeListRepo) EntryTweetIDs(ownerID, name string) ([]int, error) {
	return f.entries[entryKey(ownerID, name)], nil
}

func (f *fakeListRepo) HasEntry(ownerID, name string, tweetID int) (bool, error) {
	for _, have := range f.entries[entryKey(ownerID, name)] {
		if have == tweetID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeListRepo) AddEntry(entry *models.ListEntry) error {
	key := entryKey(entry.OwnerID, entry.ListName)
	f.entries[key] = append(f.entries[key], entry.TweetID)
	return nil
}
