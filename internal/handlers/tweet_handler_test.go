package handlers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chirp/internal/feed"
	"chirp/internal/models"
	"chirp/internal/ui"
)

func newTweetHandlerTest(input string, tweets *fakeTweetRepo, retweets *fakeRetweetRepo, lists *fakeListRepo) (*TweetHandler, *bytes.Buffer) {
	console, out := testConsole(input)
	logger := testLogger()
	listHandler := NewListHandler(lists, tweets, console, logger)
	agg := feed.NewAggregator(tweets, retweets)
	return NewTweetHandler(agg, listHandler, console, logger, 5), out
}

func TestComposeFlowPostsTweet(t *testing.T) {
	tweets := newFakeTweetRepo()
	h, out := newTweetHandlerTest("hello #go\n\n", tweets, newFakeRetweetRepo(), newFakeListRepo())

	if err := h.ComposeFlow("1"); err != nil {
		t.Fatalf("ComposeFlow() error = %v", err)
	}
	stored := tweets.tweets[1]
	if stored == nil {
		t.Fatal("tweet was not stored")
	}
	if stored.Text != "hello #go" || stored.WriterID != "1" || stored.ReplyTo != nil {
		t.Errorf("stored tweet = %+v", stored)
	}
	if terms := tweets.terms[1]; len(terms) != 1 || terms[0] != "#go" {
		t.Errorf("stored terms = %v, want [#go]", terms)
	}
	if !strings.Contains(out.String(), "Tweet posted successfully with ID: 1") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestComposeFlowRejectsEmptyTweet(t *testing.T) {
	tweets := newFakeTweetRepo()
	h, out := newTweetHandlerTest("   \n\n", tweets, newFakeRetweetRepo(), newFakeListRepo())

	if err := h.ComposeFlow("1"); err != nil {
		t.Fatalf("ComposeFlow() error = %v", err)
	}
	if len(tweets.tweets) != 0 {
		t.Errorf("tweets stored = %v, want none", tweets.tweets)
	}
	if !strings.Contains(out.String(), "Tweet cannot be empty") {
		t.Errorf("output missing validation notice:\n%s", out.String())
	}
}

func TestComposeFlowRejectsOverlongTweet(t *testing.T) {
	tweets := newFakeTweetRepo()
	h, out := newTweetHandlerTest(strings.Repeat("a", 281)+"\n\n", tweets, newFakeRetweetRepo(), newFakeListRepo())

	if err := h.ComposeFlow("1"); err != nil {
		t.Fatalf("ComposeFlow() error = %v", err)
	}
	if len(tweets.tweets) != 0 {
		t.Errorf("tweets stored = %v, want none", tweets.tweets)
	}
	if !strings.Contains(out.String(), "Tweet exceeds maximum length of 280") {
		t.Errorf("output missing validation notice:\n%s", out.String())
	}
}

func TestHomeFeedEmpty(t *testing.T) {
	h, out := newTweetHandlerTest("\n", newFakeTweetRepo(), newFakeRetweetRepo(), newFakeListRepo())

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	if !strings.Contains(out.String(), "No tweets from users you follow.") {
		t.Errorf("output missing empty notice:\n%s", out.String())
	}
}

func TestHomeFeedRetweetFromDetails(t *testing.T) {
	tweets := newFakeTweetRepo()
	tweets.tweets[5] = &models.Tweet{ID: 5, WriterID: "9", Text: "hi"}
	tweets.feed = []models.TweetRow{{Kind: models.KindTweet, ID: 5, Date: "2024-01-02", Time: "09:00:00", Text: "hi"}}
	retweets := newFakeRetweetRepo()
	h, out := newTweetHandlerTest("1\n2\n\n", tweets, retweets, newFakeListRepo())

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	if len(retweets.created) != 1 {
		t.Fatalf("retweets created = %v, want one", retweets.created)
	}
	retweet := retweets.created[0]
	if retweet.TweetID != 5 || retweet.RetweeterID != "1" || retweet.WriterID != "9" || retweet.Spam {
		t.Errorf("retweet = %+v", retweet)
	}
	if !strings.Contains(out.String(), "Tweet has been retweeted successfully.") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestHomeFeedRetweetDuplicate(t *testing.T) {
	tweets := newFakeTweetRepo()
	tweets.tweets[5] = &models.Tweet{ID: 5, WriterID: "9", Text: "hi"}
	tweets.feed = []models.TweetRow{{Kind: models.KindTweet, ID: 5, Date: "2024-01-02", Time: "09:00:00", Text: "hi"}}
	retweets := newFakeRetweetRepo()
	retweets.existing[retweetKey(5, "1")] = true
	h, out := newTweetHandlerTest("1\n2\n\n", tweets, retweets, newFakeListRepo())

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	if len(retweets.created) != 0 {
		t.Errorf("retweets created = %v, want none", retweets.created)
	}
	if !strings.Contains(out.String(), "You have already retweeted this tweet.") {
		t.Errorf("output missing conflict notice:\n%s", out.String())
	}
}

func TestHomeFeedRetweetMissingTweet(t *testing.T) {
	tweets := newFakeTweetRepo()
	tweets.feed = []models.TweetRow{{Kind: models.KindTweet, ID: 9, Date: "2024-01-02", Time: "09:00:00", Text: "gone"}}
	retweets := newFakeRetweetRepo()
	h, out := newTweetHandlerTest("1\n2\n\n", tweets, retweets, newFakeListRepo())

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	if len(retweets.created) != 0 {
		t.Errorf("retweets created = %v, want none", retweets.created)
	}
	if !strings.Contains(out.String(), "No tweet with the given tweet id. Retweet not created.") {
		t.Errorf("output missing notice:\n%s", out.String())
	}
}

func TestHomeFeedReplyFromDetails(t *testing.T) {
	tweets := newFakeTweetRepo()
	tweets.tweets[5] = &models.Tweet{ID: 5, WriterID: "9", Text: "hi"}
	tweets.feed = []models.TweetRow{{Kind: models.KindTweet, ID: 5, Date: "2024-01-02", Time: "09:00:00", Text: "hi"}}
	h, out := newTweetHandlerTest("1\n1\nGood point\n\n", tweets, newFakeRetweetRepo(), newFakeListRepo())

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	reply := tweets.tweets[6]
	if reply == nil {
		t.Fatal("reply was not stored")
	}
	if reply.ReplyTo == nil || *reply.ReplyTo != 5 || reply.WriterID != "1" {
		t.Errorf("reply = %+v, want reply to 5 by user 1", reply)
	}
	if !strings.Contains(out.String(), "Reply posted with ID: 6") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestHomeFeedAddToFavoritesFromDetails(t *testing.T) {
	tweets := newFakeTweetRepo()
	tweets.tweets[5] = &models.Tweet{ID: 5, WriterID: "9", Text: "hi"}
	tweets.feed = []models.TweetRow{{Kind: models.KindTweet, ID: 5, Date: "2024-01-02", Time: "09:00:00", Text: "hi"}}
	lists := newFakeListRepo()
	lists.names["1"] = []string{"reading"}
	h, out := newTweetHandlerTest("1\n3\n1\n\n", tweets, newFakeRetweetRepo(), lists)

	if err := h.HomeFeed("1"); err != nil {
		t.Fatalf("HomeFeed() error = %v", err)
	}
	if got := lists.entries["1/reading"]; len(got) != 1 || got[0] != 5 {
		t.Fatalf("entries = %v, want [5]", got)
	}
	if !strings.Contains(out.String(), "Tweet 5 added to list 'reading'.") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestTweetSearchFlowNoMatches(t *testing.T) {
	h, out := newTweetHandlerTest("anything\n\n", newFakeTweetRepo(), newFakeRetweetRepo(), newFakeListRepo())

	if err := h.SearchFlow("1"); err != nil {
		t.Fatalf("SearchFlow() error = %v", err)
	}
	if !strings.Contains(out.String(), "No matching tweets found.") {
		t.Errorf("output missing empty notice:\n%s", out.String())
	}
}

func TestTweetSearchFlowExitKeywordAborts(t *testing.T) {
	h, _ := newTweetHandlerTest("!exit\n", newFakeTweetRepo(), newFakeRetweetRepo(), newFakeListRepo())

	if err := h.SearchFlow("1"); !errors.Is(err, ui.ErrExitRequested) {
		t.Fatalf("SearchFlow() error = %v, want ErrExitRequested", err)
	}
}
