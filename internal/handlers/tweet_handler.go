package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"chirp/internal/feed"
	"chirp/internal/models"
	"chirp/internal/pager"
	"chirp/internal/ui"
)

const tweetPagePrompt = "View more tweets? (n: next, p: previous, q: quit, or enter tweet number): "

// TweetHandler handles the home feed, tweet search, composition, and the
// per-tweet interaction menu.
type TweetHandler struct {
	tweets   *feed.Aggregator
	lists    *ListHandler
	console  *ui.Prompter
	logger   *slog.Logger
	pageSize int
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweets *feed.Aggregator, lists *ListHandler, console *ui.Prompter, logger *slog.Logger, pageSize int) *TweetHandler {
	return &TweetHandler{
		tweets:   tweets,
		lists:    lists,
		console:  console,
		logger:   logger,
		pageSize: pageSize,
	}
}

// HomeFeed pages through tweets and retweets from followed users, shown
// right after login. Selecting a row opens the tweet menu.
func (h *TweetHandler) HomeFeed(userID string) error {
	res, err := pager.Run(h.console, func(offset, limit int) ([]models.TweetRow, error) {
		return h.tweets.FeedPage(userID, offset, limit)
	}, ui.TweetPage("Tweets"), pager.Options{
		EmptyMessage:  "No tweets from users you follow.",
		NoMoreMessage: "No more tweets to display.",
		Prompt:        tweetPagePrompt,
		PageSize:      h.pageSize,
	})
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if res.Action == pager.Select {
		return h.details(userID, res.Selected)
	}
	return nil
}

// SearchFlow prompts for keywords and pages through matching tweets.
func (h *TweetHandler) SearchFlow(userID string) error {
	ui.Heading("Search Tweets")
	keywords, err := h.console.Input("Enter one or more keywords (comma-separated): ")
	if err != nil {
		return err
	}

	res, err := pager.Run(h.console, func(offset, limit int) ([]models.TweetRow, error) {
		return h.tweets.SearchTweets(keywords, offset, limit)
	}, ui.TweetPage("Search Results"), pager.Options{
		EmptyMessage:  "No matching tweets found.",
		NoMoreMessage: "No more tweets to display.",
		Prompt:        tweetPagePrompt,
		PageSize:      h.pageSize,
	})
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if res.Action == pager.Select {
		return h.details(userID, res.Selected)
	}
	return nil
}

// ComposeFlow prompts for tweet text and posts it.
func (h *TweetHandler) ComposeFlow(userID string) error {
	ui.Heading("Compose Tweet")
	text, err := h.console.Input("Enter your tweet: ")
	if err != nil {
		return err
	}

	id, err := h.tweets.ComposeTweet(userID, text, nil)
	var invalid *models.ValidationError
	switch {
	case err == nil:
		h.console.Notify(ui.Success(fmt.Sprintf("Tweet posted successfully with ID: %s", id)))
		h.logger.Info("tweet posted", "user", userID, "tweet", id)
	case errors.As(err, &invalid):
		h.console.Notify(ui.Warn(invalid.Reason))
	default:
		h.logger.Error("compose tweet", "error", err)
		h.console.Notify(ui.Error("Failed to post tweet."))
	}
	return h.console.Acknowledge()
}

// details shows a tweet's statistics and runs its interaction menu.
func (h *TweetHandler) details(userID string, tweet models.TweetRow) error {
	retweets, replies, err := h.tweets.TweetStats(tweet.ID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	ui.TweetStats(tweet.ID, retweets, replies)

	ui.Menu(fmt.Sprintf("Options for Tweet %d", tweet.ID), []string{
		"Reply to this tweet",
		"Retweet",
		"Add to favorite list",
		"Return to previous menu",
	})
	choice, err := h.console.ValidInt(1, 4, "")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return h.reply(userID, tweet.ID)
	case 2:
		return h.retweet(userID, tweet.ID)
	case 3:
		if err := h.lists.AddTweetToList(userID, "", tweet.ID); err != nil {
			return err
		}
		return h.console.Acknowledge()
	}
	return nil
}

func (h *TweetHandler) reply(userID string, tweetID int) error {
	text, err := h.console.Input("Enter your reply: ")
	if err != nil {
		return err
	}

	id, err := h.tweets.ComposeTweet(userID, text, &tweetID)
	var invalid *models.ValidationError
	switch {
	case err == nil:
		h.console.Notify(ui.Success(fmt.Sprintf("Reply posted with ID: %s", id)))
		h.logger.Info("reply posted", "user", userID, "tweet", id, "reply_to", tweetID)
	case errors.As(err, &invalid):
		h.console.Notify(ui.Warn(invalid.Reason))
	default:
		h.logger.Error("compose reply", "error", err)
		h.console.Notify(ui.Error("Failed to post tweet."))
	}
	return h.console.Acknowledge()
}

func (h *TweetHandler) retweet(userID string, tweetID int) error {
	err := h.tweets.Retweet(userID, tweetID)
	var notFound *models.NotFoundError
	var conflict *models.ConflictError
	switch {
	case err == nil:
		h.console.Notify(ui.Success("Tweet has been retweeted successfully."))
		h.logger.Info("retweet", "user", userID, "tweet", tweetID)
	case errors.As(err, &notFound):
		h.console.Notify(ui.Warn("No tweet with the given tweet id. Retweet not created."))
	case errors.As(err, &conflict):
		h.console.Notify(ui.Warn("You have already retweeted this tweet."))
	default:
		h.logger.Error("retweet", "error", err)
		h.console.Notify(ui.Error("Failed to retweet."))
	}
	return h.console.Acknowledge()
}
