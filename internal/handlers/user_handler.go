package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"chirp/internal/models"
	"chirp/internal/pager"
	"chirp/internal/repositories"
	"chirp/internal/ui"
)

// UserHandler handles user search, the profile view, and following.
type UserHandler struct {
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	tweets   repositories.TweetRepository
	console  *ui.Prompter
	logger   *slog.Logger
	pageSize int
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users repositories.UserRepository, follows repositories.FollowRepository, tweets repositories.TweetRepository, console *ui.Prompter, logger *slog.Logger, pageSize int) *UserHandler {
	return &UserHandler{
		users:    users,
		follows:  follows,
		tweets:   tweets,
		console:  console,
		logger:   logger,
		pageSize: pageSize,
	}
}

// SearchFlow prompts for a keyword and pages through matching users.
func (h *UserHandler) SearchFlow(currentID string) error {
	ui.Heading("Search Users")
	keyword, err := h.console.Input("Enter a keyword to search for users: ")
	if err != nil {
		return err
	}

	res, err := pager.Run(h.console, func(offset, limit int) ([]models.UserRow, error) {
		return h.users.SearchUsers(keyword, offset, limit)
	}, ui.UserPage("User Search Results"), pager.Options{
		EmptyMessage:  "No matching users found.",
		NoMoreMessage: "No more users to display.",
		Prompt:        "View more users? (n: next, p: previous, q: quit, or enter user number): ",
		PageSize:      h.pageSize,
	})
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if res.Action == pager.Select {
		return h.Details(currentID, res.Selected)
	}
	return nil
}

// FollowersFlow pages through the current user's followers.
func (h *UserHandler) FollowersFlow(currentID string) error {
	res, err := pager.Run(h.console, func(offset, limit int) ([]models.UserRow, error) {
		return h.follows.GetFollowers(currentID, offset, limit)
	}, ui.UserPage("Your Followers"), pager.Options{
		EmptyMessage:  "You have no followers.",
		NoMoreMessage: "No more followers to display.",
		Prompt:        "View more followers? (n: next, p: previous, q: quit, or enter follower number): ",
		PageSize:      h.pageSize,
	})
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if res.Action == pager.Select {
		return h.Details(currentID, res.Selected)
	}
	return nil
}

// Details shows a user's profile with tweet and follow counts, their three
// most recent tweets, and the profile menu.
func (h *UserHandler) Details(currentID string, user models.UserRow) error {
	tweets, err := h.tweets.CountByWriter(user.ID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	following, err := h.follows.GetFollowingCount(user.ID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	followers, err := h.follows.GetFollowersCount(user.ID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	recent, err := h.tweets.RecentByUser(user.ID, 3)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	ui.UserDetails(user, tweets, following, followers, recent)

	ui.Menu("Options", []string{
		"Follow this user",
		"See more tweets",
		"Return to previous menu",
	})
	choice, err := h.console.ValidInt(1, 3, "")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		if err := h.followUser(currentID, user); err != nil {
			return err
		}
		return h.console.Acknowledge()
	case 2:
		return h.moreTweets(user.ID)
	}
	return nil
}

// followUser records currentID following the shown user. Following yourself
// or someone you already follow is rejected with a notice.
func (h *UserHandler) followUser(currentID string, user models.UserRow) error {
	if user.ID == currentID {
		h.console.Notify(ui.Warn("You cannot follow yourself."))
		return nil
	}

	following, err := h.follows.IsFollowing(currentID, user.ID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if following {
		h.console.Notify(ui.Warn("You are already following this user."))
		return nil
	}

	follow := models.Follow{
		FollowerID: currentID,
		FolloweeID: user.ID,
		StartDate:  time.Now().Format("2006-01-02"),
	}
	if err := h.follows.CreateFollow(&follow); err != nil {
		h.logger.Error("create follow", "error", err)
		h.console.Notify(ui.Error("Failed to follow user."))
		return nil
	}
	h.console.Notify(ui.Success(fmt.Sprintf("You are now following %s.", user.Name)))
	h.logger.Info("follow created", "follower", currentID, "followee", user.ID)
	return nil
}

func (h *UserHandler) moreTweets(userID string) error {
	recent, err := h.tweets.RecentByUser(userID, 10)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if !ui.TweetPage("More Tweets")(recent) {
		h.console.Notify("\nNo more tweets to display.")
	}
	return h.console.Acknowledge()
}
