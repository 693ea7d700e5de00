package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/internal/ui"
)

// ListHandler handles favorite list browsing, creation, and membership.
type ListHandler struct {
	lists   repositories.ListRepository
	tweets  repositories.TweetRepository
	console *ui.Prompter
	logger  *slog.Logger
}

// NewListHandler creates a new ListHandler
func NewListHandler(lists repositories.ListRepository, tweets repositories.TweetRepository, console *ui.Prompter, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		lists:   lists,
		tweets:  tweets,
		console: console,
		logger:  logger,
	}
}

// BrowseFlow shows the caller's favorite lists with their tweet ids, then
// offers to create a new list.
func (h *ListHandler) BrowseFlow(userID string) error {
	names, err := h.lists.ListNames(userID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}

	views := make([]ui.ListView, 0, len(names))
	for _, name := range names {
		ids, err := h.lists.EntryTweetIDs(userID, name)
		if err != nil {
			return reportFailure(h.console, h.logger, err)
		}
		views = append(views, ui.ListView{Name: name, TweetIDs: ids})
	}
	if !ui.FavoriteLists(views) {
		h.console.Notify("\nYou have no favorite lists")
	}

	ui.Menu("Options", []string{
		"Create a new list",
		"Return to main menu",
	})
	choice, err := h.console.ValidInt(1, 2, "")
	if err != nil {
		return err
	}
	if choice == 1 {
		return h.createFlow(userID)
	}
	return nil
}

// createFlow prompts for a list name and creates the list. Names the caller
// already uses are rejected.
func (h *ListHandler) createFlow(userID string) error {
	validate := validator.New()

	var name string
	for {
		input, err := h.console.Input("Enter a name for the new list: ")
		if err != nil {
			return err
		}
		if err := validate.Struct(models.CreateListRequest{Name: input}); err != nil {
			h.console.Notify(ui.Warn("List name must be between 1 and 49 characters"))
			continue
		}
		name = input
		break
	}

	exists, err := h.lists.ListExists(userID, name)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if exists {
		h.console.Notify(ui.Warn(fmt.Sprintf("You already have a list named '%s'.", name)))
		return h.console.Acknowledge()
	}

	if err := h.lists.CreateList(&models.FavoriteList{OwnerID: userID, Name: name}); err != nil {
		h.logger.Error("create list", "error", err)
		h.console.Notify(ui.Error("Failed to create list."))
		return h.console.Acknowledge()
	}
	h.console.Notify(ui.Success(fmt.Sprintf("List '%s' created.", name)))
	h.logger.Info("list created", "user", userID, "list", name)
	return h.console.Acknowledge()
}

// AddTweetToList inserts tweetID into one of userID's lists. With an empty
// listName the caller picks from a numbered listing of their lists. The
// tweet must exist and must not already be in the chosen list.
func (h *ListHandler) AddTweetToList(userID, listName string, tweetID int) error {
	if _, err := h.tweets.GetTweetByID(tweetID); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			h.console.Notify(ui.Warn("That tweet doesn't exist!"))
			return nil
		}
		return reportFailure(h.console, h.logger, err)
	}

	names, err := h.lists.ListNames(userID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if len(names) == 0 {
		h.console.Notify(ui.Warn("You have no lists to add to!"))
		return nil
	}

	if listName == "" {
		h.console.Notify("Which list would you like to add to?")
		for i, name := range names {
			h.console.Notify(fmt.Sprintf("%s %s", ui.Highlight(fmt.Sprintf("%d.", i+1)), name))
		}
		input, err := h.console.Input("\nEnter list number: ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			h.console.Notify(ui.Error("Please enter a valid number."))
			return nil
		}
		if choice < 1 || choice > len(names) {
			h.console.Notify(ui.Error("Invalid list selection."))
			return nil
		}
		listName = names[choice-1]
	}

	present, err := h.lists.HasEntry(userID, listName, tweetID)
	if err != nil {
		return reportFailure(h.console, h.logger, err)
	}
	if present {
		h.console.Notify(ui.Warn(fmt.Sprintf("Tweet %d is already in list '%s'.", tweetID, listName)))
		return nil
	}

	entry := models.ListEntry{OwnerID: userID, ListName: listName, TweetID: tweetID}
	if err := h.lists.AddEntry(&entry); err != nil {
		h.logger.Error("add list entry", "error", err)
		h.console.Notify(ui.Error("Failed to add tweet to list."))
		return nil
	}
	h.console.Notify(ui.Success(fmt.Sprintf("Tweet %d added to list '%s'.", tweetID, listName)))
	h.logger.Info("tweet added to list", "user", userID, "list", listName, "tweet", tweetID)
	return nil
}
