// Package app wires the repositories, the feed aggregator, and the
// interaction handlers together and drives the top-level menu loops.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"chirp/internal/feed"
	"chirp/internal/handlers"
	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/internal/ui"
)

// App runs the terminal menus on top of the interaction handlers.
type App struct {
	console *ui.Prompter
	logger  *slog.Logger
	auth    *handlers.AuthHandler
	tweets  *handlers.TweetHandler
	users   *handlers.UserHandler
	lists   *handlers.ListHandler
}

// New migrates the schema and injects all dependencies. pageSize is the
// page length used by every listing.
func New(db *gorm.DB, console *ui.Prompter, logger *slog.Logger, pageSize int) (*App, error) {
	// AutoMigrate relational models
	err := db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Follow{},
		&models.Retweet{},
		&models.HashtagMention{},
		&models.FavoriteList{},
		&models.ListEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrate models: %w", err)
	}
	logger.Info("auto-migrations completed for all models")

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	tweetRepo := repositories.NewGormTweetRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	retweetRepo := repositories.NewGormRetweetRepository(db)
	listRepo := repositories.NewGormListRepository(db)

	// --- Initialize Handlers ---
	aggregator := feed.NewAggregator(tweetRepo, retweetRepo)
	listHandler := handlers.NewListHandler(listRepo, tweetRepo, console, logger)

	return &App{
		console: console,
		logger:  logger,
		auth:    handlers.NewAuthHandler(userRepo, console, logger),
		tweets:  handlers.NewTweetHandler(aggregator, listHandler, console, logger, pageSize),
		users:   handlers.NewUserHandler(userRepo, followRepo, tweetRepo, console, logger, pageSize),
		lists:   listHandler,
	}, nil
}

// Run drives the outer login menu until the operator exits. An exit-keyword
// abort anywhere in the application unwinds to here and ends the program
// cleanly.
func (a *App) Run() error {
	err := a.loop()
	if errors.Is(err, ui.ErrExitRequested) {
		a.logger.Info("exit requested by operator")
		return nil
	}
	return err
}

func (a *App) loop() error {
	for {
		ui.ClearScreen()
		ui.Menu("Chirp", []string{
			"Login",
			"Sign up",
			"Exit",
		})
		choice, err := a.console.Input("\nEnter your choice (1-3): ")
		if err != nil {
			return err
		}

		var user *models.User
		switch strings.TrimSpace(choice) {
		case "1":
			user, err = a.auth.Login()
		case "2":
			user, err = a.auth.Register()
		case "3":
			a.console.Notify("\nExiting program...")
			return nil
		default:
			a.console.Notify(ui.Error("\nInvalid choice. Please try again."))
			if err := a.console.Acknowledge(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if user == nil {
			continue
		}

		if err := a.session(user); err != nil {
			return err
		}
	}
}

// session runs the logged-in menu loop. The home feed is shown once right
// after login, before the first menu.
func (a *App) session(user *models.User) error {
	if err := a.tweets.HomeFeed(user.ID); err != nil {
		return err
	}

	for {
		ui.ClearScreen()
		ui.Menu(fmt.Sprintf("Main Menu (User: %s)", user.ID), []string{
			"Search for tweets",
			"Search for users",
			"Compose a tweet",
			"List followers",
			"List favorite lists",
			"Logout",
			"Exit",
		})
		choice, err := a.console.Input("\nEnter your choice (1-7): ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.tweets.SearchFlow(user.ID)
		case "2":
			err = a.users.SearchFlow(user.ID)
		case "3":
			err = a.tweets.ComposeFlow(user.ID)
		case "4":
			err = a.users.FollowersFlow(user.ID)
		case "5":
			err = a.lists.BrowseFlow(user.ID)
		case "6":
			a.console.Notify("\nLogging out...")
			a.logger.Info("logged out", "user", user.ID)
			return nil
		case "7":
			a.console.Notify("\nExiting program...")
			return ui.ErrExitRequested
		default:
			a.console.Notify(ui.Error("\nInvalid choice. Please try again."))
			err = a.console.Acknowledge()
		}
		if err != nil {
			return err
		}
	}
}
