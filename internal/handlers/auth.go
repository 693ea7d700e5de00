package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/internal/ui"
)

// AuthHandler handles the login and registration flows
type AuthHandler struct {
	users   repositories.UserRepository
	console *ui.Prompter
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users repositories.UserRepository, console *ui.Prompter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:   users,
		console: console,
		logger:  logger,
	}
}

// Login prompts for credentials and authenticates against the store. It
// returns the user on success and nil on a failed attempt; the operator is
// told either way.
func (h *AuthHandler) Login() (*models.User, error) {
	ui.Heading("User Login")
	id, err := h.console.Input("User ID: ")
	if err != nil {
		return nil, err
	}
	password, err := h.console.Password("Password: ")
	if err != nil {
		return nil, err
	}

	user, err := h.users.GetUserByID(id)
	if err == nil && bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
		h.console.Notify(ui.Success(fmt.Sprintf("\nWelcome back, %s!", user.Name)))
		h.logger.Info("login", "user", user.ID)
		return user, nil
	}

	var storeErr *models.StorageError
	if errors.As(err, &storeErr) {
		return nil, reportFailure(h.console, h.logger, err)
	}

	// An unknown id and a wrong password read the same to the operator.
	h.logger.Warn("login rejected", "user", id)
	h.console.Notify(ui.Error("\nInvalid credentials. Please try again."))
	if err := h.console.Acknowledge(); err != nil {
		return nil, err
	}
	return nil, nil
}

// Register walks the operator through account creation, re-prompting each
// field until it validates. The new account's id is one past the current
// maximum numeric id.
func (h *AuthHandler) Register() (*models.User, error) {
	ui.Heading("Create New Account")
	validate := validator.New()
	var req models.RegisterRequest

	for {
		name, err := h.console.Input("Enter your name: ")
		if err != nil {
			return nil, err
		}
		req.Name = name
		if err := validate.StructPartial(req, "Name"); err != nil {
			h.console.Notify(ui.Error("Length of name must be greater than 1 but less than 50"))
			continue
		}
		break
	}

	for {
		email, err := h.console.Input("Enter your email: ")
		if err != nil {
			return nil, err
		}
		req.Email = email
		if err := validate.StructPartial(req, "Email"); err != nil {
			h.console.Notify(ui.Error(emailMessage(err)))
			continue
		}
		break
	}

	for {
		phone, err := h.console.Input("Enter your phone number: ")
		if err != nil {
			return nil, err
		}
		req.Phone = phone
		if err := validate.StructPartial(req, "Phone"); err != nil {
			h.console.Notify(ui.Error(phoneMessage(err)))
			continue
		}
		break
	}

	for {
		password, err := h.console.Password("Password: ")
		if err != nil {
			return nil, err
		}
		req.Password = password
		if err := validate.StructPartial(req, "Password"); err != nil {
			h.console.Notify(ui.Error("Length of password must be greater than 1 but less than 20"))
			continue
		}
		break
	}

	maxID, err := h.users.MaxNumericID()
	if err != nil {
		return nil, reportFailure(h.console, h.logger, err)
	}
	newID := strconv.Itoa(maxID + 1)

	registered, err := h.users.EmailExists(req.Email)
	if err != nil {
		return nil, reportFailure(h.console, h.logger, err)
	}
	if registered {
		h.console.Notify(ui.Warn(fmt.Sprintf("Email %s is already registered, please use a different email or login", req.Email)))
		if err := h.console.Acknowledge(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		h.console.Notify(ui.Error("\nError creating account. Please try again."))
		if err := h.console.Acknowledge(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	user := &models.User{
		ID:       newID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
	}
	if err := h.users.CreateUser(user); err != nil {
		h.logger.Error("create user", "error", err)
		h.console.Notify(ui.Error("\nError creating account. Please try again."))
		if err := h.console.Acknowledge(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	h.console.Notify(ui.Success(fmt.Sprintf("\nAccount created successfully! Your user ID is: %s", newID)))
	h.logger.Info("account created", "user", newID)
	return user, nil
}

func emailMessage(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		switch fields[0].Tag() {
		case "required", "min", "max":
			return "Email must be between 3 and 50 characters long"
		}
	}
	return "Please enter a valid email address."
}

func phoneMessage(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 && fields[0].Tag() == "number" {
		return "Phone number can only contain digits 0-9"
	}
	return "Length of phone number must be greater than 1 but less than 15"
}
