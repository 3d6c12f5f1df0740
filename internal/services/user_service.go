package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatherhub/server/internal/models"
)

type UserService struct {
	users models.UsersRepo
}

func NewUserService(users models.UsersRepo) *UserService {
	return &UserService{
		users: users,
	}
}

// Signup creates a registered user. Emails are stored lowercased and must
// be unique; the password is bcrypt-hashed before it reaches the store.
func (us *UserService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)
	if username == "" {
		return nil, models.NewValidationError("username", "username is required")
	}
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, models.NewValidationError("email", "a valid email is required")
	}
	if err := models.Validate.Var(password, "required,min=6"); err != nil {
		return nil, models.NewValidationError("password", "password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := us.users.CreateUser(ctx, &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return nil, models.NewValidationError("email", "email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates a registered user by email and password. Both a
// missing account and a wrong password surface as ErrUnauthorized so the
// response does not reveal which one failed.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	user, err := us.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrUnauthorized
	}
	return user, nil
}

// OrganizerLogin authenticates the privileged organizer identity.
func (us *UserService) OrganizerLogin(ctx context.Context, username, password string) (*models.Organizer, error) {
	username = strings.TrimSpace(username)
	org, err := us.users.GetOrganizerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(org.Password), []byte(password)); err != nil {
		return nil, models.ErrUnauthorized
	}
	return org, nil
}

// ListUsers is the organizer's overview of registered users.
func (us *UserService) ListUsers(ctx context.Context, actor models.Actor) ([]models.User, error) {
	if !actor.IsOrganizer() {
		return nil, models.ErrUnauthorized
	}
	return us.users.ListUsers(ctx)
}

// ProvisionOrganizer creates an organizer account. Exposed only through
// the out-of-band provisioning command, never over HTTP.
func (us *UserService) ProvisionOrganizer(ctx context.Context, username, password string) (*models.Organizer, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("username", "username is required")
	}
	if err := models.Validate.Var(password, "required,min=6"); err != nil {
		return nil, models.NewValidationError("password", "password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return us.users.CreateOrganizer(ctx, &models.Organizer{
		Username: username,
		Password: string(hashed),
	})
}
