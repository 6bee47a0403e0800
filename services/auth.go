package services

import (
	"context"
	"errors"
	"strings"

	"dentalflow-backend/auth"
	"dentalflow-backend/dtos"
	"dentalflow-backend/logger"
	"dentalflow-backend/models"
	"dentalflow-backend/repositories"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const DefaultRole = "staff"

type AuthService struct {
	users      UserStore
	tokens     TokenIssuer
	bcryptCost int
	log        zerolog.Logger
}

// NewAuthService builds the service; a zero cost selects bcrypt.DefaultCost.
func NewAuthService(users UserStore, tokens TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        logger.WithComponent("auth"),
	}
}

// Register creates a user with a bcrypt-hashed password and signs a token
// for it. Usernames and emails must be unused. Self-registered users always
// get DefaultRole.
func (s *AuthService) Register(ctx context.Context, in dtos.RegisterRequest) (dtos.AuthResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		s.log.Warn().Str("username", username).Msg("registration rejected: username taken")
		return dtos.AuthResponse{}, &ConflictError{Message: "username already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return dtos.AuthResponse{}, fromStore(err, "User", nil)
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.log.Warn().Str("username", username).Msg("registration rejected: email taken")
		return dtos.AuthResponse{}, &ConflictError{Message: "email already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return dtos.AuthResponse{}, fromStore(err, "User", nil)
	}

	u := models.User{
		Username:  username,
		Email:     email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      DefaultRole,
	}
	if err := u.SetPassword(in.Password, s.bcryptCost); err != nil {
		return dtos.AuthResponse{}, err
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return dtos.AuthResponse{}, fromStore(err, "User", nil)
	}
	s.log.Info().Str("username", u.Username).Uint("user_id", u.ID).Msg("user registered")
	return s.respond(&u)
}

// Login accepts either the username or the email as identifier.
func (s *AuthService) Login(ctx context.Context, in dtos.LoginRequest) (dtos.AuthResponse, error) {
	ident := strings.TrimSpace(in.Username)
	u, err := s.users.FindByUsername(ctx, ident)
	if errors.Is(err, repositories.ErrNotFound) {
		u, err = s.users.FindByEmail(ctx, ident)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.log.Info().Str("login", ident).Msg("login failed: unknown user")
			return dtos.AuthResponse{}, ErrInvalidCredentials
		}
		return dtos.AuthResponse{}, fromStore(err, "User", nil)
	}
	if err := u.ComparePassword(in.Password); err != nil {
		s.log.Info().Str("login", ident).Msg("login failed: wrong password")
		return dtos.AuthResponse{}, ErrInvalidCredentials
	}
	return s.respond(u)
}

// ResolvePrincipal loads the user a verified token names.
func (s *AuthService) ResolvePrincipal(ctx context.Context, username string) (*auth.Principal, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fromStore(err, "User", nil)
	}
	return &auth.Principal{UserID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}, nil
}

func (s *AuthService) respond(u *models.User) (dtos.AuthResponse, error) {
	token, err := s.tokens.Issue(u.Username, u.Role)
	if err != nil {
		return dtos.AuthResponse{}, err
	}
	return dtos.AuthResponse{Token: token, User: toUserDTO(u)}, nil
}
