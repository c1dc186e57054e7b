package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/client/client"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
)

var ErrMissingCredentials = errors.New("username and password are required")

// SessionWriter is the part of the session the auth flow mutates.
type SessionWriter interface {
	Replace(ctx context.Context, resp models.AuthResponse) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: call the API and, on success, replace the session.
//   - Logout: clear the session, including its persisted copy.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionWriter
	log     logging.Logger
}

func NewAuthService(c client.Client, s SessionWriter, log logging.Logger) AuthService {
	return &authService{client: c, session: s, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	resp, err := a.client.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	if err := a.session.Replace(ctx, resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Password == "" {
		return models.User{}, ErrMissingCredentials
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if err := a.session.Replace(ctx, resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	a.log.Debug(ctx, "closing api client")
	return a.client.Close()
}
