package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/auctionhub/internal/client/controller"
	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/client/services"
	"github.com/dmitrijs2005/auctionhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authMessage turns a login or register failure into the text shown to the
// user.
func authMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return "Username and password are required"
	case errors.Is(err, common.ErrUnauthorized):
		return "Invalid username or password"
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable, try again later"
	default:
		return "Request failed: " + err.Error()
	}
}

// Register prompts for the account fields and creates the account. On
// success the new user is logged in and the current screen is reloaded.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name (optional)", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.auth.Register(ctx, models.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		a.log.Warn(ctx, "register unsuccessful", "username", username, "error", err)
		a.deps.Notifier.ShowError(authMessage(err))
		return err
	}

	a.log.Info(ctx, "register successful", "username", user.Username)
	a.deps.Notifier.ShowSuccess(fmt.Sprintf("Welcome, %s!", displayName(user)))
	a.reopen()
	return nil
}

// Login prompts for credentials and replaces the session. The password is
// wiped before returning. A failed login leaves the previous session alone.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "username", username, "error", err)
		a.deps.Notifier.ShowError(authMessage(err))
		return err
	}

	a.log.Info(ctx, "login successful", "username", user.Username)
	a.deps.Notifier.ShowSuccess(fmt.Sprintf("Logged in as %s", displayName(user)))
	a.reopen()
	return nil
}

// Logout clears the session and returns to the home screen. The in-memory
// session is gone even when erasing the persisted copy fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout could not erase the stored session", "error", err)
	}
	a.deps.Notifier.ShowInfo("Logged out")
	a.Navigate(controller.PathHome, nil)
	return err
}

func displayName(u models.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
