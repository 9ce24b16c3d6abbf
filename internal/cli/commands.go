package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credstore/internal/common"
	"github.com/dmitrijs2005/credstore/internal/users"
)

// readCredentials prompts for both fields. Empty values after trimming
// produce common.ErrorValidation; values the users file cannot hold produce
// an error matching both common.ErrorValidation and
// common.ErrorMalformedRecord.
func (a *App) readCredentials(userPrompt, passPrompt string) (string, string, error) {
	username, err := GetSimpleText(a.reader, userPrompt, a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.reader, a.fd, passPrompt, a.out)
	if err != nil {
		return "", "", err
	}
	if username == "" || password == "" {
		return "", "", common.ErrorValidation
	}
	if err := users.Validate(users.User{Username: username, Password: password}); err != nil {
		return "", "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return username, password, nil
}

// reportInvalid tells the user why readCredentials rejected the input.
func (a *App) reportInvalid(err error) {
	switch {
	case errors.Is(err, common.ErrorMalformedRecord):
		fmt.Fprintln(a.out, "Username cannot contain commas or line breaks.")
	case errors.Is(err, common.ErrorValidation):
		fmt.Fprintln(a.out, "Username and password cannot be empty.")
	}
}

func (a *App) warnSave(ctx context.Context, err error) {
	fmt.Fprintf(a.out, "Warning: could not save users: %v\n", err)
	a.logger.Warn(ctx, "persistence failure reported to user", "error", err)
}

func (a *App) Register(ctx context.Context) error {
	username, password, err := a.readCredentials("Enter new username: ", "Enter new password: ")
	if err != nil {
		a.reportInvalid(err)
		return err
	}

	ok, err := a.store.Register(ctx, username, password)
	switch {
	case err != nil:
		a.warnSave(ctx, err)
		return err
	case ok:
		fmt.Fprintln(a.out, "User registered successfully.")
	default:
		fmt.Fprintln(a.out, "Username already exists.")
	}
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, password, err := a.readCredentials("Enter username: ", "Enter password: ")
	if err != nil {
		a.reportInvalid(err)
		return err
	}

	if a.store.Login(username, password) {
		fmt.Fprintln(a.out, "Login successful!")
	} else {
		fmt.Fprintln(a.out, "Invalid credentials.")
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username to delete: ", a.out)
	if err != nil {
		return err
	}

	ok, err := a.store.Delete(ctx, username)
	switch {
	case err != nil:
		a.warnSave(ctx, err)
		return err
	case ok:
		fmt.Fprintln(a.out, "User deleted.")
	default:
		fmt.Fprintln(a.out, "User not found.")
	}
	return nil
}

func (a *App) List(ctx context.Context) error {
	names := a.store.List()
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(a.out, "Username: %s\n", name)
	}
	return nil
}
