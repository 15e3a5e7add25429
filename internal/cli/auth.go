package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const minPasswordLen = 6

// Register prompts the user for a username and password and attempts to
// create a new local account.
//
// Empty credentials and passwords shorter than six characters are rejected
// before the credential store is touched. A duplicate username is reported
// in place. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		printlnFn("Username and password are required.")
		return nil
	}
	if len(password) < minPasswordLen {
		printlnFn("Password must be at least 6 characters.")
		return nil
	}

	if err := a.authService.Register(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			printlnFn("Username already exists.")
			return nil
		}
		a.log.Error(ctx, "register", "error", err)
		return err
	}

	printlnFn("Registration successful! You can now login.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the local credential store.
//
// On success the session user is set, the selected date resets to today and
// the daily view renders. A failed attempt prints a generic message that
// does not distinguish unknown users from wrong passwords. The password is
// securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		printlnFn("Username and password are required.")
		return nil
	}

	userID, err := a.authService.Authenticate(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Invalid username or password.")
			return nil
		}
		a.log.Error(ctx, "login", "error", err)
		return err
	}

	a.userID = userID
	a.userName = userName
	a.selectedDate = a.today()
	printlnFn("Welcome, " + userName + "!")
	return a.List(ctx)
}

// Logout clears the in-memory session. Nothing about the session is
// persisted between runs.
func (a *App) Logout(ctx context.Context) error {
	a.userID = 0
	a.userName = ""
	a.selectedDate = ""
	printlnFn("Logged out.")
	return nil
}
