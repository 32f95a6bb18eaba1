package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/shared"
)

// getSimpleText and getPassword are swapped out in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	user, err := a.client.Register(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id=%d)\n", user.Username, user.ID)
	return nil
}

// Login prompts for credentials and keeps the issued token for later
// commands.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout drops the stored token.
func (a *App) Logout(context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
