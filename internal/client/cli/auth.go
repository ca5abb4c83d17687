package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scriptoria/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// SignUp prompts for the account fields and creates the account. It does
// not log the user in.
func (a *App) SignUp(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.SignUp(ctx, userName, email, password, confirm); err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("Account created. Please log in."))
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.email, a.userName = resp.Email, resp.GetUsername()
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Welcome, %s!", resp.GetUsername())))
	return nil
}

// Logout ends the session. The local session is forgotten even if the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	err := a.client.Logout(ctx)
	a.email, a.userName = "", ""
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
