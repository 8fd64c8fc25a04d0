package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fyoffice/fyoffice/internal/client/forms"
	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
	"github.com/fyoffice/fyoffice/internal/common"
)

// getSimpleText and getPassword are indirections for tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login authenticates, persists the bearer token and loads the caller's own
// user record into the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := models.LoginDto{Email: email, Password: password}
	if err := forms.Validate(creds); err != nil {
		a.printFieldErrors(err)
		return err
	}

	logged, err := a.auth.Login(ctx, creds)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", httpx.Detail(err))
		return err
	}

	token := tokenstore.Token{
		Name:      tokenstore.AccessTokenName,
		Value:     logged.AccessToken.Token,
		ExpiresAt: tokenstore.ExpiryFor(logged.AccessToken.Token, logged.AccessToken.Expiration),
	}
	if err := a.tokens.Set(ctx, token); err != nil {
		a.log.Warn(ctx, "failed to persist token", "error", err)
	}

	me, err := a.users.GetFromAuth(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your user record:", httpx.Detail(err))
		return err
	}
	a.store.SetUser(me)
	fmt.Fprintf(a.out, "Welcome, %s!\n", me.FullName())
	return nil
}

// Logout asks for confirmation, revokes the refresh token and clears the
// session. The session is cleared even when the revoke call fails.
func (a *App) Logout(ctx context.Context) {
	a.store.ShowConfirmation("Logging Out", "Are you sure you want to logout?", []session.Action{
		{Label: "Cancel", Style: session.StyleSecondary},
		{Label: "Logout", Style: session.StyleDanger, Invoke: func() {
			if err := a.auth.RevokeToken(ctx); err != nil && !common.IsCanceled(err) {
				a.log.Warn(ctx, "revoke token failed", "error", err)
			}
			a.store.ClearUser()
			if err := a.tokens.Delete(ctx, tokenstore.AccessTokenName); err != nil {
				a.log.Warn(ctx, "failed to drop persisted token", "error", err)
			}
			fmt.Fprintln(a.out, "Logged out.")
		}},
	})
	a.resolveConfirmation()
}

func (a *App) printFieldErrors(err error) {
	var fields forms.FieldErrors
	if !errors.As(err, &fields) {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for field, msg := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
}
