package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
)

// getSimpleText and getPassword point to the interactive input helpers and
// are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) readPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer clear(pw)
	return string(pw), nil
}

// Register prompts for account details and creates the account. It does not
// log in.
func (a *App) Register(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/register", router.RouteRegister); !ok {
		return nil
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Nickname (optional)", a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Register(ctx, models.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
		Nickname: nickname,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s. You can log in now.\n", u.Username)
	return nil
}

// Login prompts for credentials and continues to the page that required
// the login, if any.
func (a *App) Login(ctx context.Context, _ []string) error {
	if cur := a.nav.Current(); cur.Route.Name != router.RouteLogin {
		if _, ok := a.enter(ctx, router.LoginPath, router.RouteLogin); !ok {
			return nil
		}
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	p, err := a.session.Login(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(p))

	loc, err := a.nav.AfterLogin(ctx)
	if err != nil {
		return err
	}
	if loc.Route.Name != router.RouteHome {
		fmt.Fprintf(a.out, "Continuing to %s\n", loc.FullPath())
	}
	return nil
}

// Logout always ends the local session, even when the server is unreachable.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.session.Logout(ctx)
	a.resetStores()
	if _, navErr := a.nav.Push(ctx, router.LoginPath); navErr != nil {
		a.logger.Error(ctx, "navigation failed", "error", navErr)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/profile", router.RouteProfile); !ok {
		return nil
	}
	p := a.session.Profile()
	if p == nil {
		fmt.Fprintln(a.out, "Profile not loaded; run 'refresh'.")
		return nil
	}
	printProfile(a.out, p)
	if exp := a.session.ExpiresAt(); !exp.IsZero() {
		fmt.Fprintf(a.out, "Session expires: %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) RefreshProfile(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/profile", router.RouteProfile); !ok {
		return nil
	}
	p, err := a.session.RefreshProfile(ctx)
	if err != nil {
		return err
	}
	if p != nil {
		printProfile(a.out, p)
	}
	return nil
}

func (a *App) SetNickname(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/profile", router.RouteProfile); !ok {
		return nil
	}
	p, err := a.session.UpdateProfile(ctx, models.UpdateProfileRequest{Nickname: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	printProfile(a.out, p)
	return nil
}
