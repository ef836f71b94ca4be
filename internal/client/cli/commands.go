package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
)

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {"register", "create an account", a.Register},
		"login":    {"login", "log in", a.Login},
		"logout":   {"logout", "log out", a.Logout},
		"whoami":   {"whoami", "show the current user", a.WhoAmI},
		"refresh":  {"refresh", "reload the profile from the server", a.RefreshProfile},
		"nickname": {"nickname <name>", "change your nickname", a.SetNickname},

		"docs":     {"docs", "list your documents", a.ListDocuments},
		"open":     {"open <docId>", "show a document", a.OpenDocument},
		"new":      {"new <title...>", "create a document", a.NewDocument},
		"edit":     {"edit <docId>", "replace a document's content", a.EditDocument},
		"rm":       {"rm <docId>", "delete a document", a.RemoveDocument},
		"history":  {"history <docId>", "list saved versions", a.ListVersions},
		"version":  {"version <docId> <n>", "show a saved version", a.ShowVersion},
		"rollback": {"rollback <docId> <n>", "restore a saved version", a.Rollback},

		"share":   {"share <docId> <userId> <read|edit|manage>", "grant a user access", a.Share},
		"members": {"members <docId>", "list document members", a.Members},
		"perm":    {"perm <docId> <userId> <read|edit|manage>", "change a member's permission", a.SetPermission},
		"kick":    {"kick <docId> <userId>", "remove a member", a.Kick},
		"link":    {"link <docId> <perm> [days] [uses]", "create a share link", a.CreateLink},
		"links":   {"links <docId>", "list share links", a.Links},
		"revoke":  {"revoke <linkId>", "disable a share link", a.Revoke},
		"preview": {"preview <token>", "inspect a share link", a.Preview},
		"join":    {"join <token>", "join a document by share link", a.Join},

		"friends":  {"friends", "list friends", a.ListFriends},
		"requests": {"requests", "list incoming friend requests", a.ListRequests},
		"sent":     {"sent", "list sent friend requests", a.SentRequests},
		"befriend": {"befriend <userId> [message...]", "send a friend request", a.Befriend},
		"accept":   {"accept <requestId>", "accept a friend request", a.Accept},
		"reject":   {"reject <requestId>", "reject a friend request", a.Reject},
		"unfriend": {"unfriend <userId>", "remove a friend", a.Unfriend},
		"search":   {"search <keyword>", "find users", a.Search},
		"user":     {"user <userId>", "show a user", a.ShowUser},

		"goto": {"goto <path>", "navigate to a location", a.Goto},
	}
}

// enter navigates to path and reports whether the guard let the user reach
// the route named want.
func (a *App) enter(ctx context.Context, path, want string) (router.Location, bool) {
	loc, err := a.nav.Push(ctx, path)
	if err != nil {
		a.logger.Error(ctx, "navigation failed", "path", path, "error", err)
		fmt.Fprintln(a.out, "Navigation failed.")
		return loc, false
	}
	if loc.Route.Name == want {
		return loc, true
	}
	switch loc.Route.Name {
	case router.RouteLogin:
		fmt.Fprintln(a.out, "Please log in first.")
	case router.RouteHome:
		fmt.Fprintln(a.out, "You are already logged in.")
	default:
		fmt.Fprintf(a.out, "Redirected to %s.\n", loc.FullPath())
	}
	return loc, false
}

// Goto navigates without running a command.
func (a *App) Goto(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	loc, err := a.nav.Push(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", loc.FullPath(), loc.Route.Name)
	return nil
}

func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, client.ErrUnauthorized):
		return "not logged in or session expired"
	case errors.Is(err, client.ErrUnavailable):
		return client.ErrUnavailable.Error()
	}
	return err.Error()
}

func parseID(s string) (models.ID, error) {
	if strings.TrimSpace(s) == "" {
		return "", errUsage
	}
	return models.ID(s), nil
}

func parsePermission(s string) (models.Permission, error) {
	switch strings.ToLower(s) {
	case "read", "r", "1":
		return models.PermissionRead, nil
	case "edit", "w", "2":
		return models.PermissionEdit, nil
	case "manage", "m", "3":
		return models.PermissionManage, nil
	}
	return 0, fmt.Errorf("unknown permission %q (want read, edit or manage)", s)
}

func parseInt(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %q", what, s)
	}
	return n, nil
}
