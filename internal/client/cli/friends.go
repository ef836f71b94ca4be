package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
)

func (a *App) ListFriends(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	friends, err := a.friends.List(ctx)
	if err != nil {
		return err
	}
	printUsers(a.out, friends)
	if n, err := a.friends.PendingCount(ctx); err == nil && n > 0 {
		fmt.Fprintf(a.out, "%d pending friend request(s); run 'requests'.\n", n)
	}
	return nil
}

func (a *App) ListRequests(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	reqs, err := a.friends.ListRequests(ctx)
	if err != nil {
		return err
	}
	printRequests(a.out, reqs)
	return nil
}

func (a *App) SentRequests(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	reqs, err := a.friends.SentRequests(ctx)
	if err != nil {
		return err
	}
	printRequests(a.out, reqs)
	return nil
}

func (a *App) Befriend(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	if err := a.friends.Send(ctx, models.ID(args[0]), strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Friend request sent to user %s.\n", args[0])
	return nil
}

func (a *App) Accept(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	if err := a.friends.Accept(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Request accepted.")
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	if err := a.friends.Reject(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Request rejected.")
	return nil
}

func (a *App) Unfriend(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	if err := a.friends.Remove(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s removed from friends.\n", args[0])
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/friends", router.RouteFriends); !ok {
		return nil
	}
	users, err := a.users.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printUsers(a.out, users)
	return nil
}

func (a *App) ShowUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	loc, ok := a.enter(ctx, "/user/"+url.PathEscape(args[0]), router.RouteUserProfile)
	if !ok {
		return nil
	}
	id := models.ID(loc.Param("id"))
	u, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}
	isFriend, err := a.friends.IsFriend(ctx, id)
	if err != nil {
		return err
	}
	printUsers(a.out, []models.User{*u})
	if isFriend {
		fmt.Fprintln(a.out, "You are friends.")
	}
	return nil
}
