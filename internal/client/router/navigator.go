package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/collabdocs/internal/logging"
)

// maxRedirects bounds redirect chains produced by the guard.
const maxRedirects = 4

var ErrRedirectLoop = errors.New("too many redirects")

// Navigator holds the current location and applies the guard to every
// navigation.
type Navigator struct {
	guard  *Guard
	routes []Route
	logger logging.Logger

	mu      sync.RWMutex
	current Location
}

func NewNavigator(guard *Guard, logger logging.Logger) *Navigator {
	return &Navigator{guard: guard, routes: DefaultRoutes, logger: logger}
}

// Current returns the current location.
func (n *Navigator) Current() Location {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Push navigates to raw, following guard redirects, and returns the location
// that was finally entered.
func (n *Navigator) Push(ctx context.Context, raw string) (Location, error) {
	target := raw
	for range maxRedirects {
		loc, err := Resolve(n.routes, target)
		if err != nil {
			return Location{}, fmt.Errorf("resolve %q: %w", target, err)
		}
		d := n.guard.BeforeEach(loc)
		if d.Allowed() {
			n.mu.Lock()
			n.current = loc
			n.mu.Unlock()
			return loc, nil
		}
		n.logger.Debug(ctx, "navigation redirected", "from", loc.FullPath(), "to", d.Redirect)
		target = d.Redirect
	}
	return Location{}, fmt.Errorf("%w: %s", ErrRedirectLoop, raw)
}

// RedirectToLogin sends the user to the login page after the session was
// invalidated.
func (n *Navigator) RedirectToLogin(ctx context.Context) {
	if _, err := n.Push(ctx, LoginPath); err != nil {
		n.logger.Error(ctx, "redirect to login failed", "error", err)
	}
}

// AfterLogin continues to the path remembered by the login redirect, or home.
func (n *Navigator) AfterLogin(ctx context.Context) (Location, error) {
	target := HomePath
	cur := n.Current()
	if cur.Route.Name == RouteLogin {
		// only local paths are followed
		if r := cur.Query.Get(RedirectParam); strings.HasPrefix(r, "/") && !strings.HasPrefix(r, "//") {
			target = r
		}
	}
	return n.Push(ctx, target)
}
