// Package router decides where the user may navigate based on the session.
package router

import (
	"net/url"
	"strings"
)

// Route names.
const (
	RouteLogin           = "Login"
	RouteRegister        = "Register"
	RouteShareJoin       = "ShareJoin"
	RouteHome            = "Home"
	RouteDocuments       = "Documents"
	RouteSharedDocuments = "SharedDocuments"
	RouteDocument        = "Document"
	RouteProfile         = "Profile"
	RouteFriends         = "Friends"
	RouteUserProfile     = "UserProfile"
	RouteNotFound        = "NotFound"
)

const (
	LoginPath = "/login"
	HomePath  = "/"

	// RedirectParam carries the originally requested path to the login page.
	RedirectParam = "redirect"
)

// Route is an entry of the route table. Public routes are reachable
// without a session.
type Route struct {
	Name    string
	Pattern string
	Public  bool
}

// DefaultRoutes is the client's route table.
var DefaultRoutes = []Route{
	{Name: RouteLogin, Pattern: "/login", Public: true},
	{Name: RouteRegister, Pattern: "/register", Public: true},
	{Name: RouteShareJoin, Pattern: "/share/:token", Public: true},
	{Name: RouteHome, Pattern: "/"},
	{Name: RouteDocuments, Pattern: "/documents"},
	{Name: RouteSharedDocuments, Pattern: "/documents/shared"},
	{Name: RouteDocument, Pattern: "/document/:id"},
	{Name: RouteProfile, Pattern: "/profile"},
	{Name: RouteFriends, Pattern: "/friends"},
	{Name: RouteUserProfile, Pattern: "/user/:id"},
}

var notFound = Route{Name: RouteNotFound, Pattern: "*"}

// Location is a resolved navigation target.
type Location struct {
	Route  Route
	Path   string
	Query  url.Values
	Params map[string]string
}

// FullPath returns the path with its query string.
func (l Location) FullPath() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Param returns a path parameter such as "id" of /document/:id.
func (l Location) Param(name string) string {
	return l.Params[name]
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(pattern, path string) (map[string]string, bool) {
	ps, xs := splitPath(pattern), splitPath(path)
	if len(ps) != len(xs) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range ps {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if xs[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(xs[i])
			if err != nil {
				return nil, false
			}
			params[name] = v
			continue
		}
		if seg != xs[i] {
			return nil, false
		}
	}
	return params, true
}

// Resolve maps raw (a path with optional query) onto the route table.
// Paths matching no route resolve to the protected NotFound route.
func Resolve(routes []Route, raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, err
	}
	path := u.Path
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	loc := Location{Path: path, Query: u.Query(), Route: notFound}
	for _, r := range routes {
		if params, ok := match(r.Pattern, path); ok {
			loc.Route = r
			loc.Params = params
			break
		}
	}
	return loc, nil
}
