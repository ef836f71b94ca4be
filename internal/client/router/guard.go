package router

import (
	"net/url"
)

// AuthState reports whether a session is held.
type AuthState interface {
	IsAuthenticated() bool
}

// Guard gates navigation on the session.
type Guard struct {
	auth AuthState
}

func NewGuard(auth AuthState) *Guard {
	return &Guard{auth: auth}
}

// Decision is the verdict of BeforeEach. An empty Redirect allows the
// navigation.
type Decision struct {
	Redirect string
}

func (d Decision) Allowed() bool { return d.Redirect == "" }

// BeforeEach runs before every navigation to to.
//
// Protected targets without a session redirect to the login page carrying
// the original full path. Login and Register with a session redirect home.
func (g *Guard) BeforeEach(to Location) Decision {
	authed := g.auth.IsAuthenticated()

	if !to.Route.Public && !authed {
		q := url.Values{RedirectParam: {to.FullPath()}}
		return Decision{Redirect: LoginPath + "?" + q.Encode()}
	}
	if (to.Route.Name == RouteLogin || to.Route.Name == RouteRegister) && authed {
		return Decision{Redirect: HomePath}
	}
	return Decision{}
}
