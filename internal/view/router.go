package view

import (
	"classorder/internal/session"
)

// Layout is the viewport class a screen renders in.
type Layout int

const (
	LayoutDesktop Layout = iota
	LayoutMobile
)

func (l Layout) String() string {
	if l == LayoutMobile {
		return "mobile"
	}
	return "desktop"
}

// MobileMaxWidth is the exclusive upper bound of the mobile viewport class.
const MobileMaxWidth = 600

// ClassifyViewport maps a width in pixels to a layout.
func ClassifyViewport(width int) Layout {
	if width < MobileMaxWidth {
		return LayoutMobile
	}
	return LayoutDesktop
}

// Paths of the client's screens.
const (
	PathLogin    = "/login"
	PathCoaches  = "/coach"
	PathBookings = "/booking"
	PathProfile  = "/profile"
)

// Decision is the outcome of resolving a navigation: which screen renders,
// in which layout, and whether the requested path was redirected.
type Decision struct {
	Path       string
	Layout     Layout
	Redirected bool
}

// roleHome is the landing screen per role.
func roleHome(sess *session.Session) string {
	if sess.IsAdmin() {
		return PathCoaches
	}
	return PathBookings
}

// Resolve applies the access rules, in priority order:
//  1. no session and not on the login path: show login;
//  2. session present on the login path: go to the role's home;
//  3. a coach may never reach coach management: forced to bookings;
//  4. otherwise render the requested screen, unknown paths go home.
//
// The layout follows the viewport class alone, so one set of rules serves
// both variants.
func Resolve(sess *session.Session, path string, width int) Decision {
	layout := ClassifyViewport(width)

	if sess == nil {
		return Decision{Path: PathLogin, Layout: layout, Redirected: path != PathLogin}
	}

	if path == PathLogin {
		return Decision{Path: roleHome(sess), Layout: layout, Redirected: true}
	}

	if sess.IsCoach() && path == PathCoaches {
		return Decision{Path: PathBookings, Layout: layout, Redirected: true}
	}

	switch path {
	case PathBookings:
		return Decision{Path: PathBookings, Layout: layout}
	case PathCoaches:
		// Only admins get here; the coach case was redirected above.
		return Decision{Path: PathCoaches, Layout: layout}
	case PathProfile:
		if sess.IsCoach() {
			return Decision{Path: PathProfile, Layout: layout}
		}
		return Decision{Path: roleHome(sess), Layout: layout, Redirected: true}
	default:
		return Decision{Path: roleHome(sess), Layout: layout, Redirected: true}
	}
}

// Router tracks the mounted path and viewport and re-resolves on every
// navigation or resize. The session is re-read from the store per render so
// login and logout take effect immediately.
type Router struct {
	store session.Store

	path  string
	width int
}

func NewRouter(store session.Store, width int) *Router {
	return &Router{
		store: store,
		path:  PathLogin,
		width: width,
	}
}

func (r *Router) currentSession() *session.Session {
	sess, err := r.store.Load()
	if err != nil {
		return nil
	}
	return sess
}

// Navigate resolves a path request and mounts the decided screen.
func (r *Router) Navigate(path string) Decision {
	d := Resolve(r.currentSession(), path, r.width)
	r.path = d.Path
	return d
}

// Resize re-renders the mounted screen for the new viewport class without a
// navigation; screen state such as list filters is untouched.
func (r *Router) Resize(width int) Decision {
	r.width = width
	d := Resolve(r.currentSession(), r.path, r.width)
	r.path = d.Path
	return d
}

// Current reports the mounted path and layout.
func (r *Router) Current() (string, Layout) {
	return r.path, ClassifyViewport(r.width)
}
