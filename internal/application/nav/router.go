// Package nav is the headless navigation controller behind the site shell.
// It owns the page history stack so browser-style back and forward work the
// same for every client, and it gates the admin console on authorization.
package nav

import (
	"errors"
	"sync"
)

// Page identifies one view of the site.
type Page string

const (
	PageHome          Page = "home"
	PageExperiences   Page = "experiences"
	PageMission       Page = "mission"
	PageConservation  Page = "conservation"
	PageRelief        Page = "relief"
	PageInvolved      Page = "involved"
	PageBlog          Page = "blog"
	PageContact       Page = "contact"
	PageAdmin         Page = "admin"
	PageTourDetail    Page = "tour-detail"
	PageProjectDetail Page = "project-detail"
	PageProgramDetail Page = "education-program-detail"
	PageBlogDetail    Page = "blog-detail"
)

// EntityKind names the record type a detail page shows.
type EntityKind string

const (
	EntityTour    EntityKind = "tour"
	EntityProject EntityKind = "project"
	EntityProgram EntityKind = "program"
	EntityArticle EntityKind = "article"
)

// detailPage maps each entity kind to the page that renders it.
var detailPage = map[EntityKind]Page{
	EntityTour:    PageTourDetail,
	EntityProject: PageProjectDetail,
	EntityProgram: PageProgramDetail,
	EntityArticle: PageBlogDetail,
}

var (
	ErrUnknownPage   = errors.New("unknown page")
	ErrUnknownEntity = errors.New("unknown entity kind")
	ErrEmptyEntityID = errors.New("entity id is empty")
	ErrNoHistory     = errors.New("no history entry in that direction")
	ErrUnauthorized  = errors.New("admin access requires authorization")
)

var validPages = map[Page]struct{}{
	PageHome: {}, PageExperiences: {}, PageMission: {}, PageConservation: {},
	PageRelief: {}, PageInvolved: {}, PageBlog: {}, PageContact: {},
	PageAdmin: {}, PageTourDetail: {}, PageProjectDetail: {},
	PageProgramDetail: {}, PageBlogDetail: {},
}

// State is one history entry. EntityKind and EntityID are set only on
// detail pages.
type State struct {
	Page       Page       `json:"page"`
	EntityKind EntityKind `json:"entityKind,omitempty"`
	EntityID   string     `json:"entityId,omitempty"`
}

// AdminGatePolicy decides what happens when an unauthorized visitor
// navigates to the admin console.
type AdminGatePolicy int

const (
	// GateFallbackHome records a navigation to the home page instead.
	GateFallbackHome AdminGatePolicy = iota
	// GateRefuse rejects the navigation and leaves the history unchanged.
	GateRefuse
)

// Router tracks the current page and its history. Safe for concurrent use.
//
// Authorize reports whether the caller may open the admin console; a nil
// Authorize denies everyone.
type Router struct {
	mu        sync.Mutex
	stack     []State
	cursor    int
	authorize func() bool
	gate      AdminGatePolicy
}

// Option configures a Router.
type Option func(*Router)

func WithAuthorize(fn func() bool) Option {
	return func(r *Router) { r.authorize = fn }
}

func WithAdminGate(policy AdminGatePolicy) Option {
	return func(r *Router) { r.gate = policy }
}

// NewRouter starts on the home page with an empty back history.
func NewRouter(opts ...Option) *Router {
	r := &Router{stack: []State{{Page: PageHome}}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Current returns the active history entry.
func (r *Router) Current() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack[r.cursor]
}

// Navigate moves to page, clearing any detail entity and truncating the
// forward history. Navigating to the admin page while unauthorized follows
// the configured gate policy.
func (r *Router) Navigate(page Page) (State, error) {
	if _, ok := validPages[page]; !ok {
		return r.Current(), ErrUnknownPage
	}
	if page == PageAdmin && !r.authorized() {
		if r.gate == GateRefuse {
			return r.Current(), ErrUnauthorized
		}
		page = PageHome
	}
	return r.push(State{Page: page}), nil
}

// ViewDetail opens the detail page for one record, keeping the current page
// in the back history.
func (r *Router) ViewDetail(kind EntityKind, id string) (State, error) {
	page, ok := detailPage[kind]
	if !ok {
		return r.Current(), ErrUnknownEntity
	}
	if id == "" {
		return r.Current(), ErrEmptyEntityID
	}
	return r.push(State{Page: page, EntityKind: kind, EntityID: id}), nil
}

// Back moves the cursor one entry toward the start of the history.
func (r *Router) Back() (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cursor == 0 {
		return r.stack[r.cursor], ErrNoHistory
	}
	r.cursor--
	return r.stack[r.cursor], nil
}

// Forward moves the cursor one entry toward the end of the history. Only
// entries not yet truncated by a fresh navigation are reachable.
func (r *Router) Forward() (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cursor >= len(r.stack)-1 {
		return r.stack[r.cursor], ErrNoHistory
	}
	r.cursor++
	return r.stack[r.cursor], nil
}

// CanGoBack reports whether Back would succeed.
func (r *Router) CanGoBack() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor > 0
}

// CanGoForward reports whether Forward would succeed.
func (r *Router) CanGoForward() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor < len(r.stack)-1
}

// History returns a copy of the stack and the cursor position.
func (r *Router) History() ([]State, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.stack))
	copy(out, r.stack)
	return out, r.cursor
}

func (r *Router) authorized() bool {
	r.mu.Lock()
	fn := r.authorize
	r.mu.Unlock()
	return fn != nil && fn()
}

// push truncates the forward history and appends state.
func (r *Router) push(state State) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stack = append(r.stack[:r.cursor+1], state)
	r.cursor = len(r.stack) - 1
	return state
}
