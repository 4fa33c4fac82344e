// Package app holds the client-side application state: the auth state
// machine, the session mirror, and the derived view state (status text,
// message, watchlist, last quote).
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/rajeshacpt/Invest-Guru/internal/api"
	"github.com/rajeshacpt/Invest-Guru/internal/model"
	"github.com/rajeshacpt/Invest-Guru/internal/recorder"
	"github.com/rajeshacpt/Invest-Guru/internal/session"
)

// State is the auth state of the controller.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Controller composes the session store and the API client. It owns a
// read-only mirror of the persisted session, re-synced from storage only at
// startup; the store is the single writer's target on login success.
type Controller struct {
	mu     sync.Mutex
	client *api.Client
	store  session.Store
	rec    recorder.Recorder

	state     State
	session   model.Session
	status    string
	message   string
	watchlist []model.WatchlistItem
	quote     *model.Quote
}

// NewController creates a controller in the Anonymous state. Call Start to
// probe health and restore a persisted session.
func NewController(client *api.Client, store session.Store, rec recorder.Recorder) *Controller {
	return &Controller{
		client: client,
		store:  store,
		rec:    rec,
		state:  StateAnonymous,
		status: "checking",
	}
}

// Start runs the startup sequence: one health probe, then session
// restoration. A stored credential transitions directly to Authenticated and
// triggers exactly one watchlist load, with no auth calls. Health probe
// failure blocks nothing.
func (c *Controller) Start() {
	status, err := c.client.Health()
	if err != nil {
		log.Printf("[WARN] health probe: %v", err)
		status = "error"
	}
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()

	sess := c.store.Load()
	if !sess.Present() {
		return
	}
	c.mu.Lock()
	c.session = sess
	c.state = StateAuthenticated
	c.mu.Unlock()
	c.refreshWatchlist()
}

// Login exchanges credentials for a session. On success the token is
// persisted, the state becomes Authenticated, and the watchlist is loaded.
// On failure the state is unchanged and the failure detail becomes the
// user-visible message.
func (c *Controller) Login(username, password string) error {
	c.setMessage("")
	token, err := c.client.Login(username, password)
	if err != nil {
		c.setMessage(err.Error())
		return err
	}
	if err := c.store.Save(token); err != nil {
		// The session is still valid for this process lifetime.
		log.Printf("[ERROR] persist session: %v", err)
	}
	c.mu.Lock()
	c.session = model.Session{Token: token}
	c.state = StateAuthenticated
	c.mu.Unlock()
	c.refreshWatchlist()
	return nil
}

// Register creates an account and, on success, immediately logs in with the
// same credentials. A registration failure short-circuits: no login call is
// issued and the detail is surfaced.
func (c *Controller) Register(username, password string) error {
	c.setMessage("")
	if err := c.client.Register(username, password); err != nil {
		c.setMessage(err.Error())
		return err
	}
	return c.Login(username, password)
}

// Logout clears the persisted credential and returns to Anonymous.
func (c *Controller) Logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.mu.Lock()
	c.session = model.Session{}
	c.state = StateAnonymous
	c.watchlist = nil
	c.mu.Unlock()
	return nil
}

// AddSymbol appends a symbol to the watchlist and reloads it in full.
// Requires an authenticated session; without one no network call is issued
// and a "Login first" message is produced.
func (c *Controller) AddSymbol(symbol string) error {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if !sess.Present() {
		c.setMessage("Login first")
		return api.ErrUnauthorized
	}

	sym := model.NormalizeSymbol(symbol)
	if err := c.client.AddToWatchlist(sess.Token, sym); err != nil {
		log.Printf("[ERROR] add %s to watchlist: %v", sym, err)
		c.setMessage(err.Error())
		return err
	}
	// Read-after-write by full reload; the add response carries no list state.
	c.refreshWatchlist()
	return nil
}

// FetchQuote retrieves the quote for a symbol and replaces the single held
// quote on success. On failure the previously displayed quote is retained,
// and unknown symbols are reported distinctly from service failures.
func (c *Controller) FetchQuote(symbol string) error {
	sym := model.NormalizeSymbol(symbol)
	quote, err := c.client.Quote(sym)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			log.Printf("[WARN] quote %s: not found", sym)
			c.setMessage(fmt.Sprintf("No quote for %s", sym))
		} else {
			log.Printf("[ERROR] quote %s: %v", sym, err)
			c.setMessage(err.Error())
		}
		return err
	}
	c.mu.Lock()
	c.quote = quote
	c.mu.Unlock()
	if err := c.rec.RecordQuote(quote); err != nil {
		log.Printf("[ERROR] record quote: %v", err)
	}
	return nil
}

// EnqueueJob submits a background quote-computation job. Fire-and-forget:
// the returned identifier is displayed and never polled.
func (c *Controller) EnqueueJob(symbol string) (string, error) {
	sym := model.NormalizeSymbol(symbol)
	jobID, err := c.client.SubmitQuoteJob(sym)
	if err != nil {
		log.Printf("[ERROR] enqueue job for %s: %v", sym, err)
		c.setMessage(err.Error())
		return "", err
	}
	c.setMessage("Job queued: " + jobID)
	if err := c.rec.RecordJob(sym, jobID); err != nil {
		log.Printf("[ERROR] record job: %v", err)
	}
	return jobID, nil
}

// refreshWatchlist replaces the local watchlist copy with the server's.
// Overlapping calls are last-write-wins on the displayed state.
func (c *Controller) refreshWatchlist() {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if !sess.Present() {
		return
	}
	items, err := c.client.Watchlist(sess.Token)
	if err != nil {
		log.Printf("[ERROR] load watchlist: %v", err)
		c.setMessage(err.Error())
		return
	}
	c.mu.Lock()
	c.watchlist = items
	c.mu.Unlock()
}

func (c *Controller) setMessage(msg string) {
	c.mu.Lock()
	c.message = msg
	c.mu.Unlock()
}

// State returns the current auth state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the health probe result ("error" if the probe failed).
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Message returns the current user-visible message.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Watchlist returns a copy of the local watchlist.
func (c *Controller) Watchlist() []model.WatchlistItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]model.WatchlistItem, len(c.watchlist))
	copy(items, c.watchlist)
	return items
}

// Quote returns the last successfully fetched quote, or nil.
func (c *Controller) Quote() *model.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quote == nil {
		return nil
	}
	q := *c.quote
	return &q
}
