// Package session makes the state the original pages kept in global
// variables explicit: each browser session owns one Session object with
// the in-progress order, the current selection and the pending
// notification. Sessions live in memory and are identified by a cookie.
package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"inventario-admin/models"
)

const cookieName = "admin_session"

// Notice is a one-shot user notification (success, error or warning),
// displayed once on the next page render.
type Notice struct {
	Kind  string // "success", "error", "warning"
	Title string
	Text  string
}

// Session is the per-browser-session state of the order page
type Session struct {
	ID string

	mu           sync.Mutex
	customerName string
	lines        []models.OrderLine
	selected     *models.Product // selection in progress, frozen by value on add
	quantityText string
	notice       *Notice
}

// CustomerName returns the customer name entered so far
func (s *Session) CustomerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customerName
}

// SetCustomerName records the customer name field
func (s *Session) SetCustomerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerName = name
}

// Selected returns the product selection in progress, or nil
func (s *Session) Selected() *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select records a product selection for the next AddItem
func (s *Session) Select(p *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = p
}

// QuantityText returns the raw quantity field as last entered
func (s *Session) QuantityText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantityText
}

// SetQuantityText records the raw quantity field
func (s *Session) SetQuantityText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantityText = text
}

// Notify stores a notice to show on the next render, replacing any
// pending one
func (s *Session) Notify(kind, title, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = &Notice{Kind: kind, Title: title, Text: text}
}

// PopNotice returns and clears the pending notice, or nil
func (s *Session) PopNotice() *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = nil
	return n
}

// Store holds the live sessions keyed by cookie value
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Attach returns the session for the request's cookie, creating the
// session (and setting the cookie) when absent.
func (st *Store) Attach(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(cookieName); err == nil {
		st.mu.RLock()
		sess, ok := st.sessions[c.Value]
		st.mu.RUnlock()
		if ok {
			return sess
		}
	}

	sess := &Session{ID: uuid.NewString()}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
	})
	return sess
}

// Get returns the session with the given id, or nil
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}
