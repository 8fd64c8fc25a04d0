// Package session holds process-wide UI state: the authenticated user and
// the single active confirmation dialog. Both live on an injected Store so
// no package-level mutable state exists.
package session

import (
	"sync"

	"github.com/fyoffice/fyoffice/internal/client/models"
)

// ButtonStyle is a presentation hint for a confirmation action.
type ButtonStyle string

const (
	StyleSecondary ButtonStyle = "secondary"
	StyleDanger    ButtonStyle = "danger"
	StyleSuccess   ButtonStyle = "success"
)

// Action is one button of a confirmation dialog. The store never interprets
// Invoke; each caller supplies its own closure.
type Action struct {
	Label  string
	Style  ButtonStyle
	Invoke func()
}

// Confirmation describes the currently open confirmation dialog.
type Confirmation struct {
	Visible     bool
	Title       string
	Description string
	Actions     []Action
}

// Level classifies a notification for rendering.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one queued toast-style message.
type Notification struct {
	Level   Level
	Message string
}

// Store carries the session and notification slices. Methods are safe for
// concurrent use.
type Store struct {
	mu            sync.RWMutex
	user          *models.UserDto
	confirmation  Confirmation
	notifications []Notification
}

func NewStore() *Store {
	return &Store{}
}

// SetUser records the authenticated user.
func (s *Store) SetUser(u models.UserDto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// ClearUser transitions to the unauthenticated state. This is the only way
// a logged-in user becomes logged-out: explicit logout or refresh failure.
func (s *Store) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the current user, or nil when unauthenticated.
func (s *Store) User() *models.UserDto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// ShowConfirmation opens a confirmation dialog, replacing any previous one.
func (s *Store) ShowConfirmation(title, description string, actions []Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmation = Confirmation{
		Visible:     true,
		Title:       title,
		Description: description,
		Actions:     actions,
	}
}

// HideConfirmation closes the active dialog.
func (s *Store) HideConfirmation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmation.Visible = false
}

// Confirmation returns a snapshot of the dialog state.
func (s *Store) Confirmation() Confirmation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirmation
}

// Notify queues a message for the shell to render on its next refresh.
func (s *Store) Notify(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// DrainNotifications returns the queued messages and empties the queue.
func (s *Store) DrainNotifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}
