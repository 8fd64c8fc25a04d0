package forms

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/common"
)

// closeDelay is how long a closed dialog keeps its selected id, mirroring
// the fade-out during which the record stays on screen.
const closeDelay = 200 * time.Millisecond

// selection tracks which record an update/info dialog is showing. Zero
// means nothing selected.
type selection struct {
	mu sync.Mutex
	id int
}

func (s *selection) set(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

func (s *selection) get() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// clearAfterDelay schedules the clear; a selection made in the meantime
// survives it.
func (s *selection) clearAfterDelay() {
	s.mu.Lock()
	id := s.id
	s.mu.Unlock()

	time.AfterFunc(closeDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.id == id {
			s.id = 0
		}
	})
}

// options caches a reference list after its first successful load. A failed
// load stays uncached so the next open retries.
type options[T any] struct {
	mu     sync.Mutex
	loaded bool
	items  []T
}

func (o *options[T]) load(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.loaded {
		return o.items, nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	o.items = items
	o.loaded = true
	return items, nil
}

// reportError queues a toast for a failed service call. Cancellations from
// view teardown stay silent; field errors render inline instead.
func reportError(store *session.Store, err error) {
	if err == nil || common.IsCanceled(err) {
		return
	}
	var fields FieldErrors
	if errors.As(err, &fields) {
		return
	}
	store.Notify(session.LevelError, httpx.Detail(err))
}

// toggle flips the presence of id in ids, returning the updated set.
func toggle(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
