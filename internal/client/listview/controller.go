// Package listview holds the one list controller every entity view reuses:
// server-driven pagination plus page-local ordering and search over the rows
// already fetched. Changing the page or the page size reloads from the
// server; ordering and search never do.
package listview

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/logging"
)

var ErrInvalidPageSize = errors.New("page size is not one of the allowed values")

type State int

const (
	Loading State = iota
	Loaded
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// NoOrder means no column ordering is active and rows keep server order.
const NoOrder = -1

// Column is one sortable column of a list view.
type Column[T any] struct {
	Name    string
	Compare func(a, b T) int
}

// Fetcher loads one page from the server.
type Fetcher[T any] func(ctx context.Context, req models.PageRequest) (models.Page[T], error)

type Config[T any] struct {
	Fetch      Fetcher[T]
	Columns    []Column[T]
	ID         func(T) int
	SearchText func(T) string
	Log        logging.Logger
}

// Controller owns the list state of one entity view.
//
// Loads are generation-tagged: when several fetches overlap, only the most
// recently started one is allowed to publish its result, so a slow stale
// response can never overwrite a newer page.
type Controller[T any] struct {
	fetch      Fetcher[T]
	columns    []Column[T]
	id         func(T) int
	searchText func(T) string
	log        logging.Logger

	mu         sync.Mutex
	state      State
	page       models.Page[T]
	request    models.PageRequest
	orderBy    int
	direction  Direction
	search     string
	generation uint64
}

// NewController builds a controller ordered by the first column ascending,
// which every registry exposes as the numeric id.
func NewController[T any](cfg Config[T]) *Controller[T] {
	orderBy := NoOrder
	if len(cfg.Columns) > 0 {
		orderBy = 0
	}
	return &Controller[T]{
		fetch:      cfg.Fetch,
		columns:    cfg.Columns,
		id:         cfg.ID,
		searchText: cfg.SearchText,
		log:        cfg.Log,
		request:    models.DefaultPageRequest(),
		orderBy:    orderBy,
	}
}

// Load fetches the page described by the current request. A result whose
// generation is no longer current is discarded.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = Loading
	c.generation++
	gen := c.generation
	req := c.request
	c.mu.Unlock()

	page, err := c.fetch(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log.Debug(ctx, "discarding stale list response", "generation", gen)
		return nil
	}
	c.state = Loaded
	if err != nil {
		return err
	}
	c.page = page
	return nil
}

// SetPage jumps to the given zero-based page and reloads.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.request.Page = page
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetPageSize switches the page length, rewinds to the first page and
// reloads. Sizes outside models.PageSizeValues are rejected.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	if !models.ValidPageSize(size) {
		return ErrInvalidPageSize
	}
	c.mu.Lock()
	c.request = models.PageRequest{Page: 0, PageSize: size}
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetOrder activates ordering on the given column. Selecting the active
// column again flips the direction; selecting another starts ascending.
// Ordering is page-local and triggers no fetch.
func (c *Controller[T]) SetOrder(column int) {
	if column < 0 || column >= len(c.columns) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orderBy == column {
		if c.direction == Ascending {
			c.direction = Descending
		} else {
			c.direction = Ascending
		}
		return
	}
	c.orderBy = column
	c.direction = Ascending
}

// SetSearch narrows the visible rows to those matching the term. Like
// ordering, it applies to the fetched page only and triggers no fetch.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = term
}

// Visible returns the rows of the current page with ordering applied first
// and the search filter second, leaving the fetched page untouched.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := slices.Clone(c.page.Items)
	if c.orderBy != NoOrder {
		cmp := c.columns[c.orderBy].Compare
		slices.SortStableFunc(rows, func(a, b T) int {
			if c.direction == Descending {
				return cmp(b, a)
			}
			return cmp(a, b)
		})
	}
	if term := strings.ToLower(strings.TrimSpace(c.search)); term != "" {
		rows = slices.DeleteFunc(rows, func(row T) bool {
			return !strings.Contains(strings.ToLower(c.searchText(row)), term)
		})
	}
	return rows
}

// Append splices a freshly created row onto the current page. Count and
// pages are deliberately left stale until the next fetch.
func (c *Controller[T]) Append(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Items = append(c.page.Items, row)
}

// Overwrite replaces the row with the same id in place.
func (c *Controller[T]) Overwrite(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.page.Items {
		if c.id(c.page.Items[i]) == c.id(row) {
			c.page.Items[i] = row
			return
		}
	}
}

// Remove splices the row with the given id out of the current page. Count
// and pages are left stale, like Append.
func (c *Controller[T]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Items = slices.DeleteFunc(c.page.Items, func(row T) bool {
		return c.id(row) == id
	})
}

// Snapshot returns the current page and state.
func (c *Controller[T]) Snapshot() (models.Page[T], State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page := c.page
	page.Items = slices.Clone(c.page.Items)
	return page, c.state
}

// Request returns the page request driving the next load.
func (c *Controller[T]) Request() models.PageRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.request
}

// Order returns the active column index (NoOrder when none) and direction.
func (c *Controller[T]) Order() (int, Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderBy, c.direction
}

// Columns exposes the column set for rendering headers.
func (c *Controller[T]) Columns() []Column[T] {
	return c.columns
}

// Search returns the active search term.
func (c *Controller[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}
