// Package services contains one thin request builder per REST resource.
// Every service owns a cancellation handle created at construction; the
// owning view calls Cancel on teardown, which makes any in-flight call fail
// with a condition matched by common.IsCanceled. Callers filter that
// condition out of user-facing error paths.
package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

// service carries the shared client and the per-instance lifetime.
type service struct {
	client   *httpx.Client
	lifetime context.Context
	cancel   context.CancelFunc
}

func newService(client *httpx.Client) service {
	lifetime, cancel := context.WithCancel(context.Background())
	return service{client: client, lifetime: lifetime, cancel: cancel}
}

// Cancel aborts every in-flight and future call made through this instance.
func (s *service) Cancel() {
	s.cancel()
}

// scoped derives a call context that ends when either the caller's ctx or
// the service lifetime ends.
func (s *service) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifetime, cancel)
	select {
	case <-s.lifetime.Done():
		cancel()
	default:
	}
	return ctx, func() {
		stop()
		cancel()
	}
}

func pageQuery(params *models.PageRequest) url.Values {
	if params == nil {
		return nil
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	return q
}

type deleteRequest struct {
	ID int `json:"id"`
}
