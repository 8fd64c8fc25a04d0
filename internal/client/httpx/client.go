// Package httpx is the HTTP core of the console client. Every request goes
// through Client.Do, which attaches the persisted bearer token and, on a
// 401, coalesces all concurrent failures into a single refresh-token call
// before replaying each request once with the fresh token.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
	"github.com/fyoffice/fyoffice/internal/common"
	"github.com/fyoffice/fyoffice/internal/logging"
)

const refreshTokenPath = "Auth/RefreshToken/"

// SessionClearer is the slice of the session store the HTTP core needs:
// dropping the authenticated user when a refresh attempt fails.
type SessionClearer interface {
	ClearUser()
}

// Client issues authenticated JSON requests against the REST backend.
//
// The refresh flow is single-flight process-wide: however many requests hit
// a 401 at the same time, exactly one GET Auth/RefreshToken/ goes out and
// every waiter shares its outcome. The refresh cookie issued by the server
// travels in the shared cookie jar.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokenstore.Repository
	session SessionClearer
	log     logging.Logger

	refresh singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration, tokens tokenstore.Repository, session SessionClearer, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: timeout},
		tokens:  tokens,
		session: session,
		log:     log,
	}, nil
}

// Do performs one API call. Path is relative to the base URL ("Computers/").
// A non-nil body is sent as JSON; a non-nil out receives the decoded 2xx
// response. Non-2xx responses surface as *ProblemError. A 401 triggers at
// most one refresh-and-replay per original request.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token := c.currentToken(ctx)

	err := c.doOnce(ctx, method, path, query, body, out, token)
	if !IsStatus(err, http.StatusUnauthorized) {
		return err
	}

	fresh, rerr := c.refreshAccessToken(ctx)
	if rerr != nil {
		return fmt.Errorf("%w: %w", common.ErrUnauthorized, rerr)
	}

	// replay once with the fresh token; a second 401 surfaces as-is
	return c.doOnce(ctx, method, path, query, body, out, fresh)
}

func (c *Client) currentToken(ctx context.Context) string {
	t, err := c.tokens.Get(ctx, tokenstore.AccessTokenName)
	if err != nil {
		c.log.Warn(ctx, "token store read failed", "error", err)
		return ""
	}
	if t == nil {
		return ""
	}
	return t.Value
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out any, token string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.problemFrom(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// refreshAccessToken performs the single-flight refresh. All concurrent
// callers block on the same call and observe the same token or error. On
// failure the session is cleared: this is the only involuntary logout path.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		var dto models.AccessTokenDto
		if err := c.doOnce(ctx, http.MethodGet, refreshTokenPath, nil, nil, &dto, c.currentToken(ctx)); err != nil {
			if !common.IsCanceled(err) {
				c.session.ClearUser()
			}
			return "", err
		}

		t := tokenstore.Token{
			Name:      tokenstore.AccessTokenName,
			Value:     dto.Token,
			ExpiresAt: tokenstore.ExpiryFor(dto.Token, dto.Expiration),
		}
		if err := c.tokens.Set(ctx, t); err != nil {
			c.log.Warn(ctx, "failed to persist refreshed token", "error", err)
		}
		c.log.Debug(ctx, "access token refreshed")
		return dto.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) problemFrom(resp *http.Response) error {
	p := &ProblemError{StatusCode: resp.StatusCode}

	var er models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Detail != "" {
		p.Detail = er.Detail
	} else {
		p.Detail = http.StatusText(resp.StatusCode)
	}
	return p
}

func (c *Client) mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", common.ErrCanceled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	return err
}
