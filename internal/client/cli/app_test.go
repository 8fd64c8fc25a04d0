package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fyoffice/fyoffice/internal/client/config"
	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
	"github.com/fyoffice/fyoffice/internal/logging"
)

type memTokens struct {
	mu     sync.Mutex
	tokens map[string]tokenstore.Token
}

func newMemTokens() *memTokens {
	return &memTokens{tokens: map[string]tokenstore.Token{}}
}

func (m *memTokens) Get(_ context.Context, name string) (*tokenstore.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[name]
	if !ok || t.Expired(time.Now()) {
		return nil, nil
	}
	return &t, nil
}

func (m *memTokens) Set(_ context.Context, token tokenstore.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.Name] = token
	return nil
}

func (m *memTokens) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, name)
	return nil
}

func (m *memTokens) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = map[string]tokenstore.Token{}
	return nil
}

// newTestApp builds an App against a fake backend, with input and output
// buffers instead of the terminal.
func newTestApp(t *testing.T, mux *http.ServeMux, input string) (*App, *bytes.Buffer, *memTokens) {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	tokens := newMemTokens()
	store := session.NewStore()
	client, err := httpx.NewClient(srv.URL+"/api/", 5*time.Second, tokens, store, log)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := &App{
		config:     &config.Config{APIBaseURL: srv.URL + "/api/"},
		log:        log,
		store:      store,
		tokens:     tokens,
		auth:       services.NewAuthService(client),
		users:      services.NewUserService(client),
		computers:  services.NewComputerService(client),
		employees:  services.NewEmployeeService(client),
		equipments: services.NewEquipmentService(client),
		relations:  services.NewEmployeeEquipmentService(client),
		reader:     bufio.NewReader(strings.NewReader(input)),
		out:        out,
	}
	a.computersView = newComputersView(a)
	a.employeesView = newEmployeesView(a)
	a.equipmentsView = newEquipmentsView(a)
	a.usersView = newUsersView(a)
	return a, out, tokens
}

func userFixture() models.UserDto {
	return models.UserDto{ID: 1, FirstName: "Ada", LastName: "Byron", Email: "ada@fy.io", Status: true}
}

func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})
}
