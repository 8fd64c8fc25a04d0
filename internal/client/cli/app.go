// Package cli is the interactive console shell of the Fy Office client:
// a REPL over the entity views, the login flow and the confirmation dialogs.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/fyoffice/fyoffice/internal/client/config"
	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/listview"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
	"github.com/fyoffice/fyoffice/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *session.Store
	tokens tokenstore.Repository
	db     *sql.DB

	auth       *services.AuthService
	users      *services.UserService
	computers  *services.ComputerService
	employees  *services.EmployeeService
	equipments *services.EquipmentService
	relations  *services.EmployeeEquipmentService

	computersView  *computersView
	employeesView  *employeesView
	equipmentsView *equipmentsView
	usersView      *usersView

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := tokenstore.InitDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		return nil, err
	}
	tokens := tokenstore.NewSQLiteRepository(db)
	store := session.NewStore()

	client, err := httpx.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, tokens, store, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	a := &App{
		config:     cfg,
		log:        log,
		store:      store,
		tokens:     tokens,
		db:         db,
		auth:       services.NewAuthService(client),
		users:      services.NewUserService(client),
		computers:  services.NewComputerService(client),
		employees:  services.NewEmployeeService(client),
		equipments: services.NewEquipmentService(client),
		relations:  services.NewEmployeeEquipmentService(client),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
	a.computersView = newComputersView(a)
	a.employeesView = newEmployeesView(a)
	a.equipmentsView = newEquipmentsView(a)
	a.usersView = newUsersView(a)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close cancels all in-flight requests and releases the token database.
func (a *App) Close() {
	a.auth.Cancel()
	a.users.Cancel()
	a.computers.Cancel()
	a.employees.Cancel()
	a.equipments.Cancel()
	a.relations.Cancel()
	a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

func newListController[T any](a *App, fetch listview.Fetcher[T],
	columns []listview.Column[T], id func(T) int, search func(T) string) *listview.Controller[T] {
	return listview.NewController(listview.Config[T]{
		Fetch:      fetch,
		Columns:    columns,
		ID:         id,
		SearchText: search,
		Log:        a.log,
	})
}
