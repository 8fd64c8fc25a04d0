package forms

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/logging"
)

// ComputerAddForm backs the "add computer" dialog. The employee dropdown
// loads once, on the first open.
type ComputerAddForm struct {
	computers *services.ComputerService
	employees *services.EmployeeService
	store     *session.Store
	log       logging.Logger
	onCreated func(models.ComputerListDto)

	employeeOpts options[models.EmployeeListDto]

	mu    sync.Mutex
	draft models.CreateComputerDto
}

func NewComputerAddForm(computers *services.ComputerService, employees *services.EmployeeService,
	store *session.Store, log logging.Logger, onCreated func(models.ComputerListDto)) *ComputerAddForm {
	return &ComputerAddForm{
		computers: computers,
		employees: employees,
		store:     store,
		log:       log,
		onCreated: onCreated,
	}
}

// Open returns the employee options for the owner dropdown.
func (f *ComputerAddForm) Open(ctx context.Context) ([]models.EmployeeListDto, error) {
	opts, err := f.employeeOpts.load(ctx, func(ctx context.Context) ([]models.EmployeeListDto, error) {
		page, err := f.employees.GetList(ctx, nil)
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	})
	reportError(f.store, err)
	return opts, err
}

func (f *ComputerAddForm) Draft() models.CreateComputerDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ComputerAddForm) SetDraft(d models.CreateComputerDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Submit validates the draft and creates the computer. On success the new
// row is appended to the owning list and the draft resets for the next add.
func (f *ComputerAddForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	created, err := f.computers.Add(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.SetDraft(models.CreateComputerDto{})
	f.onCreated(created)
	f.store.Notify(session.LevelSuccess, "Computer added.")
	return nil
}

// ComputerUpdateForm backs the "update computer" dialog. Opening loads the
// employee options and the record concurrently and joins both before the
// draft exists.
type ComputerUpdateForm struct {
	computers *services.ComputerService
	employees *services.EmployeeService
	store     *session.Store
	log       logging.Logger
	onUpdated func(models.ComputerListDto)

	employeeOpts options[models.EmployeeListDto]
	selected     selection

	mu    sync.Mutex
	draft models.UpdateComputerDto
}

func NewComputerUpdateForm(computers *services.ComputerService, employees *services.EmployeeService,
	store *session.Store, log logging.Logger, onUpdated func(models.ComputerListDto)) *ComputerUpdateForm {
	return &ComputerUpdateForm{
		computers: computers,
		employees: employees,
		store:     store,
		log:       log,
		onUpdated: onUpdated,
	}
}

func (f *ComputerUpdateForm) Open(ctx context.Context, id int) ([]models.EmployeeListDto, error) {
	f.selected.set(id)

	var (
		opts   []models.EmployeeListDto
		record models.ComputerDto
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opts, err = f.employeeOpts.load(gctx, func(ctx context.Context) ([]models.EmployeeListDto, error) {
			page, err := f.employees.GetList(ctx, nil)
			if err != nil {
				return nil, err
			}
			return page.Items, nil
		})
		return err
	})
	g.Go(func() error {
		var err error
		record, err = f.computers.GetByID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		reportError(f.store, err)
		return nil, err
	}

	f.mu.Lock()
	f.draft = models.UpdateComputerDto{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Brand:      record.Brand,
		Processor:  record.Processor,
		Memory:     record.Memory,
		LicenceKey: record.LicenceKey,
		Note:       record.Note,
	}
	f.mu.Unlock()
	return opts, nil
}

func (f *ComputerUpdateForm) SelectedID() int {
	return f.selected.get()
}

func (f *ComputerUpdateForm) Draft() models.UpdateComputerDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ComputerUpdateForm) SetDraft(d models.UpdateComputerDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Submit validates and saves. The draft is kept so the dialog can stay open
// showing the submitted values.
func (f *ComputerUpdateForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	updated, err := f.computers.Update(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.onUpdated(updated)
	f.store.Notify(session.LevelSuccess, "Computer updated.")
	return nil
}

func (f *ComputerUpdateForm) Close() {
	f.selected.clearAfterDelay()
}

// ComputerInfoForm backs the read-only "computer info" dialog.
type ComputerInfoForm struct {
	computers *services.ComputerService
	store     *session.Store
	selected  selection
}

func NewComputerInfoForm(computers *services.ComputerService, store *session.Store) *ComputerInfoForm {
	return &ComputerInfoForm{computers: computers, store: store}
}

func (f *ComputerInfoForm) Open(ctx context.Context, id int) (models.ComputerDto, error) {
	f.selected.set(id)
	record, err := f.computers.GetByID(ctx, id)
	reportError(f.store, err)
	return record, err
}

func (f *ComputerInfoForm) SelectedID() int {
	return f.selected.get()
}

func (f *ComputerInfoForm) Close() {
	f.selected.clearAfterDelay()
}
