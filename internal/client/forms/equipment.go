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

type EquipmentAddForm struct {
	equipments *services.EquipmentService
	store      *session.Store
	log        logging.Logger
	onCreated  func(models.EquipmentListDto)

	mu    sync.Mutex
	draft models.CreateEquipmentDto
}

func NewEquipmentAddForm(equipments *services.EquipmentService, store *session.Store,
	log logging.Logger, onCreated func(models.EquipmentListDto)) *EquipmentAddForm {
	return &EquipmentAddForm{equipments: equipments, store: store, log: log, onCreated: onCreated}
}

func (f *EquipmentAddForm) Draft() models.CreateEquipmentDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *EquipmentAddForm) SetDraft(d models.CreateEquipmentDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *EquipmentAddForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	created, err := f.equipments.Add(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.SetDraft(models.CreateEquipmentDto{})
	f.onCreated(created)
	f.store.Notify(session.LevelSuccess, "Equipment added.")
	return nil
}

// EquipmentUpdateForm backs the "update equipment" dialog: name and stock
// plus the assignee checklist. Checking an assignee past the current stock
// raises the stock so the count never understates the assignments.
type EquipmentUpdateForm struct {
	equipments *services.EquipmentService
	employees  *services.EmployeeService
	relations  *services.EmployeeEquipmentService
	store      *session.Store
	log        logging.Logger
	onUpdated  func(models.EquipmentListDto)

	employeeOpts options[models.EmployeeListDto]
	selected     selection

	mu    sync.Mutex
	draft models.UpdateEquipmentDto
}

func NewEquipmentUpdateForm(equipments *services.EquipmentService, employees *services.EmployeeService,
	relations *services.EmployeeEquipmentService, store *session.Store, log logging.Logger,
	onUpdated func(models.EquipmentListDto)) *EquipmentUpdateForm {
	return &EquipmentUpdateForm{
		equipments: equipments,
		employees:  employees,
		relations:  relations,
		store:      store,
		log:        log,
		onUpdated:  onUpdated,
	}
}

func (f *EquipmentUpdateForm) Open(ctx context.Context, id int) ([]models.EmployeeListDto, error) {
	f.selected.set(id)

	var (
		opts       []models.EmployeeListDto
		record     models.EquipmentDto
		membership models.Page[models.EmployeeEquipmentListDto]
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
		record, err = f.equipments.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		membership, err = f.relations.GetListByEquipmentID(gctx, id, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		reportError(f.store, err)
		return nil, err
	}

	assignees := make([]int, 0, len(membership.Items))
	for _, rel := range membership.Items {
		assignees = append(assignees, rel.EmployeeID)
	}

	f.mu.Lock()
	f.draft = models.UpdateEquipmentDto{
		ID:           record.ID,
		Name:         record.Name,
		UnitsInStock: record.UnitsInStock,
		Employees:    assignees,
	}
	f.mu.Unlock()
	return opts, nil
}

func (f *EquipmentUpdateForm) SelectedID() int {
	return f.selected.get()
}

func (f *EquipmentUpdateForm) Draft() models.UpdateEquipmentDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *EquipmentUpdateForm) SetDraft(d models.UpdateEquipmentDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// ToggleAssignee flips one employee checkbox. Checking past the stock
// auto-increments UnitsInStock to cover the new assignment.
func (f *EquipmentUpdateForm) ToggleAssignee(employeeID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Employees = toggle(f.draft.Employees, employeeID)
	if len(f.draft.Employees) > f.draft.UnitsInStock {
		f.draft.UnitsInStock = len(f.draft.Employees)
	}
}

func (f *EquipmentUpdateForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	updated, err := f.equipments.Update(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.onUpdated(updated)
	f.store.Notify(session.LevelSuccess, "Equipment updated.")
	return nil
}

func (f *EquipmentUpdateForm) Close() {
	f.selected.clearAfterDelay()
}

// EquipmentInfo is the read-only dialog payload: the record plus the ids of
// the employees it is assigned to.
type EquipmentInfo struct {
	Equipment   models.EquipmentDto
	EmployeeIDs []int
}

type EquipmentInfoForm struct {
	equipments *services.EquipmentService
	relations  *services.EmployeeEquipmentService
	store      *session.Store
	selected   selection
}

func NewEquipmentInfoForm(equipments *services.EquipmentService, relations *services.EmployeeEquipmentService,
	store *session.Store) *EquipmentInfoForm {
	return &EquipmentInfoForm{equipments: equipments, relations: relations, store: store}
}

func (f *EquipmentInfoForm) Open(ctx context.Context, id int) (EquipmentInfo, error) {
	f.selected.set(id)

	var (
		record     models.EquipmentDto
		membership models.Page[models.EmployeeEquipmentListDto]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = f.equipments.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		membership, err = f.relations.GetListByEquipmentID(gctx, id, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		reportError(f.store, err)
		return EquipmentInfo{}, err
	}

	ids := make([]int, 0, len(membership.Items))
	for _, rel := range membership.Items {
		ids = append(ids, rel.EmployeeID)
	}
	return EquipmentInfo{Equipment: record, EmployeeIDs: ids}, nil
}

func (f *EquipmentInfoForm) SelectedID() int {
	return f.selected.get()
}

func (f *EquipmentInfoForm) Close() {
	f.selected.clearAfterDelay()
}
