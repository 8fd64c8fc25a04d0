package forms

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/logging"
)

// EmployeeAddForm backs the "add employee" dialog. No reference data is
// needed; equipment assignment happens on update only.
type EmployeeAddForm struct {
	employees *services.EmployeeService
	store     *session.Store
	log       logging.Logger
	onCreated func(models.EmployeeListDto)

	mu    sync.Mutex
	draft models.CreateEmployeeDto
}

func NewEmployeeAddForm(employees *services.EmployeeService, store *session.Store,
	log logging.Logger, onCreated func(models.EmployeeListDto)) *EmployeeAddForm {
	return &EmployeeAddForm{employees: employees, store: store, log: log, onCreated: onCreated}
}

func (f *EmployeeAddForm) Draft() models.CreateEmployeeDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *EmployeeAddForm) SetDraft(d models.CreateEmployeeDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *EmployeeAddForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	created, err := f.employees.Add(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.SetDraft(models.CreateEmployeeDto{})
	f.onCreated(created)
	f.store.Notify(session.LevelSuccess, "Employee added.")
	return nil
}

// EmployeeUpdateForm backs the "update employee" dialog. Opening joins three
// loads: the equipment options, the employee record, and the employee's
// current equipment assignments.
type EmployeeUpdateForm struct {
	employees  *services.EmployeeService
	equipments *services.EquipmentService
	relations  *services.EmployeeEquipmentService
	store      *session.Store
	log        logging.Logger
	onUpdated  func(models.EmployeeListDto)

	equipmentOpts options[models.EquipmentListDto]
	selected      selection

	mu      sync.Mutex
	draft   models.UpdateEmployeeDto
	choices []models.EquipmentListDto
}

func NewEmployeeUpdateForm(employees *services.EmployeeService, equipments *services.EquipmentService,
	relations *services.EmployeeEquipmentService, store *session.Store, log logging.Logger,
	onUpdated func(models.EmployeeListDto)) *EmployeeUpdateForm {
	return &EmployeeUpdateForm{
		employees:  employees,
		equipments: equipments,
		relations:  relations,
		store:      store,
		log:        log,
		onUpdated:  onUpdated,
	}
}

func (f *EmployeeUpdateForm) Open(ctx context.Context, id int) ([]models.EquipmentListDto, error) {
	f.selected.set(id)

	var (
		opts       []models.EquipmentListDto
		record     models.EmployeeDto
		membership models.Page[models.EmployeeEquipmentListDto]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opts, err = f.equipmentOpts.load(gctx, func(ctx context.Context) ([]models.EquipmentListDto, error) {
			page, err := f.equipments.GetList(ctx, nil)
			if err != nil {
				return nil, err
			}
			return page.Items, nil
		})
		return err
	})
	g.Go(func() error {
		var err error
		record, err = f.employees.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		membership, err = f.relations.GetListByEmployeeID(gctx, id, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		reportError(f.store, err)
		return nil, err
	}

	assigned := make([]int, 0, len(membership.Items))
	for _, rel := range membership.Items {
		assigned = append(assigned, rel.EquipmentID)
	}

	f.mu.Lock()
	f.choices = opts
	f.draft = models.UpdateEmployeeDto{
		ID:          record.ID,
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		PhoneNumber: record.PhoneNumber,
		DateOfBirth: record.DateOfBirth,
		Equipments:  assigned,
	}
	f.mu.Unlock()
	return opts, nil
}

func (f *EmployeeUpdateForm) SelectedID() int {
	return f.selected.get()
}

func (f *EmployeeUpdateForm) Draft() models.UpdateEmployeeDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *EmployeeUpdateForm) SetDraft(d models.UpdateEmployeeDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// ToggleEquipment flips one equipment checkbox in the draft. Unchecking is
// always allowed; checking requires a known equipment with units remaining,
// the same rule that disables an exhausted checkbox in the dialog.
func (f *EmployeeUpdateForm) ToggleEquipment(equipmentID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slices.Contains(f.draft.Equipments, equipmentID) {
		f.draft.Equipments = toggle(f.draft.Equipments, equipmentID)
		return
	}
	for _, e := range f.choices {
		if e.ID == equipmentID && e.UnitsInRemaining > 0 {
			f.draft.Equipments = toggle(f.draft.Equipments, equipmentID)
			return
		}
	}
}

func (f *EmployeeUpdateForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	updated, err := f.employees.Update(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.onUpdated(updated)
	f.store.Notify(session.LevelSuccess, "Employee updated.")
	return nil
}

func (f *EmployeeUpdateForm) Close() {
	f.selected.clearAfterDelay()
}

// EmployeeInfo is the read-only dialog payload: the record plus the ids of
// the equipment currently assigned to it.
type EmployeeInfo struct {
	Employee     models.EmployeeDto
	EquipmentIDs []int
}

type EmployeeInfoForm struct {
	employees *services.EmployeeService
	relations *services.EmployeeEquipmentService
	store     *session.Store
	selected  selection
}

func NewEmployeeInfoForm(employees *services.EmployeeService, relations *services.EmployeeEquipmentService,
	store *session.Store) *EmployeeInfoForm {
	return &EmployeeInfoForm{employees: employees, relations: relations, store: store}
}

func (f *EmployeeInfoForm) Open(ctx context.Context, id int) (EmployeeInfo, error) {
	f.selected.set(id)

	var (
		record     models.EmployeeDto
		membership models.Page[models.EmployeeEquipmentListDto]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = f.employees.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		membership, err = f.relations.GetListByEmployeeID(gctx, id, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		reportError(f.store, err)
		return EmployeeInfo{}, err
	}

	ids := make([]int, 0, len(membership.Items))
	for _, rel := range membership.Items {
		ids = append(ids, rel.EquipmentID)
	}
	return EmployeeInfo{Employee: record, EquipmentIDs: ids}, nil
}

func (f *EmployeeInfoForm) SelectedID() int {
	return f.selected.get()
}

func (f *EmployeeInfoForm) Close() {
	f.selected.clearAfterDelay()
}
