package forms

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
	"github.com/fyoffice/fyoffice/internal/logging"
)

type nilTokens struct{}

func (nilTokens) Get(context.Context, string) (*tokenstore.Token, error) { return nil, nil }
func (nilTokens) Set(context.Context, tokenstore.Token) error            { return nil }
func (nilTokens) Delete(context.Context, string) error                   { return nil }
func (nilTokens) Clear(context.Context) error                            { return nil }

// harness wires a fake backend plus the full service set behind the forms.
type harness struct {
	store *session.Store
	mux   *http.ServeMux

	mu   sync.Mutex
	hits map[string]int

	computers  *services.ComputerService
	employees  *services.EmployeeService
	equipments *services.EquipmentService
	users      *services.UserService
	relations  *services.EmployeeEquipmentService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		store: session.NewStore(),
		mux:   http.NewServeMux(),
		hits:  map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.hits[r.URL.Path]++
		h.mu.Unlock()
		h.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client, err := httpx.NewClient(srv.URL+"/api/", 5*time.Second, nilTokens{}, h.store, log)
	require.NoError(t, err)

	h.computers = services.NewComputerService(client)
	h.employees = services.NewEmployeeService(client)
	h.equipments = services.NewEquipmentService(client)
	h.users = services.NewUserService(client)
	h.relations = services.NewEmployeeEquipmentService(client)
	return h
}

func (h *harness) hitCount(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

func (h *harness) respondJSON(path, body string) {
	h.mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func (h *harness) respondProblem(path string, status int, detail string) {
	h.mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"Detail":"` + detail + `"}`))
	})
}

func testLog() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const employeePageJSON = `{"items":[
	{"id":1,"firstName":"Jane","lastName":"Doe"},
	{"id":2,"firstName":"John","lastName":"Smith"}
],"index":0,"size":10,"count":2,"pages":1}`

func TestValidate_FieldErrors(t *testing.T) {
	err := Validate(models.CreateComputerDto{})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Required", fields["brand"])

	err = Validate(models.CreateComputerDto{Brand: "a"})
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Must be at least 2 characters", fields["brand"])

	err = Validate(models.CreateUserDto{FirstName: "Ada", LastName: "Byron", Email: "nope", Password: "pw"})
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Invalid email address", fields["email"])
	assert.Equal(t, "Must be at least 4 characters", fields["password"])

	require.NoError(t, Validate(models.CreateComputerDto{Brand: "Dell"}))
}

func TestValidate_UpdateUserAllowsBlankPassword(t *testing.T) {
	require.NoError(t, Validate(models.UpdateUserDto{
		ID: 1, FirstName: "Ada", LastName: "Byron", Email: "ada@fy.io",
	}))

	err := Validate(models.UpdateUserDto{
		ID: 1, FirstName: "Ada", LastName: "Byron", Email: "ada@fy.io", Password: "pw",
	})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Must be at least 4 characters", fields["password"])
}

func TestComputerAddForm_OpenLoadsEmployeesOnce(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Employees/", employeePageJSON)

	form := NewComputerAddForm(h.computers, h.employees, h.store, testLog(), func(models.ComputerListDto) {})

	opts, err := form.Open(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = form.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, h.hitCount("/api/Employees/"))
}

func TestComputerAddForm_SubmitCreatesAndResets(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Computers/", `{"id":9,"brand":"Dell","hasLicence":false}`)

	var appended []models.ComputerListDto
	form := NewComputerAddForm(h.computers, h.employees, h.store, testLog(), func(c models.ComputerListDto) {
		appended = append(appended, c)
	})

	form.SetDraft(models.CreateComputerDto{Brand: "Dell"})
	require.NoError(t, form.Submit(context.Background()))

	require.Len(t, appended, 1)
	assert.Equal(t, 9, appended[0].ID)
	assert.Zero(t, form.Draft(), "draft resets after a successful add")

	notes := h.store.DrainNotifications()
	require.Len(t, notes, 1)
	assert.Equal(t, session.LevelSuccess, notes[0].Level)
	assert.Equal(t, "Computer added.", notes[0].Message)
}

func TestComputerAddForm_SubmitInvalidDraftSkipsBackend(t *testing.T) {
	h := newHarness(t)
	form := NewComputerAddForm(h.computers, h.employees, h.store, testLog(), func(models.ComputerListDto) {
		t.Fatal("no create expected")
	})

	err := form.Submit(context.Background())
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Zero(t, h.hitCount("/api/Computers/"))
	assert.Empty(t, h.store.DrainNotifications(), "field errors render inline, not as toasts")
}

func TestComputerAddForm_SubmitBackendProblemNotifies(t *testing.T) {
	h := newHarness(t)
	h.respondProblem("/api/Computers/", http.StatusBadRequest, "Brand already exists")

	form := NewComputerAddForm(h.computers, h.employees, h.store, testLog(), func(models.ComputerListDto) {
		t.Fatal("no append on failure")
	})
	form.SetDraft(models.CreateComputerDto{Brand: "Dell"})

	require.Error(t, form.Submit(context.Background()))
	notes := h.store.DrainNotifications()
	require.Len(t, notes, 1)
	assert.Equal(t, session.LevelError, notes[0].Level)
	assert.Equal(t, "Brand already exists", notes[0].Message)
}

func TestComputerUpdateForm_OpenJoinsRecordAndOptions(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Employees/", employeePageJSON)
	h.respondJSON("/api/Computers/7", `{"id":7,"employeeId":2,"brand":"Lenovo","processor":"i5","memory":"16GB"}`)

	form := NewComputerUpdateForm(h.computers, h.employees, h.store, testLog(), func(models.ComputerListDto) {})

	opts, err := form.Open(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, opts, 2)
	assert.Equal(t, 7, form.SelectedID())

	draft := form.Draft()
	assert.Equal(t, 7, draft.ID)
	require.NotNil(t, draft.EmployeeID)
	assert.Equal(t, 2, *draft.EmployeeID)
	assert.Equal(t, "Lenovo", draft.Brand)
	assert.Equal(t, "i5", draft.Processor)
}

func TestComputerUpdateForm_SubmitKeepsDraft(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Employees/", employeePageJSON)
	h.respondJSON("/api/Computers/7", `{"id":7,"brand":"Lenovo"}`)
	h.respondJSON("/api/Computers/", `{"id":7,"brand":"Lenovo X1","hasLicence":true}`)

	var updated []models.ComputerListDto
	form := NewComputerUpdateForm(h.computers, h.employees, h.store, testLog(), func(c models.ComputerListDto) {
		updated = append(updated, c)
	})
	_, err := form.Open(context.Background(), 7)
	require.NoError(t, err)

	draft := form.Draft()
	draft.Brand = "Lenovo X1"
	form.SetDraft(draft)
	require.NoError(t, form.Submit(context.Background()))

	require.Len(t, updated, 1)
	assert.Equal(t, "Lenovo X1", updated[0].Brand)
	assert.Equal(t, "Lenovo X1", form.Draft().Brand, "update drafts survive submit")
}

func TestEmployeeUpdateForm_OpenSeedsMembership(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Equipments/", `{"items":[
		{"id":4,"name":"Chair","unitsInStock":5,"unitsInRemaining":2},
		{"id":5,"name":"Desk","unitsInStock":3,"unitsInRemaining":1}
	],"index":0,"size":10,"count":2,"pages":1}`)
	h.respondJSON("/api/Employees/2", `{"id":2,"firstName":"John","lastName":"Smith","dateOfBirth":"31.01.1990"}`)
	h.respondJSON("/api/EmployeeEquipments/2", `{"items":[
		{"id":11,"employeeId":2,"equipmentId":4},
		{"id":12,"employeeId":2,"equipmentId":5}
	],"index":0,"size":100,"count":2,"pages":1}`)

	form := NewEmployeeUpdateForm(h.employees, h.equipments, h.relations, h.store, testLog(), func(models.EmployeeListDto) {})

	opts, err := form.Open(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	draft := form.Draft()
	assert.Equal(t, "John", draft.FirstName)
	assert.ElementsMatch(t, []int{4, 5}, draft.Equipments)

	form.ToggleEquipment(4)
	assert.ElementsMatch(t, []int{5}, form.Draft().Equipments)
	form.ToggleEquipment(4)
	assert.ElementsMatch(t, []int{4, 5}, form.Draft().Equipments)
}

func TestEmployeeUpdateForm_ExhaustedEquipmentStaysUnchecked(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Equipments/", `{"items":[
		{"id":4,"name":"Chair","unitsInStock":5,"unitsInRemaining":2},
		{"id":7,"name":"Monitor","unitsInStock":3,"unitsInRemaining":0}
	],"index":0,"size":10,"count":2,"pages":1}`)
	h.respondJSON("/api/Employees/2", `{"id":2,"firstName":"John","lastName":"Smith","dateOfBirth":"31.01.1990"}`)
	h.respondJSON("/api/EmployeeEquipments/2", `{"items":[],"index":0,"size":100,"count":0,"pages":1}`)

	// before anything is loaded there is nothing to check
	fresh := NewEmployeeUpdateForm(h.employees, h.equipments, h.relations, h.store, testLog(), func(models.EmployeeListDto) {})
	fresh.ToggleEquipment(7)
	assert.Empty(t, fresh.Draft().Equipments)

	form := NewEmployeeUpdateForm(h.employees, h.equipments, h.relations, h.store, testLog(), func(models.EmployeeListDto) {})
	_, err := form.Open(context.Background(), 2)
	require.NoError(t, err)

	form.ToggleEquipment(7)
	assert.Empty(t, form.Draft().Equipments, "no units remaining, the checkbox stays off")

	form.ToggleEquipment(4)
	assert.Equal(t, []int{4}, form.Draft().Equipments)
	form.ToggleEquipment(4)
	assert.Empty(t, form.Draft().Equipments, "unchecking is never blocked")
}

func TestEquipmentUpdateForm_CheckingPastStockRaisesIt(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Employees/", employeePageJSON)
	h.respondJSON("/api/Equipments/4", `{"id":4,"name":"Chair","unitsInStock":2,"unitsInRemaining":0}`)
	h.respondJSON("/api/EmployeeEquipments/GetListByEquipmentId/4", `{"items":[
		{"id":11,"employeeId":1,"equipmentId":4},
		{"id":12,"employeeId":2,"equipmentId":4}
	],"index":0,"size":100,"count":2,"pages":1}`)

	form := NewEquipmentUpdateForm(h.equipments, h.employees, h.relations, h.store, testLog(), func(models.EquipmentListDto) {})
	_, err := form.Open(context.Background(), 4)
	require.NoError(t, err)

	draft := form.Draft()
	assert.Equal(t, 2, draft.UnitsInStock)
	assert.ElementsMatch(t, []int{1, 2}, draft.Employees)

	// a third assignee does not fit in a stock of two
	form.ToggleAssignee(3)
	draft = form.Draft()
	assert.Equal(t, 3, draft.UnitsInStock)
	assert.Len(t, draft.Employees, 3)

	// unchecking never lowers the stock back
	form.ToggleAssignee(3)
	assert.Equal(t, 3, form.Draft().UnitsInStock)
}

func TestEmployeeInfoForm_DerivesEquipmentIDs(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Employees/2", `{"id":2,"firstName":"John","lastName":"Smith","computerBrand":"Dell"}`)
	h.respondJSON("/api/EmployeeEquipments/2", `{"items":[
		{"id":11,"employeeId":2,"equipmentId":4}
	],"index":0,"size":100,"count":1,"pages":1}`)

	form := NewEmployeeInfoForm(h.employees, h.relations, h.store)
	info, err := form.Open(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Dell", info.Employee.ComputerBrand)
	assert.Equal(t, []int{4}, info.EquipmentIDs)
}

func TestEquipmentInfoForm_DerivesAssigneeIDs(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Equipments/4", `{"id":4,"name":"Chair","unitsInStock":5,"unitsInRemaining":3}`)
	h.respondJSON("/api/EmployeeEquipments/GetListByEquipmentId/4", `{"items":[
		{"id":11,"employeeId":1,"equipmentId":4},
		{"id":13,"employeeId":2,"equipmentId":4}
	],"index":0,"size":100,"count":2,"pages":1}`)

	form := NewEquipmentInfoForm(h.equipments, h.relations, h.store)
	info, err := form.Open(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Chair", info.Equipment.Name)
	assert.ElementsMatch(t, []int{1, 2}, info.EmployeeIDs)
}

func TestUserUpdateForm_OpenLeavesPasswordBlank(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Users/1", `{"id":1,"firstName":"Ada","lastName":"Byron","email":"ada@fy.io","status":true}`)

	form := NewUserUpdateForm(h.users, h.store, testLog(), func(models.UserListDto) {})
	require.NoError(t, form.Open(context.Background(), 1))

	draft := form.Draft()
	assert.Equal(t, "ada@fy.io", draft.Email)
	assert.Empty(t, draft.Password)
	require.NoError(t, Validate(draft))
}

func TestSelection_CloseClearsAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Users/1", `{"id":1,"firstName":"Ada","lastName":"Byron","email":"ada@fy.io"}`)

	form := NewUserInfoForm(h.users, h.store)
	_, err := form.Open(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, form.SelectedID())

	form.Close()
	assert.Equal(t, 1, form.SelectedID(), "the id survives until the dialog finishes closing")

	assert.Eventually(t, func() bool {
		return form.SelectedID() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestSelection_ReselectDuringCloseDelaySurvives(t *testing.T) {
	h := newHarness(t)
	h.respondJSON("/api/Users/1", `{"id":1,"firstName":"Ada","lastName":"Byron","email":"ada@fy.io"}`)
	h.respondJSON("/api/Users/2", `{"id":2,"firstName":"Grace","lastName":"Hopper","email":"grace@fy.io"}`)

	form := NewUserInfoForm(h.users, h.store)
	_, err := form.Open(context.Background(), 1)
	require.NoError(t, err)

	form.Close()
	_, err = form.Open(context.Background(), 2)
	require.NoError(t, err)

	time.Sleep(closeDelay + 100*time.Millisecond)
	assert.Equal(t, 2, form.SelectedID())
}
