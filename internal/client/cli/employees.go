package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fyoffice/fyoffice/internal/client/forms"
	"github.com/fyoffice/fyoffice/internal/client/listview"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/session"
)

type employeesView struct {
	table      tableView[models.EmployeeListDto]
	addForm    *forms.EmployeeAddForm
	updateForm *forms.EmployeeUpdateForm
	infoForm   *forms.EmployeeInfoForm
}

func newEmployeesView(a *App) *employeesView {
	ctrl := newListController(a,
		func(ctx context.Context, req models.PageRequest) (models.Page[models.EmployeeListDto], error) {
			return a.employees.GetList(ctx, &req)
		},
		listview.EmployeeColumns(), listview.EmployeeID, listview.EmployeeSearchText)

	v := &employeesView{
		table: tableView[models.EmployeeListDto]{
			name:    "employees",
			ctrl:    ctrl,
			headers: []string{"ID", "Name", "Phone number", "Date of birth"},
			row: func(e models.EmployeeListDto) []string {
				return []string{strconv.Itoa(e.ID), e.FullName(), e.PhoneNumber, e.DateOfBirth}
			},
		},
	}
	v.addForm = forms.NewEmployeeAddForm(a.employees, a.store, a.log, ctrl.Append)
	v.updateForm = forms.NewEmployeeUpdateForm(a.employees, a.equipments, a.relations, a.store, a.log, ctrl.Overwrite)
	v.infoForm = forms.NewEmployeeInfoForm(a.employees, a.relations, a.store)
	return v
}

func (v *employeesView) handle(ctx context.Context, a *App, args []string) {
	if v.table.handleCommon(ctx, a, args) {
		return
	}
	switch args[0] {
	case "add":
		v.add(ctx, a)
	case "edit":
		if id, ok := parseID(a, "employees edit <id>", args[1:]); ok {
			v.edit(ctx, a, id)
		}
	case "info":
		if id, ok := parseID(a, "employees info <id>", args[1:]); ok {
			v.info(ctx, a, id)
		}
	case "delete":
		if id, ok := parseID(a, "employees delete <id>", args[1:]); ok {
			v.delete(ctx, a, id)
		}
	default:
		fmt.Fprintln(a.out, "Unknown subcommand:", args[0])
	}
}

func (v *employeesView) add(ctx context.Context, a *App) {
	draft := v.addForm.Draft()
	var err error
	if draft.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return
	}
	if draft.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return
	}
	if draft.PhoneNumber, err = getSimpleText(a.reader, "Phone number", a.out); err != nil {
		return
	}
	if draft.DateOfBirth, err = getSimpleText(a.reader, "Date of birth (dd.mm.yyyy)", a.out); err != nil {
		return
	}
	v.addForm.SetDraft(draft)

	if err := v.addForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *employeesView) edit(ctx context.Context, a *App, id int) {
	opts, err := v.updateForm.Open(ctx, id)
	if err != nil {
		return
	}
	defer v.updateForm.Close()

	draft := v.updateForm.Draft()
	if draft.FirstName, err = GetDefaultedText(a.reader, "First name", draft.FirstName, a.out); err != nil {
		return
	}
	if draft.LastName, err = GetDefaultedText(a.reader, "Last name", draft.LastName, a.out); err != nil {
		return
	}
	if draft.PhoneNumber, err = GetDefaultedText(a.reader, "Phone number", draft.PhoneNumber, a.out); err != nil {
		return
	}
	if draft.DateOfBirth, err = GetDefaultedText(a.reader, "Date of birth (dd.mm.yyyy)", draft.DateOfBirth, a.out); err != nil {
		return
	}
	v.updateForm.SetDraft(draft)

	printEquipmentChecklist(a, opts, v.updateForm.Draft().Equipments)
	if err := toggleIDs(a, "Toggle equipment ids (comma separated, empty to keep)", v.updateForm.ToggleEquipment); err != nil {
		return
	}

	if err := v.updateForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *employeesView) info(ctx context.Context, a *App, id int) {
	defer v.infoForm.Close()
	info, err := v.infoForm.Open(ctx, id)
	if err != nil {
		return
	}
	e := info.Employee
	fmt.Fprintf(a.out, "Employee #%d\n", e.ID)
	fmt.Fprintln(a.out, "  Name:", e.FirstName+" "+e.LastName)
	fmt.Fprintln(a.out, "  Phone number:", e.PhoneNumber)
	fmt.Fprintln(a.out, "  Date of birth:", e.DateOfBirth)
	fmt.Fprintln(a.out, "  Computer:", e.ComputerBrand)
	fmt.Fprintln(a.out, "  Computer licence:", yesNo(e.ComputerHasLicence))
	fmt.Fprintln(a.out, "  Assigned equipment ids:", formatIDs(info.EquipmentIDs))
}

func (v *employeesView) delete(ctx context.Context, a *App, id int) {
	a.store.ShowConfirmation("Deleting Employee",
		fmt.Sprintf("Are you sure you want to delete employee #%d?", id),
		[]session.Action{
			{Label: "Cancel", Style: session.StyleSecondary},
			{Label: "Delete", Style: session.StyleDanger, Invoke: func() {
				if _, err := a.employees.Delete(ctx, id); err != nil {
					v.table.printError(a, err)
					return
				}
				v.table.ctrl.Remove(id)
				a.store.Notify(session.LevelSuccess, "Employee deleted.")
			}},
		})
	a.resolveConfirmation()
}

func printEquipmentChecklist(a *App, opts []models.EquipmentListDto, checked []int) {
	if len(opts) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Equipments:")
	for _, e := range opts {
		mark := " "
		if slices.Contains(checked, e.ID) {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %d) %s (%d remaining)\n", mark, e.ID, e.Name, e.UnitsInRemaining)
	}
}

// toggleIDs reads a comma-separated id list and flips each one.
func toggleIDs(a *App, prompt string, flip func(int)) error {
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping %q: not a number\n", part)
			continue
		}
		flip(id)
	}
	return nil
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
