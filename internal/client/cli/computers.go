package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/forms"
	"github.com/fyoffice/fyoffice/internal/client/listview"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/session"
)

type computersView struct {
	table      tableView[models.ComputerListDto]
	addForm    *forms.ComputerAddForm
	updateForm *forms.ComputerUpdateForm
	infoForm   *forms.ComputerInfoForm
}

func newComputersView(a *App) *computersView {
	ctrl := newListController(a,
		func(ctx context.Context, req models.PageRequest) (models.Page[models.ComputerListDto], error) {
			return a.computers.GetList(ctx, &req)
		},
		listview.ComputerColumns(), listview.ComputerID, listview.ComputerSearchText)

	v := &computersView{
		table: tableView[models.ComputerListDto]{
			name:    "computers",
			ctrl:    ctrl,
			headers: []string{"ID", "Brand", "Employee", "Licence"},
			row: func(c models.ComputerListDto) []string {
				return []string{
					strconv.Itoa(c.ID), c.Brand,
					employeeName(c.EmployeeFirstName, c.EmployeeLastName),
					yesNo(c.HasLicence),
				}
			},
		},
	}
	v.addForm = forms.NewComputerAddForm(a.computers, a.employees, a.store, a.log, ctrl.Append)
	v.updateForm = forms.NewComputerUpdateForm(a.computers, a.employees, a.store, a.log, ctrl.Overwrite)
	v.infoForm = forms.NewComputerInfoForm(a.computers, a.store)
	return v
}

func employeeName(first, last string) string {
	if first == "" && last == "" {
		return "-"
	}
	return first + " " + last
}

func (v *computersView) handle(ctx context.Context, a *App, args []string) {
	if v.table.handleCommon(ctx, a, args) {
		return
	}
	switch args[0] {
	case "add":
		v.add(ctx, a)
	case "edit":
		if id, ok := parseID(a, "computers edit <id>", args[1:]); ok {
			v.edit(ctx, a, id)
		}
	case "info":
		if id, ok := parseID(a, "computers info <id>", args[1:]); ok {
			v.info(ctx, a, id)
		}
	case "delete":
		if id, ok := parseID(a, "computers delete <id>", args[1:]); ok {
			v.delete(ctx, a, id)
		}
	default:
		fmt.Fprintln(a.out, "Unknown subcommand:", args[0])
	}
}

func (v *computersView) add(ctx context.Context, a *App) {
	opts, err := v.addForm.Open(ctx)
	if err != nil {
		return
	}
	printEmployeeOptions(a, opts)

	draft := v.addForm.Draft()
	if draft.Brand, err = getSimpleText(a.reader, "Brand", a.out); err != nil {
		return
	}
	if draft.Processor, err = getSimpleText(a.reader, "Processor", a.out); err != nil {
		return
	}
	if draft.Memory, err = getSimpleText(a.reader, "Memory", a.out); err != nil {
		return
	}
	if draft.LicenceKey, err = getSimpleText(a.reader, "Licence key", a.out); err != nil {
		return
	}
	if draft.Note, err = getSimpleText(a.reader, "Note", a.out); err != nil {
		return
	}
	if draft.EmployeeID, err = promptEmployeeID(a, draft.EmployeeID); err != nil {
		return
	}
	v.addForm.SetDraft(draft)

	if err := v.addForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *computersView) edit(ctx context.Context, a *App, id int) {
	opts, err := v.updateForm.Open(ctx, id)
	if err != nil {
		return
	}
	defer v.updateForm.Close()
	printEmployeeOptions(a, opts)

	draft := v.updateForm.Draft()
	if draft.Brand, err = GetDefaultedText(a.reader, "Brand", draft.Brand, a.out); err != nil {
		return
	}
	if draft.Processor, err = GetDefaultedText(a.reader, "Processor", draft.Processor, a.out); err != nil {
		return
	}
	if draft.Memory, err = GetDefaultedText(a.reader, "Memory", draft.Memory, a.out); err != nil {
		return
	}
	if draft.LicenceKey, err = GetDefaultedText(a.reader, "Licence key", draft.LicenceKey, a.out); err != nil {
		return
	}
	if draft.Note, err = GetDefaultedText(a.reader, "Note", draft.Note, a.out); err != nil {
		return
	}
	if draft.EmployeeID, err = promptEmployeeID(a, draft.EmployeeID); err != nil {
		return
	}
	v.updateForm.SetDraft(draft)

	if err := v.updateForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *computersView) info(ctx context.Context, a *App, id int) {
	defer v.infoForm.Close()
	c, err := v.infoForm.Open(ctx, id)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "Computer #%d\n", c.ID)
	fmt.Fprintln(a.out, "  Brand:", c.Brand)
	fmt.Fprintln(a.out, "  Processor:", c.Processor)
	fmt.Fprintln(a.out, "  Memory:", c.Memory)
	fmt.Fprintln(a.out, "  Licence key:", c.LicenceKey)
	fmt.Fprintln(a.out, "  Note:", c.Note)
	fmt.Fprintln(a.out, "  Employee:", employeeName(c.EmployeeFirstName, c.EmployeeLastName))
}

func (v *computersView) delete(ctx context.Context, a *App, id int) {
	a.store.ShowConfirmation("Deleting Computer",
		fmt.Sprintf("Are you sure you want to delete computer #%d?", id),
		[]session.Action{
			{Label: "Cancel", Style: session.StyleSecondary},
			{Label: "Delete", Style: session.StyleDanger, Invoke: func() {
				if _, err := a.computers.Delete(ctx, id); err != nil {
					v.table.printError(a, err)
					return
				}
				v.table.ctrl.Remove(id)
				a.store.Notify(session.LevelSuccess, "Computer deleted.")
			}},
		})
	a.resolveConfirmation()
}

func printEmployeeOptions(a *App, opts []models.EmployeeListDto) {
	if len(opts) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Employees:")
	for _, e := range opts {
		fmt.Fprintf(a.out, "  %d) %s\n", e.ID, e.FullName())
	}
}

// promptEmployeeID reads the owner selection: empty keeps the current value,
// "-" clears it.
func promptEmployeeID(a *App, current *int) (*int, error) {
	label := "Employee id (empty = keep, - = none)"
	answer, err := getSimpleText(a.reader, label, a.out)
	if err != nil {
		return nil, err
	}
	switch answer {
	case "":
		return current, nil
	case "-":
		return nil, nil
	default:
		id, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(a.out, "Not a number, keeping current value.")
			return current, nil
		}
		return &id, nil
	}
}
