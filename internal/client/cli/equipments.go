package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/forms"
	"github.com/fyoffice/fyoffice/internal/client/listview"
	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/session"
)

type equipmentsView struct {
	table      tableView[models.EquipmentListDto]
	addForm    *forms.EquipmentAddForm
	updateForm *forms.EquipmentUpdateForm
	infoForm   *forms.EquipmentInfoForm
}

func newEquipmentsView(a *App) *equipmentsView {
	ctrl := newListController(a,
		func(ctx context.Context, req models.PageRequest) (models.Page[models.EquipmentListDto], error) {
			return a.equipments.GetList(ctx, &req)
		},
		listview.EquipmentColumns(), listview.EquipmentID, listview.EquipmentSearchText)

	v := &equipmentsView{
		table: tableView[models.EquipmentListDto]{
			name:    "equipments",
			ctrl:    ctrl,
			headers: []string{"ID", "Name", "Units in stock", "Units remaining"},
			row: func(e models.EquipmentListDto) []string {
				return []string{
					strconv.Itoa(e.ID), e.Name,
					strconv.Itoa(e.UnitsInStock), strconv.Itoa(e.UnitsInRemaining),
				}
			},
		},
	}
	v.addForm = forms.NewEquipmentAddForm(a.equipments, a.store, a.log, ctrl.Append)
	v.updateForm = forms.NewEquipmentUpdateForm(a.equipments, a.employees, a.relations, a.store, a.log, ctrl.Overwrite)
	v.infoForm = forms.NewEquipmentInfoForm(a.equipments, a.relations, a.store)
	return v
}

func (v *equipmentsView) handle(ctx context.Context, a *App, args []string) {
	if v.table.handleCommon(ctx, a, args) {
		return
	}
	switch args[0] {
	case "add":
		v.add(ctx, a)
	case "edit":
		if id, ok := parseID(a, "equipments edit <id>", args[1:]); ok {
			v.edit(ctx, a, id)
		}
	case "info":
		if id, ok := parseID(a, "equipments info <id>", args[1:]); ok {
			v.info(ctx, a, id)
		}
	case "delete":
		if id, ok := parseID(a, "equipments delete <id>", args[1:]); ok {
			v.delete(ctx, a, id)
		}
	default:
		fmt.Fprintln(a.out, "Unknown subcommand:", args[0])
	}
}

func (v *equipmentsView) add(ctx context.Context, a *App) {
	draft := v.addForm.Draft()
	var err error
	if draft.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return
	}
	stock, err := getSimpleText(a.reader, "Units in stock", a.out)
	if err != nil {
		return
	}
	if stock != "" {
		if n, err := strconv.Atoi(stock); err == nil {
			draft.UnitsInStock = n
		} else {
			fmt.Fprintln(a.out, "Not a number, keeping current value.")
		}
	}
	v.addForm.SetDraft(draft)

	if err := v.addForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *equipmentsView) edit(ctx context.Context, a *App, id int) {
	opts, err := v.updateForm.Open(ctx, id)
	if err != nil {
		return
	}
	defer v.updateForm.Close()

	draft := v.updateForm.Draft()
	if draft.Name, err = GetDefaultedText(a.reader, "Name", draft.Name, a.out); err != nil {
		return
	}
	stock, err := GetDefaultedText(a.reader, "Units in stock", strconv.Itoa(draft.UnitsInStock), a.out)
	if err != nil {
		return
	}
	if n, err := strconv.Atoi(stock); err == nil {
		draft.UnitsInStock = n
	} else {
		fmt.Fprintln(a.out, "Not a number, keeping current value.")
	}
	v.updateForm.SetDraft(draft)

	printAssigneeChecklist(a, opts, v.updateForm.Draft().Employees)
	if err := toggleIDs(a, "Toggle employee ids (comma separated, empty to keep)", v.updateForm.ToggleAssignee); err != nil {
		return
	}

	if err := v.updateForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *equipmentsView) info(ctx context.Context, a *App, id int) {
	defer v.infoForm.Close()
	info, err := v.infoForm.Open(ctx, id)
	if err != nil {
		return
	}
	e := info.Equipment
	fmt.Fprintf(a.out, "Equipment #%d\n", e.ID)
	fmt.Fprintln(a.out, "  Name:", e.Name)
	fmt.Fprintln(a.out, "  Units in stock:", e.UnitsInStock)
	fmt.Fprintln(a.out, "  Units remaining:", e.UnitsInRemaining)
	fmt.Fprintln(a.out, "  Assigned employee ids:", formatIDs(info.EmployeeIDs))
}

func (v *equipmentsView) delete(ctx context.Context, a *App, id int) {
	a.store.ShowConfirmation("Deleting Equipment",
		fmt.Sprintf("Are you sure you want to delete equipment #%d?", id),
		[]session.Action{
			{Label: "Cancel", Style: session.StyleSecondary},
			{Label: "Delete", Style: session.StyleDanger, Invoke: func() {
				if _, err := a.equipments.Delete(ctx, id); err != nil {
					v.table.printError(a, err)
					return
				}
				v.table.ctrl.Remove(id)
				a.store.Notify(session.LevelSuccess, "Equipment deleted.")
			}},
		})
	a.resolveConfirmation()
}

func printAssigneeChecklist(a *App, opts []models.EmployeeListDto, checked []int) {
	if len(opts) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Employees:")
	for _, e := range opts {
		mark := " "
		if slices.Contains(checked, e.ID) {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %d) %s\n", mark, e.ID, e.FullName())
	}
}
