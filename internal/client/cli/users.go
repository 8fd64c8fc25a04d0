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

type usersView struct {
	table      tableView[models.UserListDto]
	addForm    *forms.UserAddForm
	updateForm *forms.UserUpdateForm
	infoForm   *forms.UserInfoForm
}

func newUsersView(a *App) *usersView {
	ctrl := newListController(a,
		func(ctx context.Context, req models.PageRequest) (models.Page[models.UserListDto], error) {
			return a.users.GetList(ctx, &req)
		},
		listview.UserColumns(), listview.UserID, listview.UserSearchText)

	v := &usersView{
		table: tableView[models.UserListDto]{
			name:    "users",
			ctrl:    ctrl,
			headers: []string{"ID", "Name", "Email", "Status"},
			row: func(u models.UserListDto) []string {
				return []string{strconv.Itoa(u.ID), u.FullName(), u.Email, yesNo(u.Status)}
			},
		},
	}
	v.addForm = forms.NewUserAddForm(a.users, a.store, a.log, ctrl.Append)
	v.updateForm = forms.NewUserUpdateForm(a.users, a.store, a.log, ctrl.Overwrite)
	v.infoForm = forms.NewUserInfoForm(a.users, a.store)
	return v
}

func (v *usersView) handle(ctx context.Context, a *App, args []string) {
	if v.table.handleCommon(ctx, a, args) {
		return
	}
	switch args[0] {
	case "add":
		v.add(ctx, a)
	case "edit":
		if id, ok := parseID(a, "users edit <id>", args[1:]); ok {
			v.edit(ctx, a, id)
		}
	case "info":
		if id, ok := parseID(a, "users info <id>", args[1:]); ok {
			v.info(ctx, a, id)
		}
	case "delete":
		if id, ok := parseID(a, "users delete <id>", args[1:]); ok {
			v.delete(ctx, a, id)
		}
	default:
		fmt.Fprintln(a.out, "Unknown subcommand:", args[0])
	}
}

func (v *usersView) add(ctx context.Context, a *App) {
	draft := v.addForm.Draft()
	var err error
	if draft.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return
	}
	if draft.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return
	}
	if draft.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return
	}
	if draft.Password, err = getPassword(a.out); err != nil {
		return
	}
	v.addForm.SetDraft(draft)

	if err := v.addForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *usersView) edit(ctx context.Context, a *App, id int) {
	if err := v.updateForm.Open(ctx, id); err != nil {
		return
	}
	defer v.updateForm.Close()

	draft := v.updateForm.Draft()
	var err error
	if draft.FirstName, err = GetDefaultedText(a.reader, "First name", draft.FirstName, a.out); err != nil {
		return
	}
	if draft.LastName, err = GetDefaultedText(a.reader, "Last name", draft.LastName, a.out); err != nil {
		return
	}
	if draft.Email, err = GetDefaultedText(a.reader, "Email", draft.Email, a.out); err != nil {
		return
	}
	fmt.Fprintln(a.out, "Leave the password empty to keep the current one.")
	if draft.Password, err = getPassword(a.out); err != nil {
		return
	}
	v.updateForm.SetDraft(draft)

	if err := v.updateForm.Submit(ctx); err != nil {
		a.printFieldErrors(err)
	}
}

func (v *usersView) info(ctx context.Context, a *App, id int) {
	defer v.infoForm.Close()
	u, err := v.infoForm.Open(ctx, id)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "User #%d\n", u.ID)
	fmt.Fprintln(a.out, "  Name:", u.FullName())
	fmt.Fprintln(a.out, "  Email:", u.Email)
	fmt.Fprintln(a.out, "  Active:", yesNo(u.Status))
}

func (v *usersView) delete(ctx context.Context, a *App, id int) {
	a.store.ShowConfirmation("Deleting User",
		fmt.Sprintf("Are you sure you want to delete user #%d?", id),
		[]session.Action{
			{Label: "Cancel", Style: session.StyleSecondary},
			{Label: "Delete", Style: session.StyleDanger, Invoke: func() {
				if _, err := a.users.Delete(ctx, id); err != nil {
					v.table.printError(a, err)
					return
				}
				v.table.ctrl.Remove(id)
				a.store.Notify(session.LevelSuccess, "User deleted.")
			}},
		})
	a.resolveConfirmation()
}
