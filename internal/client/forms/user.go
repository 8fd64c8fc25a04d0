package forms

import (
	"context"
	"sync"

	"github.com/fyoffice/fyoffice/internal/client/models"
	"github.com/fyoffice/fyoffice/internal/client/services"
	"github.com/fyoffice/fyoffice/internal/client/session"
	"github.com/fyoffice/fyoffice/internal/logging"
)

type UserAddForm struct {
	users     *services.UserService
	store     *session.Store
	log       logging.Logger
	onCreated func(models.UserListDto)

	mu    sync.Mutex
	draft models.CreateUserDto
}

func NewUserAddForm(users *services.UserService, store *session.Store,
	log logging.Logger, onCreated func(models.UserListDto)) *UserAddForm {
	return &UserAddForm{users: users, store: store, log: log, onCreated: onCreated}
}

func (f *UserAddForm) Draft() models.CreateUserDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *UserAddForm) SetDraft(d models.CreateUserDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *UserAddForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	created, err := f.users.Add(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.SetDraft(models.CreateUserDto{})
	f.onCreated(created)
	f.store.Notify(session.LevelSuccess, "User added.")
	return nil
}

// UserUpdateForm backs the "update user" dialog. It loads the record only;
// a blank password leaves the stored one unchanged.
type UserUpdateForm struct {
	users     *services.UserService
	store     *session.Store
	log       logging.Logger
	onUpdated func(models.UserListDto)

	selected selection

	mu    sync.Mutex
	draft models.UpdateUserDto
}

func NewUserUpdateForm(users *services.UserService, store *session.Store,
	log logging.Logger, onUpdated func(models.UserListDto)) *UserUpdateForm {
	return &UserUpdateForm{users: users, store: store, log: log, onUpdated: onUpdated}
}

func (f *UserUpdateForm) Open(ctx context.Context, id int) error {
	f.selected.set(id)

	record, err := f.users.GetByID(ctx, id)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.mu.Lock()
	f.draft = models.UpdateUserDto{
		ID:        record.ID,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
	}
	f.mu.Unlock()
	return nil
}

func (f *UserUpdateForm) SelectedID() int {
	return f.selected.get()
}

func (f *UserUpdateForm) Draft() models.UpdateUserDto {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *UserUpdateForm) SetDraft(d models.UpdateUserDto) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

func (f *UserUpdateForm) Submit(ctx context.Context) error {
	draft := f.Draft()
	if err := Validate(draft); err != nil {
		return err
	}

	updated, err := f.users.Update(ctx, draft)
	if err != nil {
		reportError(f.store, err)
		return err
	}

	f.onUpdated(updated)
	f.store.Notify(session.LevelSuccess, "User updated.")
	return nil
}

func (f *UserUpdateForm) Close() {
	f.selected.clearAfterDelay()
}

type UserInfoForm struct {
	users    *services.UserService
	store    *session.Store
	selected selection
}

func NewUserInfoForm(users *services.UserService, store *session.Store) *UserInfoForm {
	return &UserInfoForm{users: users, store: store}
}

func (f *UserInfoForm) Open(ctx context.Context, id int) (models.UserDto, error) {
	f.selected.set(id)
	record, err := f.users.GetByID(ctx, id)
	reportError(f.store, err)
	return record, err
}

func (f *UserInfoForm) SelectedID() int {
	return f.selected.get()
}

func (f *UserInfoForm) Close() {
	f.selected.clearAfterDelay()
}
