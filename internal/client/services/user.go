package services

import (
	"context"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

type UserService struct {
	service
}

func NewUserService(client *httpx.Client) *UserService {
	return &UserService{service: newService(client)}
}

// GetFromAuth fetches the record of the authenticated caller.
func (s *UserService) GetFromAuth(ctx context.Context) (models.UserDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.UserDto](ctx, s.client, "Users/", nil)
}

func (s *UserService) GetList(ctx context.Context, params *models.PageRequest) (models.Page[models.UserListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.UserListDto]](ctx, s.client, "Users/GetList/", pageQuery(params))
}

func (s *UserService) GetByID(ctx context.Context, id int) (models.UserDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.UserDto](ctx, s.client, "Users/"+strconv.Itoa(id), nil)
}

func (s *UserService) Add(ctx context.Context, draft models.CreateUserDto) (models.CreatedUserDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Post[models.CreatedUserDto](ctx, s.client, "Users/", draft)
}

func (s *UserService) Update(ctx context.Context, draft models.UpdateUserDto) (models.UpdatedUserDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Put[models.UpdatedUserDto](ctx, s.client, "Users/", draft)
}

func (s *UserService) Delete(ctx context.Context, id int) (models.DeletedUserDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Delete[models.DeletedUserDto](ctx, s.client, "Users/", deleteRequest{ID: id})
}
