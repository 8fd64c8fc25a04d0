package services

import (
	"context"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

type EmployeeService struct {
	service
}

func NewEmployeeService(client *httpx.Client) *EmployeeService {
	return &EmployeeService{service: newService(client)}
}

func (s *EmployeeService) GetList(ctx context.Context, params *models.PageRequest) (models.Page[models.EmployeeListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.EmployeeListDto]](ctx, s.client, "Employees/", pageQuery(params))
}

func (s *EmployeeService) GetByID(ctx context.Context, id int) (models.EmployeeDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.EmployeeDto](ctx, s.client, "Employees/"+strconv.Itoa(id), nil)
}

func (s *EmployeeService) Add(ctx context.Context, draft models.CreateEmployeeDto) (models.CreatedEmployeeDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Post[models.CreatedEmployeeDto](ctx, s.client, "Employees/", draft)
}

func (s *EmployeeService) Update(ctx context.Context, draft models.UpdateEmployeeDto) (models.UpdatedEmployeeDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Put[models.UpdatedEmployeeDto](ctx, s.client, "Employees/", draft)
}

func (s *EmployeeService) Delete(ctx context.Context, id int) (models.DeletedEmployeeDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Delete[models.DeletedEmployeeDto](ctx, s.client, "Employees/", deleteRequest{ID: id})
}
