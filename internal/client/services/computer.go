package services

import (
	"context"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

type ComputerService struct {
	service
}

func NewComputerService(client *httpx.Client) *ComputerService {
	return &ComputerService{service: newService(client)}
}

func (s *ComputerService) GetList(ctx context.Context, params *models.PageRequest) (models.Page[models.ComputerListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.ComputerListDto]](ctx, s.client, "Computers/", pageQuery(params))
}

func (s *ComputerService) GetByID(ctx context.Context, id int) (models.ComputerDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.ComputerDto](ctx, s.client, "Computers/"+strconv.Itoa(id), nil)
}

func (s *ComputerService) Add(ctx context.Context, draft models.CreateComputerDto) (models.CreatedComputerDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Post[models.CreatedComputerDto](ctx, s.client, "Computers/", draft)
}

func (s *ComputerService) Update(ctx context.Context, draft models.UpdateComputerDto) (models.UpdatedComputerDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Put[models.UpdatedComputerDto](ctx, s.client, "Computers/", draft)
}

func (s *ComputerService) Delete(ctx context.Context, id int) (models.DeletedComputerDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Delete[models.DeletedComputerDto](ctx, s.client, "Computers/", deleteRequest{ID: id})
}
