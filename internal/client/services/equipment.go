package services

import (
	"context"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

type EquipmentService struct {
	service
}

func NewEquipmentService(client *httpx.Client) *EquipmentService {
	return &EquipmentService{service: newService(client)}
}

func (s *EquipmentService) GetList(ctx context.Context, params *models.PageRequest) (models.Page[models.EquipmentListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.EquipmentListDto]](ctx, s.client, "Equipments/", pageQuery(params))
}

func (s *EquipmentService) GetByID(ctx context.Context, id int) (models.EquipmentDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.EquipmentDto](ctx, s.client, "Equipments/"+strconv.Itoa(id), nil)
}

func (s *EquipmentService) Add(ctx context.Context, draft models.CreateEquipmentDto) (models.CreatedEquipmentDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Post[models.CreatedEquipmentDto](ctx, s.client, "Equipments/", draft)
}

func (s *EquipmentService) Update(ctx context.Context, draft models.UpdateEquipmentDto) (models.UpdatedEquipmentDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Put[models.UpdatedEquipmentDto](ctx, s.client, "Equipments/", draft)
}

func (s *EquipmentService) Delete(ctx context.Context, id int) (models.DeletedEquipmentDto, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Delete[models.DeletedEquipmentDto](ctx, s.client, "Equipments/", deleteRequest{ID: id})
}
