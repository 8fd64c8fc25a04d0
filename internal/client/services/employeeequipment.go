package services

import (
	"context"
	"strconv"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/models"
)

// EmployeeEquipmentService reads the employee↔equipment relation used by the
// employee and equipment forms to seed their membership checklists.
type EmployeeEquipmentService struct {
	service
}

func NewEmployeeEquipmentService(client *httpx.Client) *EmployeeEquipmentService {
	return &EmployeeEquipmentService{service: newService(client)}
}

func (s *EmployeeEquipmentService) GetListByEmployeeID(ctx context.Context, employeeID int, params *models.PageRequest) (models.Page[models.EmployeeEquipmentListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.EmployeeEquipmentListDto]](ctx, s.client,
		"EmployeeEquipments/"+strconv.Itoa(employeeID), pageQuery(params))
}

func (s *EmployeeEquipmentService) GetListByEquipmentID(ctx context.Context, equipmentID int, params *models.PageRequest) (models.Page[models.EmployeeEquipmentListDto], error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return httpx.Get[models.Page[models.EmployeeEquipmentListDto]](ctx, s.client,
		"EmployeeEquipments/GetListByEquipmentId/"+strconv.Itoa(equipmentID), pageQuery(params))
}
