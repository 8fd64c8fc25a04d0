package models

// Equipment DTOs. UnitsInRemaining is derived server-side from stock minus
// current assignments.

type EquipmentListDto struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	UnitsInStock     int    `json:"unitsInStock"`
	UnitsInRemaining int    `json:"unitsInRemaining"`
}

type EquipmentDto = EquipmentListDto

type CreateEquipmentDto struct {
	Name         string `json:"name" validate:"required,min=2"`
	UnitsInStock int    `json:"unitsInStock" validate:"gte=0"`
}

type CreatedEquipmentDto = EquipmentListDto

// UpdateEquipmentDto carries the assignee set alongside the stock count.
// The form keeps len(Employees) <= UnitsInStock by raising the stock.
type UpdateEquipmentDto struct {
	ID           int    `json:"id"`
	Name         string `json:"name" validate:"required,min=2"`
	UnitsInStock int    `json:"unitsInStock" validate:"gte=0"`
	Employees    []int  `json:"employees"`
}

type UpdatedEquipmentDto = EquipmentListDto

type DeletedEquipmentDto = EquipmentListDto
