package models

// EmployeeEquipmentListDto is one row of the employee↔equipment relation.
type EmployeeEquipmentListDto struct {
	ID          int `json:"id"`
	EmployeeID  int `json:"employeeId"`
	EquipmentID int `json:"equipmentId"`
}
