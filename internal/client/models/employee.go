package models

// Employee DTOs. DateOfBirth travels as a "dd.mm.yyyy" display string; the
// list controller owns the chronological comparison.

type EmployeeListDto struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// FullName is the display name used for sorting and searching.
func (e EmployeeListDto) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmployeeDto struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	ComputerBrand      string `json:"computerBrand,omitempty"`
	ComputerHasLicence bool   `json:"computerHasLicence"`
}

type CreateEmployeeDto struct {
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

type CreatedEmployeeDto = EmployeeListDto

type UpdateEmployeeDto struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Equipments  []int  `json:"equipments"`
}

type UpdatedEmployeeDto = EmployeeListDto

type DeletedEmployeeDto = EmployeeListDto
