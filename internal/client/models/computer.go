package models

// Computer DTOs, one shape per operation of the /Computers/ resource.

type ComputerListDto struct {
	ID                int    `json:"id"`
	Brand             string `json:"brand"`
	EmployeeFirstName string `json:"employeeFirstName,omitempty"`
	EmployeeLastName  string `json:"employeeLastName,omitempty"`
	HasLicence        bool   `json:"hasLicence"`
}

type ComputerDto struct {
	ID                int    `json:"id"`
	EmployeeID        *int   `json:"employeeId,omitempty"`
	Brand             string `json:"brand"`
	Processor         string `json:"processor,omitempty"`
	Memory            string `json:"memory,omitempty"`
	LicenceKey        string `json:"licenceKey,omitempty"`
	Note              string `json:"note,omitempty"`
	EmployeeFirstName string `json:"employeeFirstName,omitempty"`
	EmployeeLastName  string `json:"employeeLastName,omitempty"`
}

type CreateComputerDto struct {
	EmployeeID *int   `json:"employeeId"`
	Brand      string `json:"brand" validate:"required,min=2"`
	Processor  string `json:"processor,omitempty"`
	Memory     string `json:"memory,omitempty"`
	LicenceKey string `json:"licenceKey,omitempty"`
	Note       string `json:"note,omitempty"`
}

type CreatedComputerDto = ComputerListDto

type UpdateComputerDto struct {
	ID         int    `json:"id"`
	EmployeeID *int   `json:"employeeId"`
	Brand      string `json:"brand" validate:"required,min=2"`
	Processor  string `json:"processor,omitempty"`
	Memory     string `json:"memory,omitempty"`
	LicenceKey string `json:"licenceKey,omitempty"`
	Note       string `json:"note,omitempty"`
}

type UpdatedComputerDto = ComputerListDto

type DeletedComputerDto = ComputerListDto
