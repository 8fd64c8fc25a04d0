package listview

import "github.com/fyoffice/fyoffice/internal/client/models"

// Per-entity column registries and search projections. The column order
// matches the on-screen table layout; search matches against the same text
// a user sees in the row.

func ComputerColumns() []Column[models.ComputerListDto] {
	return []Column[models.ComputerListDto]{
		{Name: "ID", Compare: func(a, b models.ComputerListDto) int {
			return CompareInt(a.ID, b.ID)
		}},
		{Name: "Brand", Compare: func(a, b models.ComputerListDto) int {
			return CompareText(a.Brand, b.Brand)
		}},
		{Name: "Employee", Compare: func(a, b models.ComputerListDto) int {
			return CompareText(computerEmployee(a), computerEmployee(b))
		}},
		{Name: "Licence", Compare: func(a, b models.ComputerListDto) int {
			return CompareBool(a.HasLicence, b.HasLicence)
		}},
	}
}

func ComputerSearchText(c models.ComputerListDto) string {
	return c.Brand
}

func ComputerID(c models.ComputerListDto) int { return c.ID }

func computerEmployee(c models.ComputerListDto) string {
	if c.EmployeeFirstName == "" && c.EmployeeLastName == "" {
		return ""
	}
	return c.EmployeeFirstName + " " + c.EmployeeLastName
}

func EmployeeColumns() []Column[models.EmployeeListDto] {
	return []Column[models.EmployeeListDto]{
		{Name: "ID", Compare: func(a, b models.EmployeeListDto) int {
			return CompareInt(a.ID, b.ID)
		}},
		{Name: "Name", Compare: func(a, b models.EmployeeListDto) int {
			return CompareText(a.FullName(), b.FullName())
		}},
		{Name: "Phone number", Compare: func(a, b models.EmployeeListDto) int {
			return CompareText(a.PhoneNumber, b.PhoneNumber)
		}},
		{Name: "Date of birth", Compare: func(a, b models.EmployeeListDto) int {
			return CompareDayMonth(a.DateOfBirth, b.DateOfBirth)
		}},
	}
}

func EmployeeSearchText(e models.EmployeeListDto) string {
	return e.FullName()
}

func EmployeeID(e models.EmployeeListDto) int { return e.ID }

func EquipmentColumns() []Column[models.EquipmentListDto] {
	return []Column[models.EquipmentListDto]{
		{Name: "ID", Compare: func(a, b models.EquipmentListDto) int {
			return CompareInt(a.ID, b.ID)
		}},
		{Name: "Name", Compare: func(a, b models.EquipmentListDto) int {
			return CompareText(a.Name, b.Name)
		}},
		{Name: "Units in stock", Compare: func(a, b models.EquipmentListDto) int {
			return CompareInt(a.UnitsInStock, b.UnitsInStock)
		}},
		{Name: "Units remaining", Compare: func(a, b models.EquipmentListDto) int {
			return CompareInt(a.UnitsInRemaining, b.UnitsInRemaining)
		}},
	}
}

func EquipmentSearchText(e models.EquipmentListDto) string {
	return e.Name
}

func EquipmentID(e models.EquipmentListDto) int { return e.ID }

func UserColumns() []Column[models.UserListDto] {
	return []Column[models.UserListDto]{
		{Name: "ID", Compare: func(a, b models.UserListDto) int {
			return CompareInt(a.ID, b.ID)
		}},
		{Name: "Name", Compare: func(a, b models.UserListDto) int {
			return CompareText(a.FullName(), b.FullName())
		}},
		{Name: "Email", Compare: func(a, b models.UserListDto) int {
			return CompareText(a.Email, b.Email)
		}},
		{Name: "Status", Compare: func(a, b models.UserListDto) int {
			return CompareBool(a.Status, b.Status)
		}},
	}
}

func UserSearchText(u models.UserListDto) string {
	return u.FullName()
}

func UserID(u models.UserListDto) int { return u.ID }
