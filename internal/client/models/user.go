package models

// User account DTOs for the /Users/ resource.

type UserListDto struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    bool   `json:"status"`
}

func (u UserListDto) FullName() string {
	return u.FirstName + " " + u.LastName
}

type UserDto = UserListDto

type CreateUserDto struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=4"`
}

type CreatedUserDto = UserListDto

// UpdateUserDto leaves the password unchanged when empty.
type UpdateUserDto struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=4"`
}

type UpdatedUserDto = UserListDto

type DeletedUserDto = UserListDto
