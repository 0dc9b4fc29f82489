package user

import "github.com/acceslab/acceslab-go/internal/domain/catalog"

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Password string `json:"password" binding:"required,min=8"`

	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	SecondLast string `json:"second_last_name"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Mobile     string `json:"mobile"`
	Campus     string `json:"campus"`

	IdentificationType   *catalog.EntityRef `json:"identification_type"`
	IdentificationNumber string             `json:"identification_number"`
	RequesterType        *catalog.EntityRef `json:"requester_type"`

	Roles    []catalog.EntityRef `json:"roles"`
	Programs []uint              `json:"programs"`
}

// UpdateInput patches a profile. Username is immutable and password
// changes go through ChangePasswordInput.
type UpdateInput struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	SecondLast *string `json:"second_last_name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Mobile     *string `json:"mobile"`
	Campus     *string `json:"campus"`

	IdentificationType   *catalog.EntityRef `json:"identification_type"`
	IdentificationNumber *string            `json:"identification_number"`
	RequesterType        *catalog.EntityRef `json:"requester_type"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// RolesInput replaces the full role set of a user.
type RolesInput struct {
	Roles []catalog.EntityRef `json:"roles" binding:"required"`
}

// ProgramsInput replaces the full program set of a user.
type ProgramsInput struct {
	Programs []uint `json:"programs" binding:"required"`
}
