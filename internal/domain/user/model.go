package user

import "github.com/acceslab/acceslab-go/internal/domain/catalog"

// User is a profile plus login credentials. The password column holds a
// bcrypt hash and is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey;column:user_id" json:"id"`
	Username string `gorm:"size:80;not null;unique;column:username" json:"username"`
	Password string `gorm:"size:128;not null;column:password" json:"-"`

	FirstName  string `gorm:"size:80;not null;column:first_name" json:"first_name"`
	LastName   string `gorm:"size:80;not null;column:last_name" json:"last_name"`
	SecondLast string `gorm:"size:80;column:second_last_name" json:"second_last_name"`
	Email      string `gorm:"size:120;not null;unique;column:email" json:"email"`
	Address    string `gorm:"size:250;column:address" json:"address"`
	Phone      string `gorm:"size:30;column:phone" json:"phone"`
	Mobile     string `gorm:"size:30;column:mobile" json:"mobile"`
	Campus     string `gorm:"size:120;column:campus" json:"campus"`

	IdentificationTypeID *uint  `gorm:"column:identification_type_id" json:"identification_type_id,omitempty"`
	IdentificationNumber string `gorm:"size:40;column:identification_number" json:"identification_number"`
	RequesterTypeID      *uint  `gorm:"column:requester_type_id" json:"requester_type_id,omitempty"`

	IdentificationType *catalog.IdentificationType `gorm:"foreignKey:IdentificationTypeID;constraint:OnDelete:RESTRICT" json:"identification_type,omitempty"`
	RequesterType      *catalog.RequesterType      `gorm:"foreignKey:RequesterTypeID;constraint:OnDelete:RESTRICT" json:"requester_type,omitempty"`
	Roles              []catalog.Role              `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID" json:"roles,omitempty"`
	Programs           []catalog.Program           `gorm:"many2many:user_programs;joinForeignKey:UserID;joinReferences:ProgramID" json:"programs,omitempty"`
}

func (User) TableName() string { return "users" }

// FullName joins the name parts, skipping an empty second last name.
func (u *User) FullName() string {
	name := u.FirstName + " " + u.LastName
	if u.SecondLast != "" {
		name += " " + u.SecondLast
	}
	return name
}

// HasRole reports whether the user carries the given role id. Roles
// must have been preloaded.
func (u *User) HasRole(roleID uint) bool {
	for _, r := range u.Roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}

// UserRole is the explicit join row behind the Roles association. A
// user holds each role at most once.
type UserRole struct {
	ID     uint `gorm:"primaryKey;column:user_role_id" json:"id"`
	UserID uint `gorm:"not null;column:user_id;uniqueIndex:idx_user_role" json:"user_id"`
	RoleID uint `gorm:"not null;column:role_id;uniqueIndex:idx_user_role" json:"role_id"`
}

func (UserRole) TableName() string { return "user_roles" }

// UserProgram is the explicit join row behind the Programs association.
type UserProgram struct {
	ID        uint `gorm:"primaryKey;column:user_program_id" json:"id"`
	UserID    uint `gorm:"not null;column:user_id;uniqueIndex:idx_user_program" json:"user_id"`
	ProgramID uint `gorm:"not null;column:program_id;uniqueIndex:idx_user_program" json:"program_id"`
}

func (UserProgram) TableName() string { return "user_programs" }
