package application

import (
	"errors"
	"time"

	"github.com/acceslab/acceslab-go/internal/api/middleware"
	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/acceslab/acceslab-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos   *repository.Repos
	Catalog *CatalogService
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos:   repos,
		Catalog: NewCatalogService(repos),
	}
}

// Register creates a profile with its role and program links. Only
// administrators may register users.
func (s *UserService) Register(principal Principal, input user.RegisterInput) (user.User, error) {
	if !principal.IsAdmin {
		return user.User{}, ErrForbidden
	}

	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Username:             input.Username,
		Password:             string(hashed),
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		SecondLast:           input.SecondLast,
		Email:                input.Email,
		Address:              input.Address,
		Phone:                input.Phone,
		Mobile:               input.Mobile,
		Campus:               input.Campus,
		IdentificationNumber: input.IdentificationNumber,
	}

	if input.IdentificationType != nil && !input.IdentificationType.Empty() {
		id, err := s.Catalog.ResolveOrCreate(catalog.KindIdentificationType, *input.IdentificationType)
		if err != nil {
			return user.User{}, err
		}
		usr.IdentificationTypeID = &id
	}
	if input.RequesterType != nil && !input.RequesterType.Empty() {
		id, err := s.Catalog.ResolveOrCreate(catalog.KindRequesterType, *input.RequesterType)
		if err != nil {
			return user.User{}, err
		}
		usr.RequesterTypeID = &id
	}

	roleIDs, err := s.resolveRoles(input.Roles)
	if err != nil {
		return user.User{}, err
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.CreateUser(&usr); err != nil {
			return err
		}
		if len(roleIDs) > 0 {
			if err := tx.User.ReplaceRoles(usr.ID, roleIDs); err != nil {
				return err
			}
		}
		for _, programID := range input.Programs {
			if _, err := tx.Catalog.GetProgram(programID); err != nil {
				return err
			}
			if err := tx.User.AddUserProgram(usr.ID, programID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return s.Repos.User.GetUserByID(usr.ID)
}

func (s *UserService) resolveRoles(refs []catalog.EntityRef) ([]uint, error) {
	ids := make([]uint, 0, len(refs))
	seen := map[uint]bool{}
	for _, ref := range refs {
		id, err := s.Catalog.ResolveOrCreate(catalog.KindRole, ref)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Login verifies credentials and mints a JWT carrying the admin flag.
func (s *UserService) Login(username, password string) (user.User, string, bool, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", false, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", false, ErrInvalidCredentials
	}

	isAdmin, err := s.Repos.User.HasRole(usr.ID, config.AdminRoleID)
	if err != nil {
		return user.User{}, "", false, err
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Username, isAdmin, 24*time.Hour)
	if err != nil {
		return user.User{}, "", false, err
	}
	return usr, token, isAdmin, nil
}

func (s *UserService) ListUsers(principal Principal) ([]user.User, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return s.Repos.User.ListUsers()
}

func (s *UserService) GetUser(principal Principal, id uint) (user.User, error) {
	if !principal.IsAdmin && principal.UserID != id {
		return user.User{}, ErrForbidden
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return usr, err
}

// UpdateUser patches profile fields. Self or admin; role membership is
// untouched here, so users cannot escalate through their own profile.
func (s *UserService) UpdateUser(principal Principal, id uint, input user.UpdateInput) (user.User, error) {
	if !principal.IsAdmin && principal.UserID != id {
		return user.User{}, ErrForbidden
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}

	if input.FirstName != nil {
		usr.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		usr.LastName = *input.LastName
	}
	if input.SecondLast != nil {
		usr.SecondLast = *input.SecondLast
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.Address != nil {
		usr.Address = *input.Address
	}
	if input.Phone != nil {
		usr.Phone = *input.Phone
	}
	if input.Mobile != nil {
		usr.Mobile = *input.Mobile
	}
	if input.Campus != nil {
		usr.Campus = *input.Campus
	}
	if input.IdentificationNumber != nil {
		usr.IdentificationNumber = *input.IdentificationNumber
	}
	if input.IdentificationType != nil && !input.IdentificationType.Empty() {
		typeID, err := s.Catalog.ResolveOrCreate(catalog.KindIdentificationType, *input.IdentificationType)
		if err != nil {
			return user.User{}, err
		}
		usr.IdentificationTypeID = &typeID
	}
	if input.RequesterType != nil && !input.RequesterType.Empty() {
		typeID, err := s.Catalog.ResolveOrCreate(catalog.KindRequesterType, *input.RequesterType)
		if err != nil {
			return user.User{}, err
		}
		usr.RequesterTypeID = &typeID
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return s.Repos.User.GetUserByID(id)
}

func (s *UserService) ChangePassword(userID uint, input user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)
	return s.Repos.User.SaveUser(&usr)
}

// DeleteUser removes the profile with its role and program links.
func (s *UserService) DeleteUser(principal Principal, id uint) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repos.User.DeleteUser(id)
}

// ReplaceRoles swaps a user's whole role set. Admin only.
func (s *UserService) ReplaceRoles(principal Principal, id uint, input user.RolesInput) (user.User, error) {
	if !principal.IsAdmin {
		return user.User{}, ErrForbidden
	}
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	roleIDs, err := s.resolveRoles(input.Roles)
	if err != nil {
		return user.User{}, err
	}
	if err := s.Repos.User.ReplaceRoles(id, roleIDs); err != nil {
		return user.User{}, err
	}
	return s.Repos.User.GetUserByID(id)
}

func (s *UserService) ListUserPrograms(principal Principal, userID *uint) ([]user.UserProgram, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return s.Repos.User.ListUserPrograms(userID)
}

func (s *UserService) AddUserProgram(principal Principal, userID, programID uint) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	if _, err := s.Repos.User.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.Repos.Catalog.GetProgram(programID); err != nil {
		return err
	}
	exists, err := s.Repos.User.UserProgramExists(userID, programID)
	if err != nil {
		return err
	}
	if exists {
		ve := NewValidationError()
		ve.Add("program_id", "user is already linked to this program")
		return ve
	}
	return s.Repos.User.AddUserProgram(userID, programID)
}

func (s *UserService) RemoveUserProgram(principal Principal, userID, programID uint) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	return s.Repos.User.RemoveUserProgram(userID, programID)
}
