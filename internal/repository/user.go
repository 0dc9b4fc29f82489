package repository

import (
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	ListUsers() ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	DeleteUser(id uint) error

	HasRole(userID, roleID uint) (bool, error)
	ReplaceRoles(userID uint, roleIDs []uint) error

	ListUserPrograms(userID *uint) ([]user.UserProgram, error)
	AddUserProgram(userID, programID uint) error
	RemoveUserProgram(userID, programID uint) error
	UserProgramExists(userID, programID uint) (bool, error)

	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db  *gorm.DB
	seq SequenceRepo
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db, seq: NewSequenceRepo(db)}
}

func (r *DBUserRepo) preloads() *gorm.DB {
	return r.db.
		Preload("IdentificationType").
		Preload("RequesterType").
		Preload("Roles").
		Preload("Programs").
		Preload("Programs.Faculty")
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.preloads().Order("user_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.preloads().First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.preloads().Where("username = ?", username).First(&u).Error
	return u, err
}

// CreateUser inserts the profile row only; role and program links go
// through ReplaceRoles / AddUserProgram.
func (r *DBUserRepo) CreateUser(u *user.User) error {
	if u.ID == 0 {
		id, err := r.seq.NextID("users", "user_id")
		if err != nil {
			return err
		}
		u.ID = id
	}
	return r.db.Omit("Roles", "Programs", "IdentificationType", "RequesterType").Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Omit("Roles", "Programs", "IdentificationType", "RequesterType").Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	if err := r.db.Where("user_id = ?", id).Delete(&user.UserRole{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("user_id = ?", id).Delete(&user.UserProgram{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) HasRole(userID, roleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	return count > 0, err
}

// ReplaceRoles swaps the user's full role set for roleIDs.
func (r *DBUserRepo) ReplaceRoles(userID uint, roleIDs []uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&user.UserRole{}).Error; err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		id, err := r.seq.NextID("user_roles", "user_role_id")
		if err != nil {
			return err
		}
		link := user.UserRole{ID: id, UserID: userID, RoleID: roleID}
		if err := r.db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DBUserRepo) ListUserPrograms(userID *uint) ([]user.UserProgram, error) {
	var rows []user.UserProgram
	q := r.db.Order("user_program_id")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBUserRepo) AddUserProgram(userID, programID uint) error {
	id, err := r.seq.NextID("user_programs", "user_program_id")
	if err != nil {
		return err
	}
	link := user.UserProgram{ID: id, UserID: userID, ProgramID: programID}
	return r.db.Create(&link).Error
}

func (r *DBUserRepo) RemoveUserProgram(userID, programID uint) error {
	res := r.db.Where("user_id = ? AND program_id = ?", userID, programID).Delete(&user.UserProgram{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBUserRepo) UserProgramExists(userID, programID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.UserProgram{}).
		Where("user_id = ? AND program_id = ?", userID, programID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx, seq: NewSequenceRepo(tx)}
}
