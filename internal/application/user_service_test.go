package application

import (
	"testing"
	"time"

	"github.com/acceslab/acceslab-go/internal/api/middleware"
	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockCatalogRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockCatalog := mock.NewMockCatalogRepo(ctrl)
	repos := &repository.Repos{
		User:    mockUser,
		Catalog: mockCatalog,
	}
	svc := NewUserService(repos)
	return svc, mockUser, mockCatalog
}

var adminPrincipal = Principal{UserID: 1, Username: "admin", IsAdmin: true}

// --------------------- Register ---------------------
func TestRegister_NonAdminForbidden(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)

	_, err := svc.Register(Principal{UserID: 5}, user.RegisterInput{Username: "alice", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{ID: 9, Username: "alice"}, nil)

	_, err := svc.Register(adminPrincipal, user.RegisterInput{Username: "alice", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_Success(t *testing.T) {
	svc, mockUser, mockCatalog := setupUserServiceMocks(t)

	input := user.RegisterInput{
		Username:  "alice",
		Password:  "supersecret",
		FirstName: "Alice",
		LastName:  "Mora",
		Email:     "alice@test.com",
		Roles:     []catalog.EntityRef{{ID: ptrUint(2)}},
	}

	roleKind, _ := catalog.KindInfo(catalog.KindRole)
	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockCatalog.EXPECT().GetKind(roleKind, uint(2)).Return(catalog.Reference{ID: 2, Name: "Professor"}, nil)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NotEqual(t, "supersecret", u.Password)
		u.ID = 7
		return nil
	})
	mockUser.EXPECT().ReplaceRoles(uint(7), []uint{2}).Return(nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "alice"}, nil)

	created, err := svc.Register(adminPrincipal, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	usr := user.User{ID: 3, Username: "bob", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)
	mockUser.EXPECT().HasRole(uint(3), config.AdminRoleID).Return(true, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, isAdmin bool, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, isAdmin, err := svc.Login("bob", "supersecret")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
	assert.True(t, isAdmin)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{ID: 3, Password: string(hashed)}, nil)

	_, token, isAdmin, err := svc.Login("bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.False(t, isAdmin)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_SelfPatch(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	existing := user.User{ID: 5, Username: "carol", Email: "old@test.com"}
	mockUser.EXPECT().GetUserByID(uint(5)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "new@test.com", u.Email)
		return nil
	})
	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Email: "new@test.com"}, nil)

	updated, err := svc.UpdateUser(Principal{UserID: 5}, 5, user.UpdateInput{Email: ptrString("new@test.com")})
	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", updated.Email)
}

func TestUpdateUser_OtherUserForbidden(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(Principal{UserID: 5}, 6, user.UpdateInput{Email: ptrString("x@test.com")})
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Password: string(hashed)}, nil)

	err := svc.ChangePassword(5, user.ChangePasswordInput{OldPassword: "wrong", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestChangePassword_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Password: string(hashed)}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword")))
		return nil
	})

	err := svc.ChangePassword(5, user.ChangePasswordInput{OldPassword: "oldpass", NewPassword: "newpassword"})
	assert.NoError(t, err)
}

// --------------------- DeleteUser ---------------------
func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	err := svc.DeleteUser(adminPrincipal, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	mockUser.EXPECT().DeleteUser(uint(5)).Return(nil)

	err := svc.DeleteUser(adminPrincipal, 5)
	assert.NoError(t, err)
}

// --------------------- Programs ---------------------
func TestAddUserProgram_Duplicate(t *testing.T) {
	svc, mockUser, mockCatalog := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	mockCatalog.EXPECT().GetProgram(uint(2)).Return(catalog.Program{ID: 2}, nil)
	mockUser.EXPECT().UserProgramExists(uint(5), uint(2)).Return(true, nil)

	err := svc.AddUserProgram(adminPrincipal, 5, 2)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "program_id")
}

func TestAddUserProgram_Success(t *testing.T) {
	svc, mockUser, mockCatalog := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	mockCatalog.EXPECT().GetProgram(uint(2)).Return(catalog.Program{ID: 2}, nil)
	mockUser.EXPECT().UserProgramExists(uint(5), uint(2)).Return(false, nil)
	mockUser.EXPECT().AddUserProgram(uint(5), uint(2)).Return(nil)

	err := svc.AddUserProgram(adminPrincipal, 5, 2)
	assert.NoError(t, err)
}

// --------------------- Helpers ---------------------
func ptrString(s string) *string { return &s }
func ptrUint(v uint) *uint       { return &v }
