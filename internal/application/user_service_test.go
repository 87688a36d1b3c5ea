package application

import (
	"testing"
	"time"

	"github.com/devmatch/devmatch-go/internal/api/middleware"
	"github.com/devmatch/devmatch-go/internal/domain/user"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/devmatch/devmatch-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.CreateUserInput{
		Username:    "alice",
		Password:    "secret-pass",
		Email:       ptrString("alice@test.com"),
		AccountType: "client",
	}

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, user.AccountTypeClient, u.AccountType)
		assert.NotEqual(t, "secret-pass", u.Password)
		return nil
	})

	err := svc.RegisterUser(input)
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{UID: 1}, nil)

	input := user.CreateUserInput{Username: "admin", Password: "secret-pass", AccountType: "developer"}
	err := svc.RegisterUser(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegisterUser_ConcurrentUsernameRace(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	// the lookup misses but a concurrent registration wins the insert
	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	input := user.CreateUserInput{Username: "alice", Password: "secret-pass", AccountType: "client"}
	err := svc.RegisterUser(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	password := "secret-pass"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	usr := user.User{UID: 1, Username: "bob", Password: string(hashed), AccountType: user.AccountTypeDeveloper}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, accountType string, expireDuration time.Duration) (string, error) {
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, "developer", accountType)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", password)
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{UID: 1, Username: "bob", Password: string(hashed)}, nil)

	_, _, err := svc.LoginUser("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- FindUserByID ---------------------
func TestFindUserByID_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.FindUserByID(42)
	assert.Equal(t, ErrUserNotFound, err)
}

// --------------------- DeleteAccount ---------------------
func TestDeleteAccount_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{UID: 42, Username: "bob"}, nil)
	mockUser.EXPECT().DeleteUser(uint(42)).Return(nil)

	assert.NoError(t, svc.DeleteAccount(42))
}

func TestDeleteAccount_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrUserNotFound, svc.DeleteAccount(42))
}

func ptrString(s string) *string { return &s }
