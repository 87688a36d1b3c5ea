package application

import (
	"errors"
	"time"

	"github.com/devmatch/devmatch-go/internal/api/middleware"
	"github.com/devmatch/devmatch-go/internal/domain/user"
	"github.com/devmatch/devmatch-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Username:    input.Username,
		Password:    string(hashed),
		Email:       input.Email,
		AccountType: user.AccountType(input.AccountType),
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		// a concurrent registration took the username between the lookup
		// and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, string(usr.AccountType), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

// DeleteAccount removes the caller's own account record.
func (s *UserService) DeleteAccount(id uint) error {
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.Repos.User.DeleteUser(id)
}
