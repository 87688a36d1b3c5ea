package application

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/devmatch/devmatch-go/internal/repository/mock"
	"github.com/devmatch/devmatch-go/internal/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupProfileServiceMocks(t *testing.T) (*ProfileService, *mock.MockProfileRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProfile := mock.NewMockProfileRepo(ctrl)
	repos := &repository.Repos{
		Profile: mockProfile,
	}
	svc := NewProfileService(repos)
	return svc, mockProfile
}

// --------------------- GetPublic ---------------------
func TestGetPublic_PlaceholderOnMissingRow(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{}, gorm.ErrRecordNotFound)

	p := svc.GetPublic(42)
	assert.Equal(t, profile.PlaceholderName, p.Name)
	assert.Equal(t, uint(42), p.UserID)
	assert.NotNil(t, p.Skills)
}

func TestGetPublic_ProjectsStoredProfile(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{
		UserID:      42,
		DisplayName: "Dana Dev",
		Skills:      []string{"go", "postgres"},
		HourlyRate:  85,
	}, nil)

	p := svc.GetPublic(42)
	assert.Equal(t, "Dana Dev", p.Name)
	assert.Equal(t, []string{"go", "postgres"}, p.Skills)
}

// --------------------- Upsert ---------------------
func TestUpsert_CreatesOnFirstWrite(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{}, gorm.ErrRecordNotFound)
	mockProfile.EXPECT().Save(gomock.Any()).DoAndReturn(func(p *profile.DeveloperProfile) error {
		assert.Equal(t, uint(42), p.UserID)
		assert.Equal(t, "Dana Dev", p.DisplayName)
		return nil
	})

	p, err := svc.Upsert(42, profile.UpsertProfileDTO{DisplayName: ptrString("Dana Dev")})
	assert.NoError(t, err)
	assert.Equal(t, "Dana Dev", p.DisplayName)
}

func TestUpsert_PartialEditKeepsOtherFields(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{
		UserID:          42,
		DisplayName:     "Dana Dev",
		Bio:             "backend engineer",
		ExperienceYears: 6,
	}, nil)
	mockProfile.EXPECT().Save(gomock.Any()).Return(nil)

	rate := 95.0
	p, err := svc.Upsert(42, profile.UpsertProfileDTO{HourlyRate: &rate})
	assert.NoError(t, err)
	assert.Equal(t, 95.0, p.HourlyRate)
	assert.Equal(t, "Dana Dev", p.DisplayName)
	assert.Equal(t, 6, p.ExperienceYears)
}

// --------------------- UploadAvatar ---------------------
func TestUploadAvatar_StoresKeyOnProfile(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{UserID: 42, DisplayName: "Dana Dev"}, nil)
	mockProfile.EXPECT().Save(gomock.Any()).DoAndReturn(func(p *profile.DeveloperProfile) error {
		assert.Equal(t, "avatars/42/me.png", p.AvatarKey)
		return nil
	})

	oldPut := storage.PutObject
	storage.PutObject = func(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
		assert.Equal(t, "image/png", contentType)
		return key, nil
	}
	defer func() { storage.PutObject = oldPut }()

	key, err := svc.UploadAvatar(context.Background(), 42, "me.png", strings.NewReader("png-bytes"), 9, "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "avatars/42/me.png", key)
}

func TestUploadAvatar_NoProfile(t *testing.T) {
	svc, mockProfile := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{}, gorm.ErrRecordNotFound)

	_, err := svc.UploadAvatar(context.Background(), 42, "me.png", strings.NewReader(""), 0, "image/png")
	assert.Equal(t, ErrProfileNotFound, err)
}
