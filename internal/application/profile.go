package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/devmatch/devmatch-go/internal/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	Repos *repository.Repos
}

func NewProfileService(repos *repository.Repos) *ProfileService {
	return &ProfileService{
		Repos: repos,
	}
}

func (s *ProfileService) GetByUserID(userID uint) (profile.DeveloperProfile, error) {
	p, err := s.Repos.Profile.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile.DeveloperProfile{}, ErrProfileNotFound
		}
		return profile.DeveloperProfile{}, err
	}
	return p, nil
}

// GetPublic never fails on a missing row; callers get the placeholder instead.
func (s *ProfileService) GetPublic(userID uint) profile.Public {
	p, err := s.Repos.Profile.GetByUserID(userID)
	if err != nil {
		return profile.Placeholder(userID)
	}
	return p.ToPublic()
}

// Upsert creates the profile on first write and applies partial edits after.
func (s *ProfileService) Upsert(userID uint, input profile.UpsertProfileDTO) (profile.DeveloperProfile, error) {
	p, err := s.Repos.Profile.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return profile.DeveloperProfile{}, err
		}
		p = profile.DeveloperProfile{UserID: userID}
	}

	if input.DisplayName != nil {
		p.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.Skills != nil {
		p.Skills = datatypes.NewJSONSlice(input.Skills)
	}
	if input.ExperienceYears != nil {
		p.ExperienceYears = *input.ExperienceYears
	}
	if input.HourlyRate != nil {
		p.HourlyRate = *input.HourlyRate
	}

	if err := s.Repos.Profile.Save(&p); err != nil {
		return profile.DeveloperProfile{}, err
	}
	return p, nil
}

// UploadAvatar streams the image to the object store and records its key.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	p, err := s.GetByUserID(userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d/%s", userID, path.Base(filename))
	if _, err := storage.PutObject(ctx, key, reader, size, contentType); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	p.AvatarKey = key
	if err := s.Repos.Profile.Save(&p); err != nil {
		return "", err
	}
	return key, nil
}
