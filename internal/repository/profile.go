package repository

import (
	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetByUserID(userID uint) (profile.DeveloperProfile, error)
	ListByUserIDs(userIDs []uint) ([]profile.DeveloperProfile, error)
	Save(p *profile.DeveloperProfile) error
	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{
		db: db,
	}
}

func (r *DBProfileRepo) GetByUserID(userID uint) (profile.DeveloperProfile, error) {
	var p profile.DeveloperProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *DBProfileRepo) ListByUserIDs(userIDs []uint) ([]profile.DeveloperProfile, error) {
	var profiles []profile.DeveloperProfile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (r *DBProfileRepo) Save(p *profile.DeveloperProfile) error {
	return r.db.Save(p).Error
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	if tx == nil {
		return r
	}
	return &DBProfileRepo{db: tx}
}
