package repository

import (
	"github.com/devmatch/devmatch-go/internal/domain/match"
	"gorm.io/gorm"
)

type MatchRepo interface {
	Create(m *match.Match) error
	Save(m *match.Match) error
	GetByID(id string) (match.Match, error)
	GetByRequestAndDeveloper(requestID string, developerID uint) (match.Match, error)
	ListByRequestID(requestID string) ([]match.Match, error)
	ListPendingForRequest(requestID, excludeID string) ([]match.Match, error)
	RejectPending(requestID, excludeID string) (int64, error)
	WithTx(tx *gorm.DB) MatchRepo
}

type DBMatchRepo struct {
	db *gorm.DB
}

func NewMatchRepo(db *gorm.DB) *DBMatchRepo {
	return &DBMatchRepo{
		db: db,
	}
}

func (r *DBMatchRepo) Create(m *match.Match) error {
	return r.db.Create(m).Error
}

func (r *DBMatchRepo) Save(m *match.Match) error {
	return r.db.Save(m).Error
}

func (r *DBMatchRepo) GetByID(id string) (match.Match, error) {
	var m match.Match
	err := r.db.Where("id = ?", id).First(&m).Error
	return m, err
}

func (r *DBMatchRepo) GetByRequestAndDeveloper(requestID string, developerID uint) (match.Match, error) {
	var m match.Match
	err := r.db.Where("request_id = ? AND developer_id = ?", requestID, developerID).First(&m).Error
	return m, err
}

func (r *DBMatchRepo) ListByRequestID(requestID string) ([]match.Match, error) {
	var matches []match.Match
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *DBMatchRepo) ListPendingForRequest(requestID, excludeID string) ([]match.Match, error) {
	var matches []match.Match
	err := r.db.Where("request_id = ? AND id <> ? AND status = ?", requestID, excludeID, match.StatusPending).
		Find(&matches).Error
	return matches, err
}

// RejectPending cascade-rejects every still-pending sibling application.
// Rows already in a terminal status are left untouched.
func (r *DBMatchRepo) RejectPending(requestID, excludeID string) (int64, error) {
	res := r.db.Model(&match.Match{}).
		Where("request_id = ? AND id <> ? AND status = ?", requestID, excludeID, match.StatusPending).
		Update("status", match.StatusRejected)
	return res.RowsAffected, res.Error
}

func (r *DBMatchRepo) WithTx(tx *gorm.DB) MatchRepo {
	if tx == nil {
		return r
	}
	return &DBMatchRepo{db: tx}
}
