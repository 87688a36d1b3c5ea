package repository

import (
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	Create(r *request.HelpRequest) error
	GetByID(id string) (request.HelpRequest, error)
	Save(r *request.HelpRequest) error
	Delete(id string) error
	ListByClientID(clientID uint) ([]request.WithCount, error)
	ListOpen() ([]request.HelpRequest, error)
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{
		db: db,
	}
}

func (r *DBRequestRepo) Create(req *request.HelpRequest) error {
	return r.db.Create(req).Error
}

func (r *DBRequestRepo) GetByID(id string) (request.HelpRequest, error) {
	var req request.HelpRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	return req, err
}

func (r *DBRequestRepo) Save(req *request.HelpRequest) error {
	return r.db.Save(req).Error
}

func (r *DBRequestRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&request.HelpRequest{}).Error
}

func (r *DBRequestRepo) ListByClientID(clientID uint) ([]request.WithCount, error) {
	var results []request.WithCount
	err := r.db.Table("help_requests hr").
		Select(`hr.*, COUNT(m.id) AS application_count`).
		Joins("LEFT JOIN help_request_matches m ON m.request_id = hr.id").
		Where("hr.client_id = ?", clientID).
		Group("hr.id").
		Order("hr.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *DBRequestRepo) ListOpen() ([]request.HelpRequest, error) {
	var reqs []request.HelpRequest
	err := r.db.Where("status IN ?", request.OpenStatuses).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{db: tx}
}
