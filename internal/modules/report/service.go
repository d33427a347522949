package report

import (
	"errors"

	"github.com/decklens/core/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound signals a lookup for an unknown thesis record.
var ErrNotFound = errors.New("report not found")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get fetches a persisted thesis record by identifier.
func (s *Service) Get(id string) (*models.ThesisModel, error) {
	var thesis models.ThesisModel
	if err := s.db.Where("id = ?", id).First(&thesis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &thesis, nil
}
