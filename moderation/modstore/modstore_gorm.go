package modstore

import (
	"context"

	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ModerationRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Create(ctx context.Context, rec *ModerationRecord) error {
	return s.DB.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) List(ctx context.Context, q RecordQuery) ([]ModerationRecord, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	tx := s.DB.WithContext(ctx).Order("created_at desc").Limit(limit)
	if q.Severity != "" {
		tx = tx.Where("severity = ?", q.Severity)
	}
	if !q.Since.IsZero() {
		tx = tx.Where("created_at >= ?", q.Since)
	}
	var out []ModerationRecord
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Summarize(ctx context.Context, q RecordQuery) (*Summary, error) {
	base := s.DB.WithContext(ctx).Model(&ModerationRecord{})
	if q.Severity != "" {
		base = base.Where("severity = ?", q.Severity)
	}
	if !q.Since.IsZero() {
		base = base.Where("created_at >= ?", q.Since)
	}
	var sum Summary
	if err := base.Session(&gorm.Session{}).Where("blocked = ?", false).Count(&sum.Warnings).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("blocked = ?", true).Count(&sum.Blocks).Error; err != nil {
		return nil, err
	}
	return &sum, nil
}
