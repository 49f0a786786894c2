package offenderstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database row backing GormOffenderStore. One row per user, created on first
// offense.
type offenderRow struct {
	UserID        string `gorm:"primarykey"`
	WarningCount  int
	BlockCount    int
	LastOffenseAt time.Time
}

func (offenderRow) TableName() string {
	return "offender_records"
}

// SQL-backed store. Increments happen in a single upsert statement with the
// arithmetic done by the database, so the read-modify-write is atomic at the
// row level.
type GormOffenderStore struct {
	DB *gorm.DB
}

var _ OffenderStore = (*GormOffenderStore)(nil)

func NewGormOffenderStore(db *gorm.DB) (*GormOffenderStore, error) {
	if err := db.AutoMigrate(&offenderRow{}); err != nil {
		return nil, err
	}
	return &GormOffenderStore{DB: db}, nil
}

func (s *GormOffenderStore) Get(ctx context.Context, userID string) (*OffenderRecord, error) {
	var row offenderRow
	err := s.DB.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &OffenderRecord{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &OffenderRecord{
		UserID:        row.UserID,
		WarningCount:  row.WarningCount,
		BlockCount:    row.BlockCount,
		LastOffenseAt: row.LastOffenseAt,
	}, nil
}

func (s *GormOffenderStore) RecordOffense(ctx context.Context, userID string, blocked bool) error {
	col := "warning_count"
	warnings, blocks := 1, 0
	if blocked {
		col = "block_count"
		warnings, blocks = 0, 1
	}
	now := time.Now().UTC()
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			col:               gorm.Expr(col+" + ?", 1),
			"last_offense_at": now,
		}),
	}).Create(&offenderRow{
		UserID:        userID,
		WarningCount:  warnings,
		BlockCount:    blocks,
		LastOffenseAt: now,
	}).Error
}
