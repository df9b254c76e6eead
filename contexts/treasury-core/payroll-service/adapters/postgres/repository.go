package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type salaryModel struct {
	Level  string `gorm:"column:level;primaryKey;size:64"`
	Amount uint64 `gorm:"column:amount"`
}

func (salaryModel) TableName() string { return "payroll_salaries" }

func (r *Repository) Salary(ctx context.Context, level string) (uint64, bool, error) {
	var row salaryModel
	err := r.db.WithContext(ctx).First(&row, "level = ?", level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return row.Amount, true, nil
}

func (r *Repository) SetSalary(ctx context.Context, level string, amount uint64) error {
	row := salaryModel{Level: level, Amount: amount}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "level"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(&row).Error
}
