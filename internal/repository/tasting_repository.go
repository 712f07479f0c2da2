package repository

import (
	"errors"
	"strings"

	"github.com/humidorlog/humidor/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TastingRepository struct {
	db *gorm.DB
}

func NewTastingRepository(db *gorm.DB) *TastingRepository {
	return &TastingRepository{db: db}
}

func (r *TastingRepository) Create(tasting *models.Tasting) error {
	return r.db.Create(tasting).Error
}

func (r *TastingRepository) FindByID(id uint) (*models.Tasting, error) {
	var tasting models.Tasting
	err := r.db.Preload("Cigar").First(&tasting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tasting, nil
}

func (r *TastingRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Tasting, error) {
	var tasting models.Tasting
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tasting, id).Error
	if err != nil {
		return nil, err
	}
	return &tasting, nil
}

// FindByStatus lists tastings newest first with the cigar preloaded.
// An empty status matches both lifecycle states; a non-empty query is a
// case-insensitive substring match over the cigar name and the free-text
// note fields.
func (r *TastingRepository) FindByStatus(status, query string) ([]models.Tasting, error) {
	var tastings []models.Tasting

	db := r.db.Model(&models.Tasting{}).Preload("Cigar")
	if status != "" {
		db = db.Where("tastings.status = ?", status)
	}

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		db = db.
			Joins("JOIN cigars ON cigars.id = tastings.cigar_id").
			Where(
				"LOWER(cigars.name) LIKE ? OR LOWER(tastings.notes) LIKE ? OR LOWER(tastings.construction_notes) LIKE ? OR LOWER(tastings.band_note) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	err := db.Order("tastings.created_at DESC").Find(&tastings).Error
	return tastings, err
}

func (r *TastingRepository) UpdateInTx(tx *gorm.DB, tasting *models.Tasting) error {
	return tx.Save(tasting).Error
}

func (r *TastingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tasting{}, id).Error
}

func (r *TastingRepository) DeleteByCigarInTx(tx *gorm.DB, cigarID uint) error {
	return tx.Where("cigar_id = ?", cigarID).Delete(&models.Tasting{}).Error
}

func (r *TastingRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tasting{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *TastingRepository) AverageFinalizedScore() (float64, error) {
	var avg float64
	err := r.db.Model(&models.Tasting{}).
		Where("status = ? AND score IS NOT NULL", models.TastingFinalized).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}
