package repository

import (
	"errors"

	"github.com/humidorlog/humidor/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CigarRepository struct {
	db *gorm.DB
}

func NewCigarRepository(db *gorm.DB) *CigarRepository {
	return &CigarRepository{db: db}
}

func (r *CigarRepository) Create(cigar *models.Cigar) error {
	return r.db.Create(cigar).Error
}

func (r *CigarRepository) FindByID(id uint) (*models.Cigar, error) {
	var cigar models.Cigar
	err := r.db.First(&cigar, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cigar, nil
}

func (r *CigarRepository) FindAll() ([]models.Cigar, error) {
	var cigars []models.Cigar
	err := r.db.Order("created_at DESC").Find(&cigars).Error
	return cigars, err
}

func (r *CigarRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Cigar, error) {
	var cigar models.Cigar
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cigar, id).Error
	if err != nil {
		return nil, err
	}
	return &cigar, nil
}

// UpdateFieldsInTx writes only the given columns, so an edit never
// clobbers columns it was not asked to change.
func (r *CigarRepository) UpdateFieldsInTx(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	return tx.Model(&models.Cigar{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CigarRepository) DeleteInTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&models.Cigar{}, id).Error
}

// DecrementQuantityIfPositive takes one cigar out of stock as a single
// conditional statement. It reports false without error when the
// quantity is already zero, so concurrent finalizations can never drive
// the count negative.
func (r *CigarRepository) DecrementQuantityIfPositive(tx *gorm.DB, id uint) (bool, error) {
	result := tx.Model(&models.Cigar{}).
		Where("id = ? AND quantity > 0", id).
		UpdateColumn("quantity", gorm.Expr("quantity - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CigarRepository) TotalQuantity() (int64, error) {
	var total int64
	err := r.db.Model(&models.Cigar{}).Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}
