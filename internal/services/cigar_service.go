package services

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/humidorlog/humidor/internal/models"
	"github.com/humidorlog/humidor/internal/repository"
	"github.com/humidorlog/humidor/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrCigarNotFound   = errors.New("cigar not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidPrice    = errors.New("purchase price must not be negative")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

type CigarService struct {
	cigarRepo   *repository.CigarRepository
	tastingRepo *repository.TastingRepository
	images      storage.ImageStore
	db          *gorm.DB
}

func NewCigarService(
	cigarRepo *repository.CigarRepository,
	tastingRepo *repository.TastingRepository,
	images storage.ImageStore,
	db *gorm.DB,
) *CigarService {
	return &CigarService{
		cigarRepo:   cigarRepo,
		tastingRepo: tastingRepo,
		images:      images,
		db:          db,
	}
}

type CreateCigarInput struct {
	Name          string
	Vitola        string
	Country       string
	PurchasePrice *float64
	AcquiredOn    *time.Time
	Quantity      *int
	PhotoName     string
	Photo         []byte
}

// UpdateCigarInput is a partial update: nil fields keep their prior value.
type UpdateCigarInput struct {
	Name          *string
	Vitola        *string
	Country       *string
	PurchasePrice *float64
	AcquiredOn    *time.Time
	Quantity      *int
	PhotoName     string
	Photo         []byte
}

func (s *CigarService) CreateCigar(in CreateCigarInput) (*models.Cigar, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.PurchasePrice != nil && *in.PurchasePrice < 0 {
		return nil, ErrInvalidPrice
	}

	quantity := 1
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		quantity = *in.Quantity
	}

	cigar := &models.Cigar{
		Name:          in.Name,
		Vitola:        in.Vitola,
		Country:       in.Country,
		PurchasePrice: in.PurchasePrice,
		AcquiredOn:    in.AcquiredOn,
		Quantity:      quantity,
	}

	if len(in.Photo) > 0 {
		cigar.PhotoURL = s.saveOrPlaceholder(in.PhotoName, in.Photo)
	}

	if err := s.cigarRepo.Create(cigar); err != nil {
		return nil, err
	}

	return cigar, nil
}

func (s *CigarService) GetCigar(id uint) (*models.Cigar, error) {
	cigar, err := s.cigarRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cigar == nil {
		return nil, ErrCigarNotFound
	}
	return cigar, nil
}

func (s *CigarService) ListCigars() ([]models.Cigar, error) {
	return s.cigarRepo.FindAll()
}

// UpdateCigar applies a partial edit. Only the supplied columns are
// written, under a row lock, so an edit that never mentions quantity
// cannot undo a stock decrement committed since the caller last read
// the cigar.
func (s *CigarService) UpdateCigar(id uint, in UpdateCigarInput) (*models.Cigar, error) {
	fields := map[string]interface{}{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrNameRequired
		}
		fields["name"] = *in.Name
	}
	if in.Vitola != nil {
		fields["vitola"] = *in.Vitola
	}
	if in.Country != nil {
		fields["country"] = *in.Country
	}
	if in.PurchasePrice != nil {
		if *in.PurchasePrice < 0 {
			return nil, ErrInvalidPrice
		}
		fields["purchase_price"] = *in.PurchasePrice
	}
	if in.AcquiredOn != nil {
		fields["acquired_on"] = *in.AcquiredOn
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		fields["quantity"] = *in.Quantity
	}

	cigar, err := s.cigarRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cigar == nil {
		return nil, ErrCigarNotFound
	}

	if len(in.Photo) > 0 {
		fields["photo_url"] = s.saveOrPlaceholder(in.PhotoName, in.Photo)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.cigarRepo.FindByIDForUpdate(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCigarNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return s.cigarRepo.UpdateFieldsInTx(tx, id, fields)
	})
	if err != nil {
		return nil, err
	}

	return s.GetCigar(id)
}

// DeleteCigar removes the cigar and every tasting that references it in
// one transaction, so no orphan tastings survive.
func (s *CigarService) DeleteCigar(id uint) error {
	cigar, err := s.cigarRepo.FindByID(id)
	if err != nil {
		return err
	}
	if cigar == nil {
		return ErrCigarNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tastingRepo.DeleteByCigarInTx(tx, id); err != nil {
			return err
		}
		return s.cigarRepo.DeleteInTx(tx, id)
	})
}

func (s *CigarService) saveOrPlaceholder(name string, data []byte) string {
	url, err := s.images.Save(name, data, "cigars")
	if err != nil {
		log.WithError(err).Warn("cigar photo upload failed, storing placeholder reference")
		return storage.Placeholder(name)
	}
	return url
}
