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
	ErrCigarRequired     = errors.New("cigar id is required")
	ErrTastingNotFound   = errors.New("tasting not found")
	ErrTastingFinalized  = errors.New("tasting already finalized")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and 10")
	ErrInvalidDuration   = errors.New("duration must not be negative")
	ErrInvalidRepurchase = errors.New("repurchase intent must be yes, no or price_dependent")
)

// MaxScore is the upper bound of the overall score scale (0-10).
const MaxScore = 10

type TastingService struct {
	tastingRepo *repository.TastingRepository
	cigarRepo   *repository.CigarRepository
	images      storage.ImageStore
	db          *gorm.DB
}

func NewTastingService(
	tastingRepo *repository.TastingRepository,
	cigarRepo *repository.CigarRepository,
	images storage.ImageStore,
	db *gorm.DB,
) *TastingService {
	return &TastingService{
		tastingRepo: tastingRepo,
		cigarRepo:   cigarRepo,
		images:      images,
		db:          db,
	}
}

type StartTastingInput struct {
	CigarID      uint
	Setting      string
	Cut          string
	Draw         string
	WrapperNotes string
}

// FinalizeTastingInput carries the sensory data captured at finalize.
// Nil fields keep their prior value; only supplied values overwrite.
type FinalizeTastingInput struct {
	DurationMinutes   *int
	Score             *int
	ConstructionNotes *string
	RepurchaseIntent  *string
	FlavorTobacco     *bool
	FlavorPepper      *bool
	FlavorEarthy      *bool
	FlavorFloral      *bool
	FlavorCoffee      *bool
	FlavorFruit       *bool
	FlavorChocolate   *bool
	FlavorNutty       *bool
	FlavorWoody       *bool
	Notes             *string
	BandNote          *string
	BandPhotoName     string
	BandPhoto         []byte
}

// StartTasting creates a tasting in progress against an existing cigar.
// Stock is not checked or reserved here; quantity only matters at finalize.
func (s *TastingService) StartTasting(in StartTastingInput) (*models.Tasting, error) {
	if in.CigarID == 0 {
		return nil, ErrCigarRequired
	}

	cigar, err := s.cigarRepo.FindByID(in.CigarID)
	if err != nil {
		return nil, err
	}
	if cigar == nil {
		return nil, ErrCigarNotFound
	}

	tasting := &models.Tasting{
		CigarID:      in.CigarID,
		StartedAt:    time.Now(),
		Setting:      in.Setting,
		Cut:          in.Cut,
		Draw:         in.Draw,
		WrapperNotes: in.WrapperNotes,
		Status:       models.TastingInProgress,
	}

	if err := s.tastingRepo.Create(tasting); err != nil {
		return nil, err
	}

	return s.tastingRepo.FindByID(tasting.ID)
}

// FinalizeTasting applies the sensory data, moves the tasting to its
// terminal state and takes one cigar out of stock. Status transition and
// decrement happen in one transaction; the decrement is skipped when the
// quantity is already zero. A failed band photo upload degrades to a
// placeholder reference instead of failing the finalize.
func (s *TastingService) FinalizeTasting(id uint, in FinalizeTastingInput) (*models.Tasting, error) {
	if err := validateFinalizeInput(in); err != nil {
		return nil, err
	}

	// Check the tasting before touching the image store, so a finalize
	// that is going to be rejected does not leave an orphan upload. The
	// transaction re-checks under lock.
	current, err := s.tastingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTastingNotFound
	}
	if current.Status == models.TastingFinalized {
		return nil, ErrTastingFinalized
	}

	var bandPhotoURL string
	if len(in.BandPhoto) > 0 {
		url, err := s.images.Save(in.BandPhotoName, in.BandPhoto, "bands")
		if err != nil {
			log.WithError(err).Warn("band photo upload failed, storing placeholder reference")
			url = storage.Placeholder(in.BandPhotoName)
		}
		bandPhotoURL = url
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		tasting, err := s.tastingRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTastingNotFound
			}
			return err
		}

		if tasting.Status == models.TastingFinalized {
			return ErrTastingFinalized
		}

		applyFinalizeInput(tasting, in)
		if bandPhotoURL != "" {
			tasting.BandPhotoURL = bandPhotoURL
		}

		now := time.Now()
		tasting.Status = models.TastingFinalized
		tasting.FinalizedAt = &now

		if err := s.tastingRepo.UpdateInTx(tx, tasting); err != nil {
			return err
		}

		decremented, err := s.cigarRepo.DecrementQuantityIfPositive(tx, tasting.CigarID)
		if err != nil {
			return err
		}
		if !decremented {
			log.WithField("cigar_id", tasting.CigarID).
				Warn("finalized tasting for cigar with zero stock, decrement skipped")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.tastingRepo.FindByID(id)
}

func (s *TastingService) GetTasting(id uint) (*models.Tasting, error) {
	tasting, err := s.tastingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tasting == nil {
		return nil, ErrTastingNotFound
	}
	return tasting, nil
}

func (s *TastingService) ListInProgress() ([]models.Tasting, error) {
	return s.tastingRepo.FindByStatus(models.TastingInProgress, "")
}

func (s *TastingService) ListFinalized(query string) ([]models.Tasting, error) {
	return s.tastingRepo.FindByStatus(models.TastingFinalized, query)
}

func (s *TastingService) ListAll(query string) ([]models.Tasting, error) {
	return s.tastingRepo.FindByStatus("", query)
}

func (s *TastingService) DeleteTasting(id uint) error {
	tasting, err := s.tastingRepo.FindByID(id)
	if err != nil {
		return err
	}
	if tasting == nil {
		return ErrTastingNotFound
	}
	return s.tastingRepo.Delete(id)
}

func validateFinalizeInput(in FinalizeTastingInput) error {
	if in.Score != nil && (*in.Score < 0 || *in.Score > MaxScore) {
		return ErrScoreOutOfRange
	}
	if in.DurationMinutes != nil && *in.DurationMinutes < 0 {
		return ErrInvalidDuration
	}
	if in.RepurchaseIntent != nil {
		switch *in.RepurchaseIntent {
		case models.RepurchaseYes, models.RepurchaseNo, models.RepurchasePriceDependent:
		default:
			return ErrInvalidRepurchase
		}
	}
	return nil
}

func applyFinalizeInput(tasting *models.Tasting, in FinalizeTastingInput) {
	if in.DurationMinutes != nil {
		tasting.DurationMinutes = in.DurationMinutes
	}
	if in.Score != nil {
		tasting.Score = in.Score
	}
	if in.ConstructionNotes != nil {
		tasting.ConstructionNotes = *in.ConstructionNotes
	}
	if in.RepurchaseIntent != nil {
		tasting.RepurchaseIntent = *in.RepurchaseIntent
	}
	if in.FlavorTobacco != nil {
		tasting.FlavorTobacco = *in.FlavorTobacco
	}
	if in.FlavorPepper != nil {
		tasting.FlavorPepper = *in.FlavorPepper
	}
	if in.FlavorEarthy != nil {
		tasting.FlavorEarthy = *in.FlavorEarthy
	}
	if in.FlavorFloral != nil {
		tasting.FlavorFloral = *in.FlavorFloral
	}
	if in.FlavorCoffee != nil {
		tasting.FlavorCoffee = *in.FlavorCoffee
	}
	if in.FlavorFruit != nil {
		tasting.FlavorFruit = *in.FlavorFruit
	}
	if in.FlavorChocolate != nil {
		tasting.FlavorChocolate = *in.FlavorChocolate
	}
	if in.FlavorNutty != nil {
		tasting.FlavorNutty = *in.FlavorNutty
	}
	if in.FlavorWoody != nil {
		tasting.FlavorWoody = *in.FlavorWoody
	}
	if in.Notes != nil {
		tasting.Notes = *in.Notes
	}
	if in.BandNote != nil {
		tasting.BandNote = *in.BandNote
	}
}
