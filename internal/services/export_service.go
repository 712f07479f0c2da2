package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/humidorlog/humidor/internal/repository"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidExport    = errors.New("invalid export data")
)

type CollectionExport struct {
	Cigars     []CigarExportItem   `json:"cigars"`
	Tastings   []TastingExportItem `json:"tastings"`
	ExportedAt time.Time           `json:"exported_at"`
	Signature  string              `json:"signature"`
}

type CigarExportItem struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Vitola        string     `json:"vitola,omitempty"`
	Country       string     `json:"country,omitempty"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	AcquiredOn    *time.Time `json:"acquired_on,omitempty"`
	Quantity      int        `json:"quantity"`
	CreatedAt     time.Time  `json:"created_at"`
}

type TastingExportItem struct {
	ID          uint       `json:"id"`
	Cigar       string     `json:"cigar"`
	Status      string     `json:"status"`
	Score       *int       `json:"score,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

type ExportService struct {
	cigarRepo   *repository.CigarRepository
	tastingRepo *repository.TastingRepository
	signingKey  string
}

func NewExportService(cigarRepo *repository.CigarRepository, tastingRepo *repository.TastingRepository, signingKey string) *ExportService {
	return &ExportService{
		cigarRepo:   cigarRepo,
		tastingRepo: tastingRepo,
		signingKey:  signingKey,
	}
}

// ExportCollection produces a signed snapshot of the whole collection.
// The signature is an HMAC-SHA256 over the export with Signature blanked.
func (s *ExportService) ExportCollection() (*CollectionExport, error) {
	cigars, err := s.cigarRepo.FindAll()
	if err != nil {
		return nil, err
	}

	tastings, err := s.tastingRepo.FindByStatus("", "")
	if err != nil {
		return nil, err
	}

	export := &CollectionExport{
		Cigars:     make([]CigarExportItem, len(cigars)),
		Tastings:   make([]TastingExportItem, len(tastings)),
		ExportedAt: time.Now(),
	}

	for i, cigar := range cigars {
		export.Cigars[i] = CigarExportItem{
			ID:            cigar.ID,
			Name:          cigar.Name,
			Vitola:        cigar.Vitola,
			Country:       cigar.Country,
			PurchasePrice: cigar.PurchasePrice,
			AcquiredOn:    cigar.AcquiredOn,
			Quantity:      cigar.Quantity,
			CreatedAt:     cigar.CreatedAt,
		}
	}

	for i, tasting := range tastings {
		export.Tastings[i] = TastingExportItem{
			ID:          tasting.ID,
			Cigar:       tasting.Cigar.Name,
			Status:      tasting.Status,
			Score:       tasting.Score,
			Notes:       tasting.Notes,
			StartedAt:   tasting.StartedAt,
			FinalizedAt: tasting.FinalizedAt,
		}
	}

	signature, err := s.signExport(export)
	if err != nil {
		return nil, err
	}
	export.Signature = signature

	return export, nil
}

func (s *ExportService) VerifyExportData(exportData *CollectionExport) (bool, error) {
	if exportData.Signature == "" {
		return false, ErrInvalidExport
	}

	providedSignature := exportData.Signature

	exportCopy := *exportData
	exportCopy.Signature = ""

	computedSignature, err := s.signExport(&exportCopy)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computedSignature), []byte(providedSignature)), nil
}

func (s *ExportService) signExport(export *CollectionExport) (string, error) {
	exportCopy := *export
	exportCopy.Signature = ""

	data, err := json.Marshal(exportCopy)
	if err != nil {
		return "", err
	}

	h := hmac.New(sha256.New, []byte(s.signingKey))
	h.Write(data)
	signature := hex.EncodeToString(h.Sum(nil))

	return signature, nil
}
