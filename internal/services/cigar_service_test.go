package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/humidorlog/humidor/internal/database"
	"github.com/humidorlog/humidor/internal/models"
	"github.com/humidorlog/humidor/internal/repository"
)

func setupCigarTestDB(t *testing.T) (*repository.CigarRepository, *repository.TastingRepository, *CigarService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	cigarRepo := repository.NewCigarRepository(db)
	tastingRepo := repository.NewTastingRepository(db)
	cigarService := NewCigarService(cigarRepo, tastingRepo, &fakeImageStore{}, db)

	return cigarRepo, tastingRepo, cigarService
}

func TestCigarService_CreateCigar(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	acquired := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)
	cigar, err := cigarService.CreateCigar(CreateCigarInput{
		Name:          "Robusto X",
		Vitola:        "50x124",
		Country:       "Nicaragua",
		PurchasePrice: floatPtr(14.5),
		AcquiredOn:    &acquired,
		Quantity:      intPtr(5),
	})
	assert.NoError(t, err)
	assert.NotNil(t, cigar)
	assert.Equal(t, "Robusto X", cigar.Name)
	assert.Equal(t, "50x124", cigar.Vitola)
	assert.Equal(t, "Nicaragua", cigar.Country)
	assert.Equal(t, 14.5, *cigar.PurchasePrice)
	assert.Equal(t, 5, cigar.Quantity)
}

func TestCigarService_CreateCigarDefaults(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	cigar, err := cigarService.CreateCigar(CreateCigarInput{Name: "Bare Minimum"})
	assert.NoError(t, err)
	assert.Equal(t, 1, cigar.Quantity)
	assert.Nil(t, cigar.PurchasePrice)
	assert.Nil(t, cigar.AcquiredOn)
	assert.Equal(t, "", cigar.PhotoURL)
}

func TestCigarService_CreateCigarValidation(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	_, err := cigarService.CreateCigar(CreateCigarInput{})
	assert.Equal(t, ErrNameRequired, err)

	_, err = cigarService.CreateCigar(CreateCigarInput{Name: "Neg Price", PurchasePrice: floatPtr(-1)})
	assert.Equal(t, ErrInvalidPrice, err)

	_, err = cigarService.CreateCigar(CreateCigarInput{Name: "Neg Qty", Quantity: intPtr(-2)})
	assert.Equal(t, ErrInvalidQuantity, err)
}

func TestCigarService_CreateCigarWithPhoto(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	cigar, err := cigarService.CreateCigar(CreateCigarInput{
		Name:      "Photogenic",
		PhotoName: "box.jpg",
		Photo:     []byte{0xff, 0xd8},
	})
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/cigars/box.jpg", cigar.PhotoURL)
}

func TestCigarService_CreateCigarPhotoUploadFailure(t *testing.T) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	cigarRepo := repository.NewCigarRepository(db)
	tastingRepo := repository.NewTastingRepository(db)
	cigarService := NewCigarService(cigarRepo, tastingRepo, brokenImageStore{}, db)

	cigar, err := cigarService.CreateCigar(CreateCigarInput{
		Name:      "Flaky Storage",
		PhotoName: "box.jpg",
		Photo:     []byte{0x01},
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(cigar.PhotoURL, "/placeholder.svg"))
}

func TestCigarService_GetCigar(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	created, err := cigarService.CreateCigar(CreateCigarInput{Name: "Get Me"})
	assert.NoError(t, err)

	cigar, err := cigarService.GetCigar(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, cigar.ID)
	assert.Equal(t, "Get Me", cigar.Name)

	_, err = cigarService.GetCigar(999)
	assert.Equal(t, ErrCigarNotFound, err)
}

func TestCigarService_ListCigars(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	_, err := cigarService.CreateCigar(CreateCigarInput{Name: "First"})
	assert.NoError(t, err)
	_, err = cigarService.CreateCigar(CreateCigarInput{Name: "Second"})
	assert.NoError(t, err)

	cigars, err := cigarService.ListCigars()
	assert.NoError(t, err)
	assert.Len(t, cigars, 2)
}

func TestCigarService_UpdateCigar(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	created, err := cigarService.CreateCigar(CreateCigarInput{
		Name:     "Original",
		Vitola:   "46x130",
		Country:  "Cuba",
		Quantity: intPtr(3),
	})
	assert.NoError(t, err)

	updated, err := cigarService.UpdateCigar(created.ID, UpdateCigarInput{
		Name:     strPtr("Renamed"),
		Quantity: intPtr(7),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 7, updated.Quantity)

	// Fields not sent keep their prior value.
	assert.Equal(t, "46x130", updated.Vitola)
	assert.Equal(t, "Cuba", updated.Country)
}

func TestCigarService_UpdateCigarValidation(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	created, err := cigarService.CreateCigar(CreateCigarInput{Name: "Keep Me"})
	assert.NoError(t, err)

	_, err = cigarService.UpdateCigar(created.ID, UpdateCigarInput{Name: strPtr("")})
	assert.Equal(t, ErrNameRequired, err)

	_, err = cigarService.UpdateCigar(created.ID, UpdateCigarInput{PurchasePrice: floatPtr(-10)})
	assert.Equal(t, ErrInvalidPrice, err)

	_, err = cigarService.UpdateCigar(created.ID, UpdateCigarInput{Quantity: intPtr(-1)})
	assert.Equal(t, ErrInvalidQuantity, err)

	_, err = cigarService.UpdateCigar(999, UpdateCigarInput{Name: strPtr("Ghost")})
	assert.Equal(t, ErrCigarNotFound, err)

	kept, err := cigarService.GetCigar(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Keep Me", kept.Name)
}

type hookImageStore struct {
	onSave func()
}

func (h *hookImageStore) Save(filename string, data []byte, folder string) (string, error) {
	if h.onSave != nil {
		h.onSave()
	}
	return "/uploads/" + folder + "/" + filename, nil
}

func TestCigarService_UpdateKeepsConcurrentStockChange(t *testing.T) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	cigarRepo := repository.NewCigarRepository(db)
	tastingRepo := repository.NewTastingRepository(db)
	hook := &hookImageStore{}
	cigarService := NewCigarService(cigarRepo, tastingRepo, hook, db)
	tastingService := NewTastingService(tastingRepo, cigarRepo, &fakeImageStore{}, db)

	cigar, err := cigarService.CreateCigar(CreateCigarInput{Name: "Contended", Quantity: intPtr(5)})
	assert.NoError(t, err)

	tasting, err := tastingService.StartTasting(StartTastingInput{CigarID: cigar.ID})
	assert.NoError(t, err)

	// A finalize lands in the middle of the edit, after the edit has
	// read the cigar but before it writes.
	hook.onSave = func() {
		_, err := tastingService.FinalizeTasting(tasting.ID, FinalizeTastingInput{Score: intPtr(8)})
		assert.NoError(t, err)
	}

	updated, err := cigarService.UpdateCigar(cigar.ID, UpdateCigarInput{
		Name:      strPtr("Renamed"),
		PhotoName: "box.jpg",
		Photo:     []byte{0x01},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	// The name-only edit must not resurrect the pre-finalize quantity.
	assert.Equal(t, 4, updated.Quantity)

	after, err := cigarRepo.FindByID(cigar.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4, after.Quantity)
}

func TestCigarService_UpdateDirectSetsQuantity(t *testing.T) {
	_, _, cigarService := setupCigarTestDB(t)

	created, err := cigarService.CreateCigar(CreateCigarInput{Name: "Restock", Quantity: intPtr(1)})
	assert.NoError(t, err)

	updated, err := cigarService.UpdateCigar(created.ID, UpdateCigarInput{Quantity: intPtr(25)})
	assert.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)
	assert.Equal(t, "Restock", updated.Name)
}

func TestCigarService_DeleteCigarCascades(t *testing.T) {
	_, tastingRepo, cigarService := setupCigarTestDB(t)

	created, err := cigarService.CreateCigar(CreateCigarInput{Name: "Doomed", Quantity: intPtr(2)})
	assert.NoError(t, err)

	other, err := cigarService.CreateCigar(CreateCigarInput{Name: "Survivor"})
	assert.NoError(t, err)

	assert.NoError(t, tastingRepo.Create(&models.Tasting{
		CigarID:   created.ID,
		StartedAt: time.Now(),
		Status:    models.TastingInProgress,
	}))
	assert.NoError(t, tastingRepo.Create(&models.Tasting{
		CigarID:   created.ID,
		StartedAt: time.Now(),
		Status:    models.TastingFinalized,
	}))
	assert.NoError(t, tastingRepo.Create(&models.Tasting{
		CigarID:   other.ID,
		StartedAt: time.Now(),
		Status:    models.TastingInProgress,
	}))

	err = cigarService.DeleteCigar(created.ID)
	assert.NoError(t, err)

	_, err = cigarService.GetCigar(created.ID)
	assert.Equal(t, ErrCigarNotFound, err)

	// Tastings of the deleted cigar go with it, others stay.
	remaining, err := tastingRepo.FindByStatus("", "")
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].CigarID)

	err = cigarService.DeleteCigar(created.ID)
	assert.Equal(t, ErrCigarNotFound, err)
}
