package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humidorlog/humidor/internal/models"
	"github.com/humidorlog/humidor/internal/services"
)

type TastingHandler struct {
	tastingService *services.TastingService
}

func NewTastingHandler(tastingService *services.TastingService) *TastingHandler {
	return &TastingHandler{tastingService: tastingService}
}

type StartTastingRequest struct {
	CigarID      uint   `json:"cigar_id" binding:"required"`
	Setting      string `json:"setting"`
	Cut          string `json:"cut"`
	Draw         string `json:"draw"`
	WrapperNotes string `json:"wrapper_notes"`
}

type CigarSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Vitola  string `json:"vitola,omitempty"`
	Country string `json:"country,omitempty"`
}

type TastingResponse struct {
	ID                uint         `json:"id"`
	CigarID           uint         `json:"cigar_id"`
	Cigar             CigarSummary `json:"cigar"`
	Status            string       `json:"status"`
	StartedAt         string       `json:"started_at"`
	Setting           string       `json:"setting,omitempty"`
	Cut               string       `json:"cut,omitempty"`
	Draw              string       `json:"draw,omitempty"`
	WrapperNotes      string       `json:"wrapper_notes,omitempty"`
	DurationMinutes   *int         `json:"duration_minutes,omitempty"`
	Score             *int         `json:"score,omitempty"`
	ConstructionNotes string       `json:"construction_notes,omitempty"`
	RepurchaseIntent  string       `json:"repurchase_intent,omitempty"`
	FlavorTobacco     bool         `json:"flavor_tobacco"`
	FlavorPepper      bool         `json:"flavor_pepper"`
	FlavorEarthy      bool         `json:"flavor_earthy"`
	FlavorFloral      bool         `json:"flavor_floral"`
	FlavorCoffee      bool         `json:"flavor_coffee"`
	FlavorFruit       bool         `json:"flavor_fruit"`
	FlavorChocolate   bool         `json:"flavor_chocolate"`
	FlavorNutty       bool         `json:"flavor_nutty"`
	FlavorWoody       bool         `json:"flavor_woody"`
	Notes             string       `json:"notes,omitempty"`
	BandNote          string       `json:"band_note,omitempty"`
	BandPhotoURL      string       `json:"band_photo_url,omitempty"`
	FinalizedAt       string       `json:"finalized_at,omitempty"`
}

// StartTasting godoc
// @Summary Start a tasting
// @Description Open an in-progress tasting session against an existing cigar; stock is not checked at start
// @Tags tastings
// @Accept json
// @Produce json
// @Param request body StartTastingRequest true "Tasting context"
// @Success 201 {object} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tastings [post]
func (h *TastingHandler) StartTasting(c *gin.Context) {
	var req StartTastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	tasting, err := h.tastingService.StartTasting(services.StartTastingInput{
		CigarID:      req.CigarID,
		Setting:      req.Setting,
		Cut:          req.Cut,
		Draw:         req.Draw,
		WrapperNotes: req.WrapperNotes,
	})
	if err != nil {
		switch err {
		case services.ErrCigarRequired:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cigar_id is required"})
		case services.ErrCigarNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cigar not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toTastingResponse(tasting))
}

// FinalizeTasting godoc
// @Summary Finalize a tasting
// @Description Record the sensory results, move the tasting to finalized and decrement the cigar's stock by one (skipped at zero). Absent form fields keep their prior value.
// @Tags tastings
// @Accept mpfd
// @Produce json
// @Param id path int true "Tasting ID"
// @Param duration_minutes formData int false "Duration in minutes"
// @Param score formData int false "Overall score (0-10)"
// @Param construction_notes formData string false "Construction and burn notes"
// @Param repurchase_intent formData string false "yes, no or price_dependent"
// @Param notes formData string false "Overall notes"
// @Param band_note formData string false "Band note"
// @Param band_photo formData file false "Band photo"
// @Success 200 {object} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tastings/{id}/finalize [put]
func (h *TastingHandler) FinalizeTasting(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tasting ID"})
		return
	}

	input, errMsg := parseFinalizeForm(c)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
		return
	}

	tasting, err := h.tastingService.FinalizeTasting(id, input)
	if err != nil {
		switch err {
		case services.ErrTastingNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "tasting not found"})
		case services.ErrTastingFinalized:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "tasting already finalized"})
		case services.ErrScoreOutOfRange, services.ErrInvalidDuration, services.ErrInvalidRepurchase:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toTastingResponse(tasting))
}

// ListTastings godoc
// @Summary List tastings
// @Description List tastings newest first, optionally filtered by status (in_progress or finalized) and a search term over cigar name and notes
// @Tags tastings
// @Produce json
// @Param status query string false "Lifecycle status filter"
// @Param q query string false "Search term"
// @Success 200 {array} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tastings [get]
func (h *TastingHandler) ListTastings(c *gin.Context) {
	status := c.Query("status")
	query := c.Query("q")

	var tastings []models.Tasting
	var err error
	switch status {
	case models.TastingInProgress:
		tastings, err = h.tastingService.ListInProgress()
	case models.TastingFinalized:
		tastings, err = h.tastingService.ListFinalized(query)
	case "":
		tastings, err = h.tastingService.ListAll(query)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be in_progress or finalized"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]TastingResponse, len(tastings))
	for i := range tastings {
		responses[i] = *toTastingResponse(&tastings[i])
	}

	c.JSON(http.StatusOK, responses)
}

// GetTasting godoc
// @Summary Get a tasting
// @Tags tastings
// @Produce json
// @Param id path int true "Tasting ID"
// @Success 200 {object} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings/{id} [get]
func (h *TastingHandler) GetTasting(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tasting ID"})
		return
	}

	tasting, err := h.tastingService.GetTasting(id)
	if err != nil {
		if err == services.ErrTastingNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "tasting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toTastingResponse(tasting))
}

// DeleteTasting godoc
// @Summary Delete a tasting
// @Tags tastings
// @Param id path int true "Tasting ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tastings/{id} [delete]
func (h *TastingHandler) DeleteTasting(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tasting ID"})
		return
	}

	if err := h.tastingService.DeleteTasting(id); err != nil {
		if err == services.ErrTastingNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "tasting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseFinalizeForm(c *gin.Context) (services.FinalizeTastingInput, string) {
	var input services.FinalizeTastingInput
	var err error

	if input.DurationMinutes, err = optionalInt(c, "duration_minutes"); err != nil {
		return input, err.Error()
	}
	if input.Score, err = optionalInt(c, "score"); err != nil {
		return input, err.Error()
	}

	input.ConstructionNotes = optionalString(c, "construction_notes")
	input.RepurchaseIntent = optionalString(c, "repurchase_intent")
	input.Notes = optionalString(c, "notes")
	input.BandNote = optionalString(c, "band_note")

	flavors := []struct {
		field string
		dst   **bool
	}{
		{"flavor_tobacco", &input.FlavorTobacco},
		{"flavor_pepper", &input.FlavorPepper},
		{"flavor_earthy", &input.FlavorEarthy},
		{"flavor_floral", &input.FlavorFloral},
		{"flavor_coffee", &input.FlavorCoffee},
		{"flavor_fruit", &input.FlavorFruit},
		{"flavor_chocolate", &input.FlavorChocolate},
		{"flavor_nutty", &input.FlavorNutty},
		{"flavor_woody", &input.FlavorWoody},
	}
	for _, flavor := range flavors {
		if *flavor.dst, err = optionalBool(c, flavor.field); err != nil {
			return input, err.Error()
		}
	}

	if input.BandPhotoName, input.BandPhoto, err = formFileBytes(c, "band_photo"); err != nil {
		return input, "invalid band photo upload"
	}

	return input, ""
}

func toTastingResponse(tasting *models.Tasting) *TastingResponse {
	resp := &TastingResponse{
		ID:      tasting.ID,
		CigarID: tasting.CigarID,
		Cigar: CigarSummary{
			ID:      tasting.Cigar.ID,
			Name:    tasting.Cigar.Name,
			Vitola:  tasting.Cigar.Vitola,
			Country: tasting.Cigar.Country,
		},
		Status:            tasting.Status,
		StartedAt:         tasting.StartedAt.Format(time.RFC3339),
		Setting:           tasting.Setting,
		Cut:               tasting.Cut,
		Draw:              tasting.Draw,
		WrapperNotes:      tasting.WrapperNotes,
		DurationMinutes:   tasting.DurationMinutes,
		Score:             tasting.Score,
		ConstructionNotes: tasting.ConstructionNotes,
		RepurchaseIntent:  tasting.RepurchaseIntent,
		FlavorTobacco:     tasting.FlavorTobacco,
		FlavorPepper:      tasting.FlavorPepper,
		FlavorEarthy:      tasting.FlavorEarthy,
		FlavorFloral:      tasting.FlavorFloral,
		FlavorCoffee:      tasting.FlavorCoffee,
		FlavorFruit:       tasting.FlavorFruit,
		FlavorChocolate:   tasting.FlavorChocolate,
		FlavorNutty:       tasting.FlavorNutty,
		FlavorWoody:       tasting.FlavorWoody,
		Notes:             tasting.Notes,
		BandNote:          tasting.BandNote,
		BandPhotoURL:      tasting.BandPhotoURL,
	}
	if tasting.FinalizedAt != nil {
		resp.FinalizedAt = tasting.FinalizedAt.Format(time.RFC3339)
	}
	return resp
}
