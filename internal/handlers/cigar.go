package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humidorlog/humidor/internal/models"
	"github.com/humidorlog/humidor/internal/services"
)

type CigarHandler struct {
	cigarService *services.CigarService
}

func NewCigarHandler(cigarService *services.CigarService) *CigarHandler {
	return &CigarHandler{cigarService: cigarService}
}

type CigarResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Vitola        string   `json:"vitola,omitempty"`
	Country       string   `json:"country,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	AcquiredOn    string   `json:"acquired_on,omitempty"`
	Quantity      int      `json:"quantity"`
	PhotoURL      string   `json:"photo_url,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// CreateCigar godoc
// @Summary Add a cigar to the collection
// @Description Create a new cigar inventory entry, optionally with a photo
// @Tags cigars
// @Accept mpfd
// @Produce json
// @Param name formData string true "Cigar name"
// @Param vitola formData string false "Ring gauge / vitola"
// @Param country formData string false "Country of origin"
// @Param purchase_price formData number false "Purchase price"
// @Param acquired_on formData string false "Acquisition date (YYYY-MM-DD)"
// @Param quantity formData int false "Quantity on hand (default 1)"
// @Param photo formData file false "Cigar photo"
// @Success 201 {object} CigarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cigars [post]
func (h *CigarHandler) CreateCigar(c *gin.Context) {
	input, errMsg := parseCigarForm(c)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
		return
	}

	cigar, err := h.cigarService.CreateCigar(services.CreateCigarInput{
		Name:          deref(input.Name),
		Vitola:        deref(input.Vitola),
		Country:       deref(input.Country),
		PurchasePrice: input.PurchasePrice,
		AcquiredOn:    input.AcquiredOn,
		Quantity:      input.Quantity,
		PhotoName:     input.PhotoName,
		Photo:         input.Photo,
	})
	if err != nil {
		switch err {
		case services.ErrNameRequired, services.ErrInvalidPrice, services.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toCigarResponse(cigar))
}

// ListCigars godoc
// @Summary List cigars
// @Description Get every cigar in the collection, newest first
// @Tags cigars
// @Produce json
// @Success 200 {array} CigarResponse
// @Failure 500 {object} ErrorResponse
// @Router /cigars [get]
func (h *CigarHandler) ListCigars(c *gin.Context) {
	cigars, err := h.cigarService.ListCigars()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]CigarResponse, len(cigars))
	for i := range cigars {
		responses[i] = *toCigarResponse(&cigars[i])
	}

	c.JSON(http.StatusOK, responses)
}

// GetCigar godoc
// @Summary Get a cigar
// @Tags cigars
// @Produce json
// @Param id path int true "Cigar ID"
// @Success 200 {object} CigarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cigars/{id} [get]
func (h *CigarHandler) GetCigar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cigar ID"})
		return
	}

	cigar, err := h.cigarService.GetCigar(id)
	if err != nil {
		if err == services.ErrCigarNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cigar not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toCigarResponse(cigar))
}

// UpdateCigar godoc
// @Summary Update a cigar
// @Description Partial update; absent form fields keep their prior value
// @Tags cigars
// @Accept mpfd
// @Produce json
// @Param id path int true "Cigar ID"
// @Success 200 {object} CigarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cigars/{id} [put]
func (h *CigarHandler) UpdateCigar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cigar ID"})
		return
	}

	input, errMsg := parseCigarForm(c)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
		return
	}

	cigar, err := h.cigarService.UpdateCigar(id, services.UpdateCigarInput{
		Name:          input.Name,
		Vitola:        input.Vitola,
		Country:       input.Country,
		PurchasePrice: input.PurchasePrice,
		AcquiredOn:    input.AcquiredOn,
		Quantity:      input.Quantity,
		PhotoName:     input.PhotoName,
		Photo:         input.Photo,
	})
	if err != nil {
		switch err {
		case services.ErrCigarNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cigar not found"})
		case services.ErrNameRequired, services.ErrInvalidPrice, services.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toCigarResponse(cigar))
}

// DeleteCigar godoc
// @Summary Delete a cigar
// @Description Removes the cigar and every tasting referencing it
// @Tags cigars
// @Param id path int true "Cigar ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cigars/{id} [delete]
func (h *CigarHandler) DeleteCigar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cigar ID"})
		return
	}

	if err := h.cigarService.DeleteCigar(id); err != nil {
		if err == services.ErrCigarNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cigar not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type cigarFormInput struct {
	Name          *string
	Vitola        *string
	Country       *string
	PurchasePrice *float64
	AcquiredOn    *time.Time
	Quantity      *int
	PhotoName     string
	Photo         []byte
}

func parseCigarForm(c *gin.Context) (cigarFormInput, string) {
	var input cigarFormInput
	var err error

	input.Name = optionalString(c, "name")
	input.Vitola = optionalString(c, "vitola")
	input.Country = optionalString(c, "country")

	if input.PurchasePrice, err = optionalFloat(c, "purchase_price"); err != nil {
		return input, err.Error()
	}
	if input.AcquiredOn, err = optionalDate(c, "acquired_on"); err != nil {
		return input, err.Error()
	}
	if input.Quantity, err = optionalInt(c, "quantity"); err != nil {
		return input, err.Error()
	}
	if input.PhotoName, input.Photo, err = formFileBytes(c, "photo"); err != nil {
		return input, "invalid photo upload"
	}

	return input, ""
}

func toCigarResponse(cigar *models.Cigar) *CigarResponse {
	resp := &CigarResponse{
		ID:            cigar.ID,
		Name:          cigar.Name,
		Vitola:        cigar.Vitola,
		Country:       cigar.Country,
		PurchasePrice: cigar.PurchasePrice,
		Quantity:      cigar.Quantity,
		PhotoURL:      cigar.PhotoURL,
		CreatedAt:     cigar.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     cigar.UpdatedAt.Format(time.RFC3339),
	}
	if cigar.AcquiredOn != nil {
		resp.AcquiredOn = cigar.AcquiredOn.Format("2006-01-02")
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
