package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humidorlog/humidor/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCollection godoc
// @Summary Export the collection
// @Description Signed JSON snapshot of all cigars and tastings
// @Tags export
// @Produce json
// @Success 200 {object} services.CollectionExport
// @Failure 500 {object} ErrorResponse
// @Router /export [get]
func (h *ExportHandler) ExportCollection(c *gin.Context) {
	export, err := h.exportService.ExportCollection()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, export)
}
