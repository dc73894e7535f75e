package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ustazlink/survey-backend/internal/response"
	"github.com/ustazlink/survey-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Download godoc
// GET /api/v1/admin/export/surveys
//
// Streams a two-sheet XLSX snapshot of all responses.
func (h *ExportHandler) Download(c *gin.Context) {
	workbook, err := h.exportService.Workbook(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("surveys_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; nothing sensible left to send.
		c.Abort()
	}
}
