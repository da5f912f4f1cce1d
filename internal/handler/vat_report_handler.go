package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ustva/internal/domain"
	"ustva/internal/service"
)

// VatReportHandler handles VAT report endpoints.
type VatReportHandler struct {
	reportService service.VatReportService
}

// NewVatReportHandler creates a new VatReportHandler.
func NewVatReportHandler(reportService service.VatReportService) *VatReportHandler {
	return &VatReportHandler{reportService: reportService}
}

// CreateOrGet handles POST /vat-reports
//
// Creation is idempotent by (client_id, year, period_code): 201 when the
// report was created, 200 when the key already existed and the stored
// report is returned.
func (h *VatReportHandler) CreateOrGet(c *gin.Context) {
	var input service.CreateVatReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.reportService.CreateOrGet(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// List handles GET /vat-reports
func (h *VatReportHandler) List(c *gin.Context) {
	rows, err := h.reportService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	if rows == nil {
		rows = []domain.VatReportRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// ExportXML handles GET /vat-reports/:id/xml
func (h *VatReportHandler) ExportXML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	doc, err := h.reportService.ExportXML(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
}

// ExportXLSX handles GET /vat-reports/xlsx
func (h *VatReportHandler) ExportXLSX(c *gin.Context) {
	book, err := h.reportService.ExportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vat-reports.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
