package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/factorytrack/internal/server/http/dto"
	"github.com/polkiloo/factorytrack/internal/usecase"
)

// ReportHandler serves the admin-only aggregate reports. Every failure comes
// back as a 400 with the underlying message, whether the fault is the client's
// or the store's. Known weakness, preserved deliberately; do not extend it.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// EmployeePerformance handles GET /employee_performance.
func (h *ReportHandler) EmployeePerformance(c *gin.Context) {
	rows, err := h.facade.EmployeePerformance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]dto.EmployeePerformanceResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.EmployeePerformanceResponse{EmployeeID: row.EmployeeID, TotalQuantity: row.TotalQuantity})
	}
	c.JSON(http.StatusOK, resp)
}

// TopSellingProducts handles GET /top_selling_products.
func (h *ReportHandler) TopSellingProducts(c *gin.Context) {
	rows, err := h.facade.TopSellingProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]dto.ProductSalesResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.ProductSalesResponse{ProductID: row.ProductID, TotalQuantity: row.TotalQuantity})
	}
	c.JSON(http.StatusOK, resp)
}

// CustomerLifetimeValue handles GET /customer_lifetime_value.
func (h *ReportHandler) CustomerLifetimeValue(c *gin.Context) {
	threshold, err := floatQuery(c, "threshold", usecase.DefaultValueThreshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rows, err := h.facade.CustomerLifetimeValue(c.Request.Context(), threshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]dto.CustomerValueResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.CustomerValueResponse{CustomerID: row.CustomerID, TotalValue: row.TotalValue})
	}
	c.JSON(http.StatusOK, resp)
}

// ProductionEfficiency handles GET /production_efficiency.
func (h *ReportHandler) ProductionEfficiency(c *gin.Context) {
	rows, err := h.facade.ProductionEfficiency(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]dto.ProductSalesResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.ProductSalesResponse{ProductID: row.ProductID, TotalQuantity: row.TotalQuantity})
	}
	c.JSON(http.StatusOK, resp)
}
