package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/factorytrack/internal/domain/model"
	"github.com/polkiloo/factorytrack/internal/server/http/dto"
	"github.com/polkiloo/factorytrack/internal/usecase"
)

const dateLayout = "2006-01-02"

// ListingHandler serves the paginated order and product listings.
type ListingHandler struct {
	facade ListingFacade
}

// NewListingHandler constructs ListingHandler.
func NewListingHandler(facade ListingFacade) *ListingHandler {
	return &ListingHandler{facade: facade}
}

// Orders handles GET /orders.
func (h *ListingHandler) Orders(c *gin.Context) {
	page, err := intQuery(c, "page", usecase.DefaultPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	perPage, err := intQuery(c, "per_page", usecase.DefaultPerPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.facade.Orders(c.Request.Context(), page, perPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	orders := make([]dto.OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.OrdersPageResponse{
		Orders: orders,
		Total:  result.Total,
		Page:   result.Page,
		Pages:  result.Pages,
	})
}

// Products handles GET /products.
func (h *ListingHandler) Products(c *gin.Context) {
	page, err := intQuery(c, "page", usecase.DefaultPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	perPage, err := intQuery(c, "per_page", usecase.DefaultPerPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.facade.Products(c.Request.Context(), page, perPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	products := make([]dto.ProductResponse, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, dto.ProductResponse{ID: p.ID, Name: p.Name})
	}

	c.JSON(http.StatusOK, dto.ProductsPageResponse{
		Products: products,
		Total:    result.Total,
		Page:     result.Page,
		Pages:    result.Pages,
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		Quantity:    order.Quantity,
		EmployeeID:  order.EmployeeID,
		TotalAmount: order.TotalAmount,
		Date:        order.Date.Format(dateLayout),
		ProductID:   order.ProductID,
		CustomerID:  order.CustomerID,
	}
}
