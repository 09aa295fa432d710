package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard returns the aggregated dashboard payload. `?refresh=1`
// bypasses the cache.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "1"

	payload, err := h.dashboard.GetDashboard(c.Request.Context(), forceRefresh)
	if err != nil {
		log.Error().Err(err).Msg("failed to build dashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, payload)
}

type manualSaleRequest struct {
	CarTitle      string     `json:"car_title" binding:"required"`
	Brand         string     `json:"brand"`
	Model         string     `json:"model"`
	Year          *int       `json:"year"`
	SellPrice     int64      `json:"sell_price" binding:"required,gt=0"`
	PurchasePrice *int64     `json:"purchase_price"`
	BuyerName     string     `json:"buyer_name"`
	BuyerPhone    string     `json:"buyer_phone"`
	BuyerAddress  string     `json:"buyer_address"`
	Notes         string     `json:"notes"`
	SoldAt        *time.Time `json:"sold_at"`
}

// CreateManualSale records an off-platform sale.
func (h *DashboardHandler) CreateManualSale(c *gin.Context) {
	var req manualSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale := &domain.ManualSale{
		CarTitle:      req.CarTitle,
		Brand:         req.Brand,
		Model:         req.Model,
		Year:          req.Year,
		SellPrice:     req.SellPrice,
		PurchasePrice: req.PurchasePrice,
		BuyerName:     req.BuyerName,
		BuyerPhone:    req.BuyerPhone,
		BuyerAddress:  req.BuyerAddress,
		Notes:         req.Notes,
		SoldAt:        req.SoldAt,
	}

	if err := h.dashboard.RecordManualSale(c.Request.Context(), sale); err != nil {
		log.Error().Err(err).Msg("failed to record manual sale")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record manual sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// ListManualSales returns the manual sales register.
func (h *DashboardHandler) ListManualSales(c *gin.Context) {
	sales, err := h.dashboard.ListManualSales(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list manual sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch manual sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}
