package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/service"
)

type CarHandler struct {
	carService *service.CarService
}

func NewCarHandler(carService *service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

type carRequest struct {
	Title         string   `json:"title" binding:"required"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	Price         int64    `json:"price" binding:"required,gt=0"`
	PurchasePrice *int64   `json:"purchase_price"`
	KmDriven      int      `json:"km_driven"`
	FuelType      string   `json:"fuel_type"`
	Transmission  string   `json:"transmission"`
	Color         string   `json:"color"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	IsFeatured    bool     `json:"is_featured"`
	Ownership     int      `json:"ownership"`
	Location      string   `json:"location"`
}

func (r *carRequest) toDomain() *domain.Car {
	return &domain.Car{
		Title:         r.Title,
		Brand:         r.Brand,
		Model:         r.Model,
		Year:          r.Year,
		Price:         r.Price,
		PurchasePrice: r.PurchasePrice,
		KmDriven:      r.KmDriven,
		FuelType:      r.FuelType,
		Transmission:  r.Transmission,
		Color:         r.Color,
		Description:   r.Description,
		Images:        r.Images,
		IsFeatured:    r.IsFeatured,
		Ownership:     r.Ownership,
		Location:      r.Location,
	}
}

// ListCars returns all live listings, optionally only unsold ones.
func (h *CarHandler) ListCars(c *gin.Context) {
	onlyAvailable := c.Query("available") == "1"

	cars, err := h.carService.List(c.Request.Context(), onlyAvailable)
	if err != nil {
		log.Error().Err(err).Msg("failed to list cars")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cars"})
		return
	}

	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("failed to get car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch car"})
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}

	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car := req.toDomain()
	if err := h.carService.Create(c.Request.Context(), car); err != nil {
		log.Error().Err(err).Msg("failed to create car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create car"})
		return
	}

	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car := req.toDomain()
	car.ID = c.Param("id")
	if err := h.carService.Update(c.Request.Context(), car); err != nil {
		log.Error().Err(err).Str("id", car.ID).Msg("failed to update car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update car"})
		return
	}

	c.JSON(http.StatusOK, car)
}

type markSoldRequest struct {
	FinalSellPrice *int64     `json:"final_sell_price"`
	SoldToName     string     `json:"sold_to_name"`
	SoldToPhone    string     `json:"sold_to_phone"`
	SoldToAddress  string     `json:"sold_to_address"`
	SoldToNotes    string     `json:"sold_to_notes"`
	SoldAt         *time.Time `json:"sold_at"`
}

// MarkSold closes a listing with the final price and buyer details.
func (h *CarHandler) MarkSold(c *gin.Context) {
	var req markSoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale := &domain.CarSaleDetails{
		FinalSellPrice: req.FinalSellPrice,
		SoldToName:     req.SoldToName,
		SoldToPhone:    req.SoldToPhone,
		SoldToAddress:  req.SoldToAddress,
		SoldToNotes:    req.SoldToNotes,
	}
	if req.SoldAt != nil {
		sale.SoldAt = *req.SoldAt
	}

	id := c.Param("id")
	if err := h.carService.MarkSold(c.Request.Context(), id, sale); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to mark car sold")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark car sold"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")
	if err := h.carService.Delete(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListSoldCars returns the sales history for the admin history page.
func (h *CarHandler) ListSoldCars(c *gin.Context) {
	cars, err := h.carService.ListSold(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list sold cars")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sold cars"})
		return
	}

	c.JSON(http.StatusOK, cars)
}
