package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/service"
)

type EnquiryHandler struct {
	service *service.EnquiryService
}

func NewEnquiryHandler(service *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

type enquiryRequest struct {
	CarID    string `json:"car_id" binding:"required"`
	CarTitle string `json:"car_title"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone" binding:"required"`
	Message  string `json:"message"`
}

// CreateEnquiry is public: buyers submit it from a listing page.
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var req enquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enquiry := &domain.Enquiry{
		CarID:    req.CarID,
		CarTitle: req.CarTitle,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	}

	if err := h.service.CreateEnquiry(c.Request.Context(), enquiry); err != nil {
		log.Error().Err(err).Msg("failed to create enquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit enquiry"})
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	enquiries, err := h.service.ListEnquiries(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list enquiries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch enquiries"})
		return
	}

	c.JSON(http.StatusOK, enquiries)
}

type setReadRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

func (h *EnquiryHandler) SetEnquiryRead(c *gin.Context) {
	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enquiry, err := h.service.SetEnquiryRead(c.Request.Context(), c.Param("id"), *req.IsRead)
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("failed to update enquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update enquiry"})
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "enquiry not found"})
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

type messageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// CreateMessage is the public contact form.
func (h *EnquiryHandler) CreateMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &domain.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.service.CreateMessage(c.Request.Context(), msg); err != nil {
		log.Error().Err(err).Msg("failed to create message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *EnquiryHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *EnquiryHandler) SetMessageRead(c *gin.Context) {
	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.SetMessageRead(c.Request.Context(), c.Param("id"), *req.IsRead)
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("failed to update message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	c.JSON(http.StatusOK, msg)
}
