package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/storage"
)

// maxUploadSize bounds a single car image upload.
const maxUploadSize = 10 << 20

type UploadHandler struct {
	storage storage.ObjectStorage
}

func NewUploadHandler(storage storage.ObjectStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage stores a car photo in the object bucket and returns its URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are allowed"})
		return
	}

	key := objectKey(fileHeader.Filename)
	url, err := h.storage.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "key": key})
}

// objectKey derives a collision-safe bucket key from the original filename.
func objectKey(filename string) string {
	base := filepath.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	return fmt.Sprintf("cars/%d_%s", time.Now().UnixNano(), base)
}
