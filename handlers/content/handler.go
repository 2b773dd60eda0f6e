package content

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/handlers/subscriptions"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/storage"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Handler serves the gated gallery and the admin content mutations.
type Handler struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func NewHandler(db *gorm.DB, store storage.ObjectStore) *Handler {
	return &Handler{DB: db, Store: store}
}

type uploadInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        models.ContentType `json:"type" binding:"required"`
	FileData    string             `json:"fileData" binding:"required"`
	MimeType    string             `json:"mimeType" binding:"required"`
	IsPublic    bool               `json:"isPublic"`
}

// List returns the gallery, gated by subscription
// @Summary List content
// @Description Anonymous callers and callers without an active subscription get public content only; active subscribers get everything. Newest first.
// @Tags content
// @Produce json
// @Success 200 {array} models.Content
// @Router /content [get]
func (h *Handler) List(c *gin.Context) {
	query := h.DB.Order("created_at DESC")

	// The entitlement is evaluated fresh on every call, so an expiring
	// subscription is reflected on the next request.
	if !h.callerHasActiveSubscription(c) {
		query = query.Where("is_public = ?", true)
	}

	var items []models.Content
	if err := query.Find(&items).Error; err != nil {
		utils.LogError(err, "Error listing content in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing content"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) callerHasActiveSubscription(c *gin.Context) bool {
	userID, exists := c.Get("user_id")
	if !exists {
		return false
	}

	_, err := subscriptions.ActiveForUser(h.DB, userID)
	return err == nil
}

// Stats returns the public aggregate counts
// @Summary Get content statistics
// @Description Return the number of photos, videos and the total, regardless of caller
// @Tags content
// @Produce json
// @Success 200 {object} models.ContentStats
// @Router /content/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var stats models.ContentStats

	if err := h.DB.Model(&models.Content{}).Where("type = ?", models.ContentPhoto).Count(&stats.Photos).Error; err != nil {
		utils.LogError(err, "Error counting photos in Stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing content stats"})
		return
	}
	if err := h.DB.Model(&models.Content{}).Where("type = ?", models.ContentVideo).Count(&stats.Videos).Error; err != nil {
		utils.LogError(err, "Error counting videos in Stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing content stats"})
		return
	}
	stats.Total = stats.Photos + stats.Videos

	c.JSON(http.StatusOK, stats)
}

// Upload stores a new photo or video (admin capability)
// @Summary Upload content
// @Description Decode the base64 payload, store the bytes in the object store and persist the content row. Admin only.
// @Tags content
// @Accept json
// @Produce json
// @Param content body uploadInput true "Content payload (fileData is base64, a data URI prefix is tolerated)"
// @Security BearerAuth
// @Success 201 {object} map[string]string "url: public URL of the stored file"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /content [post]
func (h *Handler) Upload(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var input uploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Type != models.ContentPhoto && input.Type != models.ContentVideo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type: " + string(input.Type)})
		return
	}

	// Tolerate data URIs: "data:image/png;base64,AAAA..." keeps only the payload.
	fileData := input.FileData
	if idx := strings.Index(fileData, ","); idx != -1 && strings.Contains(fileData[:idx], "base64") {
		fileData = fileData[idx+1:]
	}
	fileBytes, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 file data"})
		return
	}

	extension := input.MimeType
	if idx := strings.Index(extension, "/"); idx != -1 {
		extension = extension[idx+1:]
	}
	fileKey := fmt.Sprintf("content/%ss/%s.%s", input.Type, uuid.NewString(), extension)

	// No fallback here: content cannot be faked, a store outage fails the upload.
	fileURL, err := h.Store.Put(c.Request.Context(), fileKey, fileBytes, input.MimeType)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error storing the file in Upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing the file"})
		return
	}

	item := models.Content{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		FileURL:     fileURL,
		FileKey:     fileKey,
		MimeType:    input.MimeType,
		FileSize:    len(fileBytes),
		IsPublic:    input.IsPublic,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the content row in Upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the content"})
		return
	}

	utils.LogSuccessWithUser(userID, "Content uploaded in Upload")
	c.JSON(http.StatusCreated, gin.H{"url": fileURL})
}

// Delete removes a content row (admin capability)
// @Summary Delete content
// @Description Delete the content metadata row. The stored object is not removed.
// @Tags content
// @Produce json
// @Param id path string true "Content ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: Invalid content ID"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Content not found"
// @Router /content/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := c.Get("user_id")

	contentID := c.Param("id")
	if _, err := uuid.Parse(contentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	var item models.Content
	if err := h.DB.First(&item, "id = ?", contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting the content in Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the content"})
		return
	}

	utils.LogSuccessWithUser(userID, "Content deleted in Delete")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
