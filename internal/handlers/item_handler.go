package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/httpresp"
	"github.com/T3nda22/DungogWebsite2c/internal/middleware"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

type ItemHandler struct {
	db *gorm.DB
}

func NewItemHandler(db *gorm.DB) *ItemHandler {
	return &ItemHandler{db: db}
}

// --------- Requests ---------

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
	Location    string  `json:"location"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	PricePerDay *float64 `json:"price_per_day,omitempty"`
	Location    *string  `json:"location,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// --------- Handlers ---------

// Browse lists approved, switched-on items for renters.
func (h *ItemHandler) Browse(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("status = 'approved' AND is_available = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.Item
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_items", "Failed to list items.")
		return
	}

	httpresp.List(c, items)
}

func (h *ItemHandler) ListMine(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var items []models.Item
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_items", "Failed to list items.")
		return
	}

	httpresp.List(c, items)
}

func (h *ItemHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != "owner" {
		httperr.Forbidden(c, "not_authorized", "Only owners can list items.")
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid item data.")
		return
	}

	item := models.Item{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    strings.ToLower(req.Category),
		PricePerDay: req.PricePerDay,
		Location:    req.Location,
		Status:      "pending",
		IsAvailable: true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Failed to create item.")
		return
	}

	httpresp.Created(c, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var item models.Item
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&item).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_item", "Failed to load item.")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid item data.")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = strings.ToLower(*req.Category)
	}
	if req.PricePerDay != nil {
		item.PricePerDay = *req.PricePerDay
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Failed to update item.")
		return
	}

	c.JSON(http.StatusOK, item)
}
