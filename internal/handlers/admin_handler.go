package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/T3nda22/DungogWebsite2c/internal/audit"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/httpresp"
	"github.com/T3nda22/DungogWebsite2c/internal/middleware"
	"github.com/T3nda22/DungogWebsite2c/internal/models"
)

// AdminHandler covers the item approval workflow: new listings start as
// pending and go live only after an admin approves them.
type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{
		db:    db,
		audit: dispatcher,
	}
}

func requireAdmin(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != "admin" {
		httperr.Forbidden(c, "not_authorized", "Admin privileges required.")
		return 0, false
	}
	return userID, true
}

func (h *AdminHandler) ListPendingItems(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var items []models.Item
	if err := h.db.
		Preload("Owner").
		Where("status = 'pending'").
		Order("created_at ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_items", "Failed to list pending items.")
		return
	}

	httpresp.List(c, items)
}

func (h *AdminHandler) ApproveItem(c *gin.Context) {
	adminID, ok := requireAdmin(c)
	if !ok {
		return
	}

	h.setItemStatus(c, adminID, "approved", "item_approved")
}

func (h *AdminHandler) RejectItem(c *gin.Context) {
	adminID, ok := requireAdmin(c)
	if !ok {
		return
	}

	h.setItemStatus(c, adminID, "rejected", "item_rejected")
}

func (h *AdminHandler) setItemStatus(c *gin.Context, adminID uint, status, action string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	var item models.Item
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Item not found.")
		return
	}

	if item.Status != "pending" {
		httperr.Conflict(c, "invalid_state", "Item has already been reviewed.")
		return
	}

	item.Status = status
	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Failed to update item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "item",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusOK, item)
}
