package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/T3nda22/DungogWebsite2c/internal/domain/rental"
	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
	"github.com/T3nda22/DungogWebsite2c/internal/httpresp"
	"github.com/T3nda22/DungogWebsite2c/internal/middleware"
	ucRental "github.com/T3nda22/DungogWebsite2c/internal/usecase/rental"
)

const defaultHorizonDays = 30

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	check  *ucRental.CheckAvailability
	list   *ucRental.ListAvailableDates
	count  *ucRental.CountAvailable
	block  *ucRental.BlockDates
	unlock *ucRental.UnblockDates
	clear  *ucRental.ClearManualBlocks
}

func NewCalendarHandler(
	check *ucRental.CheckAvailability,
	list *ucRental.ListAvailableDates,
	count *ucRental.CountAvailable,
	block *ucRental.BlockDates,
	unlock *ucRental.UnblockDates,
	clear *ucRental.ClearManualBlocks,
) *CalendarHandler {
	return &CalendarHandler{
		check:  check,
		list:   list,
		count:  count,
		block:  block,
		unlock: unlock,
		clear:  clear,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BlockDatesRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1"`
	Reason string   `json:"reason"`
}

type UnblockDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

// ======================================================
// AVAILABILITY (PUBLIC)
// ======================================================

func (h *CalendarHandler) CheckRange(c *gin.Context) {
	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_params", "start and end are required.")
		return
	}

	start, err := domain.ParseDate(startStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	end, err := domain.ParseDate(endStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	free, err := h.check.Execute(c.Request.Context(), itemID, start, end)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":   itemID,
		"start":     startStr,
		"end":       endStr,
		"available": free,
	})
}

func (h *CalendarHandler) AvailableDates(c *gin.Context) {
	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	horizon, err := parseHorizon(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_horizon", "Invalid horizon.")
		return
	}

	dates, err := h.list.Execute(c.Request.Context(), itemID, horizon)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(domain.DateLayout))
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":      itemID,
		"horizon_days": horizon,
		"dates":        out,
	})
}

func (h *CalendarHandler) AvailableCount(c *gin.Context) {
	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	horizon, err := parseHorizon(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_horizon", "Invalid horizon.")
		return
	}

	n, err := h.count.Execute(c.Request.Context(), itemID, horizon)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":      itemID,
		"horizon_days": horizon,
		"available":    n,
	})
}

// ======================================================
// OWNER BLOCKS
// ======================================================

func (h *CalendarHandler) BlockDates(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	var req BlockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid block data.")
		return
	}

	inserted, err := h.block.Execute(c.Request.Context(), ucRental.BlockDatesInput{
		ItemID:  itemID,
		OwnerID: ownerID,
		Dates:   req.Dates,
		Reason:  req.Reason,
	})

	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Count(c, "blocked", inserted)
}

func (h *CalendarHandler) UnblockDates(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	var req UnblockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid unblock data.")
		return
	}

	removed, err := h.unlock.Execute(c.Request.Context(), itemID, ownerID, req.Dates)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Count(c, "unblocked", removed)
}

func (h *CalendarHandler) ClearManualBlocks(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	removed, err := h.clear.Execute(c.Request.Context(), itemID, ownerID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Count(c, "cleared", removed)
}

// ======================================================
// HELPERS
// ======================================================

func parseHorizon(c *gin.Context) (int, error) {
	horizonStr := c.Query("horizon")
	if horizonStr == "" {
		return defaultHorizonDays, nil
	}

	horizon, err := strconv.Atoi(horizonStr)
	if err != nil || horizon < 0 {
		return 0, strconv.ErrRange
	}
	return horizon, nil
}
