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

// ======================================================
// HANDLER
// ======================================================

type RentalHandler struct {
	repo domain.Repository

	request      *ucRental.RequestRental
	confirm      *ucRental.ConfirmPayment
	cancel       *ucRental.CancelRental
	updateStatus *ucRental.OwnerUpdateStatus
}

func NewRentalHandler(
	repo domain.Repository,
	request *ucRental.RequestRental,
	confirm *ucRental.ConfirmPayment,
	cancel *ucRental.CancelRental,
	updateStatus *ucRental.OwnerUpdateStatus,
) *RentalHandler {
	return &RentalHandler{
		repo:         repo,
		request:      request,
		confirm:      confirm,
		cancel:       cancel,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestRentalRequest struct {
	ItemID    uint   `json:"item_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

type ConfirmPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RentalHandler) Request(c *gin.Context) {
	renterID := c.MustGet(middleware.ContextUserID).(uint)

	var req RequestRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid rental data.")
		return
	}

	rental, err := h.request.Execute(c.Request.Context(), ucRental.RequestRentalInput{
		ItemID:    req.ItemID,
		RenterID:  renterID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})

	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, rental)
}

// ======================================================
// PAYMENT
// ======================================================

func (h *RentalHandler) ConfirmPayment(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rentalID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_rental_id", "Invalid rental id.")
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	rental, err := h.confirm.Execute(c.Request.Context(), rentalID, userID, req.Method)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// ======================================================
// CANCEL
// ======================================================

func (h *RentalHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rentalID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_rental_id", "Invalid rental id.")
		return
	}

	rental, err := h.cancel.Execute(c.Request.Context(), rentalID, userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// ======================================================
// OWNER STATUS UPDATE
// ======================================================

func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rentalID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_rental_id", "Invalid rental id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status data.")
		return
	}

	rental, err := h.updateStatus.Execute(c.Request.Context(), rentalID, userID, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// ======================================================
// LISTS
// ======================================================

func (h *RentalHandler) ListMine(c *gin.Context) {
	renterID := c.MustGet(middleware.ContextUserID).(uint)

	rentals, err := h.repo.ListRentalsByRenter(c.Request.Context(), renterID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_rentals", "Failed to list rentals.")
		return
	}

	httpresp.List(c, rentals)
}

func (h *RentalHandler) ListIncoming(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	rentals, err := h.repo.ListRentalsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_rentals", "Failed to list rentals.")
		return
	}

	httpresp.List(c, rentals)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
