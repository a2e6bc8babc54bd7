package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

// writeBusinessError maps use-case error codes to HTTP responses.
func writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {

	case "invalid_date_format":
		httperr.BadRequest(c, code, "Dates must be in YYYY-MM-DD format.")
	case "past_start_date":
		httperr.BadRequest(c, code, "The start date is in the past.")
	case "inverted_range":
		httperr.BadRequest(c, code, "The end date must be after the start date.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown rental status.")
	case "invalid_reason":
		httperr.BadRequest(c, code, "Unknown block reason.")
	case "item_unavailable":
		httperr.BadRequest(c, code, "The item is not available for rent.")

	case "range_unavailable":
		httperr.Conflict(c, code, "Some of the requested dates are already taken.")
	case "invalid_state":
		httperr.Conflict(c, code, "The rental status does not allow this operation.")

	case "not_authorized":
		httperr.Forbidden(c, code, "You do not have access to this resource.")

	case "item_not_found":
		httperr.NotFound(c, code, "Item not found.")
	case "rental_not_found":
		httperr.NotFound(c, code, "Rental not found.")

	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
