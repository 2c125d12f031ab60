package api

import (
	"net/http"

	reqdto "booth-booking/internal/handler/dto/request"
	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Availability grid
// @Description Slot grid for one booth (boothId) or a whole venue (venue)
// @Tags availability
// @Produce json
// @Param boothId query string false "Booth ID"
// @Param venue query string false "Venue"
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Param granularity query int false "Slot length in minutes (15-240, default 60)"
// @Param minCapacity query int false "Minimum booth capacity (venue grid only)"
// @Success 200 {object} queries.BoothGrid
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Grid(c *gin.Context) {
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	if req.BoothID != nil {
		grid, err := h.q.BoothGrid(c.Request.Context(), *req.BoothID, req.Date, req.Granularity)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		httperr.OK(c, http.StatusOK, grid)
		return
	}

	grid, err := h.q.VenueGrid(c.Request.Context(), req.Venue, req.Date, req.Granularity, req.MinCapacity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, grid)
}

// @Summary Booths free for a window
// @Description Booths in a venue that can take the exact window
// @Tags availability
// @Produce json
// @Param venue query string true "Venue"
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Param minCapacity query int false "Minimum booth capacity"
// @Success 200 {array} queries.BoothOption
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /availability/booths [get]
func (h *AvailabilityHandler) BoothsForSlot(c *gin.Context) {
	var req reqdto.BoothsForSlotQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	booths, err := h.q.BoothsForSlot(c.Request.Context(), req.Venue, req.Date, req.Start, req.End, req.MinCapacity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, booths)
}
