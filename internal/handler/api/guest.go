package api

import (
	"errors"
	"net/http"

	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestListHandler struct {
	q queries.GuestListQueries
}

func NewGuestListHandler(q queries.GuestListQueries) *GuestListHandler {
	return &GuestListHandler{q: q}
}

// @Summary Guest list
// @Description Booking summary and guests for the holder of the signed guest-list link
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param token query string true "Guest-list token"
// @Success 200 {object} resdto.GuestListResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/guests [get]
func (h *GuestListHandler) List(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid booking id")
		return
	}
	token := c.Query("token")
	if token == "" {
		httperr.AbortWithError(c, http.StatusForbidden, errs.KindForbidden, errors.New("missing guest-list token"), "Guest-list token required")
		return
	}

	list, err := h.q.GuestList(c.Request.Context(), id, token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromGuestList(list)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, res)
}
