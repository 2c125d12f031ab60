package api

import (
	"errors"
	"net/http"

	reqdto "booth-booking/internal/handler/dto/request"
	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxIdempotencyKeyLength = 255

var errMissingActor = errors.New("authenticated actor missing from context")

type HoldHandler struct {
	cmds commands.HoldCommands
}

func NewHoldHandler(cmds commands.HoldCommands) *HoldHandler {
	return &HoldHandler{cmds: cmds}
}

// @Summary Create hold
// @Description Place a short-lived hold on a booth slot for the calling session
// @Tags holds
// @Accept json
// @Produce json
// @Security SessionBearer
// @Param Idempotency-Key header string false "Replays the earlier hold for the same session and key"
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Success 200 {object} resdto.HoldResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) Create(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingActor, "Session token required")
		return
	}

	var key *string
	if raw := c.GetHeader("Idempotency-Key"); raw != "" {
		if len(raw) > maxIdempotencyKeyLength {
			httperr.BadRequest(c, errors.New("idempotency key too long"), "Idempotency-Key is too long")
			return
		}
		key = &raw
	}

	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateHoldInput{
		BoothID:        req.BoothID,
		Venue:          req.Venue,
		Date:           req.Date,
		Start:          req.StartTime,
		End:            req.EndTime,
		SessionID:      sessionID,
		TTLMinutes:     req.TTLMinutes,
		ContactEmail:   req.GetContactEmail(),
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromHoldResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/holds/"+result.Hold.ID.String())
	httperr.OK(c, status, res)
}

// @Summary Get hold
// @Description Status and expiry of a hold owned by the calling session
// @Tags holds
// @Produce json
// @Security SessionBearer
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /holds/{id} [get]
func (h *HoldHandler) Get(c *gin.Context) {
	h.withSessionHold(c, func(id uuid.UUID, sessionID string) (*commands.HoldView, error) {
		return h.cmds.Get(c.Request.Context(), id, sessionID)
	})
}

// @Summary Extend hold
// @Description Push the expiry of an active hold
// @Tags holds
// @Accept json
// @Produce json
// @Security SessionBearer
// @Param id path string true "Hold ID"
// @Param request body reqdto.ExtendHoldRequest false "New TTL"
// @Success 200 {object} resdto.HoldResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /holds/{id}/extend [post]
func (h *HoldHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendHoldRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request")
			return
		}
	}
	h.withSessionHold(c, func(id uuid.UUID, sessionID string) (*commands.HoldView, error) {
		return h.cmds.Extend(c.Request.Context(), id, sessionID, req.TTLMinutes)
	})
}

// @Summary Release hold
// @Description Release a hold early; repeating the call is harmless
// @Tags holds
// @Produce json
// @Security SessionBearer
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /holds/{id}/release [post]
func (h *HoldHandler) Release(c *gin.Context) {
	h.withSessionHold(c, func(id uuid.UUID, sessionID string) (*commands.HoldView, error) {
		return h.cmds.Release(c.Request.Context(), id, sessionID)
	})
}

// @Summary Staff release hold
// @Description Release any session's hold
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /staff/holds/{id}/release [post]
func (h *HoldHandler) StaffRelease(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid hold id")
		return
	}

	view, err := h.cmds.StaffRelease(c.Request.Context(), id, staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondHold(c, view)
}

func (h *HoldHandler) withSessionHold(c *gin.Context, run func(id uuid.UUID, sessionID string) (*commands.HoldView, error)) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingActor, "Session token required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid hold id")
		return
	}

	view, err := run(id, sessionID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondHold(c, view)
}

func respondHold(c *gin.Context, view *commands.HoldView) {
	res, err := resdto.FromHoldView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, res)
}
