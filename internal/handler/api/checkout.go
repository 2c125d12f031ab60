package api

import (
	"net/http"

	reqdto "booth-booking/internal/handler/dto/request"
	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Finalize checkout
// @Description Charge the customer and turn the hold into a confirmed booking. Retrying returns the stored result.
// @Tags checkout
// @Accept json
// @Produce json
// @Security SessionBearer
// @Param request body reqdto.FinalizeRequest true "Checkout request"
// @Success 201 {object} resdto.FinalizeResponse
// @Success 200 {object} resdto.FinalizeResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingActor, "Session token required")
		return
	}

	var req reqdto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Finalize(c.Request.Context(), commands.FinalizeInput{
		HoldID:         req.HoldID,
		SessionID:      sessionID,
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		GuestCount:     req.GuestCount,
		PaymentToken:   req.PaymentToken,
		TicketQuantity: req.TicketQuantity,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromFinalizeResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	httperr.OK(c, status, res)
}
