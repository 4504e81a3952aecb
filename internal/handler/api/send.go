package api

import (
	"errors"
	"net/http"

	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SendHandler struct {
	cmds   commands.RedemptionCommands
	ledger queries.LedgerQueries
}

func NewSendHandler(cmds commands.RedemptionCommands, ledger queries.LedgerQueries) *SendHandler {
	return &SendHandler{cmds: cmds, ledger: ledger}
}

// @Summary Get send record
// @Description Get one ledger record by ID
// @Tags sends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Send record ID"
// @Success 200 {object} resdto.SendResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sends/{id} [get]
func (h *SendHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.ledger.GetSend(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrSendNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Send record not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load send record", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSendView(view))
}

// @Summary Mark send record used
// @Description Transition a send record from sent to used, exactly once
// @Tags sends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Send record ID"
// @Success 200 {object} resdto.SendResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sends/{id}/use [post]
func (h *SendHandler) MarkUsed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.MarkUsed(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSendNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Send record not found", nil)
		case errors.Is(err, commands.ErrSendAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Send record already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark used failed", nil)
		}
		return
	}

	view, err := h.ledger.GetSend(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load send record", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSendView(view))
}
