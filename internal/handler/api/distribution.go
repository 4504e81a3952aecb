package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "coupon-ledger/internal/handler/dto/request"
	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DistributionHandler struct {
	cmds    commands.DistributionCommands
	ledger  queries.LedgerQueries
	targets queries.TargetQueries
}

func NewDistributionHandler(
	cmds commands.DistributionCommands,
	ledger queries.LedgerQueries,
	targets queries.TargetQueries,
) *DistributionHandler {
	return &DistributionHandler{cmds: cmds, ledger: ledger, targets: targets}
}

// @Summary Distribute coupon
// @Description Issue a coupon to a set of users, at most once per user. Safe to retry.
// @Tags distributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.DistributeRequest true "Target user IDs"
// @Success 200 {object} resdto.DistributionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/{id}/distributions [post]
func (h *DistributionHandler) Distribute(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
		return
	}

	var req reqdto.DistributeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Distribute(c.Request.Context(), couponID, req.UserIDs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrCouponNotDistributable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon is not active", nil)
		case errors.Is(err, commands.ErrEmptyTarget):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Target user set is empty", nil)
		case errors.Is(err, commands.ErrUnknownTargetUser):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown target user", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Distribution failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDistributionResult(result))
}

// @Summary Coupon usage summary
// @Description Usage counts and recipient set derived from the send ledger
// @Tags distributions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.UsageSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coupons/{id}/usage-summary [get]
func (h *DistributionHandler) UsageSummary(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
		return
	}

	summary, err := h.ledger.UsageSummary(c.Request.Context(), couponID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to aggregate usage", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsageSummary(summary))
}

// @Summary List coupon sends
// @Description List send records of a coupon, newest first, with keyset pagination
// @Tags distributions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.SendResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coupons/{id}/sends [get]
func (h *DistributionHandler) ListSends(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.ledger.ListSends(c.Request.Context(), couponID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list sends", nil)
		return
	}

	resp := gin.H{"sends": resdto.FromSendList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List target candidates
// @Description List selectable recipients for a coupon; already-covered users are flagged
// @Tags distributions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param search query string false "Substring match on user name or email"
// @Param new_members_only query bool false "Restrict to users registered within 30 days"
// @Success 200 {array} resdto.TargetCandidateResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coupons/{id}/targets [get]
func (h *DistributionHandler) ListTargets(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
		return
	}

	newMembersOnly := false
	if v := c.Query("new_members_only"); v != "" {
		newMembersOnly, _ = strconv.ParseBool(v)
	}

	candidates, err := h.targets.ListCandidates(c.Request.Context(), couponID, c.Query("search"), newMembersOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list targets", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"targets": resdto.FromTargetCandidates(candidates)})
}
