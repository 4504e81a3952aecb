package api

import (
	"errors"
	"log/slog"
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

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Create coupon
// @Description Create a new coupon campaign
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCouponCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
		case errors.Is(err, commands.ErrCouponValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create coupon failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Get coupon
// @Description Get a coupon campaign by ID
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description List coupon campaigns with optional filters and keyset pagination
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param status query string false "Effective status filter (active/inactive/expired)"
// @Param search query string false "Substring match on code or name"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CouponListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var filters queries.CouponFilters
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("search"); v != "" {
		filters.SearchText = &v
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

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		slog.Error("list coupons failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := gin.H{"coupons": resdto.FromCouponList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update coupon
// @Description Partially update a coupon campaign
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Update coupon request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/{id} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrDuplicateCouponCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
		case errors.Is(err, commands.ErrCouponValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update coupon failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Description Delete a coupon campaign that has no send records
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrCouponInUse):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon has send records", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete coupon failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
