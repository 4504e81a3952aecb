//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"coupon-ledger/internal/domain/operator"
	"coupon-ledger/internal/handler/api"
	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"
	"coupon-ledger/tests/common/httptest"
	commandsmock "coupon-ledger/tests/mock/commands"
	queriesmock "coupon-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DistributionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDistributionCommands
	mockLedger   *queriesmock.MockLedgerQueries
	mockTargets  *queriesmock.MockTargetQueries
	handler      *api.DistributionHandler
}

func (s *DistributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDistributionCommands(s.mockCtrl)
	s.mockLedger = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.mockTargets = queriesmock.NewMockTargetQueries(s.mockCtrl)
	s.handler = api.NewDistributionHandler(s.mockCommands, s.mockLedger, s.mockTargets)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("operator_id", uuid.New())
		c.Set("operator_role", operator.RoleStaff)
		c.Next()
	}

	s.router.POST("/coupons/:id/distributions", authMiddleware, s.handler.Distribute)
	s.router.GET("/coupons/:id/usage-summary", authMiddleware, s.handler.UsageSummary)
	s.router.GET("/coupons/:id/sends", authMiddleware, s.handler.ListSends)
	s.router.GET("/coupons/:id/targets", authMiddleware, s.handler.ListTargets)
}

func (s *DistributionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDistributionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DistributionHandlerTestSuite))
}

// ================================================================================
// TestDistribute
// ================================================================================

func (s *DistributionHandlerTestSuite) TestDistribute() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/distributions"

	userA := uuid.New()
	userB := uuid.New()
	reqBody := map[string]any{"user_ids": []string{userA.String(), userB.String()}}

	s.Run("success: returns the per-id breakdown", func() {
		s.mockCommands.EXPECT().
			Distribute(gomock.Any(), couponID, []uuid.UUID{userA, userB}).
			Return(&commands.DistributionResult{
				NewlySent:            []uuid.UUID{userA},
				AlreadySent:          []uuid.UUID{userB},
				RejectedLimitReached: []uuid.UUID{},
				TotalSentCount:       2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.DistributionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{userA.String()}, response.NewlySent)
		s.Equal([]string{userB.String()}, response.AlreadySent)
		s.Empty(response.RejectedLimitReached)
		s.Equal(int64(2), response.TotalSentCount)
	})

	s.Run("error: 400 Bad Request for missing user_ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for empty user_ids", func() {
		body := map[string]any{"user_ids": []string{}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "coupon not found",
				commandsError:  commands.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "coupon not distributable",
				commandsError:  commands.ErrCouponNotDistributable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Coupon is not active",
			},
			{
				name:           "unknown target user",
				commandsError:  commands.ErrUnknownTargetUser,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Unknown target user",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Distribution failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Distribute(gomock.Any(), couponID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUsageSummary
// ================================================================================

func (s *DistributionHandlerTestSuite) TestUsageSummary() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/usage-summary"

	s.Run("success: returns counts derived from the ledger", func() {
		recipients := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockLedger.EXPECT().UsageSummary(gomock.Any(), couponID).
			Return(&queries.UsageSummaryView{
				CouponID:     couponID,
				SentCount:    2,
				UsedCount:    1,
				RecipientIDs: recipients,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UsageSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(couponID.String(), response.CouponID)
		s.Equal(int64(2), response.SentCount)
		s.Equal(int64(1), response.UsedCount)
		s.Len(response.RecipientIDs, 2)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/not-a-uuid/usage-summary", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon id")
	})
}

// ================================================================================
// TestListSends
// ================================================================================

func (s *DistributionHandlerTestSuite) TestListSends() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/sends"

	s.Run("success: returns sends and next cursor", func() {
		views := []*queries.SendView{
			{ID: uuid.New(), CouponID: couponID, UserID: uuid.New(), SentAt: time.Now().UTC(), Status: "sent"},
		}
		s.mockLedger.EXPECT().
			ListSends(gomock.Any(), couponID, gomock.Nil(), 20).
			Return(views, &queries.Cursor{After: "opaque-cursor"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Sends      []resdto.SendResponse `json:"sends"`
			NextCursor string                `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Sends, 1)
		s.Equal("opaque-cursor", body.NextCursor)
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockLedger.EXPECT().
			ListSends(gomock.Any(), couponID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestListTargets
// ================================================================================

func (s *DistributionHandlerTestSuite) TestListTargets() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/targets"

	s.Run("success: forwards search text and new-member flag", func() {
		candidates := []*queries.TargetCandidateView{
			{ID: uuid.New(), Name: "Hanako Suzuki", Email: "hanako@example.com", AlreadyCovered: true},
		}
		s.mockTargets.EXPECT().
			ListCandidates(gomock.Any(), couponID, "hanako", true).
			Return(candidates, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?search=hanako&new_members_only=true", nil, "bearer-token")

		var body struct {
			Targets []resdto.TargetCandidateResponse `json:"targets"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Targets, 1)
		s.True(body.Targets[0].AlreadyCovered)
	})

	s.Run("success: defaults to no filters", func() {
		s.mockTargets.EXPECT().
			ListCandidates(gomock.Any(), couponID, "", false).
			Return([]*queries.TargetCandidateView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
