package response

import (
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// DistributionResponse reports every requested user in exactly one bucket, so
// retries that land in already_sent still read as a complete outcome.
type DistributionResponse struct {
	NewlySent            []string `json:"newly_sent"`
	AlreadySent          []string `json:"already_sent"`
	RejectedLimitReached []string `json:"rejected_limit_reached"`
	TotalSentCount       int64    `json:"total_sent_count"`
}

func FromDistributionResult(r *commands.DistributionResult) *DistributionResponse {
	return &DistributionResponse{
		NewlySent:            uuidStrings(r.NewlySent),
		AlreadySent:          uuidStrings(r.AlreadySent),
		RejectedLimitReached: uuidStrings(r.RejectedLimitReached),
		TotalSentCount:       r.TotalSentCount,
	}
}

type TargetCandidateResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CreatedAt      int64  `json:"created_at"`
	AlreadyCovered bool   `json:"already_covered"`
}

func FromTargetCandidates(items []*queries.TargetCandidateView) []*TargetCandidateResponse {
	res := make([]*TargetCandidateResponse, len(items))
	for i, it := range items {
		res[i] = &TargetCandidateResponse{
			ID:             it.ID.String(),
			Name:           it.Name,
			Email:          it.Email,
			CreatedAt:      it.CreatedAt.Unix(),
			AlreadyCovered: it.AlreadyCovered,
		}
	}
	return res
}
