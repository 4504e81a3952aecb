package request

import "github.com/google/uuid"

type DistributeRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1"`
}
