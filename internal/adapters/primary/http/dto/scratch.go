package dto

import (
	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
)

type ScratchKeyResponse struct {
	ID    uuid.UUID `json:"id"`
	Model string    `json:"model,omitempty"`
}

func ToScratchKeyResponses(keys []*domain.ScratchKey) []ScratchKeyResponse {
	out := make([]ScratchKeyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, ScratchKeyResponse{ID: k.ID, Model: k.ClassifierID})
	}
	return out
}
