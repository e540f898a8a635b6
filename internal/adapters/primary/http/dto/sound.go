package dto

import (
	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
)

type SoundResponse struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}

func ToSoundResponse(s *domain.Sound) SoundResponse {
	return SoundResponse{
		ID:          s.ID,
		Label:       s.Label,
		ContentType: s.ContentType,
		Size:        s.Size,
	}
}
