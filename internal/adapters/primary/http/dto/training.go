package dto

import (
	"time"

	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
)

type AddTrainingItemRequest struct {
	Label   string    `json:"label" binding:"required"`
	Data    string    `json:"data"`
	Numbers []float64 `json:"numbers"`
}

type TrainingItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Data      string    `json:"data,omitempty"`
	Numbers   []float64 `json:"numbers,omitempty"`
	CreatedAt string    `json:"created_at"`
}

type ListTrainingItemsResponse struct {
	Items      []TrainingItemResponse `json:"items"`
	Total      int                    `json:"total"`
	PageSize   int                    `json:"page_size"`
	NextOffset int                    `json:"next_offset"`
}

func ToTrainingItemResponse(item *domain.TrainingItem) TrainingItemResponse {
	return TrainingItemResponse{
		ID:        item.ID,
		Label:     item.Label,
		Data:      item.Data,
		Numbers:   item.Numbers,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

type NgramsRequest struct {
	ProjectID string `json:"projectid" binding:"required"`
}
