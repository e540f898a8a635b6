package handlers

import (
	"ml-classroom-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func getOwner(c *gin.Context) domain.Owner {
	return domain.Owner{
		ClassID: c.Param("tenant"),
		UserID:  c.Param("userid"),
	}
}

func parseProjectID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidProjectID
	}
	return id, nil
}
