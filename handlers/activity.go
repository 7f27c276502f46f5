package handlers

import (
	"log"
	"net/http"

	"plumtrips-backend/database"
	"plumtrips-backend/models"
	"plumtrips-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/activity — onboarding activity feed
func GetActivity(c *gin.Context) {
	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	query := database.DB.Model(&models.Activity{}).
		Preload("User").
		Order("created_at DESC")
	if inviteID := c.Query("invite_id"); inviteID != "" {
		query = query.Where("invite_id = ?", inviteID)
	}

	var activities []models.Activity
	query.Offset(pagination.Offset()).Limit(pagination.Limit).Find(&activities)

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}

// Helper: record one audit entry. actorID is nil for invitee actions. The
// feed is not load-bearing, so failures are logged, not surfaced.
func logActivity(inviteID uuid.UUID, actorID *uuid.UUID, activityType, description string) {
	err := database.DB.Create(&models.Activity{
		InviteID:    inviteID,
		UserID:      actorID,
		Type:        activityType,
		Description: description,
	}).Error
	if err != nil {
		log.Printf("⚠️  Failed to record %s activity: %v", activityType, err)
	}
}
