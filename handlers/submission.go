package handlers

import (
	"encoding/json"
	"net/http"

	"plumtrips-backend/database"
	"plumtrips-backend/models"
	"plumtrips-backend/services"
	"plumtrips-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/submissions
func ListSubmissions(c *gin.Context) {
	var pagination utils.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	query := database.DB.Model(&models.Submission{}).Order("submitted_at DESC")
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var submissions []models.Submission
	query.Offset(pagination.Offset()).Limit(pagination.Limit).Find(&submissions)

	items := make([]models.SubmissionListItem, 0, len(submissions))
	for _, s := range submissions {
		items = append(items, s.ToListItem())
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GET /api/submissions/:id
//
// Full submission payloads are heavy, so reads go through the owner-scoped
// profile cache: an entry is reused only by the admin session that filled it.
func GetSubmission(c *gin.Context) {
	owner := utils.GetCurrentUserEmail(c)
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid submission ID")
		return
	}

	cache := services.DefaultProfileCache()
	cacheKey := "submission:" + submissionID.String()

	if cached, ok := cache.Get(c.Request.Context(), owner, cacheKey); ok {
		c.JSON(http.StatusOK, utils.APIResponse{Success: true, Data: json.RawMessage(cached)})
		return
	}

	var submission models.Submission
	if err := database.DB.First(&submission, submissionID).Error; err != nil {
		utils.NotFound(c, "Submission not found")
		return
	}

	cache.Put(c.Request.Context(), owner, cacheKey, submission)
	utils.SuccessResponse(c, http.StatusOK, "", submission)
}
