package handlers

import (
	"net/http"
	"strings"
	"time"

	"plumtrips-backend/config"
	"plumtrips-backend/database"
	"plumtrips-backend/models"
	"plumtrips-backend/onboarding"
	"plumtrips-backend/services"
	"plumtrips-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteResponse struct {
	models.Invite
	OnboardingLink string `json:"onboarding_link"`
}

func toInviteResponse(invite models.Invite) InviteResponse {
	return InviteResponse{
		Invite:         invite,
		OnboardingLink: config.AppConfig.OnboardingURL + "/" + invite.Token,
	}
}

// POST /api/invites
func CreateInvite(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	kind := onboarding.Kind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !onboarding.ValidKind(kind) {
		utils.BadRequest(c, "Kind must be employee, vendor or business")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// One open invite per invitee and kind
	var existing models.Invite
	err := database.DB.Where("invitee_email = ? AND kind = ? AND status = ?", email, kind, models.InviteStatusPending).
		First(&existing).Error
	if err == nil && existing.CanBeOpened() {
		utils.BadRequest(c, "An open invite already exists for this email")
		return
	}

	tat := req.TurnaroundHours
	if tat <= 0 {
		tat = models.DefaultTurnaroundHours
	}

	invite := models.Invite{
		Kind:            kind,
		InviteeEmail:    email,
		InviteeName:     strings.TrimSpace(req.Name),
		TurnaroundHours: tat,
		ExpiresAt:       time.Now().Add(time.Duration(tat) * time.Hour),
		CreatedBy:       userID,
	}

	if err := database.DB.Create(&invite).Error; err != nil {
		utils.InternalError(c, "Failed to create invite")
		return
	}

	logActivity(invite.ID, &userID, models.ActivityInviteCreated,
		string(kind)+" invite sent to "+invite.InviteeEmail)
	go services.GetNotificationService().NotifyInvite(invite)

	utils.SuccessResponse(c, http.StatusCreated, "Invite created", toInviteResponse(invite))
}

// GET /api/invites
func ListInvites(c *gin.Context) {
	var pagination utils.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	query := database.DB.Model(&models.Invite{}).Order("created_at DESC")
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invites []models.Invite
	query.Offset(pagination.Offset()).Limit(pagination.Limit).Find(&invites)

	responses := make([]InviteResponse, 0, len(invites))
	for _, inv := range invites {
		responses = append(responses, toInviteResponse(inv))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/invites/:id
func GetInvite(c *gin.Context) {
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invite ID")
		return
	}

	var invite models.Invite
	if err := database.DB.First(&invite, inviteID).Error; err != nil {
		utils.NotFound(c, "Invite not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toInviteResponse(invite))
}

// POST /api/invites/:id/revoke
func RevokeInvite(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invite ID")
		return
	}

	var invite models.Invite
	if err := database.DB.First(&invite, inviteID).Error; err != nil {
		utils.NotFound(c, "Invite not found")
		return
	}

	if invite.Status == models.InviteStatusSubmitted {
		utils.BadRequest(c, "Cannot revoke a submitted invite")
		return
	}

	database.DB.Model(&invite).Update("status", models.InviteStatusRevoked)
	services.Drafts.Delete(c.Request.Context(), invite.Token)

	logActivity(invite.ID, &userID, models.ActivityInviteRevoked,
		"Invite for "+invite.InviteeEmail+" revoked")

	utils.SuccessResponse(c, http.StatusOK, "Invite revoked", nil)
}
