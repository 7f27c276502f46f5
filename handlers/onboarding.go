package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"plumtrips-backend/database"
	"plumtrips-backend/models"
	"plumtrips-backend/onboarding"
	"plumtrips-backend/services"
	"plumtrips-backend/storage"
	"plumtrips-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loadOpenInvite resolves the invite for a public wizard call and writes the
// terminal error response itself when the session cannot proceed.
func loadOpenInvite(c *gin.Context) (models.Invite, bool) {
	token := c.Param("token")

	var invite models.Invite
	if err := database.DB.Where("token = ?", token).First(&invite).Error; err != nil {
		utils.NotFound(c, "Unable to open invite")
		return models.Invite{}, false
	}

	switch {
	case invite.Status == models.InviteStatusRevoked:
		utils.Gone(c, "This invite has been revoked")
		return models.Invite{}, false
	case invite.Status == models.InviteStatusSubmitted:
		utils.Gone(c, "This onboarding has already been submitted")
		return models.Invite{}, false
	case invite.IsExpired():
		utils.Gone(c, "This invite has expired")
		return models.Invite{}, false
	}
	return invite, true
}

// GET /onboarding/invite/:token
func OpenInvite(c *gin.Context) {
	invite, ok := loadOpenInvite(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", invite.ToOpenResponse())
}

type draftPayload struct {
	Core        map[string]any          `json:"core"`
	Attachments []onboarding.Attachment `json:"attachments"`
}

// GET /onboarding/draft/:token
func GetDraft(c *gin.Context) {
	invite, ok := loadOpenInvite(c)
	if !ok {
		return
	}

	draft, found := services.Drafts.Load(c.Request.Context(), invite.Token)
	if !found {
		draft = services.Draft{Core: map[string]any{}}
	}
	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// POST /onboarding/draft/:token
//
// Best-effort checkpoint of the in-progress form. The response is 202 even
// when the save is dropped; drafts are a convenience, not a guarantee.
func SaveDraft(c *gin.Context) {
	invite, ok := loadOpenInvite(c)
	if !ok {
		return
	}

	var payload draftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	services.Drafts.Save(c.Request.Context(), invite.Token, services.Draft{
		Core:        payload.Core,
		Attachments: payload.Attachments,
	})
	utils.SuccessResponse(c, http.StatusAccepted, "Draft saved", nil)
}

type validateRequest struct {
	Kind        string                  `json:"kind" binding:"required"`
	Step        string                  `json:"step" binding:"required"`
	Core        map[string]any          `json:"core"`
	Attachments []onboarding.Attachment `json:"attachments"`
}

type validateResponse struct {
	Missing  []string            `json:"missing"`
	DocStats onboarding.DocStats `json:"doc_stats"`
}

// POST /onboarding/validate/:token
//
// Pure step validation for the wizard's navigation guard and live coverage
// counters. Submit re-validates authoritatively against the invite's kind.
func ValidateStep(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	kind := onboarding.Kind(req.Kind)
	if !onboarding.ValidKind(kind) {
		utils.BadRequest(c, "Kind must be employee, vendor or business")
		return
	}
	if onboarding.Schema(kind).StepIndex(req.Step) == -1 {
		utils.BadRequest(c, "Unknown step for kind")
		return
	}

	if req.Core == nil {
		req.Core = map[string]any{}
	}
	missing := onboarding.MissingForStep(kind, req.Step, req.Core, req.Attachments)
	if missing == nil {
		missing = []string{}
	}

	utils.SuccessResponse(c, http.StatusOK, "", validateResponse{
		Missing:  missing,
		DocStats: onboarding.ComputeDocStats(onboarding.RequiredSlots(kind, req.Core), req.Attachments),
	})
}

type uploadDocRequest struct {
	Token    string `json:"token" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	DocType  string `json:"docType" binding:"required"`
	MimeType string `json:"mimeType"`
}

// POST /onboarding/upload-doc
//
// Presigned-upload flow: the API hands back a short-lived PUT descriptor and
// the browser sends the bytes straight to the bucket.
func UploadDoc(c *gin.Context) {
	var req uploadDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var invite models.Invite
	if err := database.DB.Where("token = ?", req.Token).First(&invite).Error; err != nil {
		utils.NotFound(c, "Unable to open invite")
		return
	}
	if !invite.CanBeOpened() {
		utils.Gone(c, "This invite is no longer open")
		return
	}

	if _, ok := onboarding.Schema(invite.Kind).Slot(req.DocType); !ok {
		utils.BadRequest(c, "Unknown document type")
		return
	}

	objectKey := "onboarding/" + string(invite.Kind) + "/" + invite.Token + "/" +
		uuid.NewString() + "-" + sanitizeFileName(req.FileName)

	descriptor, err := storage.PresignUpload(c.Request.Context(), objectKey, req.MimeType)
	if err != nil {
		utils.BadGateway(c, "Failed to prepare upload: "+err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", descriptor)
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

type submitResponse struct {
	Message  string    `json:"message"`
	TicketID uuid.UUID `json:"ticket_id"`
}

// POST /onboarding/submit/:token
func Submit(c *gin.Context) {
	invite, ok := loadOpenInvite(c)
	if !ok {
		return
	}

	var payload draftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if payload.Core == nil {
		payload.Core = map[string]any{}
	}

	// Authoritative re-validation: the review step covers every prior step.
	missing := onboarding.MissingForStep(invite.Kind, onboarding.StepReview, payload.Core, payload.Attachments)
	if len(missing) > 0 {
		utils.UnprocessableEntity(c, "Some required details are missing", gin.H{"missing": missing})
		return
	}

	submission := models.Submission{
		InviteID:     invite.ID,
		Kind:         invite.Kind,
		InviteeEmail: invite.InviteeEmail,
		Core:         models.JSONMap(payload.Core),
		Attachments:  models.AttachmentList(payload.Attachments),
		Normalized:   models.StringMap(onboarding.Normalize(invite.Kind, payload.Core)),
		SubmittedAt:  time.Now(),
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		utils.InternalError(c, "Failed to record submission")
		return
	}

	database.DB.Model(&invite).Update("status", models.InviteStatusSubmitted)
	services.Drafts.Delete(c.Request.Context(), invite.Token)

	logActivity(invite.ID, nil, models.ActivityOnboardingSubmitted,
		invite.InviteeEmail+" completed "+string(invite.Kind)+" onboarding")

	go services.GetNotificationService().NotifySubmissionReceived(invite, submission.ID.String())

	utils.SuccessResponse(c, http.StatusOK, "Onboarding submitted", submitResponse{
		Message:  "Thank you! Your details have been submitted for review.",
		TicketID: submission.ID,
	})
}
