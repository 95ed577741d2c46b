package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lasudevlab/learnhub-backend/internal/requestdata"
	"github.com/lasudevlab/learnhub-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
	avatarService  services.AvatarService
}

func NewProfileHandler(profileService services.ProfileService, avatarService services.AvatarService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, avatarService: avatarService}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	profile, err := ph.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_fetch_failed", err)
		return
	}
	if profile == nil {
		RespondError(c, http.StatusNotFound, "profile_not_found", fmt.Errorf("profile not found"))
		return
	}
	RespondOK(c, profile)
}

func (ph *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	var req struct {
		FullName *string `json:"full_name"`
		Course   *string `json:"course"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Course != nil {
		updates["course"] = *req.Course
	}
	if err := ph.profileService.UpdateProfile(c.Request.Context(), userID, updates); err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_update_failed", err)
		return
	}
	profile, err := ph.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_fetch_failed", err)
		return
	}
	RespondOK(c, profile)
}

// UploadAvatar accepts a multipart "avatar" file, replaces the stored image
// and persists the new key and URL.
func (ph *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing identity"))
		return
	}
	profile, err := ph.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil || profile == nil {
		RespondError(c, http.StatusNotFound, "profile_not_found", fmt.Errorf("profile not found"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("avatar file required"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	if err := ph.avatarService.CreateAndUploadAvatarFromImage(c.Request.Context(), profile, raw); err != nil {
		RespondError(c, http.StatusInternalServerError, "avatar_upload_failed", err)
		return
	}
	if err := ph.profileService.UpdateProfile(c.Request.Context(), userID, map[string]interface{}{
		"avatar_key": profile.AvatarKey,
		"avatar_url": profile.AvatarURL,
	}); err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_update_failed", err)
		return
	}
	RespondOK(c, gin.H{"avatar_url": profile.AvatarURL})
}
