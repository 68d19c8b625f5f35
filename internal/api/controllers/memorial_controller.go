package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type MemorialController struct {
	memorialService services.MemorialService
}

func NewMemorialController(memorialService services.MemorialService) *MemorialController {
	return &MemorialController{memorialService: memorialService}
}

// readUpload pulls one multipart file into memory.
func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}

// CreateProfile godoc
// @Summary Create a memorial profile
// @Tags Memorials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Router /memories [post]
func (m *MemorialController) CreateProfile(c *gin.Context) {
	var req request_models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := m.memorialService.CreateProfile(c.Request.Context(), callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile created")
}

// GetProfile godoc
// @Summary Public memorial page by slug
// @Tags Memorials
// @Param slug path string true "Profile slug"
// @Router /memories/{slug} [get]
func (m *MemorialController) GetProfile(c *gin.Context) {
	profile, err := m.memorialService.GetProfile(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

// MyProfiles godoc
// @Summary List the caller's memorial profiles
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/mine [get]
func (m *MemorialController) MyProfiles(c *gin.Context) {
	profiles, err := m.memorialService.GetOwnProfiles(c.Request.Context(), callerEmail(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profiles, "")
}

// UpdateProfile godoc
// @Summary Update a memorial profile (owner only)
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/{slug} [patch]
func (m *MemorialController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := m.memorialService.UpdateProfile(c.Request.Context(), c.Param("slug"), callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated")
}

// UpsertBiography godoc
// @Summary Create or replace the biography (owner only)
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/{slug}/biography [put]
func (m *MemorialController) UpsertBiography(c *gin.Context) {
	var req request_models.BiographyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memorialService.UpsertBiography(c.Request.Context(), c.Param("slug"), callerEmail(c), req.Content); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Biography saved")
}

// AddGalleryImage godoc
// @Summary Upload a gallery image (owner only)
// @Tags Memorials
// @Accept multipart/form-data
// @Security BearerAuth
// @Router /memories/{slug}/gallery [post]
func (m *MemorialController) AddGalleryImage(c *gin.Context) {
	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing image file")
		return
	}

	entry, err := m.memorialService.AddGalleryImage(
		c.Request.Context(), c.Param("slug"), callerEmail(c), data, contentType, c.PostForm("caption"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Image added")
}

func (m *MemorialController) DeleteGalleryImage(c *gin.Context) {
	if err := m.memorialService.DeleteGalleryImage(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Image removed")
}

// AddFamilyMember godoc
// @Summary Add a family entry (owner only)
// @Description Relation must be one of the known kinds; unknown values are rejected
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/{slug}/family [post]
func (m *MemorialController) AddFamilyMember(c *gin.Context) {
	var req request_models.FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memorialService.AddFamilyMember(c.Request.Context(), c.Param("slug"), callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Family member added")
}

func (m *MemorialController) DeleteFamilyMember(c *gin.Context) {
	if err := m.memorialService.DeleteFamilyMember(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Family member removed")
}

// AddEvent godoc
// @Summary Add a timeline event (owner only)
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/{slug}/events [post]
func (m *MemorialController) AddEvent(c *gin.Context) {
	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := m.memorialService.AddEvent(c.Request.Context(), c.Param("slug"), callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event added")
}

func (m *MemorialController) DeleteEvent(c *gin.Context) {
	if err := m.memorialService.DeleteEvent(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Event removed")
}

// AddSocialLink godoc
// @Summary Add a social link (owner only)
// @Tags Memorials
// @Security BearerAuth
// @Router /memories/{slug}/social-links [post]
func (m *MemorialController) AddSocialLink(c *gin.Context) {
	var req request_models.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	link, err := m.memorialService.AddSocialLink(c.Request.Context(), c.Param("slug"), callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Link added")
}

func (m *MemorialController) DeleteSocialLink(c *gin.Context) {
	if err := m.memorialService.DeleteSocialLink(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Link removed")
}

// SetProfileImage godoc
// @Summary Upload the portrait or background image (owner only)
// @Description Form field "kind" = "background" targets the page background
// @Tags Memorials
// @Accept multipart/form-data
// @Security BearerAuth
// @Router /memories/{slug}/image [post]
func (m *MemorialController) SetProfileImage(c *gin.Context) {
	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing image file")
		return
	}

	background := c.PostForm("kind") == "background"
	url, err := m.memorialService.SetProfileImage(c.Request.Context(), c.Param("slug"), callerEmail(c), data, contentType, background)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Image updated")
}
