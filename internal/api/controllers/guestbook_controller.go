package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type GuestBookController struct {
	guestBookService services.GuestBookService
}

func NewGuestBookController(guestBookService services.GuestBookService) *GuestBookController {
	return &GuestBookController{guestBookService: guestBookService}
}

// LeaveMessage godoc
// @Summary Sign a memorial guestbook (public)
// @Description New entries stay hidden until the profile owner approves them
// @Tags GuestBook
// @Param slug path string true "Profile slug"
// @Router /memories/{slug}/guestbook [post]
func (g *GuestBookController) LeaveMessage(c *gin.Context) {
	var req request_models.GuestBookItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := g.guestBookService.LeaveMessage(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Message submitted for approval")
}

// ListApproved godoc
// @Summary Approved guestbook entries (public)
// @Tags GuestBook
// @Router /memories/{slug}/guestbook [get]
func (g *GuestBookController) ListApproved(c *gin.Context) {
	items, err := g.guestBookService.ListApproved(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

// ListAll godoc
// @Summary All guestbook entries including pending ones (owner only)
// @Tags GuestBook
// @Security BearerAuth
// @Router /memories/{slug}/guestbook/all [get]
func (g *GuestBookController) ListAll(c *gin.Context) {
	items, err := g.guestBookService.ListAll(c.Request.Context(), c.Param("slug"), callerEmail(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

func (g *GuestBookController) Approve(c *gin.Context) {
	if err := g.guestBookService.Approve(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Entry approved")
}

func (g *GuestBookController) Delete(c *gin.Context) {
	if err := g.guestBookService.Delete(c.Request.Context(), c.Param("slug"), callerEmail(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Entry removed")
}
