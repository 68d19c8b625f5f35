package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type ContactController struct {
	contactService services.ContactService
}

func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit godoc
// @Summary Submit a contact-form message (public)
// @Tags Contact
// @Param request body request_models.ContactFormRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Router /contact-form [post]
func (ct *ContactController) Submit(c *gin.Context) {
	var req request_models.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.contactService.Submit(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message received")
}

// ListMessages godoc
// @Summary Contact-form inbox (admin)
// @Tags Contact
// @Security BearerAuth
// @Router /contact-form [get]
func (ct *ContactController) ListMessages(c *gin.Context) {
	msgs, err := ct.contactService.ListMessages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, msgs, "")
}
