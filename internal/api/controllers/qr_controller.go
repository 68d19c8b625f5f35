package controllers

import (
	"github.com/gin-gonic/gin"

	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

// QrController is read-only: QR rows are created by webhook reconciliation
// when a memorial page is paid, never through the API.
type QrController struct {
	qrService services.QrService
}

func NewQrController(qrService services.QrService) *QrController {
	return &QrController{qrService: qrService}
}

func (q *QrController) GetBySlug(c *gin.Context) {
	code, err := q.qrService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, code, "")
}

func (q *QrController) ListAll(c *gin.Context) {
	codes, err := q.qrService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, codes, "")
}
