package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

// CatalogController serves the reference data endpoints: churches, plans,
// flowers, products and service offerings. Reads are public, writes are
// admin-gated at the router.
type CatalogController struct {
	catalogService services.CatalogService
}

func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// CreateChurch godoc
// @Summary Create a church (admin)
// @Tags Catalog
// @Security BearerAuth
// @Router /church [post]
func (ctl *CatalogController) CreateChurch(c *gin.Context) {
	var req request_models.ChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	church, err := ctl.catalogService.CreateChurch(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, church, "Church created")
}

func (ctl *CatalogController) GetChurch(c *gin.Context) {
	church, err := ctl.catalogService.GetChurch(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, church, "")
}

func (ctl *CatalogController) ListChurches(c *gin.Context) {
	churches, err := ctl.catalogService.ListChurches(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, churches, "")
}

// CreatePlan godoc
// @Summary Create a subscription plan (admin)
// @Tags Catalog
// @Security BearerAuth
// @Router /subscription [post]
func (ctl *CatalogController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	plan, err := ctl.catalogService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan created")
}

func (ctl *CatalogController) GetPlan(c *gin.Context) {
	plan, err := ctl.catalogService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "")
}

func (ctl *CatalogController) ListPlans(c *gin.Context) {
	plans, err := ctl.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

// CreateFlower godoc
// @Summary Create a flower option (admin)
// @Tags Catalog
// @Security BearerAuth
// @Router /flowers [post]
func (ctl *CatalogController) CreateFlower(c *gin.Context) {
	var req request_models.FlowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	flower, err := ctl.catalogService.CreateFlower(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flower, "Flower created")
}

func (ctl *CatalogController) UpdateFlower(c *gin.Context) {
	var req request_models.FlowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	flower, err := ctl.catalogService.UpdateFlower(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flower, "Flower updated")
}

func (ctl *CatalogController) DeleteFlower(c *gin.Context) {
	if err := ctl.catalogService.DeleteFlower(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Flower removed")
}

func (ctl *CatalogController) ListFlowers(c *gin.Context) {
	flowers, err := ctl.catalogService.ListFlowers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flowers, "")
}

// SetFlowerImage godoc
// @Summary Upload a flower image (admin)
// @Tags Catalog
// @Accept multipart/form-data
// @Security BearerAuth
// @Router /flowers/{id}/image [post]
func (ctl *CatalogController) SetFlowerImage(c *gin.Context) {
	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing image file")
		return
	}
	url, err := ctl.catalogService.SetFlowerImage(c.Request.Context(), c.Param("id"), data, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"url": url}, "Image updated")
}

// CreateProduct godoc
// @Summary Create a storefront product (admin)
// @Tags Catalog
// @Security BearerAuth
// @Router /products [post]
func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	product, err := ctl.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product created")
}

func (ctl *CatalogController) UpdateProduct(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	product, err := ctl.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product updated")
}

func (ctl *CatalogController) DeleteProduct(c *gin.Context) {
	if err := ctl.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Product removed")
}

func (ctl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctl.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "")
}

func (ctl *CatalogController) ListProducts(c *gin.Context) {
	products, err := ctl.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "")
}

func (ctl *CatalogController) SetProductImage(c *gin.Context) {
	data, contentType, err := readUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing image file")
		return
	}
	url, err := ctl.catalogService.SetProductImage(c.Request.Context(), c.Param("id"), data, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"url": url}, "Image updated")
}

// CreateOffering godoc
// @Summary Create a service offering (admin)
// @Tags Catalog
// @Security BearerAuth
// @Router /services [post]
func (ctl *CatalogController) CreateOffering(c *gin.Context) {
	var req request_models.OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	offering, err := ctl.catalogService.CreateOffering(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, offering, "Service created")
}

func (ctl *CatalogController) UpdateOffering(c *gin.Context) {
	var req request_models.OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	offering, err := ctl.catalogService.UpdateOffering(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, offering, "Service updated")
}

func (ctl *CatalogController) DeleteOffering(c *gin.Context) {
	if err := ctl.catalogService.DeleteOffering(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Service removed")
}

func (ctl *CatalogController) ListOfferings(c *gin.Context) {
	offerings, err := ctl.catalogService.ListOfferings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, offerings, "")
}
