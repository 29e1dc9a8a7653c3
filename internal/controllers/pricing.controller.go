package controllers

import (
	"net/http"

	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"

	"github.com/gin-gonic/gin"
)

// PricingController serves the plan catalog. The list is small, always
// sorted by ascending price and cached by the repository.
type PricingController struct {
	*Resource[models.PricingPlan]
	repo *repository.PricingRepository
}

func NewPricingController(repo *repository.PricingRepository) *PricingController {
	return &PricingController{
		Resource: NewResource(ResourceConfig[models.PricingPlan]{
			Repo:     repo,
			Spec:     query.Spec{DefaultSort: "", DefaultLimit: 0},
			Name:     "Pricing plan",
			Validate: validateEntity[models.PricingPlan],
			Patch:    bindPatch((*models.PricingPlanPatch).Apply),
		}),
		repo: repo,
	}
}

// List overrides the generic handler: plans are not filterable, just
// cheapest first.
func (pc *PricingController) List(c *gin.Context) {
	plans, err := pc.repo.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching pricing plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(plans),
		"total":   int64(len(plans)),
		"page":    1,
		"pages":   1,
		"data":    plans,
	})
}
