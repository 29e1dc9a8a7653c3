package controllers

import (
	"net/http"

	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	*Resource[models.Profile]
	repo repository.ResourceRepository[models.Profile]
}

func NewProfileController(repo repository.ResourceRepository[models.Profile]) *ProfileController {
	return &ProfileController{
		Resource: NewResource(ResourceConfig[models.Profile]{
			Repo:     repo,
			Spec:     query.ProfileSpec,
			Name:     "Profile",
			Validate: validateEntity[models.Profile],
			Patch:    bindPatch((*models.ProfilePatch).Apply),
		}),
		repo: repo,
	}
}

// Stats godoc
// @Summary Get profile statistics
// @Description Aggregate counts over the profile catalog
// @Tags profiles
// @Produce json
// @Success 200 {object} map[string]interface{} "Statistics retrieved successfully"
// @Router /profiles/stats [get]
func (pc *ProfileController) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	// Each figure is its own count query on purpose; the admin dashboard
	// expects them to be independently computed.
	counts := []struct {
		name  string
		conds map[string]interface{}
	}{
		{"total", nil},
		{"verified", map[string]interface{}{"verified": true}},
		{"premium", map[string]interface{}{"premium": true}},
		{"males", map[string]interface{}{"gender": "male"}},
		{"females", map[string]interface{}{"gender": "female"}},
	}

	data := gin.H{}
	for _, count := range counts {
		n, err := pc.repo.Count(ctx, count.conds)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error fetching stats",
				"error":   err.Error(),
			})
			return
		}
		data[count.name] = n
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
