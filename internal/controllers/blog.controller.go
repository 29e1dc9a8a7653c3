package controllers

import (
	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"
)

// BlogController addresses posts by slug rather than numeric id.
type BlogController struct {
	*Resource[models.BlogPost]
}

func NewBlogController(repo repository.ResourceRepository[models.BlogPost]) *BlogController {
	return &BlogController{
		Resource: NewResource(ResourceConfig[models.BlogPost]{
			Repo:        repo,
			Spec:        query.BlogSpec,
			Name:        "Blog post",
			KeyParam:    "slug",
			KeyColumn:   "slug",
			UniqueField: "slug",
			Validate:    validateEntity[models.BlogPost],
			Patch:       bindPatch((*models.BlogPostPatch).Apply),
		}),
	}
}
