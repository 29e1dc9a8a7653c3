package controllers

import (
	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"
)

type StoryController struct {
	*Resource[models.SuccessStory]
}

func NewStoryController(repo repository.ResourceRepository[models.SuccessStory]) *StoryController {
	return &StoryController{
		Resource: NewResource(ResourceConfig[models.SuccessStory]{
			Repo:     repo,
			Spec:     query.StorySpec,
			Name:     "Success story",
			Validate: validateEntity[models.SuccessStory],
			Patch:    bindPatch((*models.SuccessStoryPatch).Apply),
		}),
	}
}
