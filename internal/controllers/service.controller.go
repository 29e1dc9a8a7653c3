package controllers

import (
	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"
)

type ServiceController struct {
	*Resource[models.WeddingService]
}

func NewServiceController(repo repository.ResourceRepository[models.WeddingService]) *ServiceController {
	return &ServiceController{
		Resource: NewResource(ResourceConfig[models.WeddingService]{
			Repo:     repo,
			Spec:     query.ServiceSpec,
			Name:     "Service",
			Validate: validateEntity[models.WeddingService],
			Patch:    bindPatch((*models.WeddingServicePatch).Apply),
		}),
	}
}
