package handlers

import (
	"encoding/json"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

func actionGetCities(c *gin.Context, raw json.RawMessage) {
	list, err := repositories.CityRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, list, len(list), len(list))
}

func actionCreateCity(c *gin.Context, raw json.RawMessage) {
	var req struct {
		City models.City `json:"city"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	id, err := repositories.CityRepository{}.Create(req.City)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	req.City.ID = id
	RespondData(c, req.City)
}

func actionUpdateCity(c *gin.Context, raw json.RawMessage) {
	var req struct {
		City models.City `json:"city"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := (repositories.CityRepository{}).Update(req.City); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, req.City)
}

func actionDeleteCity(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := (repositories.CityRepository{}).Delete(req.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "city deleted")
}
