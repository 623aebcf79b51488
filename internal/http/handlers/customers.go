package handlers

import (
	"encoding/json"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

func actionGetCustomers(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Search   string `json:"search"`
		Page     int    `json:"page"`
		PageSize int    `json:"pageSize"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	list, total, err := repositories.CustomerRepository{}.List(req.Search, req.Page, req.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, list, len(list), total)
}

func actionCreateCustomer(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Customer models.Customer `json:"customer"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	repo := repositories.CustomerRepository{}
	id, err := repo.Create(req.Customer)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, created)
}

func actionUpdateCustomer(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Customer models.Customer `json:"customer"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	repo := repositories.CustomerRepository{}
	if err := repo.Update(req.Customer); err != nil {
		RespondDomainError(c, err)
		return
	}
	// return the stored row so the caller can refresh just this record
	updated, err := repo.GetByID(req.Customer.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, updated)
}
