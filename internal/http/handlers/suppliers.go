package handlers

import (
	"encoding/json"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

// actionGetSuppliers serves both the list view (search) and the
// form-sync prefix lookup (code, 2-5 characters).
func actionGetSuppliers(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Search string `json:"search"`
		Code   string `json:"code"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	repo := repositories.SupplierRepository{}
	if code := strings.TrimSpace(req.Code); code != "" {
		list, err := repo.SearchByCode(code)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondList(c, list, len(list), len(list))
		return
	}

	list, err := repo.List(req.Search)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, list, len(list), len(list))
}

func actionCreateSupplier(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Supplier models.Supplier `json:"supplier"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	repo := repositories.SupplierRepository{}
	id, err := repo.Create(req.Supplier)
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

func actionUpdateSupplier(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Supplier models.Supplier `json:"supplier"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	repo := repositories.SupplierRepository{}
	if err := repo.Update(req.Supplier); err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := repo.GetByID(req.Supplier.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, updated)
}
