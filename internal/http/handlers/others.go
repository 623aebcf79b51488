package handlers

import (
	"encoding/json"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func otherService(c *gin.Context) services.OtherServiceService {
	return services.OtherServiceService{RequestID: requestID(c)}
}

func actionCreateOther(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Other models.OtherService `json:"other"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := otherService(c)
	id, err := svc.Create(req.Other)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := svc.GetForEdit(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, created)
}

func actionUpdateOtherComplete(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Other models.OtherService `json:"other"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := otherService(c).UpdateComplete(req.Other); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "service updated")
}

func actionCancelOther(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID     int64  `json:"id"`
		Reason string `json:"reason"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := otherService(c).Cancel(req.ID, req.Reason, cancelledBy(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "service cancelled")
}

func actionGetOtherForEdit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	o, err := otherService(c).GetForEdit(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, o)
}
