package handlers

import (
	"encoding/json"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func depositService(c *gin.Context) services.DepositService {
	return services.DepositService{RequestID: requestID(c)}
}

func actionCreateDeposit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Deposit models.Deposit `json:"deposit"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := depositService(c)
	id, err := svc.Create(req.Deposit)
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

func actionUpdateDepositComplete(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Deposit models.Deposit `json:"deposit"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := depositService(c).UpdateComplete(req.Deposit); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "deposit updated")
}

func actionCancelDeposit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID     int64  `json:"id"`
		Reason string `json:"reason"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := depositService(c).Cancel(req.ID, req.Reason, cancelledBy(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "deposit cancelled")
}

func actionGetDepositForEdit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	d, err := depositService(c).GetForEdit(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, d)
}
