package handlers

import (
	"encoding/json"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func voucherService(c *gin.Context) services.VoucherService {
	return services.VoucherService{RequestID: requestID(c)}
}

func actionCreateVoucher(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Voucher models.Voucher `json:"voucher"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := voucherService(c)
	id, err := svc.Create(req.Voucher)
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

func actionUpdateVoucherComplete(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Voucher models.Voucher `json:"voucher"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := voucherService(c).UpdateComplete(req.Voucher); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "voucher updated")
}

func actionCancelVoucher(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID     int64  `json:"id"`
		Reason string `json:"reason"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := voucherService(c).Cancel(req.ID, req.Reason, cancelledBy(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "voucher cancelled")
}

func actionGetVoucherForEdit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	v, err := voucherService(c).GetForEdit(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, v)
}
