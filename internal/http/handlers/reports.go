package handlers

import (
	"encoding/json"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func actionGetSalesReport(c *gin.Context, raw json.RawMessage) {
	var req struct {
		DocType   string `json:"doc_type"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := services.ReportsService{RequestID: requestID(c)}
	report, err := svc.GetSalesReport(req.DocType, req.StartDate, req.EndDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, report, report.Count, report.Count)
}
