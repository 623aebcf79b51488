package handlers

import (
	"encoding/json"
	"fmt"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func ticketService(c *gin.Context) services.TicketService {
	return services.TicketService{RequestID: requestID(c)}
}

// cancelledBy identifies the operator for the cancel audit trail.
func cancelledBy(c *gin.Context) string {
	if uid, ok := c.Get("user_id"); ok {
		return fmt.Sprintf("user:%v", uid)
	}
	return ""
}

func actionCreateFlightTicket(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Ticket models.FlightTicket `json:"ticket"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := ticketService(c)
	id, err := svc.Create(req.Ticket)
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

func actionUpdateFlightTicketComplete(c *gin.Context, raw json.RawMessage) {
	var req struct {
		Ticket models.FlightTicket `json:"ticket"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := ticketService(c).UpdateComplete(req.Ticket); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "ticket updated")
}

func actionCancelFlightTicket(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID     int64  `json:"id"`
		Reason string `json:"reason"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	if err := ticketService(c).Cancel(req.ID, req.Reason, cancelledBy(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondMessage(c, "ticket cancelled")
}

func actionGetFlightTicketForEdit(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	t, err := ticketService(c).GetForEdit(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, t)
}

func actionGetFlightTicketDetailByID(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	t, err := ticketService(c).GetDetail(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, t)
}

func actionGetInvoiceTickets(c *gin.Context, raw json.RawMessage) {
	list, err := ticketService(c).ListForInvoice()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, list, len(list), len(list))
}

func actionGetReceiptTickets(c *gin.Context, raw json.RawMessage) {
	list, err := ticketService(c).ListForReceipt()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, list, len(list), len(list))
}
