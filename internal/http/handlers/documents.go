package handlers

import (
	"encoding/base64"
	"encoding/json"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{RequestID: requestID(c)}
}

type generateRequest struct {
	ID int64 `json:"id"`
}

// respondGenerated returns the minted number plus the rendered PDF,
// base64-encoded inside the envelope data.
func respondGenerated(c *gin.Context, doc services.GeneratedDoc, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, gin.H{
		"number":    doc.Number,
		"file_name": doc.FileName,
		"pdf":       base64.StdEncoding.EncodeToString(doc.PDF),
	})
}

func actionGeneratePOForTicket(c *gin.Context, raw json.RawMessage) {
	var req generateRequest
	if !bindAction(c, raw, &req) {
		return
	}
	doc, err := docsService(c).GeneratePOForTicket(req.ID)
	respondGenerated(c, doc, err)
}

func actionGenerateINVForTicket(c *gin.Context, raw json.RawMessage) {
	var req generateRequest
	if !bindAction(c, raw, &req) {
		return
	}
	doc, err := docsService(c).GenerateINVForTicket(req.ID)
	respondGenerated(c, doc, err)
}

func actionGenerateRCForTicket(c *gin.Context, raw json.RawMessage) {
	var req generateRequest
	if !bindAction(c, raw, &req) {
		return
	}
	doc, err := docsService(c).GenerateRCForTicket(req.ID)
	respondGenerated(c, doc, err)
}

func actionGenerateVCForVoucher(c *gin.Context, raw json.RawMessage) {
	var req generateRequest
	if !bindAction(c, raw, &req) {
		return
	}
	doc, err := docsService(c).GenerateVCForVoucher(req.ID)
	respondGenerated(c, doc, err)
}

func actionGenerateVCForOther(c *gin.Context, raw json.RawMessage) {
	var req generateRequest
	if !bindAction(c, raw, &req) {
		return
	}
	doc, err := docsService(c).GenerateVCForOther(req.ID)
	respondGenerated(c, doc, err)
}
