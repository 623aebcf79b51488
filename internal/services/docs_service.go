package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// DocsService mints document numbers and renders the matching PDFs:
// purchase orders and invoices/receipts for tickets, vouchers for
// voucher and other-service documents. Numbers come from a counter
// table locked per transaction so they are strictly sequential.
type DocsService struct {
	DB          *sql.DB
	Counters    repositories.CounterRepository
	TicketRepo  repositories.TicketRepository
	VoucherRepo repositories.VoucherRepository
	OtherRepo   repositories.OtherRepository
	RequestID   string

	// Loader is injectable for tests; when nil the repositories load
	// the document from the database.
	Loader func(docType string, id int64) (documentDocData, error)
}

// documentDocData is the flattened snapshot a PDF is rendered from.
type documentDocData struct {
	DocID        int64
	Status       string
	Date         string
	DueDate      string
	CustomerName string
	Address      string
	TaxID        string
	SupplierName string
	Lines        []docLine
	Subtotal     float64
	VATPercent   float64
	VATAmount    float64
	GrandTotal   float64
}

type docLine struct {
	Description string
	Quantity    int
	Amount      float64
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GeneratedDoc is the result of a mint-and-render operation.
type GeneratedDoc struct {
	Number   string `json:"number"`
	FileName string `json:"file_name"`
	PDF      []byte `json:"-"`
}

// GeneratePOForTicket mints the next PO number, stores it on the
// ticket and renders the purchase order PDF.
func (s DocsService) GeneratePOForTicket(ticketID int64) (GeneratedDoc, error) {
	return s.generateForTicket(ticketID, repositories.KindPO, "PURCHASE ORDER")
}

// GenerateINVForTicket mints the next invoice number for a ticket.
func (s DocsService) GenerateINVForTicket(ticketID int64) (GeneratedDoc, error) {
	return s.generateForTicket(ticketID, repositories.KindINV, "TAX INVOICE")
}

// GenerateRCForTicket mints the next receipt number for a ticket.
func (s DocsService) GenerateRCForTicket(ticketID int64) (GeneratedDoc, error) {
	return s.generateForTicket(ticketID, repositories.KindRC, "RECEIPT")
}

func (s DocsService) generateForTicket(ticketID int64, kind, title string) (GeneratedDoc, error) {
	data, err := s.loadDocData(repositories.DocTicket, ticketID)
	if err != nil {
		return GeneratedDoc{}, err
	}
	if data.Status == string(domain.StatusCancelled) {
		return GeneratedDoc{}, domain.ConflictError{Resource: "flight ticket", Msg: "document is cancelled"}
	}

	number, err := s.mint(kind, func(tx *sql.Tx, number string) error {
		return s.TicketRepo.SetNumber(tx, ticketID, kind, number)
	})
	if err != nil {
		return GeneratedDoc{}, err
	}

	pdf, err := buildDocumentPDF(title, number, data)
	if err != nil {
		return GeneratedDoc{}, err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_"+strings.ToLower(kind), fmt.Sprintf("ticket_id=%d number=%s", ticketID, number))
	return GeneratedDoc{Number: number, FileName: number + ".pdf", PDF: pdf}, nil
}

// GenerateVCForVoucher mints the next voucher number for a voucher document.
func (s DocsService) GenerateVCForVoucher(voucherID int64) (GeneratedDoc, error) {
	return s.generateVC(repositories.DocVoucher, voucherID, func(tx *sql.Tx, number string) error {
		return s.VoucherRepo.SetNumber(tx, voucherID, number)
	})
}

// GenerateVCForOther mints the next voucher number for an other-service document.
func (s DocsService) GenerateVCForOther(otherID int64) (GeneratedDoc, error) {
	return s.generateVC(repositories.DocOther, otherID, func(tx *sql.Tx, number string) error {
		return s.OtherRepo.SetNumber(tx, otherID, number)
	})
}

func (s DocsService) generateVC(docType string, id int64, store func(*sql.Tx, string) error) (GeneratedDoc, error) {
	data, err := s.loadDocData(docType, id)
	if err != nil {
		return GeneratedDoc{}, err
	}
	if data.Status == string(domain.StatusCancelled) {
		return GeneratedDoc{}, domain.ConflictError{Resource: docType, Msg: "document is cancelled"}
	}

	number, err := s.mint(repositories.KindVC, store)
	if err != nil {
		return GeneratedDoc{}, err
	}

	pdf, err := buildDocumentPDF("SERVICE VOUCHER", number, data)
	if err != nil {
		return GeneratedDoc{}, err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_vc", fmt.Sprintf("%s_id=%d number=%s", docType, id, number))
	return GeneratedDoc{Number: number, FileName: number + ".pdf", PDF: pdf}, nil
}

// mint reserves the next number and stores it on the document in one
// transaction, keeping the counter and the header consistent.
func (s DocsService) mint(kind string, store func(*sql.Tx, string) error) (string, error) {
	tx, err := s.db().Begin()
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	number, err := s.Counters.NextNumber(tx, kind)
	if err != nil {
		return "", err
	}
	if err := store(tx, number); err != nil {
		return "", err
	}
	return number, tx.Commit()
}

func (s DocsService) loadDocData(docType string, id int64) (documentDocData, error) {
	if s.Loader != nil {
		return s.Loader(docType, id)
	}

	switch docType {
	case repositories.DocTicket:
		t, err := s.TicketRepo.GetForEdit(id)
		if err != nil {
			return documentDocData{}, err
		}
		out := docDataFromHeader(t.DocumentHeader)
		for _, l := range t.Pricing {
			if l.Pax == 0 && l.Total == 0 {
				continue
			}
			out.Lines = append(out.Lines, docLine{
				Description: "Air ticket fare (" + l.FareClass + ")",
				Quantity:    l.Pax,
				Amount:      l.Total,
			})
		}
		appendExtraLines(&out, t.Extras)
		return out, nil

	case repositories.DocVoucher:
		v, err := s.VoucherRepo.GetForEdit(id)
		if err != nil {
			return documentDocData{}, err
		}
		out := docDataFromHeader(v.DocumentHeader)
		desc := strings.TrimSpace(v.ServiceType)
		if v.TripFrom != "" || v.TripTo != "" {
			desc += " " + v.TripFrom + " - " + v.TripTo
		}
		for _, l := range v.Pricing {
			if l.Pax == 0 && l.Total == 0 {
				continue
			}
			out.Lines = append(out.Lines, docLine{
				Description: strings.TrimSpace(desc + " (" + l.FareClass + ")"),
				Quantity:    l.Pax,
				Amount:      l.Total,
			})
		}
		appendExtraLines(&out, v.Extras)
		return out, nil

	case repositories.DocOther:
		o, err := s.OtherRepo.GetForEdit(id)
		if err != nil {
			return documentDocData{}, err
		}
		out := docDataFromHeader(o.DocumentHeader)
		desc := utils.FirstNonEmpty(o.Description, o.ServiceType, "Service")
		for _, l := range o.Pricing {
			if l.Pax == 0 && l.Total == 0 {
				continue
			}
			out.Lines = append(out.Lines, docLine{
				Description: desc + " (" + l.FareClass + ")",
				Quantity:    l.Pax,
				Amount:      l.Total,
			})
		}
		appendExtraLines(&out, o.Extras)
		return out, nil
	}
	return documentDocData{}, domain.ValidationError{Field: "doc_type", Msg: "unknown document type " + docType}
}

func docDataFromHeader(h models.DocumentHeader) documentDocData {
	name := h.CustomerName
	if h.Override.Name != nil {
		name = *h.Override.Name
	}
	address := ""
	if h.Override.Address != nil {
		address = *h.Override.Address
	}
	taxID := ""
	if h.Override.TaxID != nil {
		taxID = *h.Override.TaxID
	}
	return documentDocData{
		DocID:        h.ID,
		Status:       h.Status,
		Date:         h.Date,
		DueDate:      h.DueDate,
		CustomerName: name,
		Address:      address,
		TaxID:        taxID,
		SupplierName: h.SupplierName,
		Subtotal:     h.Subtotal,
		VATPercent:   h.VATPercent,
		VATAmount:    h.VATAmount,
		GrandTotal:   h.GrandTotal,
	}
}

func appendExtraLines(out *documentDocData, extras []models.ExtraLine) {
	for _, e := range extras {
		if strings.TrimSpace(e.Description) == "" && e.TotalAmount == 0 {
			continue
		}
		out.Lines = append(out.Lines, docLine{
			Description: e.Description,
			Quantity:    e.Quantity,
			Amount:      e.TotalAmount,
		})
	}
}

func buildDocumentPDF(title, number string, d documentDocData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("Number     : %s", number),
		fmt.Sprintf("Date       : %s", safe(d.Date, "-")),
	}
	if d.DueDate != "" {
		head = append(head, fmt.Sprintf("Due date   : %s", d.DueDate))
	}
	head = append(head,
		fmt.Sprintf("Customer   : %s", safe(d.CustomerName, "-")),
	)
	if d.Address != "" {
		head = append(head, fmt.Sprintf("Address    : %s", d.Address))
	}
	if d.TaxID != "" {
		head = append(head, fmt.Sprintf("Tax ID     : %s", d.TaxID))
	}
	if d.SupplierName != "" {
		head = append(head, fmt.Sprintf("Supplier   : %s", d.SupplierName))
	}
	for _, line := range head {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(110, 7, "Description")
	pdf.Cell(25, 7, "Qty")
	pdf.Cell(0, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range d.Lines {
		pdf.Cell(110, 6, safe(l.Description, "-"))
		pdf.Cell(25, 6, fmt.Sprintf("%d", l.Quantity))
		pdf.Cell(0, 6, utils.FormatMoney(l.Amount))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Subtotal    : "+utils.FormatBaht(d.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("VAT %.0f%%     : %s", d.VATPercent, utils.FormatBaht(d.VATAmount)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Grand total : "+utils.FormatBaht(d.GrandTotal))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
