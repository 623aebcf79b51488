package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/repositories"
)

func stubLoader(status string) func(string, int64) (documentDocData, error) {
	return func(docType string, id int64) (documentDocData, error) {
		return documentDocData{
			DocID:        id,
			Status:       status,
			Date:         "2026-08-30",
			DueDate:      "2026-09-29",
			CustomerName: "Siam Holidays Co., Ltd.",
			SupplierName: "Thai Airways",
			Lines: []docLine{
				{Description: "Air ticket fare (adult)", Quantity: 2, Amount: 2400},
				{Description: "Extra baggage 20kg", Quantity: 1, Amount: 500},
			},
			Subtotal:   3700,
			VATPercent: 7,
			VATAmount:  259,
			GrandTotal: 3959,
		}, nil
	}
}

func TestGeneratePOForTicketMintsAndRenders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	year := time.Now().Year()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_value FROM document_counters").
		WithArgs("PO", year).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))
	mock.ExpectExec("UPDATE document_counters").
		WithArgs(8, "PO", year).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE flight_tickets SET po_number=").
		WithArgs(fmt.Sprintf("PO-%d-000008", year), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := DocsService{
		DB:         db,
		Counters:   repositories.CounterRepository{DB: db},
		TicketRepo: repositories.TicketRepository{DB: db},
		Loader:     stubLoader("active"),
	}

	doc, err := svc.GeneratePOForTicket(42)
	if err != nil {
		t.Fatalf("GeneratePOForTicket error: %v", err)
	}
	if want := fmt.Sprintf("PO-%d-000008", year); doc.Number != want {
		t.Fatalf("number = %q, want %q", doc.Number, want)
	}
	if doc.FileName != doc.Number+".pdf" {
		t.Fatalf("file name = %q", doc.FileName)
	}
	if len(doc.PDF) == 0 {
		t.Fatalf("empty PDF output")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGenerateRefusesCancelledDocument(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := DocsService{DB: db, Loader: stubLoader("cancelled")}
	if _, err := svc.GenerateRCForTicket(42); err == nil {
		t.Fatalf("expected error for cancelled document")
	}
}

func TestGenerateVCForVoucherUsesVoucherCounter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	year := time.Now().Year()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_value FROM document_counters").
		WithArgs("VC", year).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}))
	mock.ExpectExec("INSERT INTO document_counters").
		WithArgs("VC", year).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE vouchers SET vc_number=").
		WithArgs(fmt.Sprintf("VC-%d-000001", year), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := DocsService{
		DB:          db,
		Counters:    repositories.CounterRepository{DB: db},
		VoucherRepo: repositories.VoucherRepository{DB: db},
		Loader:      stubLoader("active"),
	}

	doc, err := svc.GenerateVCForVoucher(9)
	if err != nil {
		t.Fatalf("GenerateVCForVoucher error: %v", err)
	}
	if want := fmt.Sprintf("VC-%d-000001", year); doc.Number != want {
		t.Fatalf("number = %q, want %q", doc.Number, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
