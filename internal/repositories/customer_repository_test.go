package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func testCustomer() models.Customer {
	return models.Customer{
		Code:         "C001",
		Name:         "Siam Holidays Co., Ltd.",
		AddressLine1: "88 Sukhumvit Rd",
		Phone:        "02-123-4567",
		CreditDays:   30,
	}
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "name",
		"address_line1", "address_line2", "address_line3",
		"phone", "email", "tax_id",
		"branch_type", "branch_number", "credit_days",
	})
}

func TestCustomerGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(customerRows().AddRow(
			7, "C001", "Siam Holidays Co., Ltd.",
			"88 Sukhumvit Rd", "Khlong Toei", "Bangkok 10110",
			"02-123-4567", "ops@siamholidays.example", "0105536000011",
			"branch", "00001", 30,
		))

	c, err := CustomerRepository{DB: db}.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if c.Code != "C001" || c.CreditDays != 30 {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id=").
		WithArgs(int64(99)).
		WillReturnRows(customerRows())

	_, err = CustomerRepository{DB: db}.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCustomerCreateDuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers WHERE code=").
		WithArgs("C001", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err = CustomerRepository{DB: db}.Create(testCustomer())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCustomerCreateInsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers WHERE code=").
		WithArgs("C001", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := CustomerRepository{DB: db}.Create(testCustomer())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 12 {
		t.Fatalf("id = %d, want 12", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerListCountsAndPages(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers").
		WithArgs("%siam%", "%siam%").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE").
		WithArgs("%siam%", "%siam%", 20, 0).
		WillReturnRows(customerRows().AddRow(
			7, "C001", "Siam Holidays Co., Ltd.",
			"", "", "", "", "", "", "", "", 0,
		))

	list, total, err := CustomerRepository{DB: db}.List("siam", 1, 20)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].Name != "Siam Holidays Co., Ltd." {
		t.Fatalf("unexpected result: total=%d list=%+v", total, list)
	}
}
