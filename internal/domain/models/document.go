package models

// PricingLine persists one fare-class row of a document's pricing table.
type PricingLine struct {
	FareClass string  `json:"fare_class"`
	NetPrice  float64 `json:"net_price"`
	SalePrice float64 `json:"sale_price"`
	Pax       int     `json:"pax"`
	Total     float64 `json:"total"`
}

// ExtraLine is an ancillary chargeable item attached to a document.
// TotalAmount follows sale price and quantity only; net price is cost basis.
type ExtraLine struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	NetPrice    float64 `json:"net_price"`
	SalePrice   float64 `json:"sale_price"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

// Passenger is one traveller row on a flight ticket.
type Passenger struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FareClass    string `json:"fare_class"`
	TicketNumber string `json:"ticket_number"`
}

// RouteSegment is one leg of a flight ticket itinerary.
type RouteSegment struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Airline     string `json:"airline"`
	FlightNo    string `json:"flight_no"`
	DepartDate  string `json:"depart_date"`
	DepartTime  string `json:"depart_time"`
	ArriveTime  string `json:"arrive_time"`
	Class       string `json:"class"`
}

// DocumentHeader carries the fields shared by every sale document.
type DocumentHeader struct {
	ID           int64            `json:"id"`
	Status       string           `json:"status"`
	Date         string           `json:"date"`     // YYYY-MM-DD
	DueDate      string           `json:"due_date"` // YYYY-MM-DD
	CreditDays   int              `json:"credit_days"`
	CustomerID   int64            `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	Override     CustomerOverride `json:"customer_override_data"`
	SupplierID   int64            `json:"supplier_id"`
	SupplierCode string           `json:"supplier_code"`
	SupplierName string           `json:"supplier_name"`

	PaymentMethod string `json:"payment_method"`

	Subtotal   float64 `json:"subtotal"`
	VATPercent float64 `json:"vat_percent"`
	VATAmount  float64 `json:"vat_amount"`
	GrandTotal float64 `json:"grand_total"`

	PONumber  string `json:"po_number"`
	INVNumber string `json:"inv_number"`
	RCNumber  string `json:"rc_number"`
	VCNumber  string `json:"vc_number"`

	CancelReason string `json:"cancel_reason,omitempty"`
	CancelledAt  string `json:"cancelled_at,omitempty"`
}

// FlightTicket is the full flight-ticket document; complete updates
// replace every sub-section in one payload.
type FlightTicket struct {
	DocumentHeader
	Passengers []Passenger    `json:"passengers"`
	Routes     []RouteSegment `json:"routes"`
	Pricing    []PricingLine  `json:"pricing"`
	Extras     []ExtraLine    `json:"extras"`
}

// Deposit tracks its amount separately from the pricing table; the
// deposit total is persisted on its own and never folded into subtotal.
type Deposit struct {
	DocumentHeader
	DepositAmount float64       `json:"deposit_amount"`
	DepositPax    int           `json:"deposit_pax"`
	DepositTotal  float64       `json:"deposit_total"`
	Pricing       []PricingLine `json:"pricing"`
	Extras        []ExtraLine   `json:"extras"`
}

// Voucher covers hotel/land service confirmations.
type Voucher struct {
	DocumentHeader
	ServiceType  string        `json:"service_type"`
	TripFrom     string        `json:"trip_from"`
	TripTo       string        `json:"trip_to"`
	CheckinDate  string        `json:"checkin_date"`
	CheckoutDate string        `json:"checkout_date"`
	Pricing      []PricingLine `json:"pricing"`
	Extras       []ExtraLine   `json:"extras"`
}

// OtherService covers miscellaneous sale documents (insurance, visa, ...).
type OtherService struct {
	DocumentHeader
	ServiceType string        `json:"service_type"`
	Description string        `json:"description"`
	Pricing     []PricingLine `json:"pricing"`
	Extras      []ExtraLine   `json:"extras"`
}
