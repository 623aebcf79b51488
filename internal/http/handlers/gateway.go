package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// actionFunc handles one gateway action. The raw body is passed through
// so each action binds its own payload shape.
type actionFunc func(c *gin.Context, body json.RawMessage)

type actionEntry struct {
	fn     actionFunc
	public bool
}

// actions is the dispatch table for POST /gateway.php.
var actions = map[string]actionEntry{
	"login":       {fn: actionLogin, public: true},
	"getUserById": {fn: actionGetUserByID},

	"getCustomers":   {fn: actionGetCustomers},
	"createCustomer": {fn: actionCreateCustomer},
	"updateCustomer": {fn: actionUpdateCustomer},

	"getSuppliers":   {fn: actionGetSuppliers},
	"createSupplier": {fn: actionCreateSupplier},
	"updateSupplier": {fn: actionUpdateSupplier},

	"getCities":  {fn: actionGetCities},
	"createCity": {fn: actionCreateCity},
	"updateCity": {fn: actionUpdateCity},
	"deleteCity": {fn: actionDeleteCity},

	"createFlightTicket":         {fn: actionCreateFlightTicket},
	"updateFlightTicketComplete": {fn: actionUpdateFlightTicketComplete},
	"cancelFlightTicket":         {fn: actionCancelFlightTicket},
	"getFlightTicketForEdit":     {fn: actionGetFlightTicketForEdit},
	"getFlightTicketDetailById":  {fn: actionGetFlightTicketDetailByID},

	"createDeposit":         {fn: actionCreateDeposit},
	"updateDepositComplete": {fn: actionUpdateDepositComplete},
	"cancelDeposit":         {fn: actionCancelDeposit},
	"getDepositForEdit":     {fn: actionGetDepositForEdit},

	"createVoucher":         {fn: actionCreateVoucher},
	"updateVoucherComplete": {fn: actionUpdateVoucherComplete},
	"cancelVoucher":         {fn: actionCancelVoucher},
	"getVoucherForEdit":     {fn: actionGetVoucherForEdit},

	"createOther":         {fn: actionCreateOther},
	"updateOtherComplete": {fn: actionUpdateOtherComplete},
	"cancelOther":         {fn: actionCancelOther},
	"getOtherForEdit":     {fn: actionGetOtherForEdit},

	"generatePOForTicket":  {fn: actionGeneratePOForTicket},
	"generateINVForTicket": {fn: actionGenerateINVForTicket},
	"generateRCForTicket":  {fn: actionGenerateRCForTicket},
	"generateVCForVoucher": {fn: actionGenerateVCForVoucher},
	"generateVCForOther":   {fn: actionGenerateVCForOther},

	"getInvoiceTickets": {fn: actionGetInvoiceTickets},
	"getReceiptTickets": {fn: actionGetReceiptTickets},

	"getSalesReport": {fn: actionGetSalesReport},
}

// jwtSecret signs and verifies session tokens; Configure overrides it
// from the environment at startup.
var jwtSecret = "change-me-in-production"

// Configure wires environment-dependent handler settings.
func Configure(env intconfig.Env) {
	if env.JWTSecret != "" {
		jwtSecret = env.JWTSecret
	}
}

// Gateway handles POST /gateway.php: one endpoint, an action
// discriminator in the body, the envelope on the way out.
func Gateway(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		RespondFail(c, http.StatusBadRequest, "empty request body")
		return
	}

	var head struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	entry, ok := actions[head.Action]
	if !ok {
		RespondFail(c, http.StatusBadRequest, "unknown action")
		return
	}

	if !entry.public {
		auth := services.AuthService{Secret: jwtSecret}
		uid, err := auth.ParseToken(bearerToken(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Set("user_id", uid)
	}

	entry.fn(c, raw)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// bindAction unmarshals the raw action body into dst, replying with a
// failure envelope when the payload does not fit.
func bindAction[T any](c *gin.Context, raw json.RawMessage, dst *T) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		RespondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return false
	}
	return true
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}
