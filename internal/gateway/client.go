// Package gateway implements the client side of the back-office gateway
// contract: one HTTP endpoint, an action discriminator, and a uniform
// response envelope. Every failure class (transport, non-2xx, business
// error) flattens to the same Envelope shape with a string message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/domain/models"
)

// Envelope is the gateway response shape shared by every action.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Count   int             `json:"count,omitempty"`
	Total   int             `json:"total,omitempty"`
}

// Client talks to the gateway endpoint.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New builds a client with a sane default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Call posts {"action": ..., ...payload} to the gateway. Transport
// errors, non-2xx statuses and success:false responses all come back as
// Success:false with a flat error string; callers never see a typed
// error taxonomy.
func (c *Client) Call(ctx context.Context, action string, payload map[string]any) Envelope {
	body := map[string]any{"action": action}
	for k, v := range payload {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return fail("encode request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return fail("build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fail("network error: " + err.Error())
	}
	defer resp.Body.Close()

	var env Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("gateway returned HTTP %d", resp.StatusCode)
		}
		return fail(msg)
	}
	if decodeErr != nil {
		return fail("decode response: " + decodeErr.Error())
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = firstNonEmpty(env.Message, "request failed")
		}
		env.Data = nil
		return env
	}
	return env
}

// decode unmarshals an envelope's data into dst, flattening failures.
func decode[T any](env Envelope, dst *T) error {
	if !env.Success {
		return fmt.Errorf("%s", firstNonEmpty(env.Error, "request failed"))
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, dst)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// -----------------------------------------------------------------
// Typed wrappers for the representative actions.
// -----------------------------------------------------------------

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	env := c.Call(ctx, "login", map[string]any{"username": username, "password": password})
	err := decode(env, &out)
	if err == nil && out.Token != "" {
		c.Token = out.Token
	}
	return out, err
}

func (c *Client) GetCustomers(ctx context.Context, search string, page, pageSize int) ([]models.Customer, int, error) {
	var out []models.Customer
	env := c.Call(ctx, "getCustomers", map[string]any{
		"search": search, "page": page, "pageSize": pageSize,
	})
	if err := decode(env, &out); err != nil {
		return nil, 0, err
	}
	return out, env.Total, nil
}

func (c *Client) GetSuppliers(ctx context.Context, search string) ([]models.Supplier, error) {
	var out []models.Supplier
	env := c.Call(ctx, "getSuppliers", map[string]any{"search": search})
	return out, decode(env, &out)
}

// SearchSupplierByCode backs the lookup-as-you-type supplier field.
// Codes shorter than 2 characters are not sent to the gateway.
func (c *Client) SearchSupplierByCode(ctx context.Context, code string) (models.Supplier, bool, error) {
	if len(code) < 2 || len(code) > 5 {
		return models.Supplier{}, false, nil
	}
	var out []models.Supplier
	env := c.Call(ctx, "getSuppliers", map[string]any{"code": code})
	if err := decode(env, &out); err != nil {
		return models.Supplier{}, false, err
	}
	if len(out) == 0 {
		return models.Supplier{}, false, nil
	}
	return out[0], true, nil
}

func (c *Client) GetFlightTicketForEdit(ctx context.Context, id int64) (models.FlightTicket, error) {
	var out models.FlightTicket
	env := c.Call(ctx, "getFlightTicketForEdit", map[string]any{"id": id})
	return out, decode(env, &out)
}

func (c *Client) UpdateFlightTicketComplete(ctx context.Context, t models.FlightTicket) error {
	env := c.Call(ctx, "updateFlightTicketComplete", map[string]any{"ticket": t})
	if !env.Success {
		return fmt.Errorf("%s", firstNonEmpty(env.Error, "update failed"))
	}
	return nil
}

func (c *Client) CancelFlightTicket(ctx context.Context, id int64, reason string) error {
	env := c.Call(ctx, "cancelFlightTicket", map[string]any{"id": id, "reason": reason})
	if !env.Success {
		return fmt.Errorf("%s", firstNonEmpty(env.Error, "cancel failed"))
	}
	return nil
}

func (c *Client) UpdateDepositComplete(ctx context.Context, d models.Deposit) error {
	env := c.Call(ctx, "updateDepositComplete", map[string]any{"deposit": d})
	if !env.Success {
		return fmt.Errorf("%s", firstNonEmpty(env.Error, "update failed"))
	}
	return nil
}

func (c *Client) UpdateVoucherComplete(ctx context.Context, v models.Voucher) error {
	env := c.Call(ctx, "updateVoucherComplete", map[string]any{"voucher": v})
	if !env.Success {
		return fmt.Errorf("%s", firstNonEmpty(env.Error, "update failed"))
	}
	return nil
}

// DocumentNumber is returned by the generate* actions.
type DocumentNumber struct {
	Number   string `json:"number"`
	FileName string `json:"file_name"`
	PDF      string `json:"pdf"` // base64
}

func (c *Client) GeneratePOForTicket(ctx context.Context, ticketID int64) (DocumentNumber, error) {
	var out DocumentNumber
	env := c.Call(ctx, "generatePOForTicket", map[string]any{"id": ticketID})
	return out, decode(env, &out)
}

func (c *Client) GenerateRCForTicket(ctx context.Context, ticketID int64) (DocumentNumber, error) {
	var out DocumentNumber
	env := c.Call(ctx, "generateRCForTicket", map[string]any{"id": ticketID})
	return out, decode(env, &out)
}
