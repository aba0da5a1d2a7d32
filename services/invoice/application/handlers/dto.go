package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appsvcs "github.com/daouest/factureme/services/invoice/application/services"
	"github.com/daouest/factureme/services/invoice/domain/models"
)

const dateLayout = "2006-01-02"

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invoice not found"`
} // @name ErrorResponse

// LineRequest is one submitted line: a product with a quantity, or an hourly
// rate with a worked interval.
type LineRequest struct {
	ProductID    *uuid.UUID `json:"product_id,omitempty"    validate:"required_without=RateID,excluded_with=RateID" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity     int        `json:"quantity,omitempty"      example:"3"`
	RateID       *uuid.UUID `json:"rate_id,omitempty"       validate:"required_without=ProductID"`
	StartTime    *time.Time `json:"start_time,omitempty"    example:"2024-01-15T09:00:00Z"`
	EndTime      *time.Time `json:"end_time,omitempty"      example:"2024-01-15T17:00:00Z"`
	BreakMinutes int        `json:"break_minutes,omitempty" example:"60"`
} // @name LineRequest

// InvoiceRequest is the body of POST /invoices and POST /invoices/preview.
type InvoiceRequest struct {
	ClientID    *uuid.UUID    `json:"client_id,omitempty"`
	InvoiceDate string        `json:"invoice_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	DueDate     string        `json:"due_date,omitempty"     validate:"omitempty,datetime=2006-01-02" example:"2024-02-14"`
	Notes       string        `json:"notes,omitempty"        validate:"max=2000"`
	Lines       []LineRequest `json:"lines"                  validate:"dive"`
} // @name InvoiceRequest

func (req InvoiceRequest) input() appsvcs.InvoiceInput {
	in := appsvcs.InvoiceInput{Notes: req.Notes, Lines: make([]appsvcs.LineInput, len(req.Lines))}
	if req.ClientID != nil {
		in.ClientID = *req.ClientID
	}
	// formats are checked by the validator
	if req.InvoiceDate != "" {
		in.InvoiceDate, _ = time.Parse(dateLayout, req.InvoiceDate)
	}
	if req.DueDate != "" {
		due, _ := time.Parse(dateLayout, req.DueDate)
		in.DueDate = &due
	}
	for i, l := range req.Lines {
		line := appsvcs.LineInput{Quantity: l.Quantity, BreakMinutes: l.BreakMinutes}
		if l.ProductID != nil {
			line.ProductID = *l.ProductID
		}
		if l.RateID != nil {
			line.RateID = *l.RateID
		}
		if l.StartTime != nil {
			line.StartTime = *l.StartTime
		}
		if l.EndTime != nil {
			line.EndTime = *l.EndTime
		}
		in.Lines[i] = line
	}
	return in
}

// TaxResponse is one applied tax. Rate is a percentage.
type TaxResponse struct {
	Name   string          `json:"name"   example:"TVQ"`
	Rate   decimal.Decimal `json:"rate"   example:"9.975" swaggertype:"string"`
	Amount decimal.Decimal `json:"amount" example:"7.48"  swaggertype:"string"`
} // @name TaxResponse

// LineResponse is a priced line.
type LineResponse struct {
	Line         int                 `json:"line"                    example:"1"`
	Kind         string              `json:"kind"                    example:"product"`
	CatalogID    uuid.UUID           `json:"catalog_id"`
	Description  string              `json:"description"             example:"Website audit"`
	Quantity     int                 `json:"quantity,omitempty"      example:"3"`
	UnitPrice    decimal.Decimal     `json:"unit_price"              example:"25.00" swaggertype:"string"`
	StartTime    *time.Time          `json:"start_time,omitempty"`
	EndTime      *time.Time          `json:"end_time,omitempty"`
	BreakMinutes int                 `json:"break_minutes,omitempty"`
	HoursWorked  decimal.NullDecimal `json:"hours_worked"            swaggertype:"string"`
	LineTotal    decimal.Decimal     `json:"line_total"              example:"75.00" swaggertype:"string"`
} // @name LineResponse

// PreviewResponse is a priced submission that was not stored.
type PreviewResponse struct {
	InvoiceDate string          `json:"invoice_date" example:"2024-01-15"`
	Province    string          `json:"province"     example:"QC"`
	ClientName  string          `json:"client_name,omitempty"`
	Lines       []LineResponse  `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"     example:"75.00" swaggertype:"string"`
	Taxes       []TaxResponse   `json:"taxes"`
	TaxTotal    decimal.Decimal `json:"tax_total"    example:"11.23" swaggertype:"string"`
	Total       decimal.Decimal `json:"total"        example:"86.23" swaggertype:"string"`
} // @name PreviewResponse

// InvoiceResponse is an issued invoice. Lines are omitted in lists.
type InvoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"              example:"FM-20240115-0001"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	ClientName  string          `json:"client_name,omitempty"`
	InvoiceDate string          `json:"invoice_date"        example:"2024-01-15"`
	DueDate     *string         `json:"due_date,omitempty"  example:"2024-02-14"`
	Province    string          `json:"province"            example:"QC"`
	Lines       []LineResponse  `json:"lines,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"            example:"75.00" swaggertype:"string"`
	Taxes       []TaxResponse   `json:"taxes"`
	TaxTotal    decimal.Decimal `json:"tax_total"           example:"11.23" swaggertype:"string"`
	Total       decimal.Decimal `json:"total"               example:"86.23" swaggertype:"string"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
} // @name InvoiceResponse

// DashboardResponse summarizes the owner's invoicing.
type DashboardResponse struct {
	InvoiceCount int64             `json:"invoice_count" example:"12"`
	Revenue      decimal.Decimal   `json:"revenue"       example:"4250.00" swaggertype:"string"`
	TaxCollected decimal.Decimal   `json:"tax_collected" example:"636.44"  swaggertype:"string"`
	MonthRevenue decimal.Decimal   `json:"month_revenue" example:"860.00"  swaggertype:"string"`
	Recent       []InvoiceResponse `json:"recent"`
} // @name DashboardResponse

func toTaxResponses(taxes []models.TaxRate) []TaxResponse {
	out := make([]TaxResponse, len(taxes))
	for i, t := range taxes {
		out[i] = TaxResponse{Name: string(t.Name), Rate: t.Rate, Amount: t.Amount}
	}
	return out
}

func toLineResponse(l models.StoredLine) LineResponse {
	return LineResponse{
		Line:         l.Position,
		Kind:         string(l.Kind),
		CatalogID:    l.CatalogID,
		Description:  l.Description,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
		StartTime:    l.StartTime,
		EndTime:      l.EndTime,
		BreakMinutes: l.BreakMinutes,
		HoursWorked:  l.HoursWorked,
		LineTotal:    l.LineTotal,
	}
}

func toPreviewResponse(c *appsvcs.Computation) PreviewResponse {
	lines := make([]LineResponse, len(c.Totals.Lines))
	for i, cl := range c.Totals.Lines {
		lines[i] = toLineResponse(models.SnapshotLine(i+1, c.Descriptions[i], cl))
	}
	return PreviewResponse{
		InvoiceDate: c.InvoiceDate.Format(dateLayout),
		Province:    c.Province,
		ClientName:  c.ClientName,
		Lines:       lines,
		Subtotal:    c.Totals.Subtotal,
		Taxes:       toTaxResponses(c.Totals.Taxes),
		TaxTotal:    c.Totals.TaxTotal(),
		Total:       c.Totals.Total,
	}
}

func toInvoiceResponse(inv *models.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		ClientName:  inv.ClientName,
		InvoiceDate: inv.InvoiceDate.Format(dateLayout),
		Province:    inv.Province,
		Subtotal:    inv.Subtotal,
		Taxes:       toTaxResponses(inv.Taxes),
		TaxTotal:    inv.TaxTotal(),
		Total:       inv.Total,
		Notes:       inv.Notes,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if inv.ClientID != uuid.Nil {
		id := inv.ClientID
		resp.ClientID = &id
	}
	if inv.DueDate != nil {
		due := inv.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	if len(inv.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(inv.Lines))
		for i, l := range inv.Lines {
			resp.Lines[i] = toLineResponse(l)
		}
	}
	return resp
}
