// Package workflows pre-renders invoice PDFs on Temporal so the first
// download is served from the PDF cache.
package workflows

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/daouest/factureme/services/invoice/application/services"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
)

const errTypeInvoiceGone = "InvoiceGone"

// RenderPDFInput identifies the invoice to render.
type RenderPDFInput struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
}

// WorkflowID is one per invoice, so a redelivered event does not render twice
// while the first run is still open.
func WorkflowID(invoiceID uuid.UUID) string {
	return "invoice-pdf-" + invoiceID.String()
}

// RenderInvoicePDFWorkflow renders the invoice and stores the result in the
// PDF cache, retrying transient failures.
func RenderInvoicePDFWorkflow(ctx workflow.Context, in RenderPDFInput) error {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2,
			MaximumInterval:        time.Minute,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{errTypeInvoiceGone},
		},
	})

	var a *Activities
	return workflow.ExecuteActivity(ctx, a.RenderInvoicePDF, in).Get(ctx, nil)
}

// Activities holds the PDF activity and its dependencies.
type Activities struct {
	pdfs *services.PDFService
}

func NewActivities(pdfs *services.PDFService) *Activities {
	return &Activities{pdfs: pdfs}
}

// RenderInvoicePDF renders and caches one invoice. An invoice deleted in the
// meantime fails the workflow without retrying.
func (a *Activities) RenderInvoicePDF(ctx context.Context, in RenderPDFInput) error {
	err := a.pdfs.Prerender(ctx, in.OwnerID, in.InvoiceID)
	if errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
		return temporal.NewNonRetryableApplicationError(err.Error(), errTypeInvoiceGone, err)
	}
	return err
}

// Register adds the PDF workflow and its activities to a worker.
func Register(w worker.Registry, a *Activities) {
	w.RegisterWorkflow(RenderInvoicePDFWorkflow)
	w.RegisterActivity(a)
}

// StartRenderPDF starts the workflow on taskQueue and returns without waiting
// for it to finish.
func StartRenderPDF(ctx context.Context, c client.Client, taskQueue string, in RenderPDFInput) error {
	_, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        WorkflowID(in.InvoiceID),
		TaskQueue: taskQueue,
	}, RenderInvoicePDFWorkflow, in)
	return err
}
