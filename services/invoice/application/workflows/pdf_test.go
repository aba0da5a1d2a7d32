package workflows

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
)

func TestRenderInvoicePDFWorkflow(t *testing.T) {
	in := RenderPDFInput{OwnerID: uuid.New(), InvoiceID: uuid.New()}

	tests := []struct {
		name        string
		activityErr error
		wantErr     bool
	}{
		{name: "Success"},
		{
			name:        "InvoiceGone",
			activityErr: temporal.NewNonRetryableApplicationError("invoice not found", errTypeInvoiceGone, nil),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var suite testsuite.WorkflowTestSuite
			env := suite.NewTestWorkflowEnvironment()
			acts := NewActivities(nil)
			env.RegisterActivity(acts)
			env.OnActivity(acts.RenderInvoicePDF, mock.Anything, in).Return(tt.activityErr).Once()

			env.ExecuteWorkflow(RenderInvoicePDFWorkflow, in)

			require.True(t, env.IsWorkflowCompleted())
			err := env.GetWorkflowError()
			if !tt.wantErr {
				assert.NoError(t, err)
				env.AssertExpectations(t)
				return
			}
			require.Error(t, err)
			var appErr *temporal.ApplicationError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, errTypeInvoiceGone, appErr.Type())
		})
	}
}

func TestWorkflowID(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, "invoice-pdf-123e4567-e89b-12d3-a456-426614174000", WorkflowID(id))
}
