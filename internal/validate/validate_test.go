package validate_test

import (
	"errors"
	"testing"

	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tt := []struct {
		name    string
		input   *jaws.DeploymentStatus
		wantErr error
		message string
	}{
		{
			name:  "completed without errors",
			input: &jaws.DeploymentStatus{DeploymentID: "d-1", Status: jaws.StatusCompleted},
		},
		{
			name:    "missing result",
			input:   nil,
			wantErr: validate.ErrMissingResult,
			message: "deployment: deployment result is missing",
		},
		{
			name:    "missing status",
			input:   &jaws.DeploymentStatus{DeploymentID: "d-1"},
			wantErr: validate.ErrMissingStatus,
			message: "deployment d-1: result has no status",
		},
		{
			name:    "failed",
			input:   &jaws.DeploymentStatus{DeploymentID: "d-1", Status: jaws.StatusFailed, ErrorCount: 3},
			wantErr: validate.ErrUnexpectedStatus,
			message: `deployment d-1 finished with status "Failed", expected "Completed"`,
		},
		{
			name:    "cancelled",
			input:   &jaws.DeploymentStatus{Status: jaws.StatusCancelled},
			wantErr: validate.ErrUnexpectedStatus,
			message: `deployment finished with status "Cancelled", expected "Completed"`,
		},
		{
			name:    "completed with errors",
			input:   &jaws.DeploymentStatus{DeploymentID: "d-1", Status: jaws.StatusCompleted, ErrorCount: 2},
			wantErr: validate.ErrDeploymentErrors,
			message: "deployment d-1 completed with 2 error(s)",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Validate(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
			assert.EqualError(t, err, tc.message)

			var verr *validate.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestAll(t *testing.T) {
	t.Run("every deployment completed", func(t *testing.T) {
		err := validate.All([]string{"d-1", "d-2"}, map[string]*jaws.DeploymentStatus{
			"d-1": {DeploymentID: "d-1", Status: jaws.StatusCompleted},
			"d-2": {DeploymentID: "d-2", Status: jaws.StatusCompleted},
		})
		assert.NoError(t, err)
	})

	t.Run("failures are reported per deployment", func(t *testing.T) {
		err := validate.All([]string{"d-1", "d-2", "d-3"}, map[string]*jaws.DeploymentStatus{
			"d-1": {DeploymentID: "d-1", Status: jaws.StatusCompleted},
			"d-2": {DeploymentID: "d-2", Status: jaws.StatusCompleted, ErrorCount: 1},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrDeploymentErrors)
		assert.ErrorIs(t, err, validate.ErrMissingResult)
		assert.EqualError(t, err, "deployment d-2 completed with 1 error(s)\ndeployment d-3: deployment result is missing")
	})

	t.Run("no deployments", func(t *testing.T) {
		assert.ErrorIs(t, validate.All(nil, nil), validate.ErrMissingResult)
	})
}
