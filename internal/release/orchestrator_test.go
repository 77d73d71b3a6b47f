package release_test

import (
	"context"
	"testing"
	"time"

	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/poller"
	"github.com/nais/jaws-deploy/internal/release"
	"github.com/nais/jaws-deploy/internal/validate"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_ReleaseAndDeploy(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	createReq := jaws.CreateReleaseRequest{ProjectID: "project-1", Version: "1.0.0"}

	tt := []struct {
		name     string
		statuses []*jaws.DeploymentStatus
		validErr error
	}{
		{
			name: "completed deployment passes validation",
			statuses: []*jaws.DeploymentStatus{
				{Status: "Running"},
				{Status: "Running"},
				{Status: jaws.StatusCompleted, ErrorCount: 0},
			},
		},
		{
			name: "completed with errors fails validation",
			statuses: []*jaws.DeploymentStatus{
				{Status: "Running"},
				{Status: jaws.StatusCompleted, ErrorCount: 2},
			},
			validErr: validate.ErrDeploymentErrors,
		},
		{
			name: "failed deployment fails validation",
			statuses: []*jaws.DeploymentStatus{
				{Status: jaws.StatusFailed},
			},
			validErr: validate.ErrUnexpectedStatus,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			client := release.NewMockReleaseClient(t)
			client.EXPECT().CreateRelease(ctx, createReq).Return(&jaws.Release{ReleaseID: "release-1", Version: "1.0.0"}, nil).Once()
			client.EXPECT().
				DeployRelease(ctx, jaws.DeployReleaseRequest{ReleaseID: "release-1", Environments: []string{"staging"}}).
				Return(&jaws.DeploymentIDs{DeploymentIDs: []string{"d-1"}}, nil).
				Once()

			getter := poller.NewMockDeploymentGetter(t)
			for _, s := range tc.statuses {
				s.DeploymentID = "d-1"
				getter.EXPECT().GetDeployment(mock.Anything, mock.Anything).Return(s, nil).Once()
			}

			o := release.New(client, poller.New(getter, log, poller.WithInterval(time.Millisecond)), log)
			result, err := o.ReleaseAndDeploy(ctx, release.ReleaseAndDeployRequest{
				Release:      createReq,
				Environments: []string{"staging"},
				WaitOptions:  release.WaitOptions{EmitLogs: true},
			})
			require.NoError(t, err)
			assert.Equal(t, "release-1", result.ReleaseID)
			assert.Equal(t, "1.0.0", result.Version)
			assert.Equal(t, []string{"d-1"}, result.DeploymentIDs)
			assert.True(t, result.Waited())
			assert.Same(t, tc.statuses[len(tc.statuses)-1], result.Statuses["d-1"])

			if tc.validErr == nil {
				assert.NoError(t, result.Validate())
			} else {
				assert.ErrorIs(t, result.Validate(), tc.validErr)
			}
		})
	}

	t.Run("create release error stops the workflow", func(t *testing.T) {
		apiErr := &jaws.APIError{Op: "creating release", StatusCode: 409, Status: "409 Conflict"}
		client := release.NewMockReleaseClient(t)
		client.EXPECT().CreateRelease(ctx, createReq).Return(nil, apiErr).Once()

		o := release.New(client, poller.New(poller.NewMockDeploymentGetter(t), log), log)
		result, err := o.ReleaseAndDeploy(ctx, release.ReleaseAndDeployRequest{Release: createReq, Environments: []string{"staging"}})
		assert.Nil(t, result)
		assert.Equal(t, apiErr, err)
	})
}

func TestOrchestrator_Deploy(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("every deployment id is polled", func(t *testing.T) {
		client := release.NewMockReleaseClient(t)
		client.EXPECT().
			DeployRelease(ctx, mock.Anything).
			Return(&jaws.DeploymentIDs{DeploymentIDs: []string{"d-1", "d-2"}}, nil).
			Once()

		getter := poller.NewMockDeploymentGetter(t)
		getter.EXPECT().
			GetDeployment(mock.Anything, jaws.DeploymentStatusRequest{DeploymentID: "d-1", SkipLogs: true}).
			Return(&jaws.DeploymentStatus{DeploymentID: "d-1", Status: jaws.StatusCompleted}, nil).
			Once()
		getter.EXPECT().
			GetDeployment(mock.Anything, jaws.DeploymentStatusRequest{DeploymentID: "d-2", SkipLogs: true}).
			Return(&jaws.DeploymentStatus{DeploymentID: "d-2", Status: jaws.StatusFailed}, nil).
			Once()

		o := release.New(client, poller.New(getter, log), log)
		result, err := o.Deploy(ctx, release.DeployRequest{ReleaseID: "release-1", Environments: []string{"staging", "production"}})
		require.NoError(t, err)
		assert.Len(t, result.Statuses, 2)

		err = result.Validate()
		assert.ErrorIs(t, err, validate.ErrUnexpectedStatus)
		assert.ErrorContains(t, err, "deployment d-2")
	})

	t.Run("no deployment ids in response", func(t *testing.T) {
		client := release.NewMockReleaseClient(t)
		client.EXPECT().DeployRelease(ctx, mock.Anything).Return(&jaws.DeploymentIDs{}, nil).Once()

		o := release.New(client, poller.New(poller.NewMockDeploymentGetter(t), log), log)
		_, err := o.Deploy(ctx, release.DeployRequest{ReleaseID: "release-1", Environments: []string{"staging"}})
		assert.ErrorIs(t, err, release.ErrNoDeployments)
	})

	t.Run("no wait", func(t *testing.T) {
		client := release.NewMockReleaseClient(t)
		client.EXPECT().DeployRelease(ctx, mock.Anything).Return(&jaws.DeploymentIDs{DeploymentIDs: []string{"d-1"}}, nil).Once()

		o := release.New(client, poller.New(poller.NewMockDeploymentGetter(t), log), log)
		result, err := o.Deploy(ctx, release.DeployRequest{
			ReleaseID:    "release-1",
			Environments: []string{"staging"},
			WaitOptions:  release.WaitOptions{NoWait: true},
		})
		require.NoError(t, err)
		assert.False(t, result.Waited())
		assert.Equal(t, []string{"d-1"}, result.DeploymentIDs)
	})

	t.Run("missing release id", func(t *testing.T) {
		o := release.New(release.NewMockReleaseClient(t), poller.New(poller.NewMockDeploymentGetter(t), log), log)
		_, err := o.Deploy(ctx, release.DeployRequest{Environments: []string{"staging"}})
		assert.ErrorContains(t, err, "missing release id")
	})
}

func TestOrchestrator_Promote(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	promote := jaws.PromoteReleaseRequest{ProjectID: "project-1", Version: "1.0.0", ToEnvironments: []string{"production"}}
	client := release.NewMockReleaseClient(t)
	client.EXPECT().PromoteRelease(ctx, promote).Return(&jaws.DeploymentIDs{DeploymentIDs: []string{"d-9"}}, nil).Once()

	getter := poller.NewMockDeploymentGetter(t)
	getter.EXPECT().
		GetDeployment(mock.Anything, mock.Anything).
		Return(&jaws.DeploymentStatus{DeploymentID: "d-9", Status: jaws.StatusCompleted}, nil).
		Once()

	result, err := release.New(client, poller.New(getter, log), log).Promote(ctx, release.PromoteRequest{Promote: promote})
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", result.Version)
	assert.NoError(t, result.Validate())
}

func TestOrchestrator_Wait(t *testing.T) {
	log, _ := logrustest.NewNullLogger()

	getter := poller.NewMockDeploymentGetter(t)
	getter.EXPECT().
		GetDeployment(mock.Anything, mock.Anything).
		Return(&jaws.DeploymentStatus{DeploymentID: "d-1", Status: jaws.StatusCancelled}, nil).
		Once()

	result, err := release.New(release.NewMockReleaseClient(t), poller.New(getter, log), log).Wait(context.Background(), []string{"d-1"}, false)
	require.NoError(t, err)
	assert.ErrorIs(t, result.Validate(), validate.ErrUnexpectedStatus)
}
