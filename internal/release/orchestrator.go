package release

import (
	"context"
	"errors"
	"fmt"

	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/validate"
	"github.com/sirupsen/logrus"
)

var ErrNoDeployments = errors.New("response contained no deployment ids")

type ReleaseClient interface {
	CreateRelease(ctx context.Context, r jaws.CreateReleaseRequest) (*jaws.Release, error)
	DeployRelease(ctx context.Context, r jaws.DeployReleaseRequest) (*jaws.DeploymentIDs, error)
	PromoteRelease(ctx context.Context, r jaws.PromoteReleaseRequest) (*jaws.DeploymentIDs, error)
}

type StatusPoller interface {
	PollAll(ctx context.Context, deploymentIDs []string, emitLogs bool) (map[string]*jaws.DeploymentStatus, error)
}

// Orchestrator chains release creation, deployment and status polling.
type Orchestrator struct {
	client ReleaseClient
	poller StatusPoller
	log    logrus.FieldLogger
}

type WaitOptions struct {
	// NoWait returns as soon as the deployments are started
	NoWait   bool
	EmitLogs bool
}

type ReleaseAndDeployRequest struct {
	Release      jaws.CreateReleaseRequest
	Environments []string
	Tenants      []string
	WaitOptions
}

type DeployRequest struct {
	ReleaseID    string
	Environments []string
	Tenants      []string
	WaitOptions
}

type PromoteRequest struct {
	Promote jaws.PromoteReleaseRequest
	WaitOptions
}

type Result struct {
	ReleaseID     string                            `json:"releaseId,omitempty" yaml:"releaseId,omitempty"`
	Version       string                            `json:"version,omitempty" yaml:"version,omitempty"`
	DeploymentIDs []string                          `json:"deploymentIds" yaml:"deploymentIds"`
	Statuses      map[string]*jaws.DeploymentStatus `json:"statuses,omitempty" yaml:"statuses,omitempty"`
}

// Waited reports whether the result carries final statuses.
func (r *Result) Waited() bool {
	return r != nil && r.Statuses != nil
}

// Validate checks that every deployment in the result completed without errors.
func (r *Result) Validate() error {
	if r == nil {
		return validate.Validate(nil)
	}
	return validate.All(r.DeploymentIDs, r.Statuses)
}

func New(client ReleaseClient, poller StatusPoller, log logrus.FieldLogger) *Orchestrator {
	return &Orchestrator{
		client: client,
		poller: poller,
		log:    log,
	}
}

// ReleaseAndDeploy creates a release, deploys it to the given environments and waits for every
// resulting deployment.
func (o *Orchestrator) ReleaseAndDeploy(ctx context.Context, r ReleaseAndDeployRequest) (*Result, error) {
	release, err := o.client.CreateRelease(ctx, r.Release)
	if err != nil {
		return nil, err
	}

	result, err := o.Deploy(ctx, DeployRequest{
		ReleaseID:    release.ReleaseID,
		Environments: r.Environments,
		Tenants:      r.Tenants,
		WaitOptions:  r.WaitOptions,
	})
	if err != nil {
		return nil, err
	}

	result.Version = release.Version
	return result, nil
}

func (o *Orchestrator) Deploy(ctx context.Context, r DeployRequest) (*Result, error) {
	if r.ReleaseID == "" {
		return nil, fmt.Errorf("deploying release: missing release id")
	}

	ids, err := o.client.DeployRelease(ctx, jaws.DeployReleaseRequest{
		ReleaseID:    r.ReleaseID,
		Environments: r.Environments,
		Tenants:      r.Tenants,
	})
	if err != nil {
		return nil, err
	}
	if len(ids.DeploymentIDs) == 0 {
		return nil, fmt.Errorf("deploying release %s: %w", r.ReleaseID, ErrNoDeployments)
	}

	result := &Result{
		ReleaseID:     r.ReleaseID,
		DeploymentIDs: ids.DeploymentIDs,
	}
	return o.wait(ctx, result, r.WaitOptions)
}

func (o *Orchestrator) Promote(ctx context.Context, r PromoteRequest) (*Result, error) {
	ids, err := o.client.PromoteRelease(ctx, r.Promote)
	if err != nil {
		return nil, err
	}
	if len(ids.DeploymentIDs) == 0 {
		return nil, fmt.Errorf("promoting release for project %s: %w", r.Promote.ProjectID, ErrNoDeployments)
	}

	result := &Result{
		Version:       r.Promote.Version,
		DeploymentIDs: ids.DeploymentIDs,
	}
	return o.wait(ctx, result, r.WaitOptions)
}

// Wait polls deployments that are already running.
func (o *Orchestrator) Wait(ctx context.Context, deploymentIDs []string, emitLogs bool) (*Result, error) {
	return o.wait(ctx, &Result{DeploymentIDs: deploymentIDs}, WaitOptions{EmitLogs: emitLogs})
}

func (o *Orchestrator) wait(ctx context.Context, result *Result, opts WaitOptions) (*Result, error) {
	log := o.log.WithField("deployment_ids", result.DeploymentIDs)
	if opts.NoWait {
		log.Info("deployments started, not waiting for them to finish")
		return result, nil
	}

	log.Info("waiting for deployments to finish")
	statuses, err := o.poller.PollAll(ctx, result.DeploymentIDs, opts.EmitLogs)
	if err != nil {
		return nil, err
	}

	result.Statuses = statuses
	return result, nil
}
