package main

import (
	"context"
	"fmt"

	"github.com/nais/jaws-deploy/internal/config"
	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/release"
	flag "github.com/spf13/pflag"
)

type deps struct {
	cfg          *config.Config
	client       *jaws.Client
	orchestrator *release.Orchestrator
	args         []string
}

func (d *deps) waitOptions() release.WaitOptions {
	return release.WaitOptions{
		NoWait:   d.cfg.Poll.NoWait,
		EmitLogs: !d.cfg.Poll.SkipLogs,
	}
}

type action func(ctx context.Context, d *deps) (any, error)

type command struct {
	name    string
	args    string
	summary string
	// setup registers the command's flags and returns what to run once they are parsed
	setup func(fs *flag.FlagSet) action
}

var commands = []command{
	{
		name:    "release",
		args:    "--project ID --version VERSION --environment ENV [flags]",
		summary: "Create a release, deploy it and wait for the deployments to finish",
		setup:   setupRelease,
	},
	{
		name:    "create-release",
		args:    "--project ID --version VERSION [flags]",
		summary: "Create a release without deploying it",
		setup:   setupCreateRelease,
	},
	{
		name:    "deploy",
		args:    "--release-id ID --environment ENV [flags]",
		summary: "Deploy an existing release and wait for the deployments to finish",
		setup:   setupDeploy,
	},
	{
		name:    "promote",
		args:    "--project ID --to ENV [--version VERSION] [flags]",
		summary: "Promote a release to the next environments and wait for the deployments to finish",
		setup:   setupPromote,
	},
	{
		name:    "wait",
		args:    "DEPLOYMENT_ID... [flags]",
		summary: "Wait for existing deployments to finish",
		setup:   setupWait,
	},
}

func commandByName(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

type releaseFlags struct {
	project               string
	version               string
	notes                 string
	packageVersions       map[string]string
	ignoreMissingPackages bool
}

func (r *releaseFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&r.project, "project", "", "project id")
	fs.StringVar(&r.version, "version", "", "release version")
	fs.StringVar(&r.notes, "notes", "", "release notes")
	fs.StringToStringVar(&r.packageVersions, "package-version", nil, "package versions as name=version, repeatable")
	fs.BoolVar(&r.ignoreMissingPackages, "ignore-missing-packages", false, "create the release even if a package version is missing")
}

func (r *releaseFlags) request() (jaws.CreateReleaseRequest, error) {
	if r.project == "" {
		return jaws.CreateReleaseRequest{}, fmt.Errorf("%w: --project is required", errUsage)
	}
	if r.version == "" {
		return jaws.CreateReleaseRequest{}, fmt.Errorf("%w: --version is required", errUsage)
	}

	return jaws.CreateReleaseRequest{
		ProjectID:             r.project,
		Version:               r.version,
		Notes:                 r.notes,
		PackageVersions:       r.packageVersions,
		IgnoreMissingPackages: r.ignoreMissingPackages,
	}, nil
}

type targetFlags struct {
	environments []string
	tenants      []string
}

func (t *targetFlags) register(fs *flag.FlagSet, name, usage string) {
	fs.StringSliceVar(&t.environments, name, nil, usage)
	fs.StringSliceVar(&t.tenants, "tenant", nil, "tenants to deploy to, comma separated or repeated")
}

func (t *targetFlags) validate(name string) error {
	if len(t.environments) == 0 {
		return fmt.Errorf("%w: --%s is required", errUsage, name)
	}
	return nil
}

func setupRelease(fs *flag.FlagSet) action {
	rf := &releaseFlags{}
	rf.register(fs)
	tf := &targetFlags{}
	tf.register(fs, "environment", "environments to deploy to, comma separated or repeated")

	return func(ctx context.Context, d *deps) (any, error) {
		req, err := rf.request()
		if err != nil {
			return nil, err
		}
		if err := tf.validate("environment"); err != nil {
			return nil, err
		}

		return d.orchestrator.ReleaseAndDeploy(ctx, release.ReleaseAndDeployRequest{
			Release:      req,
			Environments: tf.environments,
			Tenants:      tf.tenants,
			WaitOptions:  d.waitOptions(),
		})
	}
}

func setupCreateRelease(fs *flag.FlagSet) action {
	rf := &releaseFlags{}
	rf.register(fs)

	return func(ctx context.Context, d *deps) (any, error) {
		req, err := rf.request()
		if err != nil {
			return nil, err
		}
		return d.client.CreateRelease(ctx, req)
	}
}

func setupDeploy(fs *flag.FlagSet) action {
	var releaseID string
	fs.StringVar(&releaseID, "release-id", "", "id of the release to deploy")
	tf := &targetFlags{}
	tf.register(fs, "environment", "environments to deploy to, comma separated or repeated")

	return func(ctx context.Context, d *deps) (any, error) {
		if releaseID == "" {
			return nil, fmt.Errorf("%w: --release-id is required", errUsage)
		}
		if err := tf.validate("environment"); err != nil {
			return nil, err
		}

		return d.orchestrator.Deploy(ctx, release.DeployRequest{
			ReleaseID:    releaseID,
			Environments: tf.environments,
			Tenants:      tf.tenants,
			WaitOptions:  d.waitOptions(),
		})
	}
}

func setupPromote(fs *flag.FlagSet) action {
	var project, version string
	fs.StringVar(&project, "project", "", "project id")
	fs.StringVar(&version, "version", "", "release version to promote, defaults to the latest release")
	tf := &targetFlags{}
	tf.register(fs, "to", "environments to promote to, comma separated or repeated")

	return func(ctx context.Context, d *deps) (any, error) {
		if project == "" {
			return nil, fmt.Errorf("%w: --project is required", errUsage)
		}
		if err := tf.validate("to"); err != nil {
			return nil, err
		}

		return d.orchestrator.Promote(ctx, release.PromoteRequest{
			Promote: jaws.PromoteReleaseRequest{
				ProjectID:      project,
				Version:        version,
				ToEnvironments: tf.environments,
				Tenants:        tf.tenants,
			},
			WaitOptions: d.waitOptions(),
		})
	}
}

func setupWait(*flag.FlagSet) action {
	return func(ctx context.Context, d *deps) (any, error) {
		if len(d.args) == 0 {
			return nil, fmt.Errorf("%w: at least one deployment id is required", errUsage)
		}
		return d.orchestrator.Wait(ctx, d.args, !d.cfg.Poll.SkipLogs)
	}
}
