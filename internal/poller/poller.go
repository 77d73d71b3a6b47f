package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/nais/jaws-deploy/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/ptr"
)

const (
	DefaultInterval    = 3 * time.Second
	DefaultConcurrency = 10
)

var (
	ErrCancelled        = errors.New("cancelled by caller")
	ErrDeadlineExceeded = errors.New("deadline exceeded")
)

type DeploymentGetter interface {
	GetDeployment(ctx context.Context, r jaws.DeploymentStatusRequest) (*jaws.DeploymentStatus, error)
}

// Poller queries deployment status until the deployment reaches a terminal state.
type Poller struct {
	client      DeploymentGetter
	log         logrus.FieldLogger
	interval    time.Duration
	timeout     time.Duration
	concurrency int
	newSink     func(deploymentID string) LogSink
	metrics     *metrics.Metrics
}

// Option is a function that can be used to set custom options for the poller
type Option func(*Poller)

// WithInterval sets the delay between a non-terminal response and the next request
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithTimeout bounds each deployment poll. Zero means no bound other than the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(p *Poller) {
		p.timeout = d
	}
}

// WithConcurrency limits how many deployments PollAll polls at once
func WithConcurrency(n int) Option {
	return func(p *Poller) {
		p.concurrency = n
	}
}

// WithSinkFactory sets where deployment log entries are emitted
func WithSinkFactory(f func(deploymentID string) LogSink) Option {
	return func(p *Poller) {
		p.newSink = f
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Poller) {
		p.metrics = m
	}
}

func New(client DeploymentGetter, log logrus.FieldLogger, opts ...Option) *Poller {
	p := &Poller{
		client:      client,
		log:         log,
		interval:    DefaultInterval,
		concurrency: DefaultConcurrency,
	}
	p.newSink = func(deploymentID string) LogSink {
		return NewLogrusSink(p.log.WithField("deployment_id", deploymentID))
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PollUntilTerminal polls the deployment until it is Completed, Failed or Cancelled and returns
// the terminal response. Errors from the API client are returned unmodified.
func (p *Poller) PollUntilTerminal(ctx context.Context, deploymentID string, emitLogs bool) (*jaws.DeploymentStatus, error) {
	if deploymentID == "" {
		return nil, fmt.Errorf("polling deployment: missing deployment id")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	log := p.log.WithField("deployment_id", deploymentID)
	var sink LogSink
	if emitLogs {
		sink = p.newSink(deploymentID)
	}

	req := jaws.DeploymentStatusRequest{
		DeploymentID: deploymentID,
		SkipLogs:     !emitLogs,
	}

	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return nil, stopped(deploymentID, err)
		}

		status, err := p.client.GetDeployment(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, stopped(deploymentID, ctx.Err())
			}
			return nil, err
		}
		if status == nil {
			return nil, &jaws.APIError{Op: "getting deployment", Status: "empty response"}
		}
		p.metrics.Poll(ctx, status.Status)

		if emitLogs {
			for _, entry := range status.Logs {
				sink.Emit(entry)
				p.metrics.LogEntry(ctx, entry.Level)
			}
		}

		if status.IsTerminal() {
			p.metrics.Finished(ctx, status.Status, time.Since(start))
			log.WithFields(logrus.Fields{
				"status":      status.Status,
				"error_count": status.ErrorCount,
			}).Info("deployment finished")
			return status, nil
		}

		log.WithField("status", status.Status).Debug("deployment in progress")

		t := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, stopped(deploymentID, ctx.Err())
		case <-t.C:
		}

		if emitLogs {
			req.GetLogsAfter = ptr.To(status.LastLogDateTick)
		}
	}
}

// PollAll polls every deployment concurrently and returns once all of them are terminal.
// The first failure cancels the remaining polls.
func (p *Poller) PollAll(ctx context.Context, deploymentIDs []string, emitLogs bool) (map[string]*jaws.DeploymentStatus, error) {
	ids := unique(deploymentIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("polling deployments: no deployment ids")
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	var lock sync.Mutex
	ret := make(map[string]*jaws.DeploymentStatus, len(ids))
	for _, id := range ids {
		id := id
		g.Go(func() error {
			status, err := p.PollUntilTerminal(ctx, id, emitLogs)
			if err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			ret[id] = status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

func stopped(deploymentID string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("polling deployment %s: %w", deploymentID, ErrDeadlineExceeded)
	}
	return fmt.Errorf("polling deployment %s: %w", deploymentID, ErrCancelled)
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	ret := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ret = append(ret, id)
	}
	return ret
}
