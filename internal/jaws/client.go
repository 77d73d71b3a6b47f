package jaws

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultBaseURL = "https://app.jawsdeploy.net/api"

	EnvLogin    = "JAWS_API_LOGIN"
	EnvPassword = "JAWS_API_PASSWORD"

	// maxErrorBody caps how much of an error response is kept in an APIError
	maxErrorBody = 4 << 10
)

type Config struct {
	BaseURL  string
	Login    string
	Password string

	// CorrelationID is sent with every request. A random one is generated when empty.
	CorrelationID string

	// HTTPClient is used as the base transport. Defaults to http.DefaultTransport.
	HTTPClient *http.Client
}

type Client struct {
	baseURL       *url.URL
	correlationID string
	httpClient    *http.Client
	log           logrus.FieldLogger
	errors        metric.Int64Counter
}

func New(cfg Config, errors metric.Int64Counter, log logrus.FieldLogger) (*Client, error) {
	if cfg.Login == "" {
		return nil, &ConfigurationError{Field: "login", EnvVar: EnvLogin}
	}
	if cfg.Password == "" {
		return nil, &ConfigurationError{Field: "password", EnvVar: EnvPassword}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, &ConfigurationError{Field: "api-url", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConfigurationError{Field: "api-url", Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}

	if cfg.CorrelationID == "" {
		cfg.CorrelationID = uuid.NewString()
	}

	var base http.RoundTripper
	if cfg.HTTPClient != nil {
		base = cfg.HTTPClient.Transport
	}

	return &Client{
		baseURL:       u,
		correlationID: cfg.CorrelationID,
		httpClient: Transport{
			Login:         cfg.Login,
			Password:      cfg.Password,
			CorrelationID: cfg.CorrelationID,
			Base:          base,
		}.Client(),
		log:    log.WithField("correlation_id", cfg.CorrelationID),
		errors: errors,
	}, nil
}

// CorrelationID returns the id attached to every request made by this client.
func (c *Client) CorrelationID() string {
	return c.correlationID
}

func (c *Client) CreateRelease(ctx context.Context, r CreateReleaseRequest) (*Release, error) {
	release := &Release{}
	if err := c.do(ctx, "creating release", http.MethodPost, "release", nil, r, release); err != nil {
		return nil, err
	}
	if release.Version == "" {
		release.Version = r.Version
	}

	c.log.WithFields(logrus.Fields{
		"project_id": r.ProjectID,
		"release_id": release.ReleaseID,
		"version":    release.Version,
	}).Info("release created")
	return release, nil
}

func (c *Client) DeployRelease(ctx context.Context, r DeployReleaseRequest) (*DeploymentIDs, error) {
	ids := &DeploymentIDs{}
	if err := c.do(ctx, "deploying release", http.MethodPost, "release/deploy", nil, r, ids); err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"release_id":     r.ReleaseID,
		"environments":   r.Environments,
		"deployment_ids": ids.DeploymentIDs,
	}).Info("release deployed")
	return ids, nil
}

func (c *Client) PromoteRelease(ctx context.Context, r PromoteReleaseRequest) (*DeploymentIDs, error) {
	ids := &DeploymentIDs{}
	if err := c.do(ctx, "promoting release", http.MethodPost, "release/promote", nil, r, ids); err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"project_id":     r.ProjectID,
		"version":        r.Version,
		"environments":   r.ToEnvironments,
		"deployment_ids": ids.DeploymentIDs,
	}).Info("release promoted")
	return ids, nil
}

// GetDeployment fetches the status of a deployment, including any log entries after the cursor.
func (c *Client) GetDeployment(ctx context.Context, r DeploymentStatusRequest) (*DeploymentStatus, error) {
	if r.DeploymentID == "" {
		return nil, fmt.Errorf("getting deployment: missing deployment id")
	}

	q := url.Values{}
	q.Set("deploymentId", r.DeploymentID)
	q.Set("skipLogs", fmt.Sprint(r.SkipLogs))
	if r.GetLogsAfter != nil {
		q.Set("getLogsAfter", fmt.Sprint(*r.GetLogsAfter))
	}

	status := &DeploymentStatus{}
	if err := c.do(ctx, "getting deployment", http.MethodGet, "deployment", q, nil, status); err != nil {
		return nil, err
	}
	if status.DeploymentID == "" {
		status.DeploymentID = r.DeploymentID
	}
	return status, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, respBody any) error {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return c.error(ctx, fmt.Errorf("%s: encoding request: %w", op, err), op)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return c.error(ctx, fmt.Errorf("%s: creating request: %w", op, err), op)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.error(ctx, &TransportError{Op: op, Err: err}, op)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.error(ctx, &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(b)),
		}, op)
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return c.error(ctx, &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        err,
		}, op)
	}

	return nil
}

// error counts and logs err, returning it unmodified so callers can match on its type.
func (c *Client) error(ctx context.Context, err error, msg string) error {
	if c.errors != nil {
		c.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("component", "jaws-client")))
	}
	c.log.WithError(err).Error(msg)
	return err
}
