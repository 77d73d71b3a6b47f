package jaws

import (
	"time"
)

// Terminal deployment states. Any other status value means the deployment is still in progress.
const (
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
	StatusCancelled = "Cancelled"
)

// Log levels emitted by the deployment service.
const (
	LevelInformation = "Information"
	LevelWarning     = "Warning"
	LevelError       = "Error"
	LevelCritical    = "Critical"
)

type CreateReleaseRequest struct {
	ProjectID             string            `json:"projectId"`
	Version               string            `json:"version"`
	Notes                 string            `json:"notes,omitempty"`
	PackageVersions       map[string]string `json:"packageVersions,omitempty"`
	IgnoreMissingPackages bool              `json:"ignoreMissingPackages,omitempty"`
}

type Release struct {
	ReleaseID string `json:"releaseId" yaml:"releaseId"`
	Version   string `json:"version" yaml:"version"`
}

type DeployReleaseRequest struct {
	ReleaseID    string   `json:"releaseId"`
	Environments []string `json:"environments"`
	Tenants      []string `json:"tenants,omitempty"`
}

type PromoteReleaseRequest struct {
	ProjectID      string   `json:"projectId"`
	Version        string   `json:"version,omitempty"`
	ToEnvironments []string `json:"toEnvironments"`
	Tenants        []string `json:"tenants,omitempty"`
}

type DeploymentIDs struct {
	DeploymentIDs []string `json:"deploymentIds"`
}

// DeploymentStatusRequest is the payload of a status poll. GetLogsAfter is only set
// once a previous response has handed out a log cursor.
type DeploymentStatusRequest struct {
	DeploymentID string
	SkipLogs     bool
	GetLogsAfter *int64
}

type DeploymentStatus struct {
	DeploymentID    string     `json:"deploymentId" yaml:"deploymentId"`
	Status          string     `json:"status" yaml:"status"`
	ErrorCount      int        `json:"errorCount" yaml:"errorCount"`
	LastLogDateTick int64      `json:"lastLogDateTick" yaml:"lastLogDateTick"`
	Logs            []LogEntry `json:"logs,omitempty" yaml:"-"`
}

// IsTerminal reports whether the deployment has reached Completed, Failed or Cancelled.
// The match is exact; unknown values are treated as in progress.
func (d *DeploymentStatus) IsTerminal() bool {
	if d == nil {
		return false
	}
	switch d.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

type LogEntry struct {
	TimestampUTC time.Time `json:"timestampUtc"`
	Level        string    `json:"level"`
	Message      string    `json:"message"`
}
