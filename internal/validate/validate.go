package validate

import (
	"errors"
	"fmt"

	"github.com/nais/jaws-deploy/internal/jaws"
)

var (
	ErrMissingResult    = errors.New("deployment result is missing")
	ErrMissingStatus    = errors.New("deployment result has no status")
	ErrUnexpectedStatus = errors.New("deployment did not complete")
	ErrDeploymentErrors = errors.New("deployment completed with errors")
)

// ValidationError describes why a finished deployment is not acceptable.
// It unwraps to exactly one of the Err* values in this package.
type ValidationError struct {
	DeploymentID string
	Status       string
	ErrorCount   int
	Err          error
}

func (e *ValidationError) Error() string {
	prefix := "deployment"
	if e.DeploymentID != "" {
		prefix = "deployment " + e.DeploymentID
	}

	switch e.Err {
	case ErrUnexpectedStatus:
		return fmt.Sprintf("%s finished with status %q, expected %q", prefix, e.Status, jaws.StatusCompleted)
	case ErrDeploymentErrors:
		return fmt.Sprintf("%s completed with %d error(s)", prefix, e.ErrorCount)
	case ErrMissingStatus:
		return fmt.Sprintf("%s: result has no status", prefix)
	default:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that a deployment completed without errors. Checks run in order and the first
// violated one is reported.
func Validate(result *jaws.DeploymentStatus) error {
	if result == nil {
		return &ValidationError{Err: ErrMissingResult}
	}

	e := &ValidationError{
		DeploymentID: result.DeploymentID,
		Status:       result.Status,
		ErrorCount:   result.ErrorCount,
	}

	switch {
	case result.Status == "":
		e.Err = ErrMissingStatus
	case result.Status != jaws.StatusCompleted:
		e.Err = ErrUnexpectedStatus
	case result.ErrorCount != 0:
		e.Err = ErrDeploymentErrors
	default:
		return nil
	}
	return e
}

// All validates the result of every deployment id, in order, and joins the failures.
func All(deploymentIDs []string, results map[string]*jaws.DeploymentStatus) error {
	if len(deploymentIDs) == 0 {
		return &ValidationError{Err: ErrMissingResult}
	}

	var errs []error
	for _, id := range deploymentIDs {
		if err := Validate(results[id]); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) && verr.DeploymentID == "" {
				verr.DeploymentID = id
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
