package jaws

import (
	"fmt"
)

// ConfigurationError is returned when the client is constructed without a required setting.
type ConfigurationError struct {
	Field  string
	EnvVar string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		if e.EnvVar != "" {
			return fmt.Sprintf("invalid %s: %v", e.EnvVar, e.Err)
		}
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	if e.EnvVar == "" {
		return fmt.Sprintf("missing %s", e.Field)
	}
	return fmt.Sprintf("missing %s: set --%s or %s", e.Field, e.Field, e.EnvVar)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TransportError is a failure to get any HTTP response from the API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response, or a response body that could not be decoded.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Status, e.Body)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Status)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
