// Package arr holds the boundary types shared by the Radarr and Sonarr
// clients: derived availability status, the error taxonomy, and the wire
// structs both services expose with the same shape.
package arr

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Status is the derived availability of a title in an automation service.
type Status string

const (
	// StatusNotFound means no library entry resolves for the title.
	StatusNotFound Status = "not_found"
	// StatusAdded means the title is in the library but not fully downloaded.
	StatusAdded Status = "added"
	// StatusAvailable means the title is fully downloaded.
	StatusAvailable Status = "available"
)

// Sentinel errors for add-operation preconditions.
var (
	// ErrNotFound indicates the title could not be resolved in the
	// external catalog or the service's library.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the title is already in the library.
	ErrAlreadyExists = errors.New("already in library")
)

// RequestError is a failed request to an automation service. It
// distinguishes timeouts, connection failures, and non-2xx responses.
type RequestError struct {
	Service string // "radarr" or "sonarr"
	Op      string
	Status  int   // HTTP status for non-2xx responses, 0 otherwise
	Err     error // underlying transport error, nil for status errors
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Service, e.Op, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Timeout reports whether the request failed by exceeding its deadline.
func (e *RequestError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ConnectionFailed reports whether the request never reached the service.
func (e *RequestError) ConnectionFailed() bool {
	return e.Err != nil && !e.Timeout()
}

// ConfigError indicates the target service has none of a required
// resource configured (root folders, quality profiles). It is fatal for
// the single add operation, not for the process.
type ConfigError struct {
	Service  string
	Resource string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no %s configured in %s", e.Resource, e.Service)
}

// QualityProfile is a configured quality profile.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a configured library root folder.
type RootFolder struct {
	ID        int64  `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace"`
}
