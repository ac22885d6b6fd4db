package definitions

import (
	"errors"
	"fmt"
)

// Kind classifies a capture failure.
type Kind string

const (
	InvalidSize       Kind = "invalid_size"
	DeviceNotFound    Kind = "device_not_found"
	PermissionDenied  Kind = "permission_denied"
	DeviceUnavailable Kind = "device_unavailable"
	OutputDirError    Kind = "output_dir_error"
	FormatConfigError Kind = "format_config_error"
	AuxControlError   Kind = "aux_control_error"
	CaptureError      Kind = "capture_error"
	ConversionError   Kind = "conversion_error"
	DisplayError      Kind = "display_error"
)

// Error is a classified pipeline failure, carrying the external
// command's stderr when one was involved.
type Error struct {
	Kind   Kind
	Msg    string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s (stderr: %s)", msg, e.Stderr)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain.
// Returns "" when err carries no classification.
func KindOf(err error) Kind {
	var capErr *Error
	if errors.As(err, &capErr) {
		return capErr.Kind
	}
	return ""
}
