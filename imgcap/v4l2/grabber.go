package v4l2

import (
	"context"
	"fmt"

	"github.com/alvictal/imgcap-go/imgcap/definitions"
)

// Grabber wraps the frame-grabber utility (v4l2-ctl) for the handful of
// directives this tool needs. Each method issues exactly one invocation.
type Grabber struct {
	tool   string
	runner definitions.ToolRunner
}

func NewGrabber(tool string, runner definitions.ToolRunner) *Grabber {
	return &Grabber{tool: tool, runner: runner}
}

// SetFormat configures the device capture format.
func (g *Grabber) SetFormat(ctx context.Context, device string, width, height int, pixelFormat string) (*definitions.ProcessResult, error) {
	args := []string{
		"--device", device,
		fmt.Sprintf("--set-fmt-video=width=%d,height=%d,pixelformat=%s", width, height, pixelFormat),
	}
	return g.runner.Run(ctx, g.tool, args...)
}

// SetControl sets a single device control to a fixed value.
func (g *Grabber) SetControl(ctx context.Context, device, name, value string) (*definitions.ProcessResult, error) {
	args := []string{
		"--device", device,
		fmt.Sprintf("--set-ctrl=%s=%s", name, value),
	}
	return g.runner.Run(ctx, g.tool, args...)
}

// StreamFrame streams exactly one raw frame from the device into dest.
func (g *Grabber) StreamFrame(ctx context.Context, device, dest string) (*definitions.ProcessResult, error) {
	args := []string{
		"--device", device,
		"--stream-mmap",
		"--stream-to=" + dest,
		"--stream-count=1",
	}
	return g.runner.Run(ctx, g.tool, args...)
}

// ListFormats probes the device by asking for its supported formats.
// Used only as a device-availability check.
func (g *Grabber) ListFormats(ctx context.Context, device string) (*definitions.ProcessResult, error) {
	args := []string{
		"--device", device,
		"--list-formats-ext",
	}
	return g.runner.Run(ctx, g.tool, args...)
}
