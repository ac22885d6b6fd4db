package imgcap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alvictal/imgcap-go/config"
	"github.com/alvictal/imgcap-go/constants"
	"github.com/alvictal/imgcap-go/imgcap/definitions"
	"github.com/alvictal/imgcap-go/imgcap/display"
	"github.com/alvictal/imgcap-go/imgcap/magick"
	"github.com/alvictal/imgcap-go/imgcap/v4l2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Orchestrator runs the fixed capture pipeline: validate the device,
// configure its format, stream one raw frame into a temporary file,
// convert it to PNG, and optionally display the result. Steps run
// strictly in sequence; each depends on side effects of the previous
// one (device state, the raw file on disk).
type Orchestrator struct {
	grabber      *v4l2.Grabber
	converter    *magick.Converter
	viewer       *display.Viewer
	auxControl   *config.ControlConfig
	probeTimeout time.Duration
	skipProbe    bool
}

func New(cfg *config.Config, runner definitions.ToolRunner, skipProbe bool) *Orchestrator {
	return &Orchestrator{
		grabber:      v4l2.NewGrabber(cfg.Tools.Grabber, runner),
		converter:    magick.NewConverter(cfg.Tools.Converter, runner),
		viewer:       display.NewViewer(cfg.Tools.Viewer, runner),
		auxControl:   cfg.AuxControl,
		probeTimeout: cfg.ProbeTimeout(),
		skipProbe:    skipProbe,
	}
}

// Capture runs the pipeline for one request and returns the final
// output path. The temporary raw file is removed on every exit path.
// Display failure is non-fatal; producing the file is the contract.
func (o *Orchestrator) Capture(ctx context.Context, req *definitions.CaptureRequest) (string, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return "", &definitions.Error{
			Kind: definitions.InvalidSize,
			Msg:  fmt.Sprintf("invalid capture size %dx%d", req.Width, req.Height),
		}
	}

	if err := ValidateDevice(req.Device); err != nil {
		return "", err
	}

	if !o.skipProbe {
		if err := o.probeDevice(ctx, req.Device); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return "", &definitions.Error{
			Kind: definitions.OutputDirError,
			Msg:  fmt.Sprintf("creating output directory %s failed", req.OutputDir),
			Err:  err,
		}
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf(constants.TempFilePattern, uuid.New().String()))
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", tempPath).Msg("failed to remove temporary raw file")
		}
	}()

	finalPath := filepath.Join(req.OutputDir, definitions.NormalizeFilename(req.Filename))

	// Step A: set the device capture format.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	res, err := o.grabber.SetFormat(ctx, req.Device, req.Width, req.Height, constants.PixelFormat)
	if err != nil {
		return "", stepError(definitions.FormatConfigError, "setting video format failed", res, err)
	}

	// Step A2: ancillary control. A device that rejects it can still
	// stream, so failure is logged and the pipeline continues.
	if o.auxControl != nil && o.auxControl.Name != "" {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		res, err := o.grabber.SetControl(ctx, req.Device, o.auxControl.Name, o.auxControl.Value)
		if err != nil {
			log.Warn().Err(err).
				Str("control", o.auxControl.Name).
				Str("stderr", stderrOf(res)).
				Msg("setting device control failed, continuing")
		}
	}

	// Step B: stream exactly one raw frame into the temp file. No retry.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	res, err = o.grabber.StreamFrame(ctx, req.Device, tempPath)
	if err != nil {
		return "", stepError(definitions.CaptureError, "capturing frame failed", res, err)
	}

	// Step C: convert the raw frame to the final PNG.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	res, err = o.converter.RawToPNG(ctx, req.Width, req.Height, tempPath, finalPath)
	if err != nil {
		return "", stepError(definitions.ConversionError, "converting to PNG failed", res, err)
	}

	// Step D: optional display, never fatal.
	if req.ShowResults {
		if res, err := o.viewer.Show(ctx, finalPath); err != nil {
			log.Warn().Err(err).
				Str("stderr", stderrOf(res)).
				Msg("showing the result failed")
		}
	}

	return finalPath, nil
}

func stepError(kind definitions.Kind, msg string, res *definitions.ProcessResult, err error) error {
	return &definitions.Error{Kind: kind, Msg: msg, Stderr: stderrOf(res), Err: err}
}

func stderrOf(res *definitions.ProcessResult) string {
	if res == nil {
		return ""
	}
	return res.Stderr
}
