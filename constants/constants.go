package constants

import "time"

const (
	// External tools. Paths may be overridden by the config file.
	GrabberTool   = "v4l2-ctl"
	ConverterTool = "convert"
	ViewerTool    = "weston-image"

	// Raw Bayer format requested from the device and the bit depth
	// handed to the converter. The converter reads the raw file as
	// 8-bit grayscale, which matches a single Bayer plane.
	PixelFormat = "RGGB"
	RawDepth    = "8"

	// Ancillary device control applied before streaming.
	AuxControlName  = "alpha_component"
	AuxControlValue = "255"

	DefaultFilename  = "frame.png"
	DefaultOutputDir = "."

	// TempFilePattern is expanded with a per-run UUID.
	TempFilePattern = "imgcap_%s.raw"

	ProbeTimeout = 5 * time.Second
)

// HelpEpilog is expanded with fasttemplate before cobra sees it.
const HelpEpilog = `Size presets:
{{ sizes }}

Only preset names are accepted for --size; literal WxH strings are not.

Examples:
  imgcap /dev/video2 --size medium
  imgcap /dev/video2 --size large --filename my_photo.png --output_dir /home/user/photos
  imgcap /dev/video3 --size large --show_results

Note: an interrupt during capture may leave the device half-configured;
the device format is external state this tool cannot roll back.
`
