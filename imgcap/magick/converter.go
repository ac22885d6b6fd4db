package magick

import (
	"context"
	"fmt"

	"github.com/alvictal/imgcap-go/constants"
	"github.com/alvictal/imgcap-go/imgcap/definitions"
)

// Converter wraps the ImageMagick convert binary for raw-to-PNG
// conversion. The raw input is read as 8-bit grayscale at the known
// capture dimensions.
type Converter struct {
	tool   string
	runner definitions.ToolRunner
}

func NewConverter(tool string, runner definitions.ToolRunner) *Converter {
	return &Converter{tool: tool, runner: runner}
}

// RawToPNG converts the raw frame at rawPath into a PNG at outPath.
func (c *Converter) RawToPNG(ctx context.Context, width, height int, rawPath, outPath string) (*definitions.ProcessResult, error) {
	args := []string{
		"-size", fmt.Sprintf("%dx%d", width, height),
		"-depth", constants.RawDepth,
		"gray:" + rawPath,
		outPath,
	}
	return c.runner.Run(ctx, c.tool, args...)
}
