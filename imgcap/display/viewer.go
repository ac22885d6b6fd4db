package display

import (
	"context"

	"github.com/alvictal/imgcap-go/imgcap/definitions"
)

// Viewer renders a finished image on the attached display. Its failure
// never fails a capture; producing the file is the primary contract.
type Viewer struct {
	tool   string
	runner definitions.ToolRunner
}

func NewViewer(tool string, runner definitions.ToolRunner) *Viewer {
	return &Viewer{tool: tool, runner: runner}
}

func (v *Viewer) Show(ctx context.Context, path string) (*definitions.ProcessResult, error) {
	return v.runner.Run(ctx, v.tool, path)
}
