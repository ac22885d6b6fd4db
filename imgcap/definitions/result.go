package definitions

import "context"

// ProcessResult is the captured outcome of one external tool invocation.
type ProcessResult struct {
	Succeeded bool   `json:"succeeded"`
	Stdout    string `json:"stdout"`
	Stderr    string `json:"stderr"`
}

// ToolRunner runs an external command and captures its output.
// The exec-backed implementation lives in imgcap/toolexec; tests
// substitute recording or scripted fakes.
type ToolRunner interface {
	Run(ctx context.Context, name string, args ...string) (*ProcessResult, error)
}
