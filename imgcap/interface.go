package imgcap

import (
	"github.com/alvictal/imgcap-go/imgcap/definitions"
	"github.com/alvictal/imgcap-go/imgcap/toolexec"
)

// CreateRunner returns the exec-backed ToolRunner. Tests hand the
// Orchestrator a fake instead.
func CreateRunner() definitions.ToolRunner {
	return toolexec.New()
}
