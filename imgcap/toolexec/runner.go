package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alvictal/imgcap-go/imgcap/definitions"
	"github.com/rs/zerolog/log"
)

// Runner executes external tools with exec.CommandContext, capturing
// stdout and stderr separately.
type Runner struct{}

func New() *Runner {
	return &Runner{}
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (*definitions.ProcessResult, error) {
	fmt.Printf("Running: %s %s\n", name, strings.Join(args, " "))
	log.Debug().Str("cmd", fmt.Sprintf("%s %s", name, strings.Join(args, " "))).Msg("run external tool")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &definitions.ProcessResult{
		Succeeded: err == nil,
		Stdout:    strings.TrimSpace(stdout.String()),
		Stderr:    strings.TrimSpace(stderr.String()),
	}

	if result.Stdout != "" {
		fmt.Printf("Output: %s\n", result.Stdout)
	}

	if err != nil {
		log.Debug().Err(err).Str("stderr", result.Stderr).Msg("external tool failed")
		if errors.Is(err, exec.ErrNotFound) {
			return result, fmt.Errorf("command not found: %s, make sure it is installed and in PATH", name)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		return result, err
	}

	return result, nil
}
