package imgcap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alvictal/imgcap-go/imgcap/definitions"
)

// ValidateDevice checks that the device path exists and is readable.
// It spawns no external process.
func ValidateDevice(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &definitions.Error{
				Kind: definitions.DeviceNotFound,
				Msg:  fmt.Sprintf("device %s does not exist", path),
			}
		}
		return &definitions.Error{
			Kind: definitions.DeviceNotFound,
			Msg:  fmt.Sprintf("device %s is not accessible", path),
			Err:  err,
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return &definitions.Error{
				Kind: definitions.PermissionDenied,
				Msg:  fmt.Sprintf("device %s is not readable", path),
				Err:  err,
			}
		}
		return &definitions.Error{
			Kind: definitions.DeviceUnavailable,
			Msg:  fmt.Sprintf("device %s cannot be opened", path),
			Err:  err,
		}
	}
	f.Close()

	return nil
}

// probeDevice asks the frame grabber for the device's formats under a
// bounded deadline. A timeout or non-zero exit means the device is not
// usable even though the path exists.
func (o *Orchestrator) probeDevice(ctx context.Context, device string) error {
	probeCtx, cancel := context.WithTimeout(ctx, o.probeTimeout)
	defer cancel()

	res, err := o.grabber.ListFormats(probeCtx, device)
	if err != nil {
		msg := fmt.Sprintf("device %s is not usable by the frame grabber", device)
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("probing device %s timed out", device)
		}
		return &definitions.Error{
			Kind:   definitions.DeviceUnavailable,
			Msg:    msg,
			Stderr: stderrOf(res),
			Err:    err,
		}
	}
	return nil
}
