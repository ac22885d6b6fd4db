package imgcap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alvictal/imgcap-go/imgcap/definitions"
)

func TestValidateDevice_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video9")

	err := ValidateDevice(path)
	if definitions.KindOf(err) != definitions.DeviceNotFound {
		t.Fatalf("kind = %q, want DeviceNotFound (%v)", definitions.KindOf(err), err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error %q should say the device does not exist", err.Error())
	}
}

func TestValidateDevice_Readable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video2")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("create fake device: %v", err)
	}

	if err := ValidateDevice(path); err != nil {
		t.Errorf("ValidateDevice: %v", err)
	}
}

func TestValidateDevice_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	path := filepath.Join(t.TempDir(), "video2")
	if err := os.WriteFile(path, nil, 0o000); err != nil {
		t.Fatalf("create fake device: %v", err)
	}

	err := ValidateDevice(path)
	if definitions.KindOf(err) != definitions.PermissionDenied {
		t.Fatalf("kind = %q, want PermissionDenied (%v)", definitions.KindOf(err), err)
	}
}
