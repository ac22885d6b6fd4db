package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alvictal/imgcap-go/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imgcap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Tools.Grabber != constants.GrabberTool {
		t.Errorf("grabber = %q, want %q", cfg.Tools.Grabber, constants.GrabberTool)
	}
	if cfg.AuxControl == nil || cfg.AuxControl.Name != constants.AuxControlName {
		t.Errorf("aux control should default to %s", constants.AuxControlName)
	}
	if cfg.ProbeTimeout() != constants.ProbeTimeout {
		t.Errorf("probe timeout = %v, want %v", cfg.ProbeTimeout(), constants.ProbeTimeout)
	}
}

func TestLoad_AppliesDefaultsToOmittedFields(t *testing.T) {
	path := writeConfig(t, "tools:\n  grabber: /opt/v4l/v4l2-ctl\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tools.Grabber != "/opt/v4l/v4l2-ctl" {
		t.Errorf("grabber = %q, want override", cfg.Tools.Grabber)
	}
	if cfg.Tools.Converter != constants.ConverterTool {
		t.Errorf("converter = %q, want default %q", cfg.Tools.Converter, constants.ConverterTool)
	}
	if cfg.AuxControl == nil || cfg.AuxControl.Name != constants.AuxControlName {
		t.Error("omitted aux_control should default")
	}
	if cfg.ProbeTimeout() != constants.ProbeTimeout {
		t.Errorf("probe timeout = %v, want default", cfg.ProbeTimeout())
	}
}

func TestLoad_DisabledAuxControl(t *testing.T) {
	path := writeConfig(t, "aux_control:\n  name: \"\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AuxControl.Name != "" {
		t.Errorf("explicit empty aux control name should disable the step, got %q", cfg.AuxControl.Name)
	}
}

func TestLoad_RejectsBadPreset(t *testing.T) {
	path := writeConfig(t, "presets:\n  tiny:\n    width_px: 0\n    height_px: 120\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for preset with zero width")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "tools: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestSizes_MergesExtraPresets(t *testing.T) {
	path := writeConfig(t, "presets:\n  Huge:\n    width_px: 3840\n    height_px: 2160\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sizes := cfg.Sizes()
	if s, ok := sizes["huge"]; !ok || s.Width != 3840 || s.Height != 2160 {
		t.Errorf("extra preset missing or wrong: %v, ok=%v", s, ok)
	}
	if s := sizes["small"]; s.Width != 640 || s.Height != 480 {
		t.Errorf("built-in preset must survive merge, got %v", s)
	}
	if len(sizes) != 4 {
		t.Errorf("expected 4 presets, got %d", len(sizes))
	}
}
