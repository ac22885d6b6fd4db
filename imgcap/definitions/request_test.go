package definitions

import (
	"strings"
	"testing"
)

func TestResolveSize_KnownPresets(t *testing.T) {
	cases := []struct {
		name   string
		width  int
		height int
	}{
		{"small", 640, 480},
		{"medium", 1640, 1232},
		{"large", 1920, 1080},
	}

	for _, c := range cases {
		size, err := ResolveSize(BuiltinSizes, c.name)
		if err != nil {
			t.Fatalf("ResolveSize(%q): %v", c.name, err)
		}
		if size.Width != c.width || size.Height != c.height {
			t.Errorf("ResolveSize(%q) = %v, want %dx%d", c.name, size, c.width, c.height)
		}
	}
}

func TestResolveSize_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"Large", "LARGE", "lArGe"} {
		size, err := ResolveSize(BuiltinSizes, name)
		if err != nil {
			t.Fatalf("ResolveSize(%q): %v", name, err)
		}
		if size.Width != 1920 || size.Height != 1080 {
			t.Errorf("ResolveSize(%q) = %v, want 1920x1080", name, size)
		}
	}
}

func TestResolveSize_UnknownListsPresets(t *testing.T) {
	_, err := ResolveSize(BuiltinSizes, "bogus")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if KindOf(err) != InvalidSize {
		t.Errorf("kind = %q, want %q", KindOf(err), InvalidSize)
	}
	for _, name := range []string{"small", "medium", "large"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should list preset %q", err.Error(), name)
		}
	}
}

func TestResolveSize_NoNumericStrings(t *testing.T) {
	// Only preset names are valid; literal WxH is rejected.
	if _, err := ResolveSize(BuiltinSizes, "640x480"); KindOf(err) != InvalidSize {
		t.Errorf("expected InvalidSize for %q, got %v", "640x480", err)
	}
}

func TestResolveSize_EmptyName(t *testing.T) {
	_, err := ResolveSize(BuiltinSizes, "")
	if KindOf(err) != InvalidSize {
		t.Fatalf("expected InvalidSize for empty name, got %v", err)
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error %q should say the size is required", err.Error())
	}
}

func TestPresetNames_Sorted(t *testing.T) {
	names := PresetNames(BuiltinSizes)
	want := []string{"large", "medium", "small"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNormalizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"frame.png", "frame.png"},
		{"frame.PNG", "frame.PNG"},
		{"frame.PnG", "frame.PnG"},
		{"frame", "frame.png"},
		{"frame.jpg", "frame.jpg.png"},
		{"frame.png.bak", "frame.png.bak.png"},
	}

	for _, c := range cases {
		if got := NormalizeFilename(c.in); got != c.want {
			t.Errorf("NormalizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeFilename_Idempotent(t *testing.T) {
	once := NormalizeFilename("shot")
	twice := NormalizeFilename(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q vs %q", once, twice)
	}
}
