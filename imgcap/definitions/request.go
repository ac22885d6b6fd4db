package definitions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Size is a capture resolution in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// BuiltinSizes are the named presets every installation supports.
// A config file may add presets but never removes these.
var BuiltinSizes = map[string]Size{
	"small":  {Width: 640, Height: 480},
	"medium": {Width: 1640, Height: 1232},
	"large":  {Width: 1920, Height: 1080},
}

// ResolveSize maps a case-insensitive preset name to its resolution.
// Only preset names are accepted; literal "WxH" strings are not.
func ResolveSize(presets map[string]Size, name string) (Size, error) {
	if name == "" {
		return Size{}, &Error{
			Kind: InvalidSize,
			Msg:  fmt.Sprintf("size is required: use one of %s", strings.Join(PresetNames(presets), ", ")),
		}
	}
	if size, ok := presets[strings.ToLower(name)]; ok {
		return size, nil
	}
	return Size{}, &Error{
		Kind: InvalidSize,
		Msg:  fmt.Sprintf("invalid size %q: use one of %s", name, strings.Join(PresetNames(presets), ", ")),
	}
}

// PresetNames returns the sorted preset names.
func PresetNames(presets map[string]Size) []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}

// NormalizeFilename appends ".png" unless the name already ends with it
// (case-insensitive).
func NormalizeFilename(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".png") {
		return name
	}
	return name + ".png"
}

// CaptureRequest carries the validated parameters for one capture run.
type CaptureRequest struct {
	Device      string `json:"device"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	OutputDir   string `json:"output_dir"`
	Filename    string `json:"filename"`
	ShowResults bool   `json:"show_results"`
}
