package utils

import (
	json "github.com/bytedance/sonic"
)

// JsonIndent renders obj as indented JSON for human-readable dumps.
// Marshal errors yield an empty string; this is display-only output.
func JsonIndent(obj any) string {
	jsonStr, _ := json.MarshalIndent(obj, "", "  ")
	return string(jsonStr)
}
