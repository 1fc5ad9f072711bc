package libdiff

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the JSON merge patch taking from to to. Removed
// numbers map to null.
func MergePatch(from, to map[string]string) ([]byte, error) {
	a, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
