package utils

import (
	"encoding/json"
	"os"
	"strings"
)

// DecodeImageList reads a product's images column. Current rows hold a JSON
// array of URLs; legacy rows hold a bare URL string (sometimes quoted).
func DecodeImageList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}

	if s := strings.TrimSpace(string(raw)); s != "" {
		return []string{s}
	}
	return nil
}

// ResolveImageRef turns an image reference from a cart payload into an
// absolute URL. Accepts a plain URL, a relative path, or a JSON-encoded
// array (first entry wins).
func ResolveImageRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "[") || strings.HasPrefix(ref, "\"") {
		if list := DecodeImageList([]byte(ref)); len(list) > 0 {
			ref = list[0]
		}
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	base := strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}
