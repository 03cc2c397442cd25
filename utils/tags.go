package utils

import "strings"

// NormalizeTags splits comma-separated free text into an ordered tag list.
// Segments are trimmed and empty segments dropped. Order is preserved and
// duplicates are not removed.
func NormalizeTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
