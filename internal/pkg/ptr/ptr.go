package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// TrimmedOrNil returns nil for nil or blank strings.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
