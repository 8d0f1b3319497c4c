package utils

import (
	"time"

	"rsiboard/internal/consts"
)

func ContainsStr(slice []string, item string) bool {
	for _, e := range slice {
		if e == item {
			return true
		}
	}
	return false
}

// FormatTime renders a timestamp the way every response serializes it.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(consts.ResponseTimeLayout)
}
