package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// GenUUID16 returns a 16-char request id derived from a v4 uuid.
func GenUUID16() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
