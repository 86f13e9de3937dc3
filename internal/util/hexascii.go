package util

import (
	"encoding/hex"
	"strings"
)

var hexSeparators = strings.NewReplacer(" ", "", ":", "", "\t", "")

// DecodeHex accepts hex with optional space or colon separators, as pasted
// from .rsp files or openssl output.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.ToLower(hexSeparators.Replace(strings.TrimSpace(s))))
}
