package vector

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
)

type Hash string

const (
	MD5    Hash = "MD5"
	SHA224 Hash = "SHA-224"
	SHA256 Hash = "SHA-256"
)

// Size returns the digest length in bytes.
func (h Hash) Size() int {
	switch h {
	case MD5:
		return md5.Size
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	}
	return 0
}

// Digest hashes the ASCII label with h.
func Digest(h Hash, label string) ([]byte, error) {
	in := []byte(label)
	switch h {
	case MD5:
		sum := md5.Sum(in)
		return sum[:], nil
	case SHA224:
		sum := sha256.Sum224(in)
		return sum[:], nil
	case SHA256:
		sum := sha256.Sum256(in)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("unsupported hash %q", string(h))
	}
}
