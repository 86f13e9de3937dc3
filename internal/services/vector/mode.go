package vector

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/andreburgaud/crypt2go/ecb"
)

type Mode string

const (
	ECB    Mode = "ECB"
	CBC    Mode = "CBC"
	OFB    Mode = "OFB"
	CFB128 Mode = "CFB128"
	CFB8   Mode = "CFB8"
)

func (m Mode) NeedsIV() bool { return m != ECB }

// Stream modes keep the plaintext length and accept any input size.
func (m Mode) Stream() bool {
	return m == OFB || m == CFB128 || m == CFB8
}

// SegmentBits is the CFB feedback size; zero for the other modes.
func (m Mode) SegmentBits() int {
	switch m {
	case CFB128:
		return 128
	case CFB8:
		return 8
	}
	return 0
}

func newBlock(key []byte) (cipher.Block, error) {
	blk, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes key (%d bytes): %w", len(key), err)
	}
	return blk, nil
}

func checkIV(m Mode, iv []byte) error {
	if m.NeedsIV() && len(iv) != aes.BlockSize {
		return fmt.Errorf("%s: %w, got %d", m, ErrIVSize, len(iv))
	}
	return nil
}

func checkAligned(m Mode, in []byte) error {
	if !m.Stream() && len(in)%aes.BlockSize != 0 {
		return fmt.Errorf("%s: %w, got %d bytes", m, ErrBlockAlignment, len(in))
	}
	return nil
}

// Encrypt runs AES in mode m over pt. Block modes take no padding, so pt must
// already be a multiple of 16 bytes for ECB and CBC.
func Encrypt(m Mode, key, iv, pt []byte) ([]byte, error) {
	blk, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(m, iv); err != nil {
		return nil, err
	}
	if err := checkAligned(m, pt); err != nil {
		return nil, err
	}
	out := make([]byte, len(pt))
	switch m {
	case ECB:
		ecb.NewECBEncrypter(blk).CryptBlocks(out, pt)
	case CBC:
		cipher.NewCBCEncrypter(blk, iv).CryptBlocks(out, pt)
	case OFB:
		cipher.NewOFB(blk, iv).XORKeyStream(out, pt)
	case CFB128:
		cipher.NewCFBEncrypter(blk, iv).XORKeyStream(out, pt)
	case CFB8:
		newCFB8(blk, iv, false).XORKeyStream(out, pt)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedMode, string(m))
	}
	return out, nil
}

func Decrypt(m Mode, key, iv, ct []byte) ([]byte, error) {
	blk, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(m, iv); err != nil {
		return nil, err
	}
	if err := checkAligned(m, ct); err != nil {
		return nil, err
	}
	out := make([]byte, len(ct))
	switch m {
	case ECB:
		ecb.NewECBDecrypter(blk).CryptBlocks(out, ct)
	case CBC:
		cipher.NewCBCDecrypter(blk, iv).CryptBlocks(out, ct)
	case OFB:
		cipher.NewOFB(blk, iv).XORKeyStream(out, ct)
	case CFB128:
		cipher.NewCFBDecrypter(blk, iv).XORKeyStream(out, ct)
	case CFB8:
		newCFB8(blk, iv, true).XORKeyStream(out, ct)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedMode, string(m))
	}
	return out, nil
}
