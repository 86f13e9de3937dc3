package vector

import "crypto/cipher"

// cfb8 is CFB with an 8-bit segment (SP 800-38A 6.3, s = 8). crypto/cipher only
// ships the full-block variant.
type cfb8 struct {
	b       cipher.Block
	reg     []byte
	ks      []byte
	decrypt bool
}

func newCFB8(b cipher.Block, iv []byte, decrypt bool) cipher.Stream {
	reg := make([]byte, len(iv))
	copy(reg, iv)
	return &cfb8{b: b, reg: reg, ks: make([]byte, b.BlockSize()), decrypt: decrypt}
}

func (x *cfb8) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("cfb8: output smaller than input")
	}
	for i, c := range src {
		x.b.Encrypt(x.ks, x.reg)
		out := c ^ x.ks[0]
		fb := out
		if x.decrypt {
			fb = c
		}
		copy(x.reg, x.reg[1:])
		x.reg[len(x.reg)-1] = fb
		dst[i] = out
	}
}
