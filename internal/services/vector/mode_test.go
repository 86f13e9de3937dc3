package vector

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

const (
	sp38aPlaintext = "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411e5fbc1191a0a52eff69f2445df4f9b17ad2b417be66c3710"
	sp38aKey128    = "2b7e151628aed2a6abf7158809cf4f3c"
	sp38aIV        = "000102030405060708090a0b0c0d0e0f"
)

// SP 800-38A appendix F.
func TestModesSP80038A(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		key  string
		iv   string
		pt   string
		ct   string
	}{
		{"F.1.1 ECB-AES128", ECB, sp38aKey128, "", sp38aPlaintext,
			"3ad77bb40d7a3660a89ecaf32466ef97f5d3d58503b9699de785895a96fdbaaf43b1cd7f598ece23881b00e3ed0306887b0c785e27e8ad3f8223207104725dd4"},
		{"F.1.3 ECB-AES192", ECB, "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", "", sp38aPlaintext,
			"bd334f1d6e45f25ff712a214571fa5cc974104846d0ad3ad7734ecb3ecee4eefef7afd2270e2e60adce0ba2face6444e9a4b41ba738d6c72fb16691603c18e0e"},
		{"F.1.5 ECB-AES256", ECB, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", "", sp38aPlaintext,
			"f3eed1bdb5d2a03c064b5a7e3db181f8591ccb10d410ed26dc5ba74a31362870b6ed21b99ca6f4f9f153e7b1beafed1d23304b7a39f9f3ff067d8d8f9e24ecc7"},
		{"F.2.1 CBC-AES128", CBC, sp38aKey128, sp38aIV, sp38aPlaintext,
			"7649abac8119b246cee98e9b12e9197d5086cb9b507219ee95db113a917678b273bed6b8e3c1743b7116e69e222295163ff1caa1681fac09120eca307586e1a7"},
		{"F.3.7 CFB8-AES128", CFB8, sp38aKey128, sp38aIV, "6bc1bee22e409f96e93d7e117393172aae2d",
			"3b79424c9c0dd436bace9e0ed4586a4f32b9"},
		{"F.3.13 CFB128-AES128", CFB128, sp38aKey128, sp38aIV, sp38aPlaintext,
			"3b3fd92eb72dad20333449f8e83cfb4ac8a64537a0b3a93fcde3cdad9f1ce58b26751f67a3cbb140b1808cf187a4f4dfc04b05357c5d1c0eeac4c66f9ff7f2e6"},
		{"F.4.1 OFB-AES128", OFB, sp38aKey128, sp38aIV, sp38aPlaintext,
			"3b3fd92eb72dad20333449f8e83cfb4a7789508d16918f03f53c52dac54ed8259740051e9c5fecf64344f7a82260edcc304c6528f659c77866a510d9c1d6ae5e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, pt, want := mustHex(t, tt.key), mustHex(t, tt.pt), mustHex(t, tt.ct)
			var iv []byte
			if tt.iv != "" {
				iv = mustHex(t, tt.iv)
			}
			ct, err := Encrypt(tt.mode, key, iv, pt)
			require.NoError(t, err)
			require.Equal(t, hex.EncodeToString(want), hex.EncodeToString(ct))

			back, err := Decrypt(tt.mode, key, iv, ct)
			require.NoError(t, err)
			require.Equal(t, pt, back)
		})
	}
}

func TestEncryptRejectsUnalignedBlockModes(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	pt := make([]byte, SHA224.Size())

	_, err := Encrypt(ECB, key, nil, pt)
	require.ErrorIs(t, err, ErrBlockAlignment)
	_, err = Encrypt(CBC, key, iv, pt)
	require.ErrorIs(t, err, ErrBlockAlignment)
	_, err = Decrypt(CBC, key, iv, pt)
	require.ErrorIs(t, err, ErrBlockAlignment)

	for _, m := range []Mode{OFB, CFB128, CFB8} {
		ct, err := Encrypt(m, key, iv, pt)
		require.NoError(t, err, m)
		require.Len(t, ct, len(pt), m)
	}
}

func TestEncryptChecksKeyAndIV(t *testing.T) {
	_, err := Encrypt(ECB, make([]byte, 17), nil, make([]byte, 16))
	require.Error(t, err)

	_, err = Encrypt(OFB, make([]byte, 16), make([]byte, 8), make([]byte, 16))
	require.ErrorIs(t, err, ErrIVSize)

	_, err = Encrypt(Mode("CTR"), make([]byte, 16), make([]byte, 16), make([]byte, 16))
	require.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestCFB8InPlace(t *testing.T) {
	key, iv := mustHex(t, sp38aKey128), mustHex(t, sp38aIV)
	buf := mustHex(t, "6bc1bee22e409f96e93d7e117393172aae2d")
	blk, err := newBlock(key)
	require.NoError(t, err)

	newCFB8(blk, iv, false).XORKeyStream(buf, buf)
	require.Equal(t, "3b79424c9c0dd436bace9e0ed4586a4f32b9", hex.EncodeToString(buf))

	newCFB8(blk, iv, true).XORKeyStream(buf, buf)
	require.Equal(t, "6bc1bee22e409f96e93d7e117393172aae2d", hex.EncodeToString(buf))
}

func TestModeProperties(t *testing.T) {
	require.False(t, ECB.NeedsIV())
	require.True(t, CBC.NeedsIV())
	require.False(t, CBC.Stream())
	require.True(t, CFB8.Stream())
	require.Equal(t, 8, CFB8.SegmentBits())
	require.Equal(t, 128, CFB128.SegmentBits())
	require.Equal(t, 0, OFB.SegmentBits())
}
