package vector

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"go.uber.org/zap"
)

type Options struct {
	// Count is the number of indexes looped scenarios run for; <= 0 means 1.
	Count int
	// IV pins the IV of every IV mode. Empty means a fresh IV per scenario.
	IV []byte
	// Rand is the IV source; nil means crypto/rand.Reader.
	Rand   io.Reader
	Logger *zap.SugaredLogger
}

type Vector struct {
	Case       string
	Label      string
	Index      int
	Mode       Mode
	KeyBits    int
	Key        []byte
	IV         []byte // nil for ECB
	Plaintext  []byte
	Ciphertext []byte
	RoundTrip  bool
}

// Record is the hex form of a Vector used by the JSON output.
type Record struct {
	Case       string `json:"case"`
	Label      string `json:"label"`
	Index      int    `json:"index"`
	Mode       string `json:"mode"`
	KeyBits    int    `json:"key_bits"`
	Key        string `json:"key"`
	IV         string `json:"iv,omitempty"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
	RoundTrip  bool   `json:"round_trip"`
}

func (v Vector) Record() Record {
	return Record{
		Case:       v.Case,
		Label:      v.Label,
		Index:      v.Index,
		Mode:       string(v.Mode),
		KeyBits:    v.KeyBits,
		Key:        hex.EncodeToString(v.Key),
		IV:         hex.EncodeToString(v.IV),
		Plaintext:  hex.EncodeToString(v.Plaintext),
		Ciphertext: hex.EncodeToString(v.Ciphertext),
		RoundTrip:  v.RoundTrip,
	}
}

// decrypt is swapped in tests to force a round-trip mismatch.
var decrypt = Decrypt

func randBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read iv: %w", err)
	}
	return b, nil
}

// Generate runs the scenarios in order and returns their vectors. Any failure
// stops generation; nothing is retried.
func Generate(scenarios []Scenario, opts Options) ([]Vector, error) {
	if opts.Count <= 0 {
		opts.Count = 1
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}
	if len(opts.IV) > 0 && len(opts.IV) != aes.BlockSize {
		return nil, fmt.Errorf("%w, got %d", ErrIVSize, len(opts.IV))
	}

	var out []Vector
	for _, s := range scenarios {
		n := 1
		if s.Looped {
			n = opts.Count
		}
		for i := 0; i < n; i++ {
			v, err := run(s, i, opts)
			if err != nil {
				return nil, fmt.Errorf("case %s: %w", s.Case, err)
			}
			lg.Debugw("vector generated", "case", v.Case, "index", v.Index, "mode", v.Mode, "key_bits", v.KeyBits)
			out = append(out, v)
		}
	}
	return out, nil
}

func run(s Scenario, i int, opts Options) (Vector, error) {
	key, err := s.Key(i)
	if err != nil {
		return Vector{}, err
	}
	pt, err := s.Plaintext(i)
	if err != nil {
		return Vector{}, err
	}
	var iv []byte
	if s.Mode.NeedsIV() {
		if len(opts.IV) > 0 {
			iv = append([]byte(nil), opts.IV...)
		} else if iv, err = randBytes(opts.Rand, aes.BlockSize); err != nil {
			return Vector{}, err
		}
	}
	ct, err := Encrypt(s.Mode, key, iv, pt)
	if err != nil {
		return Vector{}, err
	}
	back, err := decrypt(s.Mode, key, iv, ct)
	if err != nil {
		return Vector{}, err
	}
	if !bytes.Equal(back, pt) {
		return Vector{}, ErrRoundTrip
	}
	return Vector{
		Case:       s.Case,
		Label:      s.label(i),
		Index:      i,
		Mode:       s.Mode,
		KeyBits:    len(key) * 8,
		Key:        key,
		IV:         iv,
		Plaintext:  pt,
		Ciphertext: ct,
		RoundTrip:  true,
	}, nil
}
