package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Scenario is one row of the fixture table: how the key and the plaintext are
// derived and which mode encrypts them.
type Scenario struct {
	Case      string `json:"case"`
	Label     string `json:"label"`
	KeyHash   Hash   `json:"key_hash"`
	KeyPrefix string `json:"key_prefix"`
	// KeyLen truncates the key digest; 0 keeps the whole digest.
	KeyLen     int    `json:"key_len,omitempty"`
	DataHash   Hash   `json:"data_hash"`
	DataPrefix string `json:"data_prefix"`
	Mode       Mode   `json:"mode"`
	// Looped scenarios run once per index; the others only for index 0.
	Looped bool `json:"looped"`
}

var Cases = []Scenario{
	{Case: "A", Label: "md5 {i}:", KeyHash: MD5, KeyPrefix: "key", DataHash: MD5, DataPrefix: "data", Mode: ECB, Looped: true},
	{Case: "B", Label: "sha256 192 {i}:", KeyHash: SHA256, KeyPrefix: "key192", KeyLen: 24, DataHash: MD5, DataPrefix: "data", Mode: ECB, Looped: true},
	{Case: "C", Label: "sha256 {i}:", KeyHash: SHA256, KeyPrefix: "key", DataHash: MD5, DataPrefix: "data", Mode: ECB, Looped: true},
	{Case: "D", Label: "cbc", KeyHash: MD5, KeyPrefix: "key", DataHash: MD5, DataPrefix: "data", Mode: CBC},
	{Case: "E", Label: "cbc sha256", KeyHash: MD5, KeyPrefix: "key", DataHash: SHA256, DataPrefix: "data", Mode: CBC},
	{Case: "F", Label: "ofb", KeyHash: MD5, KeyPrefix: "key", DataHash: SHA224, DataPrefix: "data", Mode: OFB},
	{Case: "G", Label: "cfb128", KeyHash: MD5, KeyPrefix: "key", DataHash: SHA224, DataPrefix: "data", Mode: CFB128},
	{Case: "H", Label: "cfb8", KeyHash: MD5, KeyPrefix: "key", DataHash: SHA224, DataPrefix: "data", Mode: CFB8},
}

func (s Scenario) label(i int) string {
	return strings.ReplaceAll(s.Label, "{i}", strconv.Itoa(i))
}

// Key derives the AES key for index i, e.g. MD5("key0").
func (s Scenario) Key(i int) ([]byte, error) {
	k, err := Digest(s.KeyHash, s.KeyPrefix+strconv.Itoa(i))
	if err != nil {
		return nil, err
	}
	if s.KeyLen > 0 {
		if s.KeyLen > len(k) {
			return nil, fmt.Errorf("case %s: key length %d exceeds %s digest", s.Case, s.KeyLen, s.KeyHash)
		}
		k = k[:s.KeyLen]
	}
	return k, nil
}

func (s Scenario) Plaintext(i int) ([]byte, error) {
	return Digest(s.DataHash, s.DataPrefix+strconv.Itoa(i))
}

func Lookup(id string) (Scenario, bool) {
	for _, s := range Cases {
		if s.Case == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Select returns the scenarios named by ids, in table order. No ids selects all.
func Select(ids []string) ([]Scenario, error) {
	if len(ids) == 0 {
		return Cases, nil
	}
	want := map[string]bool{}
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := Lookup(id); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownCase, id)
		}
		want[id] = true
	}
	if len(want) == 0 {
		return Cases, nil
	}
	var out []Scenario
	for _, s := range Cases {
		if want[s.Case] {
			out = append(out, s)
		}
	}
	return out, nil
}

// SplitCases turns "A,d, F" into its ids.
func SplitCases(s string) []string {
	var ids []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
