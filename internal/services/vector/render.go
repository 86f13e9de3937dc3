package vector

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Format string

const (
	FormatRepr Format = "repr"
	FormatHex  Format = "hex"
	FormatJSON Format = "json"
	FormatRSP  Format = "rsp"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatRepr, nil
	case FormatRepr, FormatHex, FormatJSON, FormatRSP:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Render writes vs to w in format f.
func Render(w io.Writer, f Format, vs []Vector) error {
	switch f {
	case FormatRepr:
		return writeLines(w, vs, Repr)
	case FormatHex:
		return writeLines(w, vs, hex.EncodeToString)
	case FormatJSON:
		recs := make([]Record, 0, len(vs))
		for _, v := range vs {
			recs = append(recs, v.Record())
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case FormatRSP:
		_, err := io.WriteString(w, ToRSP(vs))
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

// label, then IV (if any), plaintext, key, ciphertext
func writeLines(w io.Writer, vs []Vector, enc func([]byte) string) error {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(v.Label)
		b.WriteString("\n")
		if v.IV != nil {
			b.WriteString(enc(v.IV) + "\n")
		}
		b.WriteString(enc(v.Plaintext) + "\n")
		b.WriteString(enc(v.Key) + "\n")
		b.WriteString(enc(v.Ciphertext) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ToRSP formats vs similar to a NIST .rsp file.
func ToRSP(vs []Vector) string {
	var b strings.Builder
	b.WriteString("[ENCRYPT]\n\n")
	for _, v := range vs {
		b.WriteString(fmt.Sprintf("# %s %s-AES%d %s\n", v.Case, v.Mode, v.KeyBits, v.Label))
		b.WriteString("COUNT = " + strconv.Itoa(v.Index) + "\n")
		b.WriteString("KEY = " + hex.EncodeToString(v.Key) + "\n")
		if v.IV != nil {
			b.WriteString("IV = " + hex.EncodeToString(v.IV) + "\n")
		}
		b.WriteString("PLAINTEXT = " + hex.EncodeToString(v.Plaintext) + "\n")
		b.WriteString("CIPHERTEXT = " + hex.EncodeToString(v.Ciphertext) + "\n\n")
	}
	return b.String()
}
