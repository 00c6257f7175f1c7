package phh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem/internal/fileutil"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return errors.New("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one hand history. Keys outside the PHH fields this package
// writes are rejected.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	md, err := toml.NewDecoder(r).Decode(&hand)
	if err != nil {
		return nil, fmt.Errorf("phh: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("phh: unknown key %q", undecoded[0].String())
	}
	return &hand, nil
}

// WriteFile encodes the hand and writes it atomically to path.
func WriteFile(path string, hand *HandHistory) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, hand)
	})
}

// ReadFile decodes the hand history stored at path.
func ReadFile(path string) (*HandHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
