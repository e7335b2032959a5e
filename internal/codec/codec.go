// Package codec encodes the documents the stores persist.
package codec

import (
	"fmt"
	"io"
	"strings"
)

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}

// Codec is a named Marshaler/Unmarshaler pair.
type Codec interface {
	Marshaler
	Unmarshaler
	Name() string
}

const (
	NameJSON = "json"
	NameCBOR = "cbor"
)

// ByName returns the codec registered under name. An empty name selects JSON.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameJSON:
		return JSON{}, nil
	case NameCBOR:
		return NewCBOR()
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}
