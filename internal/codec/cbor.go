package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes documents as CBOR. Instants are written as tag 0 RFC 3339
// strings and read back as time.Time.
type CBOR struct {
	em cbor.EncMode
	dm cbor.DecMode
}

func NewCBOR() (*CBOR, error) {
	em, err := cbor.EncOptions{
		Time:    cbor.TimeRFC3339Nano,
		TimeTag: cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := cbor.DecOptions{
		TimeTagToAny: cbor.TimeTagToTime,
	}.DecMode()
	if err != nil {
		return nil, err
	}
	return &CBOR{em: em, dm: dm}, nil
}

func (c *CBOR) Name() string { return NameCBOR }

func (c *CBOR) Marshal(v any) ([]byte, error) {
	return c.em.Marshal(v)
}

func (c *CBOR) NewEncoder(w io.Writer) Encoder {
	return c.em.NewEncoder(w)
}

func (c *CBOR) Unmarshal(data []byte, dst any) error {
	return c.dm.Unmarshal(data, dst)
}

func (c *CBOR) NewDecoder(r io.Reader) Decoder {
	return c.dm.NewDecoder(r)
}
