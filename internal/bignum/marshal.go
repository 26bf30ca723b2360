package bignum

import "github.com/vmihailenco/msgpack/v5"

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalText renders the canonical decimal form.
func (i Int) MarshalText() ([]byte, error) {
	return i.AppendText(nil)
}

// UnmarshalText parses a decimal literal in place.
func (i *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// EncodeMsgpack writes the canonical decimal string; the textual form
// keeps the wire format independent of the internal digit layout.
func (i *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

// DecodeMsgpack reads a value written by EncodeMsgpack.
func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
