package bignum

import "github.com/cespare/xxhash/v2"

// Hash returns a digest of the canonical representation. Equal values
// hash identically; the sign participates so n and -n differ.
func (i Int) Hash() uint64 {
	buf := make([]byte, 0, len(i.digits)+1)
	buf = append(buf, byte(i.sign))
	buf = append(buf, i.digits...)
	return xxhash.Sum64(buf)
}
