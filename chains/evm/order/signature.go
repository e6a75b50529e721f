package order

import (
	"fmt"
)

// SplitSignature splits a 65-byte signature into the compact (r, vs)
// representation the protocol fill entrypoint expects.
func SplitSignature(sig []byte) ([32]byte, [32]byte, error) {
	var r, vs [32]byte
	if len(sig) != 65 {
		return r, vs, fmt.Errorf("invalid signature length %d", len(sig))
	}

	v := sig[64]
	if v < 27 {
		v += 27
	}
	if v != 27 && v != 28 {
		return r, vs, fmt.Errorf("invalid recovery id %d", v)
	}

	copy(r[:], sig[:32])
	copy(vs[:], sig[32:64])
	if v == 28 {
		vs[0] |= 0x80
	}
	return r, vs, nil
}
