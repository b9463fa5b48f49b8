package swd

import "math/bits"

// ParityBit returns the parity bit that accompanies a 32-bit read payload.
// The bit is chosen so that the total number of one bits in the 33-bit
// payload is odd.
func ParityBit(data uint32) uint8 {
	return uint8((bits.OnesCount32(data) + 1) % 2)
}

// ParityOK reports whether a 32+1-bit read payload passes the odd-parity
// check.
func ParityOK(data uint32, parity uint8) bool {
	return (bits.OnesCount32(data)+int(parity&1))%2 == 1
}
