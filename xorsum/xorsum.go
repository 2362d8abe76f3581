/*
Package xorsum implements the single-byte XOR checksum used by PSX memory
card frames.

Every 128 byte frame that carries a checksum stores it in its final byte as
the XOR fold of the 127 bytes preceding it.
*/
package xorsum

import "hash"

// Size of the checksum in bytes.
const Size = 1

type digest struct {
	sum byte
}

// New creates a new hash.Hash computing the XOR checksum. Its Sum method
// will return a single byte.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.sum = 0 }

// Update returns the result of folding the bytes in p into sum.
func Update(sum byte, p []byte) byte {
	for _, b := range p {
		sum ^= b
	}
	return sum
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.sum = Update(d.sum, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.sum)
}

// Checksum returns the XOR checksum of data.
func Checksum(data []byte) byte { return Update(0, data) }
