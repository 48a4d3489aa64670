// Package utils provides small allocation and error-wrapping helpers
// shared by the wire codec.
package utils

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 32)
	},
}

// GetBuffer returns a byte slice of the requested length from the pool.
// Cast headers are small and fixed-size (8/16/24 bytes), so the pool's
// default capacity is sized for those rather than HDF5-scale chunks.
func GetBuffer(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2) // Increase capacity.
	}
	return buf[:size]
}

// ReleaseBuffer returns a buffer to the pool.
func ReleaseBuffer(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
