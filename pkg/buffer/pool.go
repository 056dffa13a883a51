// Package buffer pools scratch byte slices in power-of-two size classes.
package buffer

import (
	"math/bits"
	"sync"
)

const (
	minClass = 64
	maxClass = 1024 * 1024
)

type Pool struct {
	pools map[int]*sync.Pool
}

var globalPool = NewPool()

func NewPool() *Pool {
	p := &Pool{
		pools: make(map[int]*sync.Pool),
	}

	for size := minClass; size <= maxClass; size <<= 2 {
		poolSize := size
		p.pools[size] = &sync.Pool{
			New: func() any {
				buf := make([]byte, poolSize)
				return &buf
			},
		}
	}

	return p
}

// classFor returns the smallest pooled class holding size bytes, or 0.
func classFor(size int) int {
	class := max(nextPowerOfTwo(size), minClass)
	// Classes grow by a factor of four.
	if bits.TrailingZeros(uint(class))%2 != 0 {
		class <<= 1
	}
	if class > maxClass {
		return 0
	}
	return class
}

// Get returns a slice of length size. Its contents are zero.
func (p *Pool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}

	class := classFor(size)
	pool, ok := p.pools[class]
	if !ok {
		return make([]byte, size)
	}

	bufPtr := pool.Get().(*[]byte)
	buf := *bufPtr
	return buf[:size]
}

// Put returns buf to its class. Slices not obtained from Get are dropped.
func (p *Pool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	pool, ok := p.pools[cap(buf)]
	if !ok {
		return
	}

	buf = buf[:cap(buf)]
	clear(buf)
	pool.Put(&buf)
}

// Decode runs decode over a pooled scratch slice of maxLen bytes and returns
// an exactly sized copy of the n bytes it produced. The scratch slice never
// escapes, so callers own the result.
func (p *Pool) Decode(maxLen int, decode func(dst []byte) (int, error)) ([]byte, error) {
	scratch := p.Get(maxLen)
	defer p.Put(scratch)

	n, err := decode(scratch)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, scratch[:n])
	return out, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

func GetBuffer(size int) []byte {
	return globalPool.Get(size)
}

func PutBuffer(buf []byte) {
	globalPool.Put(buf)
}

// Decode is Pool.Decode on the process-wide pool.
func Decode(maxLen int, decode func(dst []byte) (int, error)) ([]byte, error) {
	return globalPool.Decode(maxLen, decode)
}
