package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := 1000

	ForRange(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestForRange_Sequential(t *testing.T) {
	var counter int64
	calls := 0
	ForRange(100, func(start, end int) {
		calls++
		atomic.AddInt64(&counter, int64(end-start))
	}, Sequential())

	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(100), counter)
}

func TestForRange_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	ForRange(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestForRange_DisjointCover(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}
	n := 101
	hits := make([]int32, n)

	ForRange(n, func(start, end int) {
		assert.Less(t, start, end)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d visited %d times", i, h)
	}
}

func TestForRange_Empty(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					atomic.AddInt64(&sum, int64(j))
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					atomic.AddInt64(&sum, int64(j))
				}
			}, Sequential())
		}
	})
}
