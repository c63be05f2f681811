package ds

import "fmt"

// RingBuffer is a fixed capacity circular store. Once full, every push
// overwrites the oldest slot.
type RingBuffer[T any] struct {
	buf      []T
	ix       int
	capacity int
}

// NewRingBuffer creates an empty RingBuffer with the given capacity.
// Panics if capacity is less than 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("ds: ring buffer capacity must be positive, got %d", capacity))
	}
	return &RingBuffer[T]{
		buf:      make([]T, 0, capacity),
		ix:       0,
		capacity: capacity,
	}
}

// RingBufferFrom wraps an existing slice in a RingBuffer. The capacity
// is the length of the slice and the write cursor starts at slot 0.
func RingBufferFrom[T any](data []T) *RingBuffer[T] {
	if len(data) == 0 {
		panic("ds: ring buffer capacity must be positive, got empty slice")
	}
	return &RingBuffer[T]{
		buf:      data,
		ix:       0,
		capacity: len(data),
	}
}

// Len returns the number of occupied slots.
func (r *RingBuffer[T]) Len() int {
	return len(r.buf)
}

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return r.capacity
}

// Push inserts an element, overwriting the oldest one once the buffer
// is full, and returns the index of the slot that was written.
func (r *RingBuffer[T]) Push(item T) int {
	ix := r.ix
	if ix >= len(r.buf) {
		r.buf = append(r.buf, item)
	} else {
		r.buf[ix] = item
	}
	r.ix = (ix + 1) % r.capacity
	return ix
}

// At returns the element at the given slot index.
func (r *RingBuffer[T]) At(ix int) T {
	return r.buf[ix]
}

// View returns the occupied region of the internal buffer. The slice
// shares storage with the buffer and must not be mutated.
func (r *RingBuffer[T]) View() []T {
	return r.buf
}
