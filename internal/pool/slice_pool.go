package pool

import "sync"

var int32SlicePool = sync.Pool{
	New: func() any { return &[]int32{} },
}

// GetInt32Slice returns an int32 slice of length size from the pool.
//
// The contents are unspecified. The caller must call the returned cleanup
// function, typically with defer, and must not use the slice afterwards.
//
// Example:
//
//	raw, cleanup := pool.GetInt32Slice(len(samples.X))
//	defer cleanup()
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}
