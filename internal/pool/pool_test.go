package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte{1, 2, 3})

	bb.Grow(1)
	require.Equal(t, 4, bb.Cap(), "enough room, no reallocation")

	bb.Grow(10)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 10)
	require.Equal(t, 3+RecordBufferDefaultSize, bb.Cap())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	large := NewByteBuffer(8 * RecordBufferDefaultSize)
	_, _ = large.Write(make([]byte, 8*RecordBufferDefaultSize))
	large.Grow(1)
	require.Equal(t, 8*RecordBufferDefaultSize+2*RecordBufferDefaultSize, large.Cap())

	huge := NewByteBuffer(0)
	huge.Grow(RecordBufferMaxThreshold)
	require.Equal(t, RecordBufferMaxThreshold, huge.Cap())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte("FXFT"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(4), written)
	require.Equal(t, "FXFT", out.String())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, 4, bb.Cap())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	_, _ = bb.Write([]byte("abc"))
	p.Put(bb)

	// Whatever comes back is empty.
	require.Zero(t, p.Get().Len())

	p.Put(nil)
	p.Put(NewByteBuffer(128))

	rb := GetRecordBuffer()
	require.GreaterOrEqual(t, rb.Cap(), RecordBufferDefaultSize)
	PutRecordBuffer(rb)
}

func TestGetInt32Slice(t *testing.T) {
	s, cleanup := GetInt32Slice(8)
	require.Len(t, s, 8)
	for i := range s {
		s[i] = int32(i)
	}
	cleanup()

	s, cleanup = GetInt32Slice(3)
	defer cleanup()
	require.Len(t, s, 3)

	big, cleanupBig := GetInt32Slice(1000)
	defer cleanupBig()
	require.Len(t, big, 1000)
}
