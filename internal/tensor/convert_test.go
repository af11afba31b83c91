package tensor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertNCHWToNHWC(t *testing.T) {
	src := sequentialFloat32(48)

	res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutNCHW, LayoutNHWC)
	require.NoError(t, err)
	defer res.Release()

	assert.Equal(t, Shape{1, 4, 4, 3}, res.Info.Dims)
	assert.Equal(t, Float32, res.Info.DType)
	assert.Equal(t, LayoutNHWC, res.Info.Layout)
	assert.Equal(t, 48*4, len(res.Data))

	// output[n=0,h=0,w=0,c] == input[n=0,c,h=0,w=0]
	assert.Equal(t, float32(0), float32At(res.Data, 0))
	assert.Equal(t, float32(16), float32At(res.Data, 1))
	assert.Equal(t, float32(32), float32At(res.Data, 2))
}

func TestConvertRoundTrip(t *testing.T) {
	src := sequentialFloat32(48)

	fwd, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutNCHW, LayoutNHWC)
	require.NoError(t, err)
	defer fwd.Release()

	back, err := Convert(fwd.Data, fwd.Info.Dims, Float32, LayoutNHWC, LayoutNCHW)
	require.NoError(t, err)
	defer back.Release()

	assert.Equal(t, Shape{1, 3, 4, 4}, back.Info.Dims)
	assert.True(t, bytes.Equal(src, back.Data), "round trip must be byte-identical")
}

func TestConvertSameLayoutCopies(t *testing.T) {
	src := sequentialFloat32(48)

	for _, layout := range []Layout{LayoutNCHW, LayoutNHWC, LayoutUnknown, LayoutGeneric} {
		res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, layout, layout)
		require.NoError(t, err, "layout %s", layout)

		assert.True(t, bytes.Equal(src, res.Data), "same-layout conversion must be a byte copy")
		assert.Equal(t, Shape{1, 3, 4, 4}, res.Info.Dims, "dimension order must be preserved")
		assert.Equal(t, layout, res.Info.Layout)
		res.Release()
	}
}

func TestConvertUnknownLayoutCopies(t *testing.T) {
	src := sequentialFloat32(48)

	// With an unknown side there is no permutation, only a verbatim copy
	// with the original dimension order.
	res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutUnknown, LayoutNHWC)
	require.NoError(t, err)
	defer res.Release()

	assert.True(t, bytes.Equal(src, res.Data))
	assert.Equal(t, Shape{1, 3, 4, 4}, res.Info.Dims)
	assert.Equal(t, LayoutNHWC, res.Info.Layout)
}

func TestConvertNonFourDRankCopies(t *testing.T) {
	src := sequentialFloat32(24)

	res, err := Convert(src, Shape{2, 3, 4}, Float32, LayoutGeneric, LayoutGeneric)
	require.NoError(t, err)
	defer res.Release()

	assert.True(t, bytes.Equal(src, res.Data))
	assert.Equal(t, Shape{2, 3, 4}, res.Info.Dims)
}

func TestConvertUnsupportedLayoutPair(t *testing.T) {
	src := sequentialFloat32(48)

	pairs := [][2]Layout{
		{LayoutGeneric, LayoutNCHW},
		{LayoutNCHW, LayoutGeneric},
		{LayoutGeneric, LayoutNHWC},
		{LayoutNHWC, LayoutGeneric},
	}
	for _, p := range pairs {
		res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, p[0], p[1])
		require.ErrorIs(t, err, ErrLayoutConversionFailed, "%s -> %s", p[0], p[1])
		assert.Nil(t, res, "failed conversion must not leave allocated buffers")
	}
}

func TestConvertNilInput(t *testing.T) {
	_, err := Convert(nil, Shape{1, 2}, Float32, LayoutGeneric, LayoutGeneric)
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = Convert([]byte{1, 2, 3, 4}, nil, Float32, LayoutGeneric, LayoutGeneric)
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestConvertInvalidDimensions(t *testing.T) {
	src := make([]byte, 128)

	cases := []Shape{
		{},
		{2, 3, 0, 4},
		{2, -1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	for _, dims := range cases {
		res, err := Convert(src, dims, Float32, LayoutNCHW, LayoutNHWC)
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		assert.Nil(t, res)
	}
}

func TestConvertUnsupportedType(t *testing.T) {
	src := make([]byte, 128)

	res, err := Convert(src, Shape{1, 2, 4, 4}, DataType(99), LayoutNCHW, LayoutNHWC)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, res)
}

func TestConvertShortSourceBuffer(t *testing.T) {
	src := make([]byte, 8) // shape needs 48*4 bytes

	res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutNCHW, LayoutNHWC)
	require.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Nil(t, res)
}

func TestConvertLongerSourceBuffer(t *testing.T) {
	// Extra trailing bytes are tolerated; only the declared span is read.
	src := append(sequentialFloat32(48), 0xFF, 0xFF)

	res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutNCHW, LayoutNCHW)
	require.NoError(t, err)
	defer res.Release()
	assert.Equal(t, 48*4, len(res.Data))
}

func TestConvertAllTypesRoundTrip(t *testing.T) {
	types := []DataType{Float32, Int32, Uint8, Int64, Int16, Int8, Float16}
	dims := Shape{2, 3, 8, 8}
	total := int(dims.NumElements())

	for _, dtype := range types {
		src := make([]byte, total*dtype.Size())
		for i := range src {
			src[i] = byte(i * 17)
		}

		fwd, err := Convert(src, dims, dtype, LayoutNCHW, LayoutNHWC)
		require.NoError(t, err, "dtype %s", dtype)

		back, err := Convert(fwd.Data, fwd.Info.Dims, dtype, LayoutNHWC, LayoutNCHW)
		require.NoError(t, err, "dtype %s", dtype)

		assert.True(t, bytes.Equal(src, back.Data), "round trip for %s", dtype)
		fwd.Release()
		back.Release()
	}
}

func TestResultReleaseIdempotent(t *testing.T) {
	src := sequentialFloat32(48)

	res, err := Convert(src, Shape{1, 3, 4, 4}, Float32, LayoutNCHW, LayoutNHWC)
	require.NoError(t, err)
	require.False(t, res.Released())

	res.Release()
	assert.True(t, res.Released())
	assert.Nil(t, res.Data)
	assert.Nil(t, res.Info.Dims)

	// Second release is a no-op.
	res.Release()
	assert.True(t, res.Released())
}

func TestResultReleaseZeroValue(t *testing.T) {
	var zero Result
	zero.Release()
	assert.True(t, zero.Released())

	var nilRes *Result
	nilRes.Release() // must not panic
	assert.True(t, nilRes.Released())
}

func TestTensorInfoByteSize(t *testing.T) {
	info := TensorInfo{Dims: Shape{1, 3, 4, 4}, DType: Float32, Layout: LayoutNCHW}
	size, ok := info.ByteSize()
	require.True(t, ok)
	assert.Equal(t, uint(192), size)

	bad := TensorInfo{Dims: Shape{1, 0}, DType: Float32}
	_, ok = bad.ByteSize()
	assert.False(t, ok)

	unknown := TensorInfo{Dims: Shape{2, 2}, DType: DataType(99)}
	_, ok = unknown.ByteSize()
	assert.False(t, ok)
}

func TestConvertErrorMessageBounded(t *testing.T) {
	err := convErr(ErrInvalidDimensions, "%s", bytes.Repeat([]byte("x"), 4096))
	assert.LessOrEqual(t, len(err.Error()), maxErrDetail+len(ErrInvalidDimensions.Error())+2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
