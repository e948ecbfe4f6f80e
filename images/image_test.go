package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestNewImage_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		mat      func() gocv.Mat
		expected Kind
		channels int
	}{
		{
			name:     "Empty mat is absent",
			mat:      gocv.NewMat,
			expected: KindAbsent,
			channels: 0,
		},
		{
			name:     "Single channel is grey",
			mat:      func() gocv.Mat { return gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC1) },
			expected: KindGrey,
			channels: 1,
		},
		{
			name:     "Three channels is color",
			mat:      func() gocv.Mat { return gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC3) },
			expected: KindColor,
			channels: 3,
		},
		{
			name:     "Four channels is color",
			mat:      func() gocv.Mat { return gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC4) },
			expected: KindColor,
			channels: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.mat())
			defer img.Close()

			assert.Equal(t, tt.expected, img.Kind())
			assert.Equal(t, tt.channels, img.Channels())
			if tt.expected != KindAbsent {
				assert.Equal(t, 6, img.Width())
				assert.Equal(t, 4, img.Height())
			}
		})
	}
}

func TestAbsent(t *testing.T) {
	img := Absent()

	assert.True(t, img.IsAbsent())
	assert.Equal(t, "absent", img.Kind().String())
	assert.Equal(t, 0, img.Width())
	assert.Equal(t, 0, img.Height())
	assert.Equal(t, "empty", img.Checksum())
	assert.NoError(t, img.Close())

	var zero Image
	assert.True(t, zero.IsAbsent(), "zero value must be absent")
}

func TestClose_MarksAbsent(t *testing.T) {
	img := NewImage(gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC3))
	require.False(t, img.IsAbsent())

	require.NoError(t, img.Close())
	assert.True(t, img.IsAbsent())
	assert.NoError(t, img.Close(), "second close is a no-op")
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60}
	m1, err := gocv.NewMatFromBytes(1, 2, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	m2, err := gocv.NewMatFromBytes(1, 2, gocv.MatTypeCV8UC3, append([]byte(nil), data...))
	require.NoError(t, err)

	a, b := NewImage(m1), NewImage(m2)
	defer a.Close()
	defer b.Close()

	assert.Equal(t, a.Checksum(), b.Checksum())
	assert.Len(t, a.Checksum(), 32)
}
