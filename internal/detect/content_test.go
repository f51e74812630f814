package detect

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/berrythewa/c2f/internal/types"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Image() (*types.RasterBuffer, error) {
	args := m.Called()
	raster, _ := args.Get(0).(*types.RasterBuffer)
	return raster, args.Error(1)
}

func (m *mockSource) Text() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

var errNoImage = errors.New("no image")

func solidRaster(w, h int) *types.RasterBuffer {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 0x20, 0x80, 0xff, 0xff
	}
	return &types.RasterBuffer{Width: w, Height: h, Pix: pix}
}

func TestPrepareImageShortCircuits(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(solidRaster(3, 2), nil)

	content, err := Prepare(src, true)
	require.NoError(t, err)
	assert.Equal(t, types.TypeImage, content.Type)
	assert.False(t, content.Created.IsZero())

	cfg, format, err := image.DecodeConfig(bytes.NewReader(content.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)

	src.AssertExpectations(t)
	src.AssertNotCalled(t, "Text")
}

func TestPrepareImageEncodeErrorPropagates(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(&types.RasterBuffer{Width: 2, Height: 2, Pix: make([]byte, 3)}, nil)

	content, err := Prepare(src, true)
	assert.Nil(t, content)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	src.AssertNotCalled(t, "Text")
}

func TestPrepareClassifiesText(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(nil, errNoImage)
	src.On("Text").Return(`{"key": "value"}`, nil)

	content, err := Prepare(src, true)
	require.NoError(t, err)
	assert.Equal(t, types.TypeJSON, content.Type)
	assert.Equal(t, []byte(`{"key": "value"}`), content.Data)
	src.AssertExpectations(t)
}

func TestPrepareKeepsTextUntrimmed(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(nil, errNoImage)
	src.On("Text").Return("  FROM ubuntu\nRUN apt update\n", nil)

	content, err := Prepare(src, true)
	require.NoError(t, err)
	assert.Equal(t, types.TypeDockerfile, content.Type)
	assert.Equal(t, "  FROM ubuntu\nRUN apt update\n", string(content.Data))
}

func TestPrepareWithoutDetection(t *testing.T) {
	src := new(mockSource)
	src.On("Text").Return(`{"key": "value"}`, nil)

	content, err := Prepare(src, false)
	require.NoError(t, err)
	assert.Equal(t, types.TypePlainText, content.Type)
	src.AssertNotCalled(t, "Image")
}

func TestPrepareNilRasterFallsThroughToText(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(nil, nil)
	src.On("Text").Return("# Title\n\nbody text", nil)

	content, err := Prepare(src, true)
	require.NoError(t, err)
	assert.Equal(t, types.TypeMarkdown, content.Type)
}

func TestPrepareEmptyClipboard(t *testing.T) {
	src := new(mockSource)
	src.On("Image").Return(nil, errNoImage)
	src.On("Text").Return("", nil)

	content, err := Prepare(src, true)
	assert.Nil(t, content)
	assert.ErrorIs(t, err, ErrEmptyClipboard)
}

func TestPrepareWhitespaceIsNotEmpty(t *testing.T) {
	src := new(mockSource)
	src.On("Text").Return("   ", nil)

	content, err := Prepare(src, false)
	require.NoError(t, err)
	assert.Equal(t, "   ", string(content.Data))
}

func TestPrepareTextReadError(t *testing.T) {
	backendErr := errors.New("no display")
	src := new(mockSource)
	src.On("Image").Return(nil, errNoImage)
	src.On("Text").Return("", backendErr)

	_, err := Prepare(src, true)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, "error reading clipboard: no display", err.Error())
}

func TestEncodePNG(t *testing.T) {
	raster := solidRaster(4, 4)
	raster.Pix[0], raster.Pix[1], raster.Pix[2], raster.Pix[3] = 1, 2, 3, 255

	data, err := EncodePNG(raster)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{1, 2, 3, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestEncodePNGRejectsBadBuffers(t *testing.T) {
	tests := []struct {
		name   string
		raster *types.RasterBuffer
	}{
		{"nil", nil},
		{"zero width", &types.RasterBuffer{Width: 0, Height: 2}},
		{"negative height", &types.RasterBuffer{Width: 2, Height: -1}},
		{"short buffer", &types.RasterBuffer{Width: 2, Height: 2, Pix: make([]byte, 15)}},
		{"long buffer", &types.RasterBuffer{Width: 2, Height: 2, Pix: make([]byte, 17)}},
		{"overflowing dimensions", &types.RasterBuffer{Width: 1 << 31, Height: 1 << 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodePNG(tt.raster)
			assert.Nil(t, data)

			var encErr *EncodeError
			require.ErrorAs(t, err, &encErr)
			assert.Contains(t, err.Error(), "failed to encode PNG")
		})
	}
}
