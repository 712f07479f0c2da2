package storage

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func testJPEG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for x := 0; x < 400; x++ {
		for y := 0; y < 300; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.JPEG)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	assert.NoError(t, err)

	url, err := store.Save("band.jpg", testJPEG(t), "bands")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/bands/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	name := filepath.Base(url)
	written, err := os.ReadFile(filepath.Join(dir, "bands", name))
	assert.NoError(t, err)
	assert.NotEmpty(t, written)

	// Thumbnail sits next to the original under thumbs/.
	thumb, err := os.ReadFile(filepath.Join(dir, "bands", "thumbs", name))
	assert.NoError(t, err)
	assert.NotEmpty(t, thumb)
	assert.Less(t, len(thumb), len(written))
}

func TestLocalStore_SaveNonImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	assert.NoError(t, err)

	// Undecodable data still gets stored, just without a thumbnail.
	url, err := store.Save("notes.bin", []byte{0x00, 0x01, 0x02}, "cigars")
	assert.NoError(t, err)

	name := filepath.Base(url)
	_, err = os.Stat(filepath.Join(dir, "cigars", name))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "cigars", "thumbs", name))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_SaveDefaultsExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	assert.NoError(t, err)

	url, err := store.Save("noext", []byte{0x01}, "cigars")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestLocalStore_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	assert.NoError(t, err)

	first, err := store.Save("same.jpg", []byte{0x01}, "cigars")
	assert.NoError(t, err)
	second, err := store.Save("same.jpg", []byte{0x02}, "cigars")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "/placeholder.svg?height=200&width=200&text=band.jpg", Placeholder("band.jpg"))
	assert.Equal(t, "/placeholder.svg?height=200&width=200&text=image", Placeholder(""))
	assert.Equal(t, "/placeholder.svg?height=200&width=200&text=my+band", Placeholder("my band"))
}
