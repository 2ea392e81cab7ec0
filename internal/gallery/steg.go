package gallery

import (
	"encoding/hex"
	"fmt"
	"image"
)

// EmbedHash writes the 256-bit hash into the least significant bits of the
// red and green channels of the first 128 pixels of the image's top row,
// most significant bit first. The change is visually imperceptible.
func EmbedHash(img *image.RGBA, sha string) error {
	raw, err := hex.DecodeString(sha)
	if err != nil || len(raw) != HashLen/2 {
		return fmt.Errorf("invalid hash %q", sha)
	}
	b := img.Bounds()
	if b.Dx() < HashLen*2 {
		return fmt.Errorf("image too narrow to embed hash: %d px", b.Dx())
	}
	for k := 0; k < HashLen*2; k++ {
		rBit := bitAt(raw, 2*k)
		gBit := bitAt(raw, 2*k+1)
		i := img.PixOffset(b.Min.X+k, b.Min.Y)
		img.Pix[i] = img.Pix[i]&0xfe | rBit
		img.Pix[i+1] = img.Pix[i+1]&0xfe | gBit
	}
	return nil
}

// ExtractHash reads a hash embedded by EmbedHash back out of the image.
func ExtractHash(img image.Image) (string, error) {
	b := img.Bounds()
	if b.Dx() < HashLen*2 {
		return "", fmt.Errorf("image too narrow to hold a hash: %d px", b.Dx())
	}
	raw := make([]byte, HashLen/2)
	for k := 0; k < HashLen*2; k++ {
		r, g, _, _ := img.At(b.Min.X+k, b.Min.Y).RGBA()
		setBit(raw, 2*k, uint8(r>>8)&1)
		setBit(raw, 2*k+1, uint8(g>>8)&1)
	}
	return hex.EncodeToString(raw), nil
}

func bitAt(raw []byte, i int) uint8 {
	return raw[i/8] >> (7 - i%8) & 1
}

func setBit(raw []byte, i int, v uint8) {
	if v != 0 {
		raw[i/8] |= 1 << (7 - i%8)
	}
}
