package hasher

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/AnyUserName/pixform-cli/internal/pix"
	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. For content-addressed filenames we
// use 16 hex chars (64 bits), which is collision-safe for practical
// asset counts.
func ContentHash(data []byte, hexLen int) string {
	h := xxhash.Sum64(data)
	full := hex.EncodeToString(uint64ToBytes(h))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// ImageHash fingerprints the pixel content of an image: xxHash64 over
// the dimensions and the row-major RGB byte sequence. Two images with
// identical pixels always hash identically, independent of how they
// were produced.
func ImageHash(img *pix.Image, hexLen int) string {
	h := xxhash.New()

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(img.Width()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(img.Height()))
	h.Write(dims[:])

	row := make([]byte, img.Width()*3)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			row[x*3] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
		h.Write(row)
	}

	full := hex.EncodeToString(uint64ToBytes(h.Sum64()))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
