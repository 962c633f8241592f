package codec

// Decoder registrations for imaging.Open / image.Decode. The stdlib
// formats come with imaging; the x/image formats must be registered
// here.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)
