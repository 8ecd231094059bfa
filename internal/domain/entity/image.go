package entity

// MaxEncodedImageLength is the hard ceiling, in characters, for an inline image.
// The document store caps a whole document at 1,048,576 bytes; the margin covers
// the remaining fields and encoding overhead.
const MaxEncodedImageLength = 900_000

// EncodedImage is an image stored inline as a base64 data URI.
type EncodedImage string

// Len returns the length of the textual representation.
func (i EncodedImage) Len() int {
	return len(i)
}

// Fits reports whether the image is within the given ceiling.
func (i EncodedImage) Fits(limit int) bool {
	return i.Len() <= limit
}
