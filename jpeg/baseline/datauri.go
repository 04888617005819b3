package baseline

import (
	"encoding/base64"
)

// DataURIPrefix starts every data URI produced by EncodeDataURI
const DataURIPrefix = "data:image/jpeg;base64,"

// EncodeDataURI encodes img and returns it as a base64 data URI, ready for
// an <img src> attribute.
func EncodeDataURI(img *Image, o *Options) (string, error) {
	data, err := EncodeWithOptions(img, o)
	if err != nil {
		return "", err
	}
	return ToDataURI(data), nil
}

// ToDataURI wraps already encoded JPEG bytes in a data URI
func ToDataURI(jpegData []byte) string {
	buf := make([]byte, len(DataURIPrefix)+base64.StdEncoding.EncodedLen(len(jpegData)))
	copy(buf, DataURIPrefix)
	base64.StdEncoding.Encode(buf[len(DataURIPrefix):], jpegData)
	return string(buf)
}
