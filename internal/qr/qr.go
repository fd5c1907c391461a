package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Encode renders a scannable code for the identifier as PNG bytes. The output
// is a pure function of the identifier, so a lost file can be regenerated.
func Encode(identifier string) ([]byte, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, errors.New("identifier must not be empty")
	}
	return qrcode.Encode(identifier, qrcode.Medium, 256)
}

// FileBase returns the stable object base name for an artwork's code image.
func FileBase(artworkID uint) string {
	return fmt.Sprintf("qr_%d", artworkID)
}
