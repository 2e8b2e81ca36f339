// fonts.go - Label font loading with custom TTF support and embedded fallback.
// Defaults to Go Regular when no custom font is given or it cannot be read.
package preview

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager parses a font once and hands out faces at any size.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager loads the font at customPath, falling back to the embedded
// Go font when customPath is empty or unreadable.
func NewFontManager(customPath string) (*FontManager, error) {
	var data []byte
	if customPath != "" {
		var err error
		data, err = os.ReadFile(customPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load font '%s', using default\n", customPath)
			data = nil
		}
	}
	if data == nil {
		data = goregular.TTF
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{parsed: parsed}, nil
}

// Face returns a face at size points and 72 DPI.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
