package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontSource parses the embedded Go Regular font
func loadFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// face returns a cached face of the given size
func (e *EbitenRenderer) face(size float64) *text.GoTextFace {
	if f, ok := e.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.fontSource, Size: size}
	e.faces[size] = f
	return f
}
