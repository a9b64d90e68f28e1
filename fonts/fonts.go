package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	mu       sync.Mutex
	defaults sync.Once
)

// LoadFontWithSize parses ttf and registers it as name at size points.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

// loadDefaults registers the bundled Go Regular faces.
func loadDefaults() {
	for name, size := range map[FontName]float64{HUD: 14, HUDSmall: 10} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			panic(err)
		}
	}
}

func getFont(name FontName) font.Face {
	defaults.Do(loadDefaults)

	mu.Lock()
	defer mu.Unlock()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
