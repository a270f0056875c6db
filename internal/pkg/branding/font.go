package branding

import (
	log "log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSource 持有解析后的字体；font.Face 非并发安全，每次绘制单独创建
type fontSource struct {
	otf *opentype.Font
}

// loadFont 依次尝试配置字体、内置 Go Regular，全部失败时退化为位图字体
func loadFont(path string) *fontSource {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if f, err := opentype.Parse(data); err == nil {
				return &fontSource{otf: f}
			}
			log.Warn("font parse failed, using default font", "path", path)
		} else {
			log.Warn("font not found, using default font", "path", path)
		}
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Warn("default font unavailable, using bitmap font", "err", err)
		return &fontSource{}
	}
	return &fontSource{otf: f}
}

func (s *fontSource) face(size float64) font.Face {
	if s.otf == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(s.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// textSize 返回文本包围盒的像素宽高
func textSize(face font.Face, text string) (int, int) {
	b, _ := font.BoundString(face, text)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// textOrigin 将包围盒左上角对齐到 (x, y) 时的基线原点
func textOrigin(face font.Face, text string, x, y int) fixed.Point26_6 {
	b, _ := font.BoundString(face, text)
	return fixed.Point26_6{
		X: fixed.I(x) - b.Min.X,
		Y: fixed.I(y) - b.Min.Y,
	}
}
