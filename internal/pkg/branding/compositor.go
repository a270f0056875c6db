package branding

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	log "log/slog"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

const (
	CanonicalWidth = 1080

	logoRatio = 0.08
	logoInset = 30

	qrBoxSize         = 10
	qrSize            = 90
	cardInset         = 20
	cardPadding       = 10
	cardCaptionHeight = 20

	fontSize      = 24
	fontSizeSmall = 14

	pillPadX   = 60
	pillPadY   = 30
	pillBottom = 40

	ScanText = "SCAN TO BOOK"
)

var (
	cardColor = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	pillColor = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
)

// Options 品牌素材，启动时注入
type Options struct {
	BaseURL  string
	LogoPath string
	FontPath string
	Address  string
}

// Compositor 为图片叠加 Logo、预约二维码与地址胶囊条
type Compositor struct {
	bookingURL string
	address    string
	logo       image.Image
	fonts      *fontSource
}

func NewCompositor(opts Options) *Compositor {
	return &Compositor{
		bookingURL: BookingLink(opts.BaseURL),
		address:    opts.Address,
		logo:       loadLogo(opts.LogoPath),
		fonts:      loadFont(opts.FontPath),
	}
}

// loadLogo Logo 不存在或无法解码时返回 nil，绘制时跳过
func loadLogo(path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		log.Info("logo asset not found, skip logo", "path", path)
		return nil
	}
	defer func() { _ = f.Close() }()

	logo, _, err := image.Decode(f)
	if err != nil {
		log.Warn("logo asset decode failed, skip logo", "path", path, "err", err)
		return nil
	}

	b := logo.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	targetW := int(CanonicalWidth * logoRatio)
	targetH := int(float64(b.Dy()) * (float64(targetW) / float64(b.Dx())))
	if targetH < 1 {
		targetH = 1
	}
	return imaging.Resize(logo, targetW, targetH, imaging.Lanczos)
}

// Apply 输出宽度固定为 CanonicalWidth，高度按比例缩放
func (s *Compositor) Apply(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return image.NewNRGBA(image.Rect(0, 0, CanonicalWidth, 1))
	}
	height := int(float64(b.Dy()) * (float64(CanonicalWidth) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	base := imaging.Resize(src, CanonicalWidth, height, imaging.Lanczos)

	// 所有标注先画在透明图层上，最后一步再合成
	overlay := image.NewNRGBA(base.Bounds())

	regular := s.fonts.face(fontSize)
	defer func() { _ = regular.Close() }()
	small := s.fonts.face(fontSizeSmall)
	defer func() { _ = small.Close() }()

	s.drawLogo(overlay)
	s.drawQRCard(overlay, small)
	s.drawAddressPill(overlay, regular, height)

	return imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0)
}

func (s *Compositor) drawLogo(dst *image.NRGBA) {
	if s.logo == nil {
		return
	}
	lb := s.logo.Bounds()
	at := image.Pt(CanonicalWidth-lb.Dx()-logoInset, logoInset)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(lb.Size())}, s.logo, lb.Min, draw.Over)
}

func (s *Compositor) drawQRCard(dst *image.NRGBA, face font.Face) {
	qr, err := EncodeQR(s.bookingURL)
	if err != nil {
		log.Warn("qr encode failed, skip qr card", "url", s.bookingURL, "err", err)
		return
	}

	card := cardRect()
	fillRect(dst, card, cardColor)

	qrAt := image.Pt(cardInset+cardPadding, cardInset+cardPadding)
	draw.Draw(dst, image.Rectangle{Min: qrAt, Max: qrAt.Add(image.Pt(qrSize, qrSize))}, qr, qr.Bounds().Min, draw.Src)

	textW, _ := textSize(face, ScanText)
	textX := cardInset + (card.Dx()-textW)/2
	textY := cardInset + qrSize + cardPadding + 2
	drawText(dst, face, ScanText, textX, textY, color.Black)
}

func (s *Compositor) drawAddressPill(dst *image.NRGBA, face font.Face, height int) {
	if s.address == "" {
		return
	}
	textW, textH := textSize(face, s.address)
	pill := pillRect(textW, textH, height)
	fillRect(dst, pill, pillColor)
	drawText(dst, face, s.address, pill.Min.X+pillPadX/2, pill.Min.Y+pillPadY/2, color.White)
}

func cardRect() image.Rectangle {
	w := qrSize + cardPadding*2
	h := qrSize + cardPadding*2 + cardCaptionHeight
	return image.Rect(cardInset, cardInset, cardInset+w, cardInset+h)
}

// pillRect 水平居中，底边距图片底部 pillBottom
func pillRect(textW, textH, height int) image.Rectangle {
	w := textW + pillPadX
	h := textH + pillPadY
	x := (CanonicalWidth - w) / 2
	y := height - h - pillBottom
	return image.Rect(x, y, x+w, y+h)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  textOrigin(face, text, x, y),
	}
	d.DrawString(text)
}
