package branding

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// BookingLink 二维码指向的预约页
func BookingLink(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/booking"
}

// EncodeQR 生成无边框二维码并缩放到 qrSize 见方
func EncodeQR(content string) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true

	// 负数表示每个模块的像素大小
	raw := q.Image(-qrBoxSize)
	return imaging.Resize(raw, qrSize, qrSize, imaging.NearestNeighbor), nil
}
