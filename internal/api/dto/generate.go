package dto

// GenerateResultDTO 品牌图与各平台文案
type GenerateResultDTO struct {
	ImageURL string            `json:"image_url"`
	Captions map[string]string `json:"captions"`
}
