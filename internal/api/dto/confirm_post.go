package dto

// ConfirmPostDTO 确认发布，action 为 instant 时立即发布，其余视为排期
type ConfirmPostDTO struct {
	Action    string            `json:"action"`
	Platforms []string          `json:"platforms" validate:"min=1,max=3,dive,oneof=linkedin facebook instagram"`
	Captions  map[string]string `json:"captions"`
	ImageURL  string            `json:"image_url" validate:"max=300"`
	Time      string            `json:"time" validate:"max=40"`
}

// ConfirmPostResultDTO details 为平台 -> 可读的发布结果
type ConfirmPostResultDTO struct {
	Status     string            `json:"status"`
	PostStatus string            `json:"post_status"`
	Details    map[string]string `json:"details"`
}
