package consts

const (
	MimePrefixImage = "image/"
)

const (
	StatusPublished      = "Published"
	StatusFailedPrefix   = "Failed"
	StatusScheduledLabel = "Scheduled"
	ActionInstant        = "instant"
)

const (
	UploadPrefix    = "upload_"
	GeneratedPrefix = "gen_"
)
