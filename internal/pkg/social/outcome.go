package social

import "strings"

const (
	PlatformLinkedIn  = "linkedin"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
)

// FailureMarker 出现在任何失败结果的展示文本中
const FailureMarker = "Failed"

const (
	StepPost    = ""
	StepCreate  = "create"
	StepPublish = "publish"
)

// Outcome 单个平台的发布结果
type Outcome struct {
	Platform string
	OK       bool
	Step     string
	Message  string
}

func (o Outcome) String() string {
	if o.OK {
		return "✅ Posted"
	}
	if o.Step != StepPost {
		return "❌ " + FailureMarker + " (" + o.Step + "): " + o.Message
	}
	return "❌ " + FailureMarker + ": " + o.Message
}

// Results 平台名 -> 发布结果
type Results map[string]Outcome

// Details 转为展示用的平台名 -> 状态文本
func (r Results) Details() map[string]string {
	out := make(map[string]string, len(r))
	for platform, o := range r {
		out[platform] = o.String()
	}
	return out
}

// Failed 任一平台文本包含失败标记即视为整体失败
func (r Results) Failed() bool {
	for _, o := range r {
		if strings.Contains(o.String(), FailureMarker) {
			return true
		}
	}
	return false
}

func success(platform string) Outcome {
	return Outcome{Platform: platform, OK: true}
}

func failure(platform, step, message string) Outcome {
	return Outcome{Platform: platform, Step: step, Message: message}
}
