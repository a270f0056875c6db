package social

import (
	"Postcraft/internal/api/config"
	"Postcraft/internal/pkg/metrics"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Publisher 依次调用各平台原生 REST 接口，平台之间互不影响，不回滚
type Publisher struct {
	client *resty.Client
	cfg    config.SocialConfig
}

func NewPublisher(cfg config.SocialConfig, transport http.RoundTripper) *Publisher {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}
	if transport != nil {
		client.SetTransport(transport)
	}
	return &Publisher{
		client: client,
		cfg:    cfg,
	}
}

// Publish 只处理已知平台，顺序固定为 LinkedIn、Facebook、Instagram
func (s *Publisher) Publish(ctx context.Context, platforms []string, captions map[string]string, imageURL string) Results {
	results := make(Results)

	steps := []struct {
		platform string
		publish  func(context.Context, string, string) Outcome
	}{
		{PlatformLinkedIn, s.publishLinkedIn},
		{PlatformFacebook, s.publishFacebook},
		{PlatformInstagram, s.publishInstagram},
	}

	for _, step := range steps {
		if !slices.Contains(platforms, step.platform) {
			continue
		}
		outcome := step.publish(ctx, captions[step.platform], imageURL)
		results[step.platform] = outcome

		result := "success"
		if !outcome.OK {
			result = "failure"
			log.WarnContext(ctx, "social publish failed",
				"platform", step.platform, "step", outcome.Step, "msg", outcome.Message)
		} else {
			log.InfoContext(ctx, "social publish success", "platform", step.platform)
		}
		metrics.SocialPublishTotal.WithLabelValues(step.platform, result).Inc()
	}

	return results
}

// AuthorURN LinkedIn 发帖需要 person URN
func AuthorURN(urn string) string {
	return strings.Replace(urn, "urn:li:member:", "urn:li:person:", 1)
}

func (s *Publisher) publishLinkedIn(ctx context.Context, caption, imageURL string) Outcome {
	cfg := s.cfg.LinkedIn
	payload := map[string]any{
		"author":         AuthorURN(cfg.PersonURN),
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary":    map[string]string{"text": caption},
				"shareMediaCategory": "ARTICLE",
				"media": []map[string]any{
					{
						"status":      "READY",
						"originalUrl": imageURL,
						"title":       map[string]string{"text": "Post"},
					},
				},
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(strings.TrimRight(cfg.APIBase, "/") + "/v2/ugcPosts")
	if err != nil {
		return failure(PlatformLinkedIn, StepPost, err.Error())
	}
	if resp.StatusCode() != http.StatusCreated {
		return failure(PlatformLinkedIn, StepPost, resp.String())
	}
	return success(PlatformLinkedIn)
}

func (s *Publisher) publishFacebook(ctx context.Context, caption, imageURL string) Outcome {
	cfg := s.cfg.Facebook
	endpoint := fmt.Sprintf("%s/%s/photos", strings.TrimRight(cfg.GraphBase, "/"), cfg.PageID)

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"url":          imageURL,
			"message":      caption,
			"access_token": cfg.PageAccessToken,
		}).
		Post(endpoint)
	if err != nil {
		return failure(PlatformFacebook, StepPost, err.Error())
	}
	if _, ok := responseID(resp.Body()); !ok {
		return failure(PlatformFacebook, StepPost, resp.String())
	}
	return success(PlatformFacebook)
}

// publishInstagram 先创建媒体容器，再用容器 id 发布
func (s *Publisher) publishInstagram(ctx context.Context, caption, imageURL string) Outcome {
	token := s.cfg.Facebook.PageAccessToken
	base := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.cfg.Facebook.GraphBase, "/"), s.cfg.Instagram.GraphVersion, s.cfg.Instagram.UserID)

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"image_url":    imageURL,
			"caption":      caption,
			"access_token": token,
		}).
		Post(base + "/media")
	if err != nil {
		return failure(PlatformInstagram, StepCreate, err.Error())
	}
	creationID, ok := responseID(resp.Body())
	if !ok {
		return failure(PlatformInstagram, StepCreate, resp.String())
	}

	resp, err = s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"creation_id":  creationID,
			"access_token": token,
		}).
		Post(base + "/media_publish")
	if err != nil {
		return failure(PlatformInstagram, StepPublish, err.Error())
	}
	if _, ok = responseID(resp.Body()); !ok {
		return failure(PlatformInstagram, StepPublish, resp.String())
	}
	return success(PlatformInstagram)
}

// responseID Graph API 成功时返回 {"id": "..."}
func responseID(body []byte) (string, bool) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", false
	}
	id, ok := data["id"]
	if !ok || id == nil {
		return "", false
	}
	return fmt.Sprint(id), true
}
