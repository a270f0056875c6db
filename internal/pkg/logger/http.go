package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"strings"
	"time"
)

const bodyLogLimit = 1000

// HTTPTransport 记录对外 HTTP 调用，挂在 resty 客户端上
type HTTPTransport struct {
	Name      string
	Transport http.RoundTripper
}

func NewHTTPTransport(name string) *HTTPTransport {
	return &HTTPTransport{Name: name, Transport: http.DefaultTransport}
}

func (t *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var reqBody []byte
	if req.Body != nil && !isBinary(req.Header.Get("Content-Type")) {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
	}

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	// URL 中可能带 access_token，只记录路径
	fields := []any{
		log.String("client", t.Name),
		log.String("method", req.Method),
		log.String("host", req.URL.Host),
		log.String("path", truncate(req.URL.Path)),
		log.Duration("latency", elapsed),
		log.Int("req_size", len(reqBody)),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "HTTP_CALL_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	if !isBinary(resp.Header.Get("Content-Type")) && resp.Body != nil {
		resBody, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewBuffer(resBody))
		fields = append(fields, log.String("res_body", truncate(string(resBody))))
	}
	fields = append(fields, log.Int("status", resp.StatusCode))

	if elapsed > 5*time.Second {
		log.WarnContext(req.Context(), "HTTP_CALL_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "HTTP_CALL", fields...)
	}

	return resp, nil
}

func isBinary(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "multipart/")
}

func truncate(s string) string {
	if len(s) > bodyLogLimit {
		return s[:bodyLogLimit] + "...[truncated]"
	}
	return s
}
