package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPError 非 2xx 状态码的响应错误
//
// 与网络错误、响应体解析错误区分开，上层原样透传，不在本层重试。
type HTTPError struct {
	// StatusCode HTTP 状态码
	StatusCode int
	// Body 响应体内容
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Body)
}

// HTTPClient HTTP客户端
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	proxy   string
	debug   bool
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		headers: make(map[string]string),
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		c.proxy = ""
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	c.client.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	c.proxy = proxyURL
	return nil
}

// GetProxy 获取当前代理设置
func (c *HTTPClient) GetProxy() string {
	return c.proxy
}

// SetTransport 设置自定义 Transport（测试录制/回放用）
func (c *HTTPClient) SetTransport(rt http.RoundTripper) {
	c.client.Transport = rt
}

// SetHeader 设置请求头
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetDebug 设置是否启用调试模式
func (c *HTTPClient) SetDebug(debug bool) {
	c.debug = debug
}

// Get 发送GET请求
//
// rawQuery 直接拼接到 URL 上，不做重排或二次编码：签名覆盖的查询
// 字符串必须与实际发送的逐字节一致。
func (c *HTTPClient) Get(ctx context.Context, path, rawQuery string, headers map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, rawQuery, "", "", headers)
}

// PostForm 发送表单编码的POST请求（key=value&... 格式请求体）
func (c *HTTPClient) PostForm(ctx context.Context, path, form string, headers map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, path, "", form, "application/x-www-form-urlencoded", headers)
}

// Request 发送HTTP请求
func (c *HTTPClient) Request(ctx context.Context, method, path, rawQuery, body, contentType string, headers map[string]string) ([]byte, error) {
	reqURL := c.baseURL + path
	if rawQuery != "" {
		reqURL += "?" + rawQuery
	}

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// 设置请求头
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// 调试输出：请求信息
	if c.debug {
		fmt.Printf("[DEBUG] Request:\n")
		fmt.Printf("  Method: %s\n", method)
		fmt.Printf("  URL: %s\n", reqURL)
		if body != "" {
			fmt.Printf("  Body: %s\n", body)
		}
		fmt.Println()
	}

	// 发送请求
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.debug {
			fmt.Printf("Warning: failed to close response body: %v\n", closeErr)
		}
	}()

	// 读取响应
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// 调试输出：响应信息
	if c.debug {
		fmt.Printf("[DEBUG] Response:\n")
		fmt.Printf("  Status: %d %s\n", resp.StatusCode, resp.Status)
		fmt.Printf("  Body: %s\n", string(respBody))
		fmt.Println()
	}

	// 检查状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
