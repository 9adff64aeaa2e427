package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultSourceCode is what detection falls back to when the provider
// gives nothing usable. Detection failures are absorbed, never surfaced.
const defaultSourceCode = "en"

// UpstreamError is a non-success answer from the translation provider.
// One failing call fails the whole gateway request; the status and a
// body preview ride along for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mymemory %d: %s", e.Status, e.Body)
}

// MyMemoryClient talks to the MyMemory translation API: one GET endpoint
// to detect a language and one to translate a "source|target" pair.
type MyMemoryClient struct {
	baseURL string
	email   string
	client  *http.Client
}

// NewMyMemoryClient builds a client. email optionally identifies the
// operator to the provider (raises the free quota); timeout bounds every
// upstream call.
func NewMyMemoryClient(baseURL, email string, timeout time.Duration) *MyMemoryClient {
	return &MyMemoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		client:  &http.Client{Timeout: timeout},
	}
}

// detectExtractors are the known places a language code shows up in a
// detect response, tried in order; MyMemory has shipped several shapes.
var detectExtractors = []func(body []byte) string{
	func(body []byte) string {
		var p struct {
			Data struct {
				Language string `json:"language"`
			} `json:"data"`
		}
		_ = json.Unmarshal(body, &p)
		return p.Data.Language
	},
	func(body []byte) string {
		var p struct {
			ResponseData struct {
				Language string `json:"language"`
			} `json:"responseData"`
		}
		_ = json.Unmarshal(body, &p)
		return p.ResponseData.Language
	},
	func(body []byte) string {
		var p struct {
			Language string `json:"language"`
		}
		_ = json.Unmarshal(body, &p)
		return p.Language
	},
	func(body []byte) string {
		var p struct {
			Matches []struct {
				Language string `json:"language"`
			} `json:"matches"`
		}
		_ = json.Unmarshal(body, &p)
		if len(p.Matches) > 0 {
			return p.Matches[0].Language
		}
		return ""
	},
}

// DetectLanguage asks the provider for the language of text. Transport
// errors, non-200s and unrecognized payloads all collapse to "en"; the
// result is always a lower-cased code.
func (m *MyMemoryClient) DetectLanguage(ctx context.Context, text string) string {
	q := url.Values{}
	q.Set("q", text)

	body, err := m.get(ctx, "/detect", q)
	if err != nil {
		return defaultSourceCode
	}

	for _, extract := range detectExtractors {
		if lang := extract(body); len(lang) >= 2 {
			return strings.ToLower(lang)
		}
	}
	return defaultSourceCode
}

// Translate fetches one translation for a source|target code pair.
// Missing translated text in an otherwise good response yields "".
func (m *MyMemoryClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", source, target))
	if m.email != "" {
		q.Set("de", m.email)
	}

	body, err := m.get(ctx, "/get", q)
	if err != nil {
		return "", err
	}

	var result struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid JSON from mymemory: %w; body: %s", err, preview(body))
	}
	return result.ResponseData.TranslatedText, nil
}

func (m *MyMemoryClient) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s?%s", m.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: preview(body)}
	}
	return body, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 500 {
		s = s[:500] + "..."
	}
	return s
}
