package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/braianorozco10/portfolio-server/internal/catalog"
	"github.com/braianorozco10/portfolio-server/internal/models"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest means the caller sent empty text or no targets.
var ErrInvalidRequest = errors.New("missing text/targets")

// Provider is the upstream the gateway fans out to.
type Provider interface {
	DetectLanguage(ctx context.Context, text string) string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Gateway resolves the source language, filters targets and issues one
// concurrent translate call per remaining target. It holds no state
// between requests.
type Gateway struct {
	provider Provider
}

func NewGateway(p Provider) *Gateway {
	return &Gateway{provider: p}
}

// Translate runs one full gateway request. The result map always covers
// exactly the requested target set: skipped targets (unknown names, or
// names that collapse to the source language) map to "". Any failing
// upstream call fails the whole request; no partial results.
func (g *Gateway) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" || len(req.Targets) == 0 {
		return nil, ErrInvalidRequest
	}

	src := g.resolveSource(ctx, req.Source, text)

	results := make(map[string]string, len(req.Targets))
	valid := make(map[string]string)
	for _, name := range req.Targets {
		results[name] = ""
		if code, ok := catalog.Code(name); ok && code != src {
			valid[name] = code
		}
	}

	// Everything collapsed to the source (or was unresolvable): nothing
	// to translate, no upstream calls.
	if len(valid) == 0 {
		return &models.TranslateResponse{
			Results: results,
			Meta:    models.TranslateMeta{DetectedSource: src},
		}, nil
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for name, code := range valid {
		name, code := name, code
		group.Go(func() error {
			translated, err := g.provider.Translate(groupCtx, text, src, code)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = translated
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &models.TranslateResponse{
		Results: results,
		Meta:    models.TranslateMeta{DetectedSource: src},
	}, nil
}

// resolveSource maps a supplied display name to its code, falling back
// to detection for "Auto", an empty source or an unrecognized name.
func (g *Gateway) resolveSource(ctx context.Context, source, text string) string {
	if source != "" && source != catalog.Auto {
		if code, ok := catalog.Code(source); ok {
			return strings.ToLower(code)
		}
	}
	return strings.ToLower(g.provider.DetectLanguage(ctx, text))
}
