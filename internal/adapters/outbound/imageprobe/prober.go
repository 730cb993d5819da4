// Package imageprobe inspects remotely hosted hotel images over HTTP.
package imageprobe

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
)

// Prober implements domain.ImageInspector with HEAD requests, so image bodies are never downloaded.
type Prober struct {
	http *http.Client
}

// NewProber creates a new Prober.
func NewProber(httpClient *http.Client) Prober {
	return Prober{http: httpClient}
}

// Inspect returns the content type and size announced by the server for url.
// The size is left unset when the response carries no Content-Length.
// Non-2xx responses and non-image content types are reported as errors.
func (p Prober) Inspect(ctx context.Context, url string) (domain.ImageMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return domain.ImageMetadata{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return domain.ImageMetadata{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.ImageMetadata{}, fmt.Errorf("non-2xx response: %s", resp.Status)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return domain.ImageMetadata{}, fmt.Errorf("parse content type: %w", err)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return domain.ImageMetadata{}, fmt.Errorf("unexpected content type %q", mediaType)
	}

	metadata := domain.ImageMetadata{ContentType: mediaType}
	if resp.ContentLength >= 0 {
		size := resp.ContentLength
		metadata.SizeBytes = &size
	}
	return metadata, nil
}

// InitProber registers the Prober as the domain.ImageInspector implementation.
type InitProber struct {
	HttpClient *http.Client `resolve:""`
}

// Initialize registers the Prober in the dependency container.
func (i InitProber) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ImageInspector](NewProber(i.HttpClient))
	return ctx, nil
}
