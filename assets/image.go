package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// maxImageBytes bounds downloads of decorative images
const maxImageBytes = 8 << 20

// ErrUnsupportedFormat is returned when no registered decoder matches
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Fetcher loads images from URLs or local paths
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher whose requests time out after timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Image fetches and decodes src
func (f *Fetcher) Image(ctx context.Context, src string) (image.Image, error) {
	rc, err := f.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(io.LimitReader(rc, maxImageBytes))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", src, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// ImageAsync runs Image on a new goroutine and hands the result to done
// from that goroutine
func (f *Fetcher) ImageAsync(ctx context.Context, src string, done func(image.Image, error)) {
	go func() {
		img, err := f.Image(ctx, src)
		done(img, err)
	}()
}

func (f *Fetcher) open(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
		}
		return resp.Body, nil
	}
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return file, nil
}
