package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is beep's interpolation quality for rate conversion
const resampleQuality = 4

// openSource returns a reader for a URL or a local path
func openSource(ctx context.Context, client *http.Client, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
		}
		return resp.Body, nil
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	return f, nil
}

// decode picks a decoder from the source extension
func decode(src string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	name := src
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return mp3.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	}
	rc.Close()
	return nil, beep.Format{}, fmt.Errorf("%s: %w", src, ErrUnsupportedFormat)
}

// LoadClip fetches and decodes src fully into memory at rate
func LoadClip(ctx context.Context, client *http.Client, src string, rate beep.SampleRate) (*beep.Buffer, error) {
	rc, err := openSource(ctx, client, src)
	if err != nil {
		return nil, err
	}
	stream, format, err := decode(src, rc)
	if err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	return buf, nil
}

// bufferSynth renders the synthesized clip into a buffer
func bufferSynth(clip Clip, rate beep.SampleRate) (*beep.Buffer, error) {
	s, err := synthesize(clip, rate)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
