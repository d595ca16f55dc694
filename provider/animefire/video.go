package animefire

import (
	"context"
	"fmt"

	"github.com/animeflow/animeflow/source"
	json "github.com/goccy/go-json"
)

const videoSelector = "#my-video"

// videoPayload is the body served by the data-video-src endpoint. Sources are
// listed in ascending quality, so the last one is preferred.
type videoPayload struct {
	Data []struct {
		Src string `json:"src"`
	} `json:"data"`
}

// VideoOf resolves an episode page to a playable stream. The page carries the
// address of a JSON endpoint, and the endpoint lists the actual sources.
func (a *Animefire) VideoOf(ctx context.Context, episodeURL string) (source.Video, error) {
	doc, err := a.document(ctx, episodeURL)
	if err != nil {
		return source.Video{}, err
	}

	endpoint, ok := doc.Find(videoSelector).First().Attr("data-video-src")
	if !ok || endpoint == "" {
		return source.Video{}, fmt.Errorf("%s: no %s[data-video-src]: %w", episodeURL, videoSelector, source.ErrShapeMismatch)
	}

	body, err := a.fetcher.Get(ctx, a.absolute(endpoint))
	if err != nil {
		return source.Video{}, err
	}

	var payload videoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return source.Video{}, fmt.Errorf("decode %s: %w: %v", endpoint, source.ErrShapeMismatch, err)
	}

	if len(payload.Data) == 0 {
		return source.Video{}, fmt.Errorf("%s: no sources: %w", endpoint, source.ErrDataAbsent)
	}

	src := payload.Data[len(payload.Data)-1].Src
	if src == "" {
		return source.Video{}, fmt.Errorf("%s: last source without src: %w", endpoint, source.ErrDataAbsent)
	}

	return source.Video{URL: src, Page: episodeURL}, nil
}
