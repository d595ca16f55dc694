// Package version tracks the running release and discovers newer ones.
package version

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/util"
	"github.com/animeflow/animeflow/where"
	json "github.com/goccy/go-json"
	"github.com/metafates/gache"
)

// ReleasesURL is the endpoint describing the latest published release.
var ReleasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.Version(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, without the "v" prefix.
// Answers are cached on disk for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := versionCacher.Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(latest)
	return latest, nil
}
