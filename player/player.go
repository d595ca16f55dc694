// Package player hands resolved streams over to an external media player or
// to the system browser.
package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/log"
	"github.com/pkg/browser"
	"github.com/spf13/viper"
)

// Browser is the player name that opens streams in the default browser.
const Browser = "browser"

// Replaceable in tests.
var (
	openURL = browser.OpenURL
	start   = func(cmd *exec.Cmd) error { return cmd.Start() }
)

// Play opens stream with the configured player. title names the window where
// the player supports it.
func Play(stream, title string) error {
	target, err := sanitizeMediaTarget(stream)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	name := viper.GetString(key.Player)
	if name == "" || name == Browser {
		return openURL(target)
	}

	cmd, err := Command(name, target, sanitizeTitle(title))
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"player": name, "url": target}).Info("starting player")
	if err := start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	return nil
}

// OpenPage opens a site page in the default browser. It is the fallback when
// no playable stream could be resolved.
func OpenPage(page string) error {
	return openURL(page)
}

// Command builds the process that plays target with the named player.
// mpv and vlc get the site referer and a window title; anything else is
// invoked as "<name> <target>".
func Command(name, target, title string) (*exec.Cmd, error) {
	if _, err := exec.LookPath(name); err != nil && runtime.GOOS != constant.Darwin {
		return nil, fmt.Errorf("player %q not found: %w", name, err)
	}

	referer := viper.GetString(key.SiteBaseURL)

	var args []string
	switch strings.ToLower(filepath.Base(name)) {
	case "mpv", "mpv.exe":
		args = []string{"--no-terminal", "--force-window=yes"}
		if title != "" {
			args = append(args, "--force-media-title="+title)
		}
		if referer != "" {
			args = append(args, "--referrer="+referer)
		}
	case "vlc", "vlc.exe":
		if title != "" {
			args = append(args, "--meta-title="+title)
		}
		if referer != "" {
			args = append(args, "--http-referrer="+referer)
		}
	case "iina":
		if runtime.GOOS == constant.Darwin {
			return exec.Command("open", "-a", "IINA", target), nil
		}
	}

	cmd := exec.Command(name, append(args, target)...)
	cmd.SysProcAttr = sysProcAttr()
	return cmd, nil
}

// sanitizeMediaTarget keeps untrusted scraped URLs from being read as flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
