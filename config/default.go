// Package config registers every setting with its default and loads overrides through viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/style"
	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
)

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	name := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.AnimeFlow) + "_"
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

func (f *Field) typeName() string {
	return reflect.TypeOf(f.Value).String()
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	label := style.New().Foreground(style.Blue).Width(9).Render
	rows := []string{
		style.Faint(f.Description),
		label("Key:") + style.Fg(style.Mauve)(f.Key),
		label("Env:") + f.Env(),
		label("Value:") + highlight(viper.Get(f.Key)),
		label("Default:") + highlight(f.Value),
		label("Type:") + f.typeName(),
	}
	return strings.Join(rows, "\n")
}

func highlight(v any) string {
	switch v := v.(type) {
	case bool:
		if v {
			return style.Fg(style.Green)("true")
		}
		return style.Fg(style.Red)("false")
	case string:
		return style.Fg(style.Yellow)(v)
	default:
		return fmt.Sprint(v)
	}
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

var (
	// Default maps every key to its field.
	Default = make(map[string]Field)

	// EnvExposed lists the keys bound to environment variables, in registration order.
	EnvExposed []string
)

var fields = []Field{
	{key.DefaultSources, "animefire", "Source to scrape.\nRun \"animeflow sources list\" to see the builtin ones"},
	{key.SiteBaseURL, constant.DefaultBaseURL, "Origin of the streaming site.\nSearch, catalog and relative links are resolved against it"},
	{key.NetworkTimeout, 10, "Timeout in seconds for every outbound request"},
	{key.NetworkRatePerSecond, 4, "Maximum outbound requests per second (0 disables the limiter)"},
	{key.NetworkTLSFingerprint, false, "Present a Chrome TLS fingerprint to the site.\nUseful when the site sits behind an anti-bot proxy"},
	{key.CatalogLimit, 12, "Maximum number of titles shown on the home screen"},
	{key.CatalogTTL, 60, "Minutes the home screen catalog is kept before it is fetched again"},
	{key.HistorySaveOnWatch, true, "Save the episode number to the watch history once its video resolves"},
	{key.HistoryContinueLimit, 4, "Number of titles in the \"continue watching\" row"},
	{key.SearchShowQuerySuggestions, true, "Suggest previous queries while typing a search"},
	{key.Player, "mpv", "Media player used to open resolved videos.\nUse \"browser\" to hand the URL to the default browser"},
	{key.ServerAddr, "127.0.0.1:8085", "Listen address of \"animeflow serve\""},
	{key.ServerAllowedOrigins, []string{}, "Browser origins allowed to call \"animeflow serve\" (CORS).\nEmpty keeps the API same-origin; \"*\" lets any page read and change the history"},
	{key.IconsVariant, "plain", "Icon set.\nOne of: emoji, kaomoji, plain, squares, nerd (needs a nerd font)"},
	{key.LogsWrite, false, "Write a daily log file"},
	{key.LogsLevel, "info", "Least severe level written.\nOne of: panic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Write log entries as JSON"},
	{key.CliColored, true, "Colorize command help"},
	{key.CliVersionCheck, true, "Check for a newer release when showing help or the version"},
}

func init() {
	for _, f := range fields {
		if _, dup := Default[f.Key]; dup {
			panic("config: duplicate key " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
