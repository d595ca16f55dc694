// Package icon renders status symbols in the set chosen by icons.variant.
package icon

import (
	"github.com/animeflow/animeflow/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// variants in the column order of the icons table.
var variants = []string{"plain", "emoji", "kaomoji", "squares", "nerd"}

func AvailableVariants() []string {
	return append([]string(nil), variants...)
}

type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Search
	Mark
	Link
	Play
	Next
	Watched
	History
)

var icons = map[Icon][5]string{
	Success:  {"OK", "🎉", "(ᵔᴥᵔ)", "🟩", "\uf00c"},
	Fail:     {"X", "💀", "(×_×)", "🟥", "\uf00d"},
	Progress: {"...", "⏳", "(・_・;)", "🟨", "\uf252"},
	Search:   {"?", "🔍", "(・・?)", "🟦", "\uf002"},
	Mark:     {"*", "🔖", "(＾▽＾)", "🟪", "\uf02e"},
	Link:     {"->", "🔗", "(→_→)", "🟫", "\uf0c1"},
	Play:     {">", "▶️", "ᕕ( ᐛ )ᕗ", "🟩", "\uf04b"},
	Next:     {">>", "⏭️", "(ง •̀_•́)ง", "🟧", "\uf051"},
	Watched:  {"v", "✅", "(￣▽￣)", "⬛", "\uf06e"},
	History:  {"#", "📜", "(¬‿¬)", "⬜", "\uf1da"},
}

// Get renders i in the configured variant, or "" when either is unknown.
func Get(i Icon) string {
	row, ok := icons[i]
	if !ok {
		return ""
	}
	column := lo.IndexOf(variants, viper.GetString(key.IconsVariant))
	if column < 0 {
		return ""
	}
	return row[column]
}
