package theme

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// scaleFields maps normalized config keys to the theme scale they populate.
var scaleFields = map[string]func(*Theme) *Scale{
	"spacing":       func(t *Theme) *Scale { return &t.Spacing },
	"fontsize":      func(t *Theme) *Scale { return &t.FontSize },
	"fontsizes":     func(t *Theme) *Scale { return &t.FontSize },
	"fontweight":    func(t *Theme) *Scale { return &t.FontWeight },
	"fontweights":   func(t *Theme) *Scale { return &t.FontWeight },
	"fontfamily":    func(t *Theme) *Scale { return &t.FontFamily },
	"fonts":         func(t *Theme) *Scale { return &t.FontFamily },
	"lineheight":    func(t *Theme) *Scale { return &t.LineHeight },
	"lineheights":   func(t *Theme) *Scale { return &t.LineHeight },
	"leading":       func(t *Theme) *Scale { return &t.LineHeight },
	"letterspacing": func(t *Theme) *Scale { return &t.LetterSpacing },
	"tracking":      func(t *Theme) *Scale { return &t.LetterSpacing },
	"screens":       func(t *Theme) *Scale { return &t.Screens },
}

// Load reads a YAML or TOML theme file and normalizes it with FromMap.
// Malformed entries are skipped and logged at debug level.
func Load(ctx context.Context, fs afero.Fs, path string) (Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Theme{}, errors.Errorf("reading theme %s: %w", path, err)
	}

	raw, err := decode(path, data)
	if err != nil {
		return Theme{}, err
	}

	t, skipped := FromMap(raw)
	log := zerolog.Ctx(ctx)
	for _, entry := range skipped {
		log.Debug().Str("theme", path).Str("entry", entry).Msg("skipping malformed theme entry")
	}
	log.Debug().Str("theme", path).Int("colors", len(t.Colors)).Int("spacing", len(t.Spacing)).Msg("theme loaded")

	return t, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Errorf("parsing theme %s: %w", path, err)
		}
		return raw, nil
	case ".yaml", ".yml":
		raw, err := yaml.Parser().Unmarshal(data)
		if err != nil {
			return nil, errors.Errorf("parsing theme %s: %w", path, err)
		}
		return raw, nil
	default:
		return nil, errors.Errorf("unsupported theme format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// FromMap builds a Theme from a decoded configuration map. Fields that are
// absent keep their built-in defaults; fields that are present replace them.
// Entries with the wrong shape are dropped and reported in skipped.
func FromMap(raw map[string]any) (t Theme, skipped []string) {
	t = Default()

	for key, value := range raw {
		field := normalizeKey(key)

		if field == "colors" {
			m, ok := asMap(value)
			if !ok {
				skipped = append(skipped, key)
				continue
			}
			var bad []string
			t.Colors, bad = colorsFromMap(m)
			skipped = append(skipped, bad...)
			continue
		}

		target, ok := scaleFields[field]
		if !ok {
			continue
		}
		m, ok := asMap(value)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		var bad []string
		*target(&t), bad = scaleFromMap(key, m)
		skipped = append(skipped, bad...)
	}

	sort.Strings(skipped)
	return t, skipped
}

func colorsFromMap(m map[string]any) ([]NamedColor, []string) {
	var colors []NamedColor
	var skipped []string

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := m[name].(type) {
		case string:
			colors = append(colors, NamedColor{Name: name, Value: Solid(v)})
		default:
			shadeMap, ok := asMap(v)
			if !ok {
				skipped = append(skipped, "colors."+name)
				continue
			}
			var shades []Shade
			for _, key := range sortScaleKeys(shadeMap) {
				literal, ok := shadeMap[key].(string)
				if !ok {
					skipped = append(skipped, "colors."+name+"."+key)
					continue
				}
				shades = append(shades, Shade{Key: key, Literal: literal})
			}
			if len(shades) == 0 {
				skipped = append(skipped, "colors."+name)
				continue
			}
			colors = append(colors, NamedColor{Name: name, Value: ShadeScale(shades...)})
		}
	}

	return colors, skipped
}

func scaleFromMap(field string, m map[string]any) (Scale, []string) {
	var s Scale
	var skipped []string
	for _, key := range sortScaleKeys(m) {
		switch v := m[key].(type) {
		case string:
			s = append(s, Token{Key: key, Value: v})
		case int, int64, float64, uint64:
			s = append(s, Token{Key: key, Value: fmt.Sprint(v)})
		default:
			skipped = append(skipped, field+"."+key)
		}
	}
	return s, skipped
}

// sortScaleKeys orders DEFAULT first, then numeric keys ascending, then the
// remaining keys lexically.
func sortScaleKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a == DefaultShade || b == DefaultShade {
			return a == DefaultShade && b != DefaultShade
		}
		na, errA := strconv.ParseFloat(a, 64)
		nb, errB := strconv.ParseFloat(b, 64)
		switch {
		case errA == nil && errB == nil:
			return na < nb
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return a < b
	})
	return keys
}

// asMap accepts both decoder map shapes (YAML may produce interface keys).
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "-", "")
	return strings.ReplaceAll(key, "_", "")
}
