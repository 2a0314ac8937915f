package html

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ResolveTheme runs a go-theme selection and flattens it into the renderer
// configuration consumed by Render: base manifest tokens and templates merged
// with the selected variant, tokens mirrored into --prefixed CSS variables,
// and an asset URL resolver built from the manifest's asset table.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("html: theme selector is required")
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("html: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("html: theme %q resolved without a manifest", name)
	}

	manifest := selection.Manifest
	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(manifest.Templates, nil)
	assets := mergeStringMaps(manifest.Assets.Files, nil)
	assetPrefix := manifest.Assets.Prefix

	if selection.Variant != "" {
		if variantCfg, ok := manifest.Variants[selection.Variant]; ok {
			tokens = mergeStringMaps(tokens, variantCfg.Tokens)
			partials = mergeStringMaps(partials, variantCfg.Templates)
			assets = mergeStringMaps(assets, variantCfg.Assets.Files)
			if variantCfg.Assets.Prefix != "" {
				assetPrefix = variantCfg.Assets.Prefix
			}
		}
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVarsFromTokens(tokens),
		AssetURL: assetResolver(assetPrefix, assets),
	}
	return cfg, nil
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	return vars
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		path, ok := files[key]
		if !ok || path == "" {
			return ""
		}
		if prefix == "" {
			return path
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
	}
}

// cssVarsStyle serializes theme CSS variables into a deterministic style
// block, sorted by variable name.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<style>:root {")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	b.WriteString("}</style>")
	return b.String()
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
