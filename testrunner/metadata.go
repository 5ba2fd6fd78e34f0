package testrunner

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Metadata is the YAML frontmatter of a test262 test.
type Metadata struct {
	Description string   `mapstructure:"description"`
	Features    []string `mapstructure:"features"`
	Flags       []string `mapstructure:"flags"`
	Includes    []string `mapstructure:"includes"`
	Negative    Negative `mapstructure:"negative"`
}

type Negative struct {
	Phase string `mapstructure:"phase"` // "parse", "resolution", "runtime"
	Type  string `mapstructure:"type"`  // "SyntaxError", "ReferenceError", ...
}

func (m Metadata) HasFlag(flag string) bool {
	return lo.Contains(m.Flags, flag)
}

// ExpectsSyntaxError reports whether the test must fail to parse. Early
// errors are reported in the parse phase.
func (m Metadata) ExpectsSyntaxError() bool {
	return m.Negative.Phase == "parse" || m.Negative.Phase == "early"
}

const (
	frontmatterStart = "/*---"
	frontmatterEnd   = "---*/"
)

// parseMetadata extracts and decodes the frontmatter between /*--- and
// ---*/. A source without frontmatter yields zero Metadata.
func parseMetadata(source string) (Metadata, error) {
	var meta Metadata

	startIdx := strings.Index(source, frontmatterStart)
	if startIdx < 0 {
		return meta, nil
	}
	body := source[startIdx+len(frontmatterStart):]
	endIdx := strings.Index(body, frontmatterEnd)
	if endIdx < 0 {
		return meta, fmt.Errorf("unterminated frontmatter")
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(body[:endIdx]), &raw); err != nil {
		return meta, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &meta,
	})
	if err != nil {
		return meta, fmt.Errorf("mapstructure.NewDecoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return meta, fmt.Errorf("mapstructure.Decode: %w", err)
	}
	return meta, nil
}

// unsupportedFeatures are proposals the parser does not implement.
var unsupportedFeatures = []string{
	"decorators",
	"explicit-resource-management",
	"import-assertions",
	"import-defer",
	"source-phase-imports",
	"source-phase-imports-module-source",
}

func unsupportedFeature(meta Metadata) (string, bool) {
	return lo.Find(meta.Features, func(feat string) bool {
		return lo.Contains(unsupportedFeatures, feat)
	})
}
