package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hypersomnia/internal/modules/catalog/domain"
	catalogout "hypersomnia/internal/modules/catalog/port/out"
	apperrors "hypersomnia/internal/platform/errors"
)

//go:embed levels.yaml
var embeddedLevels []byte

type yamlCatalog struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Scene       string `yaml:"scene"`
	Order       int    `yaml:"order"`
	Description string `yaml:"description"`
}

// YAMLSeedSource reads level seeds from a YAML file, or from the shipped
// catalog when no path is configured.
type YAMLSeedSource struct {
	path string
}

func NewYAMLSeedSource(path string) catalogout.SeedSource {
	return &YAMLSeedSource{path: strings.TrimSpace(path)}
}

func (s *YAMLSeedSource) Load(_ context.Context) ([]domain.Level, error) {
	payload := embeddedLevels
	origin := "embedded catalog"
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: read catalog %s: %v", apperrors.ErrCatalogMisconfigured, s.path, err)
		}
		payload = raw
		origin = s.path
	}
	return DecodeLevels(payload, origin)
}

// DecodeLevels parses a catalog document, rejecting unknown fields.
func DecodeLevels(payload []byte, origin string) ([]domain.Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	var doc yamlCatalog
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperrors.ErrCatalogMisconfigured, origin, err)
	}
	levels := make([]domain.Level, 0, len(doc.Levels))
	for _, item := range doc.Levels {
		levels = append(levels, domain.Level{
			ID:          item.ID,
			Name:        strings.TrimSpace(item.Name),
			SceneName:   strings.TrimSpace(item.Scene),
			Order:       item.Order,
			Description: item.Description,
		})
	}
	return levels, nil
}
