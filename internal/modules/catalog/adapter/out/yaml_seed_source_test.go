package out

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "hypersomnia/internal/platform/errors"
)

func TestEmbeddedCatalogStartsAtOrderOne(t *testing.T) {
	t.Parallel()
	levels, err := NewYAMLSeedSource("").Load(context.Background())
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 shipped levels, got %d", len(levels))
	}
	if levels[0].Order != 1 || levels[0].SceneName != "LvlZero" {
		t.Fatalf("unexpected first level: %+v", levels[0])
	}
}

func TestYAMLSeedSourceReadsOverrideFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "levels.yaml")
	doc := "levels:\n  - id: 10\n    name: \" Custom \"\n    scene: Custom\n    order: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	levels, err := NewYAMLSeedSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(levels) != 1 || levels[0].ID != 10 || levels[0].Name != "Custom" {
		t.Fatalf("unexpected levels: %+v", levels)
	}
}

func TestYAMLSeedSourceErrors(t *testing.T) {
	t.Parallel()
	if _, err := NewYAMLSeedSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background()); !errors.Is(err, apperrors.ErrCatalogMisconfigured) {
		t.Fatalf("expected misconfigured catalog for missing file, got %v", err)
	}
	if _, err := DecodeLevels([]byte("levels:\n  - id: 1\n    colour: red\n"), "inline"); !errors.Is(err, apperrors.ErrCatalogMisconfigured) {
		t.Fatalf("expected unknown field rejection, got %v", err)
	}
}
