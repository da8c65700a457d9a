package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/config"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	path := writeScene(t, `
version: "1"
entities:
  - name: root
    properties:
      transform: !translate [0, 1, 0]
    children:
      - name: arm
        properties:
          offset: !translate {x: 2}
          transform: !mul [!ref parent.transform, !ref this.offset]
        children:
          - name: hand
            properties:
              transform: !ref arm.transform
  - name: light
    properties:
      transform: !identity
      color: red
      visible: true
`)
	loader, _ := newLoader(t)

	scene, err := loader.Load(path)
	require.NoError(t, err)

	want := &domain.Scene{Entities: []domain.EntitySpec{
		{
			Name: "root",
			Properties: map[string]domain.Expression{
				domain.KeyTransform: domain.NewTyped("translate", domain.Array{domain.Number(0), domain.Number(1), domain.Number(0)}),
			},
		},
		{
			Name:   "arm",
			Parent: "root",
			Properties: map[string]domain.Expression{
				"offset": domain.NewTyped("translate", domain.Object{"x": domain.Number(2)}),
				domain.KeyTransform: domain.NewTyped("mul", domain.Array{
					domain.NewReference(domain.SelectParent, domain.KeyTransform),
					domain.NewReference(domain.SelectThis, "offset"),
				}),
			},
		},
		{
			Name:   "hand",
			Parent: "arm",
			Properties: map[string]domain.Expression{
				domain.KeyTransform: domain.NewReference("arm", domain.KeyTransform),
			},
		},
		{
			Name: "light",
			Properties: map[string]domain.Expression{
				domain.KeyTransform: domain.NewTyped("identity", domain.Nil{}),
				"color":             domain.String("red"),
				"visible":           domain.Bool(true),
			},
		},
	}}
	assert.Equal(t, want, scene)
}

func TestLoader_Literals(t *testing.T) {
	t.Parallel()
	path := writeScene(t, `
entities:
  - name: a
    properties:
      int: 3
      float: 1.5
      quoted: "42"
      empty: ~
      angle: !rotate_z 1.5
      nested: !rotate {axis: [0, 0, 1], angle: 0.5}
      anchored: &base [1, 2, 3]
      aliased: *base
      merged:
        <<: {x: 1, y: 1}
        y: 2
`)
	loader, _ := newLoader(t)

	scene, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, scene.Entities, 1)

	nums := domain.Array{domain.Number(1), domain.Number(2), domain.Number(3)}
	assert.Equal(t, map[string]domain.Expression{
		"int":    domain.Number(3),
		"float":  domain.Number(1.5),
		"quoted": domain.String("42"),
		"empty":  domain.Nil{},
		"angle":  domain.NewTyped("rotate_z", domain.Number(1.5)),
		"nested": domain.NewTyped("rotate", domain.Object{
			"axis":  domain.Array{domain.Number(0), domain.Number(0), domain.Number(1)},
			"angle": domain.Number(0.5),
		}),
		"anchored": nums,
		"aliased":  nums,
		"merged":   domain.Object{"x": domain.Number(1), "y": domain.Number(2)},
	}, scene.Entities[0].Properties)
}

func TestLoader_DerivedPropertyIgnored(t *testing.T) {
	t.Parallel()
	path := writeScene(t, `
entities:
  - name: a
    properties:
      transformed: !identity
`)
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any())

	scene, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, scene.Entities[0].Properties)
}

func TestLoader_UnsupportedVersionWarns(t *testing.T) {
	t.Parallel()
	path := writeScene(t, `
version: "7"
entities:
  - name: a
`)
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any())

	scene, err := loader.Load(path)
	require.NoError(t, err)
	assert.Len(t, scene.Entities, 1)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			content: "entities: [",
			wantErr: domain.ErrDocumentParseFailed,
		},
		{
			name:    "missing name",
			content: "entities:\n  - properties: {a: 1}\n",
			wantErr: domain.ErrMissingEntityName,
		},
		{
			name:    "invalid name",
			content: "entities:\n  - name: my arm\n",
			wantErr: domain.ErrInvalidEntityName,
		},
		{
			name:    "reserved this",
			content: "entities:\n  - name: this\n",
			wantErr: domain.ErrInvalidEntityName,
		},
		{
			name:    "reserved parent",
			content: "entities:\n  - name: parent\n",
			wantErr: domain.ErrInvalidEntityName,
		},
		{
			name:    "duplicate across levels",
			content: "entities:\n  - name: a\n    children:\n      - name: a\n",
			wantErr: domain.ErrDuplicateEntityName,
		},
		{
			name:    "reference without key",
			content: "entities:\n  - name: a\n    properties:\n      transform: !ref parent\n",
			wantErr: domain.ErrInvalidExpression,
		},
		{
			name:    "reference to sequence",
			content: "entities:\n  - name: a\n    properties:\n      transform: !ref [a, b]\n",
			wantErr: domain.ErrInvalidExpression,
		},
		{
			name:    "alias into itself",
			content: "entities:\n  - name: a\n    properties:\n      transform: &x !mul [*x]\n",
			wantErr: domain.ErrInvalidExpression,
		},
		{
			name:    "alias expansion",
			content: "entities:\n  - name: a\n    properties:\n      transform: !mul " + nestedAliases(6, 8) + "\n",
			wantErr: domain.ErrInvalidExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loader, _ := newLoader(t)
			_, err := loader.Load(writeScene(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// nestedAliases builds a flow sequence of levels anchors where each level
// lists the previous one width times.
func nestedAliases(levels, width int) string {
	items := make([]string, 0, levels)
	items = append(items, "&l0 ["+strings.TrimSuffix(strings.Repeat("1, ", width), ", ")+"]")
	for i := 1; i < levels; i++ {
		prev := fmt.Sprintf("*l%d, ", i-1)
		items = append(items, fmt.Sprintf("&l%d [%s]", i, strings.TrimSuffix(strings.Repeat(prev, width), ", ")))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrDocumentReadFailed)
}
