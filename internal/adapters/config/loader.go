// Package config provides the scene file loader for xform.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the scene file format version understood by the loader.
const SupportedVersion = "1"

var validEntityNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.DocumentLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.DocumentLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the scene file at path and flattens it into a domain.Scene.
// Parents always precede their children.
func (l *Loader) Load(path string) (*domain.Scene, error) {
	var file SceneFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("scene version %q is not supported, reading it as version %s", file.Version, SupportedVersion))
	}

	scene := &domain.Scene{}
	seen := make(map[string]struct{})
	for i := range file.Entities {
		if err := l.flatten(scene, &file.Entities[i], "", fmt.Sprintf("entities[%d]", i), seen); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}
	return scene, nil
}

func (l *Loader) flatten(scene *domain.Scene, dto *EntityDTO, parent, at string, seen map[string]struct{}) error {
	if err := validateEntityName(dto.Name, at); err != nil {
		return err
	}
	if _, dup := seen[dto.Name]; dup {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateEntityName, "entity defined twice"), "entity_name", dto.Name)
	}
	seen[dto.Name] = struct{}{}

	props := make(map[string]domain.Expression, len(dto.Properties))
	for key, node := range dto.Properties {
		if key == domain.KeyTransformed {
			l.Logger.Warn(fmt.Sprintf("property %q on entity %q is derived and is ignored", key, dto.Name))
			continue
		}
		expr, err := decodeExpression(&node)
		if err != nil {
			return zerr.With(zerr.With(err, "entity_name", dto.Name), "key", key)
		}
		props[key] = expr
	}

	scene.Entities = append(scene.Entities, domain.EntitySpec{
		Name:       dto.Name,
		Parent:     parent,
		Properties: props,
	})

	for i := range dto.Children {
		if err := l.flatten(scene, &dto.Children[i], dto.Name, fmt.Sprintf("%s.children[%d]", at, i), seen); err != nil {
			return err
		}
	}
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(domain.ErrDocumentReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return errors.Join(domain.ErrDocumentParseFailed, parseErr)
	}

	return nil
}

// validateEntityName checks that the name is present, well formed and not a
// reserved selector.
func validateEntityName(name, at string) error {
	if name == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingEntityName, "entity has no name"), "at", at)
	}
	if domain.EntitySelector(name).IsRelative() {
		return zerr.With(zerr.Wrap(domain.ErrInvalidEntityName, "entity name is a reserved selector"), "entity_name", name)
	}
	if !validEntityNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidEntityName, "invalid entity name"), "entity_name", name)
	}
	return nil
}
