package config

import "gopkg.in/yaml.v3"

// SceneFile represents the structure of a scene file.
type SceneFile struct {
	Version  string      `yaml:"version"`
	Entities []EntityDTO `yaml:"entities"`
}

// EntityDTO represents an entity definition in the scene file.
type EntityDTO struct {
	Name       string               `yaml:"name"`
	Properties map[string]yaml.Node `yaml:"properties"`
	Children   []EntityDTO          `yaml:"children"`
}
