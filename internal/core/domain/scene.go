package domain

// EntitySpec is an entity as declared in a scene document.
type EntitySpec struct {
	// Name uniquely identifies the entity within the scene.
	Name string
	// Parent is the name of the enclosing entity, empty for top-level entities.
	Parent string
	// Properties maps property keys to their expressions.
	Properties map[string]Expression
}

// Scene is a parsed host document, flattened in declaration order
// (parents always precede their children).
type Scene struct {
	Entities []EntitySpec
}
