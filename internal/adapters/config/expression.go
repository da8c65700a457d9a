package config

import (
	"strings"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// TagRef marks a dependency reference: `!ref parent.transform`.
const TagRef = "!ref"

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagMerge = "!!merge"
)

// maxExpressionNodes bounds the nodes one property may expand to once
// aliases are followed.
const maxExpressionNodes = 1 << 16

// exprDecoder walks one property value. visiting holds the nodes on the
// current path so an alias back into one of them is rejected.
type exprDecoder struct {
	visiting map[*yaml.Node]struct{}
	nodes    int
}

// decodeExpression converts a YAML node into an expression. Local tags become
// typed nodes named after the tag, `!ref` becomes a dependency reference and
// untagged values become literals. Aliases are followed unless they point
// back into the node that contains them.
func decodeExpression(n *yaml.Node) (domain.Expression, error) {
	d := &exprDecoder{visiting: make(map[*yaml.Node]struct{})}
	return d.decode(n)
}

func (d *exprDecoder) decode(n *yaml.Node) (domain.Expression, error) {
	d.nodes++
	if d.nodes > maxExpressionNodes {
		return nil, invalidExpression("expression expands to too many nodes", n)
	}

	if n.Kind == yaml.AliasNode {
		if _, loop := d.visiting[n.Alias]; loop {
			return nil, invalidExpression("alias refers to a node that contains it", n)
		}
		return d.decode(n.Alias)
	}

	d.visiting[n] = struct{}{}
	defer delete(d.visiting, n)

	if n.Tag == TagRef {
		return decodeReference(n)
	}
	if isLocalTag(n.Tag) {
		data := *n
		data.Tag = ""
		inner, err := d.decode(&data)
		if err != nil {
			return nil, err
		}
		return domain.NewTyped(strings.TrimPrefix(n.Tag, "!"), inner), nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return domain.Nil{}, nil
		}
		return d.decode(n.Content[0])
	case yaml.SequenceNode:
		out := make(domain.Array, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return d.decodeMapping(n)
	case yaml.ScalarNode:
		return decodeScalar(n)
	}
	return domain.Nil{}, nil
}

func (d *exprDecoder) decodeMapping(n *yaml.Node) (domain.Expression, error) {
	out := make(domain.Object, len(n.Content)/2)
	var merged []domain.Object
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		v, err := d.decode(value)
		if err != nil {
			return nil, err
		}
		if key.Tag == tagMerge {
			obj, ok := v.(domain.Object)
			if !ok {
				return nil, invalidExpression("merge key needs a mapping", value)
			}
			merged = append(merged, obj)
			continue
		}
		out[key.Value] = v
	}
	for _, obj := range merged {
		for k, v := range obj {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out, nil
}

func decodeScalar(n *yaml.Node) (domain.Expression, error) {
	switch n.ShortTag() {
	case tagNull:
		return domain.Nil{}, nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, invalidExpression(err.Error(), n)
		}
		return domain.Bool(b), nil
	case tagInt, tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, invalidExpression(err.Error(), n)
		}
		return domain.Number(f), nil
	}
	return domain.String(n.Value), nil
}

// decodeReference splits `selector.key` on the last dot.
func decodeReference(n *yaml.Node) (domain.Expression, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, invalidExpression("reference must be a scalar like parent.transform", n)
	}
	i := strings.LastIndex(n.Value, ".")
	if i <= 0 || i == len(n.Value)-1 {
		return nil, invalidExpression("reference must look like <entity>.<key>", n)
	}
	return domain.NewReference(domain.EntitySelector(n.Value[:i]), n.Value[i+1:]), nil
}

func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

func invalidExpression(msg string, n *yaml.Node) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidExpression, msg), "line", n.Line)
	return zerr.With(err, "column", n.Column)
}
