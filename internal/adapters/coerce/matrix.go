package coerce

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

// Tags understood by ToMatrix. Rotation angles are in radians.
const (
	TagIdentity  = "identity"
	TagMatrix    = "matrix"
	TagTranslate = "translate"
	TagScale     = "scale"
	TagRotateX   = "rotate_x"
	TagRotateY   = "rotate_y"
	TagRotateZ   = "rotate_z"
	TagRotate    = "rotate"
	TagMul       = "mul"
	TagTengo     = "tengo"
	TagCEL       = "cel"
)

// ToMatrix coerces a concrete value to a matrix. The value must not contain
// dependency references.
func (c *Coercer) ToMatrix(expr domain.Expression) (domain.Matrix, error) {
	if expr == nil {
		expr = domain.Nil{}
	}
	switch e := expr.(type) {
	case domain.MatrixValue:
		return e.Matrix(), nil
	case domain.Array:
		return matrixFromArray(e)
	case domain.Typed:
		return c.typed(e)
	}
	return domain.Matrix{}, coercionError("value is not a matrix", expr)
}

func (c *Coercer) typed(e domain.Typed) (domain.Matrix, error) {
	switch e.Tag {
	case TagIdentity:
		return mgl32.Ident4(), nil

	case TagMatrix:
		if m, ok := e.Data.(domain.MatrixValue); ok {
			return m.Matrix(), nil
		}
		items, ok := e.Data.(domain.Array)
		if !ok {
			return domain.Matrix{}, tagError(e, "expects 16 numbers")
		}
		return matrixFromArray(items)

	case TagTranslate:
		v, err := vec3(e, 0)
		if err != nil {
			return domain.Matrix{}, err
		}
		return mgl32.Translate3D(v[0], v[1], v[2]), nil

	case TagScale:
		if n, ok := e.Data.(domain.Number); ok {
			return mgl32.Scale3D(float32(n), float32(n), float32(n)), nil
		}
		v, err := vec3(e, 1)
		if err != nil {
			return domain.Matrix{}, err
		}
		return mgl32.Scale3D(v[0], v[1], v[2]), nil

	case TagRotateX, TagRotateY, TagRotateZ:
		angle, ok := e.Data.(domain.Number)
		if !ok {
			return domain.Matrix{}, tagError(e, "expects an angle in radians")
		}
		switch e.Tag {
		case TagRotateX:
			return mgl32.HomogRotate3DX(float32(angle)), nil
		case TagRotateY:
			return mgl32.HomogRotate3DY(float32(angle)), nil
		default:
			return mgl32.HomogRotate3DZ(float32(angle)), nil
		}

	case TagRotate:
		return rotateAxis(e)

	case TagMul:
		items, ok := e.Data.(domain.Array)
		if !ok {
			return domain.Matrix{}, tagError(e, "expects a sequence of expressions")
		}
		acc := mgl32.Ident4()
		for _, item := range items {
			m, err := c.ToMatrix(item)
			if err != nil {
				return domain.Matrix{}, err
			}
			acc = acc.Mul4(m)
		}
		return acc, nil

	case TagTengo:
		return c.runTengo(e)

	case TagCEL:
		return c.runCEL(e)
	}

	return domain.Matrix{}, zerr.With(
		zerr.Wrap(domain.ErrTypeCoercion, "unknown expression type"),
		"tag", e.Tag,
	)
}

func matrixFromArray(items domain.Array) (domain.Matrix, error) {
	values := make([]float32, 0, len(items))
	for _, item := range items {
		n, ok := item.(domain.Number)
		if !ok {
			return domain.Matrix{}, coercionError("matrix elements must be numbers", items)
		}
		values = append(values, float32(n))
	}
	m, ok := domain.MatrixFromSlice(values)
	if !ok {
		return domain.Matrix{}, coercionError("matrix needs exactly 16 numbers", items)
	}
	return m, nil
}

// vec3 reads [x, y, z] or {x, y, z}; missing components take def.
func vec3(e domain.Typed, def float32) (mgl32.Vec3, error) {
	v := mgl32.Vec3{def, def, def}
	switch data := e.Data.(type) {
	case nil, domain.Nil:
		return v, nil
	case domain.Array:
		if len(data) > 3 {
			return v, tagError(e, "expects at most 3 components")
		}
		for i, item := range data {
			n, ok := item.(domain.Number)
			if !ok {
				return v, tagError(e, "components must be numbers")
			}
			v[i] = float32(n)
		}
		return v, nil
	case domain.Object:
		for i, key := range []string{"x", "y", "z"} {
			item, ok := data[key]
			if !ok {
				continue
			}
			n, ok := item.(domain.Number)
			if !ok {
				return v, tagError(e, "components must be numbers")
			}
			v[i] = float32(n)
		}
		return v, nil
	}
	return v, tagError(e, "expects [x, y, z] or {x, y, z}")
}

func rotateAxis(e domain.Typed) (domain.Matrix, error) {
	data, ok := e.Data.(domain.Object)
	if !ok {
		return domain.Matrix{}, tagError(e, "expects {axis, angle}")
	}
	angle, ok := data["angle"].(domain.Number)
	if !ok {
		return domain.Matrix{}, tagError(e, "angle must be a number")
	}
	axis, err := vec3(domain.Typed{Tag: e.Tag, Data: data["axis"]}, 0)
	if err != nil {
		return domain.Matrix{}, err
	}
	if axis.Len() == 0 {
		return domain.Matrix{}, tagError(e, "axis must not be zero")
	}
	return mgl32.HomogRotate3D(float32(angle), axis.Normalize()), nil
}

func coercionError(msg string, value domain.Expression) error {
	return zerr.With(zerr.Wrap(domain.ErrTypeCoercion, msg), "value", value.String())
}

func tagError(e domain.Typed, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrTypeCoercion, e.Tag+" "+msg), "value", e.String())
}
