package coerce_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/coerce"
	"go.trai.ch/xform/internal/adapters/memdoc"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

func nums(values ...float64) domain.Array {
	out := make(domain.Array, len(values))
	for i, v := range values {
		out[i] = domain.Number(v)
	}
	return out
}

type sceneFixture struct {
	store *memdoc.Store
	base  domain.EntityID
	arm   domain.EntityID
}

func setupScene(t *testing.T) *sceneFixture {
	t.Helper()
	store, err := memdoc.NewStore()
	require.NoError(t, err)

	base, err := store.CreateEntity("base", domain.NoEntity)
	require.NoError(t, err)
	arm, err := store.CreateEntity("arm", base)
	require.NoError(t, err)

	require.NoError(t, store.SetProperty(base, "offset", nums(1, 2, 3)))
	require.NoError(t, store.SetProperty(base, "pos", domain.NewReference(domain.SelectThis, "offset")))
	require.NoError(t, store.SetProperty(arm, "offset", nums(9, 9, 9)))
	require.NoError(t, store.SetProperty(arm, "alias", domain.NewReference("base", "pos")))
	store.TakeChanges()

	return &sceneFixture{store: store, base: base, arm: arm}
}

func TestCoercer_ResolveMatrix(t *testing.T) {
	t.Parallel()
	f := setupScene(t)
	c := coerce.New()

	tests := []struct {
		name string
		expr domain.Expression
		want mgl32.Mat4
	}{
		{
			name: "literal",
			expr: domain.NewTyped(coerce.TagTranslate, nums(4, 5, 6)),
			want: mgl32.Translate3D(4, 5, 6),
		},
		{
			name: "reference by name",
			expr: domain.NewTyped(coerce.TagTranslate, domain.NewReference("base", "offset")),
			want: mgl32.Translate3D(1, 2, 3),
		},
		{
			name: "this refers to the owner",
			expr: domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectThis, "offset")),
			want: mgl32.Translate3D(9, 9, 9),
		},
		{
			name: "parent",
			expr: domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectParent, "offset")),
			want: mgl32.Translate3D(1, 2, 3),
		},
		{
			name: "chained references resolve relative to their owner",
			expr: domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectThis, "alias")),
			want: mgl32.Translate3D(1, 2, 3),
		},
		{
			name: "nested in components",
			expr: domain.NewTyped(coerce.TagScale, domain.Object{
				"x": domain.Number(2),
				"y": domain.NewReference(domain.SelectThis, "factor"),
			}),
			want: mgl32.Scale3D(2, 3, 1),
		},
	}

	require.NoError(t, f.store.SetProperty(f.arm, "factor", domain.Number(3)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ResolveMatrix(f.store, f.arm, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoercer_ResolveMatrixErrors(t *testing.T) {
	t.Parallel()
	f := setupScene(t)
	require.NoError(t, f.store.SetProperty(f.arm, "x", domain.NewReference(domain.SelectThis, "y")))
	require.NoError(t, f.store.SetProperty(f.arm, "y", domain.NewReference(domain.SelectThis, "x")))
	c := coerce.New()

	tests := []struct {
		name    string
		owner   domain.EntityID
		expr    domain.Expression
		wantErr error
	}{
		{
			name:    "unknown entity",
			owner:   f.arm,
			expr:    domain.NewTyped(coerce.TagTranslate, domain.NewReference("ghost", "offset")),
			wantErr: domain.ErrReferenceResolution,
		},
		{
			name:    "missing property",
			owner:   f.arm,
			expr:    domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectThis, "missing")),
			wantErr: domain.ErrReferenceResolution,
		},
		{
			name:    "root has no parent",
			owner:   f.base,
			expr:    domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectParent, "offset")),
			wantErr: domain.ErrReferenceResolution,
		},
		{
			name:    "cycle",
			owner:   f.arm,
			expr:    domain.NewTyped(coerce.TagTranslate, domain.NewReference(domain.SelectThis, "x")),
			wantErr: domain.ErrCycleDetected,
		},
		{
			name:    "not a matrix",
			owner:   f.arm,
			expr:    domain.NewReference(domain.SelectThis, "offset"),
			wantErr: domain.ErrTypeCoercion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := c.ResolveMatrix(f.store, tt.owner, tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveDependencies_CyclePath(t *testing.T) {
	t.Parallel()
	f := setupScene(t)
	require.NoError(t, f.store.SetProperty(f.arm, "x", domain.NewReference(domain.SelectThis, "y")))
	require.NoError(t, f.store.SetProperty(f.arm, "y", domain.NewReference(domain.SelectThis, "x")))

	_, err := coerce.ResolveDependencies(f.store, f.arm, domain.NewReference(domain.SelectThis, "x"))
	require.ErrorIs(t, err, domain.ErrCycleDetected)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "2.x -> 2.y -> 2.x", zErr.Metadata()["cycle"])
}

func TestResolveDependencies_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	f := setupScene(t)

	expr := domain.Array{domain.NewReference("base", "offset")}
	got, err := coerce.ResolveDependencies(f.store, f.arm, expr)
	require.NoError(t, err)

	assert.Equal(t, domain.Array{nums(1, 2, 3)}, got)
	assert.Equal(t, domain.Array{domain.NewReference("base", "offset")}, expr)
}

func TestCoercer_ToMatrix(t *testing.T) {
	t.Parallel()
	c := coerce.New()
	quarter := math.Pi / 2

	tests := []struct {
		name string
		expr domain.Expression
		want mgl32.Mat4
	}{
		{
			name: "matrix value",
			expr: domain.MatrixValue(mgl32.Translate3D(1, 0, 0)),
			want: mgl32.Translate3D(1, 0, 0),
		},
		{
			name: "bare array is column-major",
			expr: nums(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 7, 8, 9, 1),
			want: mgl32.Translate3D(7, 8, 9),
		},
		{
			name: "identity",
			expr: domain.NewTyped(coerce.TagIdentity, domain.Nil{}),
			want: mgl32.Ident4(),
		},
		{
			name: "matrix",
			expr: domain.NewTyped(coerce.TagMatrix, nums(2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1)),
			want: mgl32.Scale3D(2, 2, 2),
		},
		{
			name: "translate object defaults to zero",
			expr: domain.NewTyped(coerce.TagTranslate, domain.Object{"y": domain.Number(2)}),
			want: mgl32.Translate3D(0, 2, 0),
		},
		{
			name: "translate short array",
			expr: domain.NewTyped(coerce.TagTranslate, nums(5)),
			want: mgl32.Translate3D(5, 0, 0),
		},
		{
			name: "uniform scale",
			expr: domain.NewTyped(coerce.TagScale, domain.Number(3)),
			want: mgl32.Scale3D(3, 3, 3),
		},
		{
			name: "scale object defaults to one",
			expr: domain.NewTyped(coerce.TagScale, domain.Object{"z": domain.Number(4)}),
			want: mgl32.Scale3D(1, 1, 4),
		},
		{
			name: "rotate_x",
			expr: domain.NewTyped(coerce.TagRotateX, domain.Number(quarter)),
			want: mgl32.HomogRotate3DX(float32(quarter)),
		},
		{
			name: "rotate_y",
			expr: domain.NewTyped(coerce.TagRotateY, domain.Number(quarter)),
			want: mgl32.HomogRotate3DY(float32(quarter)),
		},
		{
			name: "rotate_z",
			expr: domain.NewTyped(coerce.TagRotateZ, domain.Number(quarter)),
			want: mgl32.HomogRotate3DZ(float32(quarter)),
		},
		{
			name: "rotate about axis",
			expr: domain.NewTyped(coerce.TagRotate, domain.Object{
				"axis":  nums(0, 0, 5),
				"angle": domain.Number(quarter),
			}),
			want: mgl32.HomogRotate3DZ(float32(quarter)),
		},
		{
			name: "mul folds left to right",
			expr: domain.NewTyped(coerce.TagMul, domain.Array{
				domain.NewTyped(coerce.TagTranslate, nums(1, 0, 0)),
				domain.NewTyped(coerce.TagScale, domain.Number(2)),
			}),
			want: mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2)),
		},
		{
			name: "empty mul",
			expr: domain.NewTyped(coerce.TagMul, domain.Array{}),
			want: mgl32.Ident4(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ToMatrix(tt.expr)
			require.NoError(t, err)
			assert.True(t, tt.want.ApproxEqualThreshold(got, 1e-6), "want %v, got %v", tt.want, got)
		})
	}
}

func TestCoercer_ToMatrixErrors(t *testing.T) {
	t.Parallel()
	c := coerce.New()

	tests := []struct {
		name string
		expr domain.Expression
	}{
		{name: "nil", expr: nil},
		{name: "number", expr: domain.Number(1)},
		{name: "string", expr: domain.String("identity")},
		{name: "short array", expr: nums(1, 2, 3)},
		{name: "array of strings", expr: domain.Array{domain.String("a")}},
		{name: "matrix of 15", expr: domain.NewTyped(coerce.TagMatrix, nums(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15))},
		{name: "translate string", expr: domain.NewTyped(coerce.TagTranslate, domain.String("up"))},
		{name: "translate too long", expr: domain.NewTyped(coerce.TagTranslate, nums(1, 2, 3, 4))},
		{name: "rotate_x without angle", expr: domain.NewTyped(coerce.TagRotateX, domain.Nil{})},
		{name: "rotate zero axis", expr: domain.NewTyped(coerce.TagRotate, domain.Object{"axis": nums(0, 0, 0), "angle": domain.Number(1)})},
		{name: "mul of non sequence", expr: domain.NewTyped(coerce.TagMul, domain.Number(1))},
		{name: "mul with bad item", expr: domain.NewTyped(coerce.TagMul, domain.Array{domain.String("x")})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := c.ToMatrix(tt.expr)
			assert.ErrorIs(t, err, domain.ErrTypeCoercion)
		})
	}
}

func TestCoercer_UnknownTag(t *testing.T) {
	t.Parallel()
	_, err := coerce.New().ToMatrix(domain.NewTyped("shear", domain.Nil{}))
	require.ErrorIs(t, err, domain.ErrTypeCoercion)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "shear", zErr.Metadata()["tag"])
}
