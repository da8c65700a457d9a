package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/memdoc"
	"go.trai.ch/xform/internal/adapters/report"
	"go.trai.ch/xform/internal/core/domain"
)

func TestPrinter_OnPropertyChanged(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	store, err := memdoc.NewStore()
	require.NoError(t, err)
	root, err := store.CreateEntity("root", domain.NoEntity)
	require.NoError(t, err)
	arm, err := store.CreateEntity("arm", root)
	require.NoError(t, err)

	require.NoError(t, store.SetProperty(root, domain.KeyTransformed, domain.MatrixValue(mgl32.Ident4())))
	require.NoError(t, store.SetProperty(arm, domain.KeyTransformed, domain.MatrixValue(mgl32.Translate3D(1, 2, 3))))
	require.NoError(t, store.SetProperty(arm, "label", domain.String("not a matrix")))

	var buf bytes.Buffer
	p := report.NewPrinter(&buf, store)
	p.OnPropertyChanged(store, []domain.PropRef{
		{EntityID: root, Key: domain.KeyTransformed},
		{EntityID: root, Key: domain.KeyTransform},
		{EntityID: arm, Key: domain.KeyTransformed},
		{EntityID: arm, Key: "label"},
		{EntityID: 99, Key: domain.KeyTransformed},
	})

	goldie.New(t).Assert(t, "transformed_changes", buf.Bytes())
}

func TestPrinter_NothingToReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	store, err := memdoc.NewStore()
	require.NoError(t, err)

	var buf bytes.Buffer
	report.NewPrinter(&buf, store).OnPropertyChanged(store, []domain.PropRef{{EntityID: 1, Key: domain.KeyTransform}})

	assert.Empty(t, buf.String())
}

func TestFormatMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    mgl32.Mat4
		want string
	}{
		{
			name: "identity",
			m:    mgl32.Ident4(),
			want: "[ 1 0 0 0 | 0 1 0 0 | 0 0 1 0 | 0 0 0 1 ]",
		},
		{
			name: "scale and translate",
			m:    mgl32.Translate3D(-1, 0.5, 0).Mul4(mgl32.Scale3D(2, 2, 2)),
			want: "[ 2 0 0 -1 | 0 2 0 0.5 | 0 0 2 0 | 0 0 0 1 ]",
		},
		{
			name: "negative zero",
			m:    mgl32.Mat4{float32(math.Copysign(0, -1)), 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
			want: "[ 0 0 0 0 | 0 1 0 0 | 0 0 1 0 | 0 0 0 1 ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, report.FormatMatrix(tt.m))
		})
	}
}
