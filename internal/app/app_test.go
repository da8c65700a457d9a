package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/xform/internal/adapters/coerce"
	"go.trai.ch/xform/internal/adapters/memdoc"
	"go.trai.ch/xform/internal/app"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const scenePath = "scene.yaml"

func translate(x, y, z float64) domain.Typed {
	return domain.NewTyped(coerce.TagTranslate, domain.Array{domain.Number(x), domain.Number(y), domain.Number(z)})
}

// armScene builds root -> arm, where arm's transform composes its parent's.
func armScene(rootX float64) *domain.Scene {
	return &domain.Scene{Entities: []domain.EntitySpec{
		{
			Name:       "root",
			Properties: map[string]domain.Expression{domain.KeyTransform: translate(rootX, 0, 0)},
		},
		{
			Name:   "arm",
			Parent: "root",
			Properties: map[string]domain.Expression{
				domain.KeyTransform: domain.NewTyped(coerce.TagMul, domain.Array{
					domain.NewReference(domain.SelectParent, domain.KeyTransform),
					translate(0, 1, 0),
				}),
			},
		},
		{
			Name:       "label",
			Parent:     "arm",
			Properties: map[string]domain.Expression{"text": domain.String("hello")},
		},
	}}
}

type appHarness struct {
	app     *app.App
	loader  *mocks.MockDocumentLoader
	logger  *mocks.MockLogger
	watcher *mocks.MockWatcher
	store   *memdoc.Store
}

func newHarness(t *testing.T) *appHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	store, err := memdoc.NewStore()
	require.NoError(t, err)

	h := &appHarness{
		loader:  mocks.NewMockDocumentLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		store:   store,
	}
	h.app = app.New(h.loader, store, coerce.New(), h.logger, nil, h.watcher)
	return h
}

func TestApp_Resolve(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.loader.EXPECT().Load(scenePath).Return(armScene(1), nil)

	results, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, []app.Result{
		{Name: "arm", Matrix: mgl32.Translate3D(1, 1, 0)},
		{Name: "root", Matrix: mgl32.Translate3D(1, 0, 0)},
	}, results)
}

func TestApp_ResolveWritesBack(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.loader.EXPECT().Load(scenePath).Return(armScene(1), nil)

	_, err := h.app.Resolve(context.Background(), scenePath, []string{"arm"}, app.ResolveOptions{})
	require.NoError(t, err)

	arm, err := h.store.Lookup("arm")
	require.NoError(t, err)
	got, err := h.store.PropertyExpression(arm, domain.KeyTransformed)
	require.NoError(t, err)
	assert.Equal(t, domain.MatrixValue(mgl32.Translate3D(1, 1, 0)), got)
	assert.Empty(t, h.store.TakeChanges(), "write-backs are dispatched before Resolve returns")
}

func TestApp_ResolvePartialFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.loader.EXPECT().Load(scenePath).Return(armScene(1), nil)

	results, err := h.app.Resolve(context.Background(), scenePath, []string{"root", "ghost", "label"}, app.ResolveOptions{})
	require.ErrorIs(t, err, domain.ErrResolveFailed)
	require.ErrorIs(t, err, domain.ErrEntityNotFound)
	require.ErrorIs(t, err, domain.ErrPropertyNotFound)

	assert.Equal(t, []app.Result{{Name: "root", Matrix: mgl32.Translate3D(1, 0, 0)}}, results)
}

func TestApp_ResolveCoercionFailure(t *testing.T) {
	t.Parallel()
	bad := &domain.Scene{Entities: []domain.EntitySpec{{
		Name:       "a",
		Properties: map[string]domain.Expression{domain.KeyTransform: domain.NewTyped(coerce.TagRotateX, domain.String("quarter"))},
	}}}

	t.Run("strict", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.loader.EXPECT().Load(scenePath).Return(bad, nil)

		_, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{})
		require.ErrorIs(t, err, domain.ErrResolveFailed)
		assert.ErrorIs(t, err, domain.ErrTypeCoercion)
	})

	t.Run("lenient", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.loader.EXPECT().Load(scenePath).Return(bad, nil)
		h.logger.EXPECT().Warn(gomock.Any())

		results, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{Lenient: true})
		require.NoError(t, err)
		assert.Equal(t, []app.Result{{Name: "a", Matrix: mgl32.Ident4()}}, results)
	})
}

func TestApp_ResolveLoadFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.loader.EXPECT().Load(scenePath).Return(nil, errors.Join(domain.ErrDocumentReadFailed, errors.New("no such file")))

	results, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{})
	require.ErrorIs(t, err, domain.ErrDocumentReadFailed)
	assert.Nil(t, results)
}

func TestApp_ResolveTracesDispatch(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.loader.EXPECT().Load(scenePath).Return(armScene(1), nil)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h.app.WithTracerProvider(tp)

	_, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dispatch", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("dispatch.round", 1))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("dispatch.changes", 2))
}

func TestApp_ResolveTraceUsesSpanLog(t *testing.T) {
	t.Parallel()

	for _, traced := range []bool{false, true} {
		h := newHarness(t)
		h.loader.EXPECT().Load(scenePath).Return(armScene(1), nil)

		spanLog := tracetest.NewSpanRecorder()
		h.app.WithSpanLog(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanLog)))

		_, err := h.app.Resolve(context.Background(), scenePath, nil, app.ResolveOptions{Trace: traced})
		require.NoError(t, err)

		if traced {
			assert.Len(t, spanLog.Ended(), 1)
		} else {
			assert.Empty(t, spanLog.Ended())
		}
	}
}
