package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aescanero/dago-node-spintax/internal/spintax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestRenderer(t *testing.T, opts Options) (*Renderer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRenderer(opts, zap.New(core))
	r.now = func() time.Time { return fixedNow }
	return r, logs
}

func roofingRequest() *RenderRequest {
	return &RenderRequest{
		RequestID: "req-1",
		Domain:    "austinroofing.com",
		Page:      "roof-repair",
		Vars:      map[string]string{"city": "Austin"},
		Fields: []Field{
			{Name: "title", Template: "{Roof Repair|Roofing Experts} in {{city}}", SeedSuffix: "-title"},
			{Name: "services", Template: "{Shingle repair|Shingle replacement} | {Leak detection|Leak repair} | Storm damage", SeedSuffix: "-services"},
			{Name: "phone_cta", Template: "Call {{phone}}", When: "'phone' in vars"},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	r, _ := newTestRenderer(t, Options{CELEnabled: true})

	result, err := r.Render(context.Background(), roofingRequest())
	require.NoError(t, err)

	assert.Equal(t, "req-1", result.RequestID)
	assert.Equal(t, "austinroofing.com", result.Domain)
	assert.Equal(t, "roof-repair", result.Page)
	assert.Equal(t, []string{"title", "services"}, result.Order)
	assert.Equal(t, []string{"phone_cta"}, result.Skipped)
	assert.Equal(t, "Roofing Experts in Austin", result.Fields["title"])
	assert.Equal(t, "Shingle replacement | Leak detection | Storm damage", result.Fields["services"])
	assert.Equal(t, fixedNow, result.RenderedAt)
	assert.Empty(t, result.Document)
}

func TestRenderer_FieldSeed(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	req := roofingRequest()

	result, err := r.Render(context.Background(), req)
	require.NoError(t, err)

	for _, f := range req.Fields {
		if _, ok := result.Fields[f.Name]; !ok {
			continue
		}
		want := spintax.Process(f.Template, "austinroofing.com"+f.SeedSuffix, req.Vars)
		assert.Equal(t, want, result.Fields[f.Name], f.Name)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r, _ := newTestRenderer(t, Options{CELEnabled: true})

	first, err := r.Render(context.Background(), roofingRequest())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := r.Render(context.Background(), roofingRequest())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderer_CELDisabledRendersAll(t *testing.T) {
	r, _ := newTestRenderer(t, Options{CELEnabled: false})

	result, err := r.Render(context.Background(), roofingRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "Call {{phone}}", result.Fields["phone_cta"])
}

func TestRenderer_ConditionErrorSkipsField(t *testing.T) {
	r, logs := newTestRenderer(t, Options{CELEnabled: true})
	req := roofingRequest()
	req.Fields[0].When = "vars.missing == 'x'"

	result, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, result.Skipped, "title")
	assert.Equal(t, 1, logs.FilterMessage("field condition evaluation error").Len())
}

func TestRenderer_Layout(t *testing.T) {
	r, _ := newTestRenderer(t, Options{CELEnabled: true})
	req := roofingRequest()
	req.Layout = `<h1>{{fields.title}}</h1><ul>{{#each (split fields.services "|")}}<li>{{this}}</li>{{/each}}</ul>`

	result, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t,
		"<h1>Roofing Experts in Austin</h1><ul><li>Shingle replacement</li><li>Leak detection</li><li>Storm damage</li></ul>",
		result.Document,
	)
}

func TestRenderer_LayoutError(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	req := roofingRequest()
	req.Layout = "{{#each fields}}"

	_, err := r.Render(context.Background(), req)
	assert.Error(t, err)
}

func TestRenderer_Validation(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})

	tests := []struct {
		name string
		req  *RenderRequest
		want error
	}{
		{"missing domain", &RenderRequest{Fields: []Field{{Name: "a"}}}, ErrMissingDomain},
		{"no fields", &RenderRequest{Domain: "a.com"}, ErrNoFields},
		{"empty name", &RenderRequest{Domain: "a.com", Fields: []Field{{Template: "x"}}}, ErrEmptyFieldName},
		{"duplicate", &RenderRequest{Domain: "a.com", Fields: []Field{{Name: "a"}, {Name: "a"}}}, ErrDuplicateField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}

	_, err := r.Render(context.Background(), nil)
	assert.Error(t, err)
}

func TestRenderer_CanceledContext(t *testing.T) {
	r, _ := newTestRenderer(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, roofingRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderRequest_Seed(t *testing.T) {
	req := &RenderRequest{Domain: "a.com"}
	assert.Equal(t, "a.com", req.Seed(Field{}))
	assert.Equal(t, "a.com-title", req.Seed(Field{SeedSuffix: "-title"}))
}
