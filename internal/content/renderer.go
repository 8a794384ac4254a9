package content

import (
	"context"
	"fmt"
	"time"

	"github.com/aescanero/dago-node-spintax/internal/eval/cel"
	"github.com/aescanero/dago-node-spintax/internal/eval/template"
	"github.com/aescanero/dago-node-spintax/internal/spintax"
	"go.uber.org/zap"
)

// Options configures a Renderer
type Options struct {
	// CELEnabled turns on evaluation of field conditions. When disabled,
	// every field is rendered.
	CELEnabled bool
}

// Renderer renders page requests
type Renderer struct {
	engine       *spintax.Engine
	celEvaluator *cel.Evaluator
	layouts      *template.Engine
	opts         Options
	logger       *zap.Logger
	now          func() time.Time
}

// NewRenderer creates a new renderer
func NewRenderer(opts Options, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		engine:       spintax.NewEngine(logger),
		celEvaluator: cel.NewEvaluator(),
		layouts:      template.NewEngine(),
		opts:         opts,
		logger:       logger,
		now:          time.Now,
	}
}

// Render renders every field of req and, if set, its layout
func (r *Renderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	r.logger.Debug("rendering page",
		zap.String("request_id", req.RequestID),
		zap.String("domain", req.Domain),
		zap.String("page", req.Page),
		zap.Int("num_fields", len(req.Fields)),
	)

	result := &RenderResult{
		RequestID: req.RequestID,
		Domain:    req.Domain,
		Page:      req.Page,
		Fields:    make(map[string]string, len(req.Fields)),
		Order:     make([]string, 0, len(req.Fields)),
	}

	act := cel.Activation(req.Domain, req.Page, req.Vars)

	for i, field := range req.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !r.shouldRender(ctx, i, field, act) {
			result.Skipped = append(result.Skipped, field.Name)
			continue
		}

		result.Fields[field.Name] = r.engine.Process(field.Template, req.Seed(field), req.Vars)
		result.Order = append(result.Order, field.Name)
	}

	if req.Layout != "" {
		doc, err := r.renderLayout(req, result)
		if err != nil {
			return nil, fmt.Errorf("failed to render layout: %w", err)
		}
		result.Document = doc
	}

	result.RenderedAt = r.now().UTC()

	r.logger.Info("page rendered",
		zap.String("request_id", req.RequestID),
		zap.String("domain", req.Domain),
		zap.String("page", req.Page),
		zap.Int("rendered", len(result.Order)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

// shouldRender evaluates the field's condition. Evaluation errors skip the
// field.
func (r *Renderer) shouldRender(ctx context.Context, i int, field Field, act map[string]interface{}) bool {
	if field.When == "" || !r.opts.CELEnabled {
		return true
	}

	matched, err := r.celEvaluator.Matches(ctx, field.When, act)
	if err != nil {
		r.logger.Warn("field condition evaluation error",
			zap.Int("field_index", i),
			zap.String("field", field.Name),
			zap.String("condition", field.When),
			zap.Error(err),
		)
		return false
	}

	if !matched {
		r.logger.Debug("field condition not met",
			zap.String("field", field.Name),
			zap.String("condition", field.When),
		)
	}
	return matched
}

// renderLayout renders the request layout with the rendered fields
func (r *Renderer) renderLayout(req *RenderRequest, result *RenderResult) (string, error) {
	fields := make(map[string]interface{}, len(result.Fields))
	for name, text := range result.Fields {
		fields[name] = text
	}

	vars := make(map[string]interface{}, len(req.Vars))
	for k, v := range req.Vars {
		vars[k] = v
	}

	data := map[string]interface{}{
		"domain": req.Domain,
		"page":   req.Page,
		"vars":   vars,
		"fields": fields,
	}

	return r.layouts.Render(req.Layout, data)
}
