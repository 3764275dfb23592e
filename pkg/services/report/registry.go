package report

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// ErrUnknownBlockType marks a config block with no registered renderer.
var ErrUnknownBlockType = errors.New("unknown block type")

// RenderContext carries the cross-cutting inputs every block renderer needs.
type RenderContext struct {
	Translator *i18n.Translator
	Locale     i18n.Locale
	Branding   domain.ReportBranding
}

// RenderFunc renders one block into a layout fragment. Renderers are pure:
// no network or shared state, and they must not mutate the data aggregate.
type RenderFunc func(ctx RenderContext, data *domain.ReportData, block domain.ReportBlock) (Fragment, error)

// Registry maps block types to their renderers.
type Registry interface {
	// Register adds a renderer for a block type
	Register(blockType domain.BlockType, fn RenderFunc) error
	// Render dispatches to the renderer registered for the block's type
	Render(ctx RenderContext, data *domain.ReportData, block domain.ReportBlock) (Fragment, error)
	// ListBlockTypes returns the registered block types
	ListBlockTypes() []domain.BlockType
}

type registry struct {
	mu        sync.RWMutex
	renderers map[domain.BlockType]RenderFunc
}

// NewRegistry creates a registry pre-populated with the given renderers.
func NewRegistry(renderers map[domain.BlockType]RenderFunc) Registry {
	r := &registry{renderers: make(map[domain.BlockType]RenderFunc, len(renderers))}
	for blockType, fn := range renderers {
		r.renderers[blockType] = fn
	}
	return r
}

func (r *registry) Register(blockType domain.BlockType, fn RenderFunc) error {
	if blockType == "" {
		return fmt.Errorf("block type cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("renderer cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[blockType]; exists {
		return fmt.Errorf("block type %q is already registered", blockType)
	}

	r.renderers[blockType] = fn
	return nil
}

func (r *registry) Render(ctx RenderContext, data *domain.ReportData, block domain.ReportBlock) (Fragment, error) {
	r.mu.RLock()
	fn, exists := r.renderers[block.Type]
	r.mu.RUnlock()

	if !exists {
		return Fragment{}, fmt.Errorf("block type %q: %w", block.Type, ErrUnknownBlockType)
	}

	return fn(ctx, data, block)
}

func (r *registry) ListBlockTypes() []domain.BlockType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.BlockType, 0, len(r.renderers))
	for blockType := range r.renderers {
		types = append(types, blockType)
	}
	return types
}
