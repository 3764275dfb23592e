package report

import (
	"fmt"
	"sort"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// noWrapBlocks are kept intact on one page; the writer starts a new page
// rather than splitting them. All other blocks may break anywhere.
var noWrapBlocks = map[domain.BlockType]bool{
	domain.BlockIdentification: true,
	domain.BlockSignature:      true,
	domain.BlockConclusion:     true,
}

// Assembler turns a template config plus a populated data aggregate into an
// ordered document of fragments.
type Assembler struct {
	registry Registry
}

// NewAssembler creates an Assembler dispatching through the given registry.
func NewAssembler(registry Registry) *Assembler {
	return &Assembler{registry: registry}
}

// Assemble filters the config to enabled blocks, sorts them by order
// (stable, so duplicate order values keep their array position), renders
// each through the registry and collects the fragments.
func (a *Assembler) Assemble(
	title string,
	config domain.ReportTemplateConfig,
	data *domain.ReportData,
	translator *i18n.Translator,
) (*Document, error) {
	ctx := RenderContext{
		Translator: translator,
		Locale:     translator.Locale(),
		Branding:   config.Branding,
	}

	enabled := make([]domain.ReportBlock, 0, len(config.Blocks))
	for _, block := range config.Blocks {
		if block.Enabled {
			enabled = append(enabled, block)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})

	doc := &Document{
		Title:     title,
		Branding:  config.Branding,
		Fragments: make([]Fragment, 0, len(enabled)),
	}

	for _, block := range enabled {
		fragment, err := a.registry.Render(ctx, data, block)
		if err != nil {
			return nil, fmt.Errorf("failed to render block %q: %w", block.Type, err)
		}
		fragment.Block = block.Type
		fragment.KeepTogether = noWrapBlocks[block.Type]
		doc.Fragments = append(doc.Fragments, fragment)
	}

	return doc, nil
}
