// Package blocks implements the renderer for each report block type.
// Renderers consume the read-only data aggregate plus one block config and
// emit a layout fragment; a block with no matching data renders an explicit
// placeholder instead of disappearing from the document.
package blocks

import (
	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

// Renderers returns the full dispatch table, one renderer per block type.
func Renderers() map[domain.BlockType]report.RenderFunc {
	return map[domain.BlockType]report.RenderFunc{
		domain.BlockIdentification: renderIdentification,
		domain.BlockScope:          renderScope,
		domain.BlockSystems:        renderSystems,
		domain.BlockAnalyses:       renderAnalyses,
		domain.BlockInspections:    renderInspections,
		domain.BlockOccurrences:    renderOccurrences,
		domain.BlockConclusion:     renderConclusion,
		domain.BlockSignature:      renderSignature,
		domain.BlockAttachments:    renderAttachments,
	}
}

// emptyState builds the standard "no data" placeholder under a block title.
func emptyState(title, message string) report.Fragment {
	return report.Fragment{
		Elements: []report.Element{
			report.Heading{Text: title, Level: 1},
			report.Paragraph{Text: message, Muted: true},
		},
	}
}
