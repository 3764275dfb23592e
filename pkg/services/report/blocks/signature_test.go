package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func findImages(elements []report.Element) []report.Image {
	var images []report.Image
	for _, e := range elements {
		if img, ok := e.(report.Image); ok {
			images = append(images, img)
		}
	}
	return images
}

func TestRenderSignature_EmbedsImageData(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	data := &domain.ReportData{
		GeneratedAt: time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
		Signature: &domain.Signature{
			ImageURL:  "https://cdn.lince.example/sig/jsilva.png",
			ImageData: png,
			Name:      "J. Silva",
			Role:      "Technical Lead",
		},
	}

	fragment, err := renderSignature(enContext(), data, domain.ReportBlock{Type: domain.BlockSignature})
	require.NoError(t, err)

	images := findImages(fragment.Elements)
	require.Len(t, images, 1)
	assert.Equal(t, png, images[0].PNG, "signature image must carry its bytes to the writer")
	assert.Equal(t, "https://cdn.lince.example/sig/jsilva.png", images[0].Name)
}

func TestRenderSignature_SkipsImageWithoutData(t *testing.T) {
	data := &domain.ReportData{
		GeneratedAt: time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
		Signature: &domain.Signature{
			ImageURL: "https://cdn.lince.example/sig/jsilva.png",
			Name:     "J. Silva",
		},
	}

	fragment, err := renderSignature(enContext(), data, domain.ReportBlock{Type: domain.BlockSignature})
	require.NoError(t, err)

	assert.Empty(t, findImages(fragment.Elements))
}

func TestRenderSignature_NilSignatureRendersDateOnly(t *testing.T) {
	data := &domain.ReportData{
		GeneratedAt: time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
	}

	fragment, err := renderSignature(enContext(), data, domain.ReportBlock{Type: domain.BlockSignature})
	require.NoError(t, err)

	assert.Empty(t, findImages(fragment.Elements))
	var boxes []report.KeyValueBox
	for _, e := range fragment.Elements {
		if box, ok := e.(report.KeyValueBox); ok {
			boxes = append(boxes, box)
		}
	}
	require.Len(t, boxes, 1)
	require.Len(t, boxes[0].Rows, 1)
	assert.Equal(t, "2026-03-31", boxes[0].Rows[0].Value)
}
