package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"tendesign/api/internal/content"
)

// CategoryJSON serializes one service category to the downloadable JSON
// artifact the admin dashboard offers per category. Pure read; no store
// interaction.
func CategoryJSON(category content.ServiceCategory) (*Result, error) {
	data, err := json.MarshalIndent(category, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode category: %w", err)
	}
	name := strings.ReplaceAll(strings.TrimSpace(category.Category.EN), " ", "_")
	if name == "" {
		name = "category"
	}
	return &Result{
		Data:     data,
		Filename: name + "_category.json",
		MimeType: "application/json",
	}, nil
}

// PriceListPDF renders the full price list for one language and converts
// it to PDF with headless Chrome. Callers must map
// ErrPDFDependencyMissing to a service-unavailable response.
func PriceListPDF(categories []content.ServiceCategory, lang string) (*Result, error) {
	html, err := RenderPriceListHTML(categories, lang)
	if err != nil {
		return nil, err
	}
	filename := "price-list-" + lang + ".pdf"
	if lang != "km" {
		filename = "price-list-en.pdf"
	}
	return exportPDF(html, filename)
}
