package export

import (
	"encoding/json"
	"strings"
	"testing"

	"tendesign/api/internal/content"
)

func TestRenderPriceListHTMLEnglish(t *testing.T) {
	html, err := RenderPriceListHTML(content.DefaultServiceCategories(), "en")
	if err != nil {
		t.Fatalf("RenderPriceListHTML() error = %v", err)
	}

	for _, fragment := range []string{
		"Services &amp; Price List",
		"Logo Design",
		"Basic Logo",
		"$30 – $50",
		"3 concepts, revisions",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("expected rendered HTML to contain %q", fragment)
		}
	}
	if strings.Contains(html, "ស្លាកសញ្ញាមូលដ្ឋាន") {
		t.Error("English rendering must not contain Khmer labels")
	}
}

func TestRenderPriceListHTMLKhmer(t *testing.T) {
	html, err := RenderPriceListHTML(content.DefaultServiceCategories(), "km")
	if err != nil {
		t.Fatalf("RenderPriceListHTML() error = %v", err)
	}
	for _, fragment := range []string{
		"សេវាកម្ម និងតារាងតម្លៃ",
		"ការរចនាស្លាកសញ្ញា",
		"$30 – $50",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("expected rendered HTML to contain %q", fragment)
		}
	}
}

func TestRenderPriceListHTMLUnknownLangFallsBackToEnglish(t *testing.T) {
	html, err := RenderPriceListHTML(content.DefaultServiceCategories(), "fr")
	if err != nil {
		t.Fatalf("RenderPriceListHTML() error = %v", err)
	}
	if !strings.Contains(html, "Logo Design") {
		t.Error("expected English fallback for unknown language")
	}
}

func TestCategoryJSON(t *testing.T) {
	category := content.DefaultServiceCategories()[0]
	result, err := CategoryJSON(category)
	if err != nil {
		t.Fatalf("CategoryJSON() error = %v", err)
	}
	if result.Filename != "Logo_Design_category.json" {
		t.Errorf("unexpected filename %q", result.Filename)
	}
	if result.MimeType != "application/json" {
		t.Errorf("unexpected mime type %q", result.MimeType)
	}

	var decoded content.ServiceCategory
	if err := json.Unmarshal(result.Data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if decoded.Category != category.Category || len(decoded.Items) != len(category.Items) {
		t.Fatalf("artifact does not round-trip: %+v", decoded)
	}
}

func TestCategoryJSONEmptyNameFallback(t *testing.T) {
	result, err := CategoryJSON(content.ServiceCategory{Items: []content.ServiceItem{}})
	if err != nil {
		t.Fatalf("CategoryJSON() error = %v", err)
	}
	if result.Filename != "category_category.json" {
		t.Errorf("unexpected filename %q", result.Filename)
	}
}
