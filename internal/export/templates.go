package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"tendesign/api/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

var priceListTemplate *template.Template

func init() {
	funcMap := template.FuncMap{
		"label": func(lang string, v any) string {
			var b content.Bilingual
			switch value := v.(type) {
			case content.Bilingual:
				b = value
			case *content.Bilingual:
				if value == nil {
					return ""
				}
				b = *value
			default:
				return ""
			}
			if lang == "km" {
				return b.KM
			}
			return b.EN
		},
		"formatDate": func(t time.Time, layout string) string {
			return t.Format(layout)
		},
	}

	templateContent, err := templateFS.ReadFile("templates/pricelist.html")
	if err != nil {
		panic(fmt.Sprintf("price list template missing: %v", err))
	}
	priceListTemplate = template.Must(template.New("pricelist").Funcs(funcMap).Parse(string(templateContent)))
}

// PriceListData holds data for price list template rendering
type PriceListData struct {
	Lang       string
	Title      string
	Categories []content.ServiceCategory
	RenderedAt time.Time
}

// RenderPriceListHTML renders the price list template for one language.
func RenderPriceListHTML(categories []content.ServiceCategory, lang string) (string, error) {
	if lang != "km" {
		lang = "en"
	}
	title := "Services & Price List"
	if lang == "km" {
		title = "សេវាកម្ម និងតារាងតម្លៃ"
	}
	var buf bytes.Buffer
	err := priceListTemplate.Execute(&buf, PriceListData{
		Lang:       lang,
		Title:      title,
		Categories: categories,
		RenderedAt: time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("render price list: %w", err)
	}
	return buf.String(), nil
}
