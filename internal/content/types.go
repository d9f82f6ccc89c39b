// Package content holds the four editable collections of the portfolio
// site and the pure helpers that operate on them.
package content

// Kind names one of the four content collections. The string value is the
// collection segment used in API paths and in the store.
type Kind string

const (
	KindServices           Kind = "services"
	KindPortfolio          Kind = "portfolio"
	KindDeveloperPortfolio Kind = "developer-portfolio"
	KindSocialLinks        Kind = "social-links"
)

// Kinds lists all collections in their canonical order.
var Kinds = []Kind{KindServices, KindPortfolio, KindDeveloperPortfolio, KindSocialLinks}

func (k Kind) Valid() bool {
	switch k {
	case KindServices, KindPortfolio, KindDeveloperPortfolio, KindSocialLinks:
		return true
	}
	return false
}

// Bilingual carries the English and Khmer renditions of a label. Persisted
// values always populate both; the admin editor may hold partial drafts.
type Bilingual struct {
	EN string `json:"en"`
	KM string `json:"km"`
}

// Complete reports whether both renditions are populated.
func (b Bilingual) Complete() bool {
	return b.EN != "" && b.KM != ""
}

// ServiceItem is a single line of the price list. Price is display text
// such as "$30 – $50" and is never parsed.
type ServiceItem struct {
	Name        Bilingual  `json:"name"`
	Description *Bilingual `json:"description,omitempty"`
	Price       string     `json:"price"`
}

type ServiceCategory struct {
	Category Bilingual     `json:"category"`
	Items    []ServiceItem `json:"items"`
}

// PortfolioProject is a design project. IDs are assigned by the editing
// client and must be unique within the collection at save time.
type PortfolioProject struct {
	ID          int       `json:"id"`
	Title       Bilingual `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	Description Bilingual `json:"description"`
	Tools       []string  `json:"tools"`
	Categories  []string  `json:"categories"`
	Order       int       `json:"order,omitempty"`
}

type DeveloperPortfolioProject struct {
	ID          int       `json:"id"`
	Title       Bilingual `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	Description Bilingual `json:"description"`
	TechStack   []string  `json:"techStack"`
	LiveURL     string    `json:"liveUrl"`
	SourceURL   string    `json:"sourceUrl"`
	Order       int       `json:"order,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order,omitempty"`
}

// Bundle groups one copy of every collection; it is the payload of the
// seed endpoint and the unit the client loader returns.
type Bundle struct {
	ServiceCategories          []ServiceCategory           `json:"serviceCategories"`
	PortfolioProjects          []PortfolioProject          `json:"portfolioProjects"`
	DeveloperPortfolioProjects []DeveloperPortfolioProject `json:"developerPortfolioProjects"`
	SocialLinks                []SocialLink                `json:"socialLinks"`
}

// Clone returns a deep copy of a service category, items included.
func (c ServiceCategory) Clone() ServiceCategory {
	out := ServiceCategory{Category: c.Category, Items: make([]ServiceItem, len(c.Items))}
	for i, item := range c.Items {
		copied := item
		if item.Description != nil {
			desc := *item.Description
			copied.Description = &desc
		}
		out.Items[i] = copied
	}
	return out
}

// Clone returns a deep copy of a portfolio project.
func (p PortfolioProject) Clone() PortfolioProject {
	out := p
	out.Tools = append([]string(nil), p.Tools...)
	out.Categories = append([]string(nil), p.Categories...)
	return out
}

// Clone returns a deep copy of a developer portfolio project.
func (p DeveloperPortfolioProject) Clone() DeveloperPortfolioProject {
	out := p
	out.TechStack = append([]string(nil), p.TechStack...)
	return out
}
