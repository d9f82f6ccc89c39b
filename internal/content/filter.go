package content

// FilterAll is the tag that disables filtering on the public galleries.
const FilterAll = "All"

// FilterPortfolioByTag returns the projects whose category set contains
// tag, in their original order. The "All" tag returns the full list.
func FilterPortfolioByTag(projects []PortfolioProject, tag string) []PortfolioProject {
	if tag == FilterAll {
		return projects
	}
	out := make([]PortfolioProject, 0, len(projects))
	for _, p := range projects {
		if containsTokenFold(p.Categories, tag) {
			out = append(out, p)
		}
	}
	return out
}

// FilterDeveloperByTech returns the developer projects whose tech stack
// contains tag, in their original order. "All" returns the full list.
func FilterDeveloperByTech(projects []DeveloperPortfolioProject, tag string) []DeveloperPortfolioProject {
	if tag == FilterAll {
		return projects
	}
	out := make([]DeveloperPortfolioProject, 0, len(projects))
	for _, p := range projects {
		if containsTokenFold(p.TechStack, tag) {
			out = append(out, p)
		}
	}
	return out
}

// ActiveSocialLinks returns the links flagged active, preserving order.
func ActiveSocialLinks(links []SocialLink) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for _, link := range links {
		if link.IsActive {
			out = append(out, link)
		}
	}
	return out
}
