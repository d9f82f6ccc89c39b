package content

// Compiled-in datasets used when the store is empty or unreachable. The
// main site must always have something to render, so the client loader
// substitutes these per collection instead of surfacing an error.

func DefaultServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		{
			Category: Bilingual{EN: "Logo Design", KM: "ការរចនាស្លាកសញ្ញា"},
			Items: []ServiceItem{
				{Name: Bilingual{EN: "Basic Logo", KM: "ស្លាកសញ្ញាមូលដ្ឋាន"}, Price: "$30 – $50"},
				{
					Name:        Bilingual{EN: "Professional Logo Package", KM: "កញ្ចប់ស្លាកសញ្ញាអាជីព"},
					Description: &Bilingual{EN: "3 concepts, revisions", KM: "3 គំនិត, ការកែសម្រួល"},
					Price:       "$70 – $120",
				},
				{
					Name:        Bilingual{EN: "Premium Brand Identity", KM: "អត្តសញ្ញាណម៉ាកយីហោពិសេស"},
					Description: &Bilingual{EN: "Logo + color palette + typography", KM: "ស្លាកសញ្ញា + ក្ដារលាយពណ៌ + ពុម្ពអក្សរ"},
					Price:       "$150 – $300",
				},
			},
		},
		{
			Category: Bilingual{EN: "Social Media Design", KM: "ការរចនាសម្រាប់ប្រព័ន្ធផ្សព្វផ្សាយសង្គម"},
			Items: []ServiceItem{
				{Name: Bilingual{EN: "Single Post/Story", KM: "ការបង្ហោះតែមួយ"}, Price: "$10 – $20"},
				{Name: Bilingual{EN: "Package of 5 Posts", KM: "កញ្ចប់ 5 ការបង្ហោះ"}, Price: "$40 – $70"},
				{
					Name:        Bilingual{EN: "Monthly Package", KM: "កញ្ចប់ប្រចាំខែ"},
					Description: &Bilingual{EN: "15–20 posts", KM: "15–20 ការបង្ហោះ"},
					Price:       "$120 – $250",
				},
			},
		},
		{
			Category: Bilingual{EN: "Banners / Posters / Flyers", KM: "បដា / ប៉ូស្ទ័រ / ខិត្តប័ណ្ណ"},
			Items: []ServiceItem{
				{Name: Bilingual{EN: "Simple Poster/Flyer", KM: "ប៉ូស្ទ័រ/ខិត្តប័ណ្ណធម្មតា"}, Price: "$25 – $50"},
				{
					Name:        Bilingual{EN: "Advanced Design", KM: "ការរចនាកម្រិតខ្ពស់"},
					Description: &Bilingual{EN: "Illustrations, multiple revisions", KM: "រូបភាព, ការកែសម្រួលច្រើនដង"},
					Price:       "$70 – $120",
				},
				{
					Name:        Bilingual{EN: "Event Package", KM: "កញ្ចប់កម្មវិធី"},
					Description: &Bilingual{EN: "Poster + tickets + social media banner", KM: "ប៉ូស្ទ័រ + សំបុត្រ + បដាប្រព័ន្ធផ្សព្វផ្សាយសង្គម"},
					Price:       "$100 – $180",
				},
			},
		},
		{
			Category: Bilingual{EN: "Additional Services", KM: "សេវាកម្មបន្ថែម"},
			Items: []ServiceItem{
				{Name: Bilingual{EN: "Rush Delivery (24 hours)", KM: "ការដឹកជញ្ជូនបន្ទាន់ (24 ម៉ោង)"}, Price: "+30% of project cost"},
				{Name: Bilingual{EN: "Source Files (PSD/AI)", KM: "ឯកសារដើម (PSD/AI)"}, Price: "+$10 – $30"},
			},
		},
	}
}

func DefaultPortfolioProjects() []PortfolioProject {
	return []PortfolioProject{
		{
			ID:       1,
			Title:    Bilingual{EN: `"Kampuchea Coffee" Branding`, KM: `ការរចនាម៉ាកយីហោ "កាហ្វេ​កម្ពុជា"`},
			ImageURL: "https://picsum.photos/seed/kampuchea/800/600",
			Description: Bilingual{
				EN: "A complete branding design for 'Kampuchea Coffee,' a new coffee shop in Phnom Penh. The project included logo design, color palette, typography selection, and packaging design.",
				KM: "ការរចនាម៉ាកយីហោពេញលេញសម្រាប់ 'កាហ្វេ​កម្ពុជា' ដែលជាហាងកាហ្វេថ្មីមួយនៅភ្នំពេញ។ គម្រោងនេះរួមមានការរចនាស្លាកសញ្ញា ក្ដារលាយពណ៌ ការជ្រើសរើសពុម្ពអក្សរ និងការរចនាសម្រាប់ការវេចខ្ចប់។",
			},
			Tools:      []string{"illustrator", "photoshop"},
			Categories: []string{"Logo Design"},
		},
		{
			ID:       2,
			Title:    Bilingual{EN: `"Khmer Crafts" Website Design`, KM: `ការរចនាគេហទំព័រសម្រាប់ "សិប្បកម្មខ្មែរ"`},
			ImageURL: "https://picsum.photos/seed/khmercrafts/800/600",
			Description: Bilingual{
				EN: "Redesigning the website for 'Khmer Crafts,' a non-profit organization supporting local artisans. The new site focuses on beautifully showcasing products and the artisans' stories.",
				KM: "រចនាឡើងវិញនូវគេហទំព័រសម្រាប់ 'សិប្បកម្មខ្មែរ' ដែលជាអង្គការមិនរកប្រាក់ចំណេញគាំទ្រសិប្បករក្នុងស្រុក។ គេហទំព័រថ្មីនេះផ្តោតលើការបង្ហាញផលិតផល និងរឿងរ៉ាវរបស់សិប្បករ។",
			},
			Tools:      []string{"figma", "photoshop"},
			Categories: []string{"UI/UX"},
		},
		{
			ID:       3,
			Title:    Bilingual{EN: `"Community Tourism" Campaign`, KM: `យុទ្ធនាការផ្សព្វផ្សាយ "ទេសចរណ៍​សហគមន៍"`},
			ImageURL: "https://picsum.photos/seed/tourism/800/600",
			Description: Bilingual{
				EN: "A complete promotional campaign for the 'Community Tourism' project: posters, brochures, and digital materials promoting lesser-known tourist areas in Cambodia.",
				KM: "យុទ្ធនាការផ្សព្វផ្សាយពេញលេញសម្រាប់គម្រោង 'ទេសចរណ៍​សហគមន៍'៖ ប៉ូស្ទ័រ ខិត្តប័ណ្ណ និងសម្ភារៈឌីជីថល ដើម្បីលើកកម្ពស់តំបន់ទេសចរណ៍ដែលមិនសូវមានគេស្គាល់នៅកម្ពុជា។",
			},
			Tools:      []string{"illustrator", "photoshop", "indesign"},
			Categories: []string{"Social Media", "Banners"},
		},
		{
			ID:       4,
			Title:    Bilingual{EN: `"Learn Khmer" Mobile App Design`, KM: `ការរចនា​កម្មវិធី​ទូរស័ព្ទ "រៀនភាសាខ្មែរ"`},
			ImageURL: "https://picsum.photos/seed/learnkhmer/800/600",
			Description: Bilingual{
				EN: "UI/UX design for the 'Learn Khmer' mobile app, which helps users learn the Khmer language through lessons and games.",
				KM: "ការរចនា UI/UX សម្រាប់កម្មវិធីទូរស័ព្ទ 'រៀនភាសាខ្មែរ' ដែលជួយអ្នកប្រើប្រាស់រៀនភាសាខ្មែរតាមរយៈមេរៀន និងល្បែងកម្សាន្ត។",
			},
			Tools:      []string{"figma", "illustrator"},
			Categories: []string{"UI/UX"},
		},
	}
}

func DefaultDeveloperPortfolioProjects() []DeveloperPortfolioProject {
	return []DeveloperPortfolioProject{
		{
			ID:       1,
			Title:    Bilingual{EN: "Interactive Portfolio Website", KM: "គេហទំព័រ Portfolio អន្តរកម្ម"},
			ImageURL: "https://picsum.photos/seed/dev-portfolio/800/600",
			Description: Bilingual{
				EN: "A personal portfolio website featuring dynamic content management, multilingual support, and smooth animations. The admin dashboard allows for easy updates.",
				KM: "គេហទំព័រ portfolio ផ្ទាល់ខ្លួនដែលមានការគ្រប់គ្រងមាតិកាថាមវន្ត ការគាំទ្រពហុភាសា និងចលនារលូន។ ផ្ទាំងគ្រប់គ្រងរដ្ឋបាលអនុញ្ញាតឱ្យមានការអាប់ដេតងាយស្រួល។",
			},
			TechStack: []string{"react", "typescript", "tailwindcss", "html5", "css3"},
			LiveURL:   "#",
			SourceURL: "#",
		},
		{
			ID:       2,
			Title:    Bilingual{EN: "E-commerce UI Concept", KM: "គំនិត UI សម្រាប់ E-commerce"},
			ImageURL: "https://picsum.photos/seed/ecommerce-ui/800/600",
			Description: Bilingual{
				EN: "A modern and clean user interface concept for an e-commerce platform, focused on intuitive navigation, clear product displays, and a streamlined checkout.",
				KM: "គំនិតចំណុចប្រទាក់អ្នកប្រើទំនើបសម្រាប់វេទិកាពាណិជ្ជកម្មអេឡិចត្រូនិក ផ្តោតលើការរុករកងាយស្រួល ការបង្ហាញផលិតផលច្បាស់លាស់ និងដំណើរការទូទាត់ប្រាក់សាមញ្ញ។",
			},
			TechStack: []string{"figma", "illustrator"},
			LiveURL:   "#",
			SourceURL: "#",
		},
	}
}

func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{Platform: "Telegram", URL: "https://t.me/your-username", Icon: "fa-brands fa-telegram", IsActive: true},
		{Platform: "Behance", URL: "https://behance.net/your-username", Icon: "fa-brands fa-behance", IsActive: true},
		{Platform: "GitHub", URL: "https://github.com/your-username", Icon: "fa-brands fa-github", IsActive: true},
		{Platform: "Instagram", URL: "https://instagram.com/your-username", Icon: "fa-brands fa-instagram", IsActive: false},
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/your-username", Icon: "fa-brands fa-linkedin", IsActive: false},
		{Platform: "Facebook", URL: "https://facebook.com/your-username", Icon: "fa-brands fa-facebook", IsActive: false},
	}
}

// DefaultBundle groups all four default datasets.
func DefaultBundle() Bundle {
	return Bundle{
		ServiceCategories:          DefaultServiceCategories(),
		PortfolioProjects:          DefaultPortfolioProjects(),
		DeveloperPortfolioProjects: DefaultDeveloperPortfolioProjects(),
		SocialLinks:                DefaultSocialLinks(),
	}
}
