package schema

// Builtin returns the registry for the marketing-site dashboard: About, Blog,
// Home, Services, and Support editor pages.
//
// The registry is reconstructed on every call so callers can mutate their
// copy without affecting others.
func Builtin() *Registry {
	r, err := NewRegistry(AboutPage(), BlogPage(), HomePage(), ServicesPage(), SupportPage())
	if err != nil {
		// The builtin schemas are static; a validation failure is a
		// programming error caught by the package tests.
		panic(err)
	}
	return r
}

func text(name, label string) Field     { return Field{Name: name, Label: label, Type: TypeText} }
func textarea(name, label string) Field { return Field{Name: name, Label: label, Type: TypeTextarea} }
func richtext(name, label string) Field { return Field{Name: name, Label: label, Type: TypeRichText} }
func boolean(name, label string) Field  { return Field{Name: name, Label: label, Type: TypeBoolean} }
func number(name, label string) Field   { return Field{Name: name, Label: label, Type: TypeNumber} }
func tags(name, label string) Field     { return Field{Name: name, Label: label, Type: TypeTags} }
func image(name, label string) Field    { return Field{Name: name, Label: label, Type: TypeImage} }

func group(name, label string, fields ...Field) Field {
	return Field{Name: name, Label: label, Type: TypeGroup, Fields: fields}
}

func array(name, label, itemLabel string, fields ...Field) Field {
	return Field{Name: name, Label: label, Type: TypeArray, ItemLabel: itemLabel, Fields: fields}
}

func heroSection() Section {
	return Section{
		ID:    "hero",
		Label: "Hero",
		Fields: []Field{
			text("title", "Title"),
			text("subtitle", "Subtitle"),
			textarea("description", "Description"),
			image("background", "Background Image"),
			text("ctaLabel", "CTA Label"),
			text("ctaLink", "CTA Link"),
		},
	}
}

func seoSection() Section {
	return Section{
		ID:    "seo",
		Label: "SEO",
		Fields: []Field{
			text("metaTitle", "Meta Title"),
			textarea("metaDescription", "Meta Description"),
			tags("keywords", "Keywords"),
			image("ogImage", "Social Share Image"),
		},
	}
}

// AboutPage describes the About editor page.
func AboutPage() Page {
	return Page{
		Key:   "about",
		Label: "About",
		Sections: []Section{
			heroSection(),
			{
				ID:    "mission",
				Label: "Mission",
				Fields: []Field{
					text("heading", "Heading"),
					richtext("body", "Body"),
					image("illustration", "Illustration"),
				},
			},
			{
				ID:    "stats",
				Label: "Stats",
				Fields: []Field{
					text("heading", "Heading"),
					array("items", "Stat Items", "Stat",
						text("label", "Label"),
						text("value", "Value"),
						text("suffix", "Suffix"),
					),
				},
			},
			{
				ID:    "team",
				Label: "Team",
				Fields: []Field{
					text("heading", "Heading"),
					textarea("intro", "Intro"),
					array("members", "Team Members", "Member",
						text("name", "Name"),
						text("role", "Role"),
						textarea("bio", "Bio"),
						image("photo", "Photo"),
						text("linkedin", "LinkedIn"),
						text("twitter", "Twitter"),
					),
				},
			},
			{
				ID:    "values",
				Label: "Values",
				Fields: []Field{
					text("heading", "Heading"),
					array("items", "Value Items", "Value",
						text("title", "Title"),
						textarea("description", "Description"),
						text("icon", "Icon"),
					),
				},
			},
			seoSection(),
		},
	}
}

// BlogPage describes the Blog editor page.
func BlogPage() Page {
	return Page{
		Key:   "blog",
		Label: "Blog",
		Sections: []Section{
			heroSection(),
			{
				ID:    "featured",
				Label: "Featured Post",
				Fields: []Field{
					boolean("enabled", "Show Featured Post"),
					text("postSlug", "Post Slug"),
					text("badge", "Badge Text"),
				},
			},
			{
				ID:    "listing",
				Label: "Listing",
				Fields: []Field{
					number("postsPerPage", "Posts Per Page"),
					boolean("showExcerpts", "Show Excerpts"),
					boolean("showAuthors", "Show Authors"),
					tags("categories", "Categories"),
				},
			},
			{
				ID:    "newsletter",
				Label: "Newsletter",
				Fields: []Field{
					boolean("enabled", "Show Signup"),
					text("heading", "Heading"),
					textarea("blurb", "Blurb"),
					text("buttonLabel", "Button Label"),
				},
			},
			seoSection(),
		},
	}
}

// HomePage describes the Home editor page.
func HomePage() Page {
	return Page{
		Key:   "home",
		Label: "Home",
		Sections: []Section{
			heroSection(),
			{
				ID:    "features",
				Label: "Features",
				Fields: []Field{
					text("heading", "Heading"),
					textarea("intro", "Intro"),
					array("items", "Feature Items", "Feature",
						text("title", "Title"),
						textarea("description", "Description"),
						text("icon", "Icon"),
						text("link", "Link"),
					),
				},
			},
			{
				ID:    "testimonials",
				Label: "Testimonials",
				Fields: []Field{
					text("heading", "Heading"),
					array("items", "Testimonials", "Testimonial",
						textarea("quote", "Quote"),
						text("author", "Author"),
						text("company", "Company"),
						image("avatar", "Avatar"),
						number("rating", "Rating"),
					),
				},
			},
			{
				ID:    "cta",
				Label: "Call To Action",
				Fields: []Field{
					text("heading", "Heading"),
					textarea("body", "Body"),
					text("buttonLabel", "Button Label"),
					text("buttonLink", "Button Link"),
					group("social", "Social Links",
						text("twitter", "Twitter"),
						text("linkedin", "LinkedIn"),
						text("github", "GitHub"),
						text("youtube", "YouTube"),
					),
				},
			},
			seoSection(),
		},
	}
}

// ServicesPage describes the Services editor page.
func ServicesPage() Page {
	return Page{
		Key:   "services",
		Label: "Services",
		Sections: []Section{
			heroSection(),
			{
				ID:    "catalog",
				Label: "Service Catalog",
				Fields: []Field{
					text("heading", "Heading"),
					textarea("intro", "Intro"),
					array("services", "Services", "Service",
						text("title", "Title"),
						textarea("summary", "Summary"),
						text("icon", "Icon"),
						text("priceFrom", "Price From"),
						tags("features", "Features"),
						boolean("featured", "Featured"),
					),
				},
			},
			{
				ID:    "process",
				Label: "Process",
				Fields: []Field{
					text("heading", "Heading"),
					array("steps", "Process Steps", "Step",
						text("title", "Title"),
						textarea("description", "Description"),
						text("icon", "Icon"),
					),
				},
			},
			seoSection(),
		},
	}
}

// SupportPage describes the Support editor page.
func SupportPage() Page {
	return Page{
		Key:   "support",
		Label: "Support",
		Sections: []Section{
			heroSection(),
			{
				ID:    "channels",
				Label: "Contact Channels",
				Fields: []Field{
					text("heading", "Heading"),
					array("items", "Channels", "Channel",
						text("label", "Label"),
						text("value", "Value"),
						text("icon", "Icon"),
						text("hours", "Hours"),
					),
				},
			},
			{
				ID:    "faq",
				Label: "FAQ",
				Fields: []Field{
					text("heading", "Heading"),
					array("items", "Questions", "Question",
						text("question", "Question"),
						richtext("answer", "Answer"),
						tags("topics", "Topics"),
					),
				},
			},
			{
				ID:    "office",
				Label: "Office",
				Fields: []Field{
					text("address", "Address"),
					text("phone", "Phone"),
					text("email", "Email"),
					group("social", "Social Links",
						text("twitter", "Twitter"),
						text("linkedin", "LinkedIn"),
						text("github", "GitHub"),
					),
				},
			},
			seoSection(),
		},
	}
}
