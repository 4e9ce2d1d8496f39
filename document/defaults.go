package document

import (
	"github.com/goliatone/go-editor/internal/identity"
	"github.com/goliatone/go-editor/schema"
)

// Defaults returns the hardcoded default document for a builtin page, the
// target of the reset-to-defaults operation. Item ids are derived
// deterministically so two resets produce identical documents.
func Defaults(pageKey string) (*Document, bool) {
	page, ok := schema.Builtin().Page(pageKey)
	if !ok {
		return nil, false
	}
	doc := New(page)
	switch pageKey {
	case "about":
		seedAbout(doc)
	case "blog":
		seedBlog(doc)
	case "home":
		seedHome(doc)
	case "services":
		seedServices(doc)
	case "support":
		seedSupport(doc)
	}
	return doc, true
}

func seedItem(page, section, collection, key string, fields map[string]any) Item {
	item := Item{"id": identity.SeedItemID(page, section, collection, key)}
	for k, v := range fields {
		item[k] = v
	}
	return item
}

func seedAbout(doc *Document) {
	hero := doc.EnsureSection("hero")
	hero.Fields["title"] = "About Us"
	hero.Fields["subtitle"] = "The team behind the work"

	stats := doc.EnsureSection("stats")
	stats.Fields["heading"] = "By the numbers"
	stats.Collections["items"] = Collection{
		seedItem("about", "stats", "items", "clients", map[string]any{
			"label": "Happy Clients", "value": "200", "suffix": "+",
		}),
		seedItem("about", "stats", "items", "projects", map[string]any{
			"label": "Projects Delivered", "value": "50", "suffix": "+",
		}),
		seedItem("about", "stats", "items", "years", map[string]any{
			"label": "Years in Business", "value": "10", "suffix": "",
		}),
	}

	values := doc.EnsureSection("values")
	values.Fields["heading"] = "What we stand for"
	values.Collections["items"] = Collection{
		seedItem("about", "values", "items", "craft", map[string]any{
			"title": "Craft", "description": "We sweat the details.", "icon": "sparkles",
		}),
		seedItem("about", "values", "items", "candor", map[string]any{
			"title": "Candor", "description": "We say what we mean.", "icon": "chat",
		}),
	}
}

func seedBlog(doc *Document) {
	hero := doc.EnsureSection("hero")
	hero.Fields["title"] = "Blog"
	hero.Fields["subtitle"] = "Notes from the team"

	listing := doc.EnsureSection("listing")
	listing.Fields["postsPerPage"] = float64(9)
	listing.Fields["showExcerpts"] = true
	listing.Fields["showAuthors"] = true

	newsletter := doc.EnsureSection("newsletter")
	newsletter.Fields["enabled"] = true
	newsletter.Fields["heading"] = "Stay in the loop"
	newsletter.Fields["buttonLabel"] = "Subscribe"
}

func seedHome(doc *Document) {
	hero := doc.EnsureSection("hero")
	hero.Fields["title"] = "We build digital products"
	hero.Fields["subtitle"] = "Strategy, design, and engineering under one roof"
	hero.Fields["ctaLabel"] = "Start a project"
	hero.Fields["ctaLink"] = "/contact"

	features := doc.EnsureSection("features")
	features.Fields["heading"] = "What we do"
	features.Collections["items"] = Collection{
		seedItem("home", "features", "items", "strategy", map[string]any{
			"title": "Strategy", "description": "Roadmaps that survive contact with reality.", "icon": "compass", "link": "/services",
		}),
		seedItem("home", "features", "items", "design", map[string]any{
			"title": "Design", "description": "Interfaces people actually enjoy.", "icon": "pen", "link": "/services",
		}),
		seedItem("home", "features", "items", "engineering", map[string]any{
			"title": "Engineering", "description": "Software built to last.", "icon": "code", "link": "/services",
		}),
	}

	cta := doc.EnsureSection("cta")
	cta.Fields["heading"] = "Ready when you are"
	cta.Fields["buttonLabel"] = "Get in touch"
	cta.Fields["buttonLink"] = "/contact"
}

func seedServices(doc *Document) {
	hero := doc.EnsureSection("hero")
	hero.Fields["title"] = "Services"
	hero.Fields["subtitle"] = "How we can help"

	catalog := doc.EnsureSection("catalog")
	catalog.Fields["heading"] = "Our services"
	catalog.Collections["services"] = Collection{
		seedItem("services", "catalog", "services", "product-design", map[string]any{
			"title": "Product Design", "summary": "From sketches to design systems.",
			"icon": "pen", "priceFrom": "$5,000", "features": []any{"Research", "Prototyping", "Design systems"}, "featured": true,
		}),
		seedItem("services", "catalog", "services", "web-development", map[string]any{
			"title": "Web Development", "summary": "Fast, accessible, maintainable.",
			"icon": "code", "priceFrom": "$10,000", "features": []any{"Frontend", "APIs", "Infrastructure"}, "featured": false,
		}),
	}

	process := doc.EnsureSection("process")
	process.Fields["heading"] = "How we work"
	process.Collections["steps"] = Collection{
		seedItem("services", "process", "steps", "discover", map[string]any{
			"title": "Discover", "description": "We learn your business.", "icon": "search",
		}),
		seedItem("services", "process", "steps", "build", map[string]any{
			"title": "Build", "description": "We ship in small increments.", "icon": "hammer",
		}),
		seedItem("services", "process", "steps", "launch", map[string]any{
			"title": "Launch", "description": "We stay for the landing.", "icon": "rocket",
		}),
	}
}

func seedSupport(doc *Document) {
	hero := doc.EnsureSection("hero")
	hero.Fields["title"] = "Support"
	hero.Fields["subtitle"] = "We're here to help"

	channels := doc.EnsureSection("channels")
	channels.Fields["heading"] = "Reach us"
	channels.Collections["items"] = Collection{
		seedItem("support", "channels", "items", "email", map[string]any{
			"label": "Email", "value": "support@example.com", "icon": "mail", "hours": "24/7",
		}),
		seedItem("support", "channels", "items", "phone", map[string]any{
			"label": "Phone", "value": "+1 (555) 010-0200", "icon": "phone", "hours": "Mon-Fri 9-5",
		}),
	}

	faq := doc.EnsureSection("faq")
	faq.Fields["heading"] = "Frequently asked questions"
	faq.Collections["items"] = Collection{
		seedItem("support", "faq", "items", "turnaround", map[string]any{
			"question": "How fast do you respond?",
			"answer":   "Within **one business day**, usually much faster.",
			"topics":   []any{"response-times"},
		}),
	}
}
