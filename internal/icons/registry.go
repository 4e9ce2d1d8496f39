// Package icons maps icon names to renderers through an explicit enumerated
// table. Unknown names resolve to a fallback glyph instead of failing, so a
// schema referencing a retired icon still renders.
package icons

import (
	"fmt"
	"html"
	"sync"
)

// Renderer produces the markup for one icon at the given pixel size.
type Renderer func(size int) string

// FallbackName is the registry key of the glyph served for unknown icons.
const FallbackName = "circle"

// Registry resolves icon names to renderers.
type Registry struct {
	mu       sync.RWMutex
	renderer map[string]Renderer
	fallback Renderer
}

// NewRegistry builds a registry preloaded with the dashboard's icon set.
func NewRegistry() *Registry {
	r := &Registry{
		renderer: map[string]Renderer{},
		fallback: glyph("circle", "○"),
	}
	for name, rend := range builtinIcons() {
		r.renderer[name] = rend
	}
	return r
}

// Register adds or replaces a named renderer.
func (r *Registry) Register(name string, renderer Renderer) {
	if name == "" || renderer == nil {
		return
	}
	r.mu.Lock()
	r.renderer[name] = renderer
	r.mu.Unlock()
}

// Lookup returns the renderer for name and whether it was registered.
// Unregistered names get the fallback renderer.
func (r *Registry) Lookup(name string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.renderer[name]; ok {
		return renderer, true
	}
	return r.fallback, false
}

// Render resolves and renders in one step.
func (r *Registry) Render(name string, size int) string {
	renderer, _ := r.Lookup(name)
	return renderer(size)
}

// Names returns the registered icon names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderer))
	for name := range r.renderer {
		names = append(names, name)
	}
	return names
}

func glyph(name, symbol string) Renderer {
	return func(size int) string {
		if size <= 0 {
			size = 16
		}
		return fmt.Sprintf(`<span class="icon icon-%s" style="font-size:%dpx">%s</span>`,
			html.EscapeString(name), size, symbol)
	}
}

func builtinIcons() map[string]Renderer {
	return map[string]Renderer{
		"circle":     glyph("circle", "○"),
		"check":      glyph("check", "✓"),
		"cross":      glyph("cross", "✗"),
		"plus":       glyph("plus", "+"),
		"minus":      glyph("minus", "−"),
		"arrow-up":   glyph("arrow-up", "↑"),
		"arrow-down": glyph("arrow-down", "↓"),
		"star":       glyph("star", "★"),
		"heart":      glyph("heart", "♥"),
		"mail":       glyph("mail", "✉"),
		"phone":      glyph("phone", "☎"),
		"search":     glyph("search", "⌕"),
		"gear":       glyph("gear", "⚙"),
		"warning":    glyph("warning", "⚠"),
		"info":       glyph("info", "ℹ"),
		"pencil":     glyph("pencil", "✎"),
		"trash":      glyph("trash", "⌦"),
		"globe":      glyph("globe", "☷"),
		"clock":      glyph("clock", "⏰"),
		"document":   glyph("document", "☰"),
	}
}
