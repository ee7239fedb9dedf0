// Package templates renders the site's pages as templ components.
//
// Components are composed programmatically: El builds an element, Text an
// escaped text node, and pages assemble trees of them. Everything user-facing
// passes through templ's escaping; Raw is reserved for trusted inline
// snippets such as the analytics script.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute. An empty Value renders as a boolean
// attribute.
type Attr struct {
	Key   string
	Value string
}

// voidElements never take children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// El builds an element component with the given attributes and children.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		for _, attr := range attrs {
			if attr.Key == "" {
				continue
			}
			if attr.Value == "" {
				if _, err := io.WriteString(w, " "+attr.Key); err != nil {
					return err
				}
				continue
			}
			if _, err := io.WriteString(w, ` `+attr.Key+`="`+templ.EscapeString(attr.Value)+`"`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text builds an escaped text node.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Raw builds an unescaped node. Only for trusted, non-user content.
func Raw(value string) templ.Component {
	return templ.Raw(value)
}

// Children renders the component's children, for layout-style components.
func Children() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.GetChildren(ctx).Render(ctx, w)
	})
}

// Group renders components in sequence without a wrapper element.
func Group(children ...templ.Component) templ.Component {
	return templ.Join(children...)
}

// If returns the component only when cond holds, else an empty component.
func If(cond bool, child templ.Component) templ.Component {
	if cond && child != nil {
		return child
	}
	return templ.NopComponent
}

// classes joins non-empty class names.
func classes(names ...string) string {
	kept := names[:0]
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}
