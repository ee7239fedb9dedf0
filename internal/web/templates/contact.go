package templates

import (
	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// ContactProps carries the contact page data. Error, when set, is shown as a
// validation notice above the form with the submitted values preserved.
type ContactProps struct {
	Loc     i18n.Localizer
	Error   string
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactPage renders the contact page: institutional info alongside the
// message form. Submitting the form produces a mailto: handoff, so no data
// is stored server-side.
func ContactPage(props ContactProps) templ.Component {
	loc := props.Loc
	return El("section", []Attr{{Key: "class", Value: "contact-page"}},
		SectionHeader(loc.T("contact.title"), loc.T("contact.subtitle")),
		El("div", []Attr{{Key: "class", Value: "contact-grid"}},
			contactInfo(loc),
			ContactForm(props),
		),
	)
}

func contactInfo(loc i18n.Localizer) templ.Component {
	return El("div", []Attr{{Key: "class", Value: "contact-info"}},
		El("h2", nil, Text(loc.T("contact.info.title"))),
		El("p", nil,
			El("a", []Attr{{Key: "href", Value: "mailto:" + contactEmail}}, Text(contactEmail))),
		El("h2", nil, Text(loc.T("contact.social.title"))),
		El("ul", nil,
			El("li", nil, El("a", []Attr{{Key: "href", Value: instagramURL}}, Text("Instagram"))),
			El("li", nil, El("a", []Attr{{Key: "href", Value: youtubeURL}}, Text("YouTube"))),
		),
	)
}

// ContactForm renders the message form. It is the HTMX swap target when a
// submission fails validation.
func ContactForm(props ContactProps) templ.Component {
	loc := props.Loc
	return El("form", []Attr{
		{Key: "id", Value: "contact-form"},
		{Key: "class", Value: "contact-form"},
		{Key: "method", Value: "post"},
		{Key: "action", Value: routepath.Contact},
		{Key: "hx-post", Value: routepath.Contact},
		{Key: "hx-target", Value: "#contact-form"},
		{Key: "hx-swap", Value: "outerHTML"},
	},
		El("h2", nil, Text(loc.T("contact.form.title"))),
		If(props.Error != "",
			El("p", []Attr{{Key: "class", Value: "form-error"}, {Key: "role", Value: "alert"}},
				Text(props.Error))),
		formField("name", "text", loc.T("contact.form.name"), props.Name, true),
		formField("email", "email", loc.T("contact.form.email"), props.Email, true),
		formField("subject", "text", loc.T("contact.form.subject"), props.Subject, true),
		El("div", []Attr{{Key: "class", Value: "form-field"}},
			El("label", []Attr{{Key: "for", Value: "contact-message"}}, Text(loc.T("contact.form.message"))),
			El("textarea", []Attr{
				{Key: "id", Value: "contact-message"},
				{Key: "name", Value: "message"},
				{Key: "rows", Value: "6"},
				{Key: "required", Value: ""},
			}, Text(props.Message)),
		),
		El("button", []Attr{{Key: "type", Value: "submit"}, {Key: "class", Value: "button"}},
			Text(loc.T("contact.form.submit"))),
	)
}

func formField(name, inputType, label, value string, required bool) templ.Component {
	id := "contact-" + name
	attrs := []Attr{
		{Key: "id", Value: id},
		{Key: "type", Value: inputType},
		{Key: "name", Value: name},
		{Key: "value", Value: value},
	}
	if required {
		attrs = append(attrs, Attr{Key: "required", Value: ""})
	}
	return El("div", []Attr{{Key: "class", Value: "form-field"}},
		El("label", []Attr{{Key: "for", Value: id}}, Text(label)),
		El("input", attrs),
	)
}
