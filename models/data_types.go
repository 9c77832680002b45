package models

// Category defines the fixed kind of a note.
// The value is chosen at creation, never changes, and determines which
// [Body] shape the note content carries.
type Category string

const (
	// Reflection is a takeaway, impression or something the author is
	// still mulling over.
	Reflection Category = "rambling"

	// ActionableAdvice is a practical tip that can be applied directly.
	ActionableAdvice Category = "good-advice"

	// CautionaryAdvice is a hot take: bold, controversial, and meant to be
	// taken with caution.
	CautionaryAdvice Category = "bad-advice"

	// ResourceList is a titled list of links, books, templates or methods.
	// It is the only category whose content is a [ListBody].
	ResourceList Category = "list"
)

// Categories lists every allowed category in display order.
var Categories = []Category{
	ActionableAdvice,
	Reflection,
	ResourceList,
	CautionaryAdvice,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsList reports whether notes of this category carry a [ListBody].
func (c Category) IsList() bool {
	return c == ResourceList
}

// Label returns the human readable name of the category.
func (c Category) Label() string {
	switch c {
	case Reflection:
		return "Reflections"
	case ActionableAdvice:
		return "Actionable Advice"
	case CautionaryAdvice:
		return "Take with Caution"
	case ResourceList:
		return "Resources & Tools"
	default:
		return string(c)
	}
}

// Description returns the hint shown in the create form for the category.
func (c Category) Description() string {
	switch c {
	case Reflection:
		return "Your own takeaways, impressions, or things you're mulling over from the chat."
	case ActionableAdvice:
		return "Practical tips you can apply directly."
	case CautionaryAdvice:
		return "A hot take: bold, controversial, and guaranteed to spark discussion."
	case ResourceList:
		return "Specific links, books, templates, or methods shared during the chat."
	default:
		return ""
	}
}

// Sources are the attribution labels offered by the create form and the
// source filter. Any other free-text source is allowed as well.
var Sources = []string{
	"Recruiter",
	"Senior Designer",
	"Mid-Level Designer",
	"Professor",
	"Colleague",
	"Myself",
	"Other",
}

// Body is the decoded content of a note. It is a closed sum type:
// the only implementations are [TextBody] and [ListBody].
type Body interface {
	// Attribution returns who gave the advice, or "" when unknown.
	Attribution() string

	isBody()
}

// TextBody is the content of reflection, actionable-advice and
// cautionary-advice notes.
type TextBody struct {
	// Text is the advice itself.
	Text string `json:"text"`

	// Source is who gave the advice.
	Source string `json:"source,omitempty"`
}

// ListBody is the content of resource-list notes.
type ListBody struct {
	// Title names the list.
	Title string `json:"title"`

	// Items are the list entries in display order.
	Items []string `json:"items"`

	// Source is who shared the resources.
	Source string `json:"source,omitempty"`
}

// Attribution implements [Body].
func (b TextBody) Attribution() string { return b.Source }

// Attribution implements [Body].
func (b ListBody) Attribution() string { return b.Source }

func (TextBody) isBody() {}
func (ListBody) isBody() {}
