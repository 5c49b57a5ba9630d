// Package banner maps notice severities to the utility classes the
// storefront uses to render message banners. The mapping is shared contract
// with the web client, so the class strings are fixed.
package banner

// Variant is a banner severity. The set is closed; anything else renders
// with the info style.
type Variant string

const (
	Success Variant = "success"
	Error   Variant = "error"
	Info    Variant = "info"
)

// DefaultMessage is rendered when a banner has no content.
const DefaultMessage = "Default message"

// Class returns the style class for the variant. Unknown or absent
// variants fall through to the info style.
func Class(v Variant) string {
	switch v {
	case Success:
		return "bg-green-100 text-green-800"
	case Error:
		return "bg-red-100 text-red-800"
	default:
		return "bg-blue-100 text-blue-800"
	}
}

// Text returns the banner content, substituting the fixed fallback when
// the content is empty.
func Text(content string) string {
	if content == "" {
		return DefaultMessage
	}
	return content
}
