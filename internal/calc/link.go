package calc

// LaunchLink is the URL/label pair rendered as the Web App keyboard button.
// Built fresh for every reply; never cached.
type LaunchLink struct {
	URL   string
	Label string
}

// BuildLaunchLink builds the link used to (re)launch the calculator Web App.
// When resumeValue is non-empty it is appended as the value query parameter and
// echoed in the label so the user sees the pre-filled state before tapping
// through. The base URL is assumed to carry no query string, and resume values
// are numeral strings that need no escaping.
func BuildLaunchLink(baseURL, caption, resumeValue string) LaunchLink {
	link := LaunchLink{URL: baseURL, Label: caption}
	if resumeValue != "" {
		link.URL += "?value=" + resumeValue
		link.Label += " with last value=" + resumeValue
	}
	return link
}
