// Package masking scrubs credentials from text before it is persisted.
// Error messages from upstream HTTP calls can echo form bodies and URLs;
// masking runs over every error string written to a process or work item.
package masking

import "regexp"

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns covers the secrets this system handles: upstream login
// passwords in form bodies, provider API keys, session cookies, and CSRF
// tokens.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "form_password",
		Regex:       regexp.MustCompile(`(password=)[^&\s"]+`),
		Replacement: `${1}__MASKED_PASSWORD__`,
	},
	{
		Name:        "openai_api_key",
		Regex:       regexp.MustCompile(`sk-[A-Za-z0-9_-]{8,}`),
		Replacement: `__MASKED_API_KEY__`,
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]+`),
		Replacement: `${1}__MASKED_TOKEN__`,
	},
	{
		Name:        "session_cookie",
		Regex:       regexp.MustCompile(`(sessionid=)[^;&\s"]+`),
		Replacement: `${1}__MASKED_SESSION__`,
	},
	{
		Name:        "csrf_token",
		Regex:       regexp.MustCompile(`(csrfmiddlewaretoken=)[^&\s"]+`),
		Replacement: `${1}__MASKED_CSRF__`,
	},
}

// Mask applies every built-in pattern to the text.
func Mask(text string) string {
	for _, p := range builtinPatterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}
