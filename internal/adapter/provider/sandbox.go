package provider

import "strings"

// IsSandboxCredential reports whether value starts with any of prefixes,
// ignoring case.
func IsSandboxCredential(value string, prefixes ...string) bool {
	lower := strings.ToLower(value)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// BaseURL picks the override when set, else the sandbox or live URL.
func BaseURL(override, live, sandbox string, useSandbox bool) string {
	switch {
	case override != "":
		return override
	case useSandbox:
		return sandbox
	default:
		return live
	}
}
