package appcore

import (
	"sort"
	"strconv"
	"strings"
)

// FieldErrors maps form field names to human-readable problems. Returned by
// the submission operations before any network call is made.
type FieldErrors map[string]string

// Error describes the error operation and its observable behavior.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "invalid fields"
	}

	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid fields: ")
	for i, name := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(f[name])
	}
	return b.String()
}

// validEmail applies the shape check used across the product: something
// before the @, and a domain segment containing a dot.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") || strings.ContainsAny(email[:at], " \t") {
		return false
	}
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// checkPassword enforces the registration password policy.
func (e *Engine) checkPassword(password string) string {
	policy := e.config.Password
	if len(password) < policy.MinLength {
		return passwordPolicyMessage(policy)
	}
	if policy.RequireLetter && !strings.ContainsFunc(password, isLetter) {
		return passwordPolicyMessage(policy)
	}
	if policy.RequireDigit && !strings.ContainsFunc(password, isDigit) {
		return passwordPolicyMessage(policy)
	}
	return ""
}

func passwordPolicyMessage(policy PasswordPolicyConfig) string {
	var b strings.Builder
	b.WriteString("Password must be at least ")
	b.WriteString(strconv.Itoa(policy.MinLength))
	b.WriteString(" characters long")
	switch {
	case policy.RequireLetter && policy.RequireDigit:
		b.WriteString(" and include a letter and a number")
	case policy.RequireLetter:
		b.WriteString(" and include a letter")
	case policy.RequireDigit:
		b.WriteString(" and include a number")
	}
	return b.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
