// internal/auth/context.go
//
// Request-context helper carrying the signed-in user's email.  The
// greeting header reads it for display; nothing in the wizard branches
// on it beyond presence.
//
// Usage
// -----
//     // Attach the user after the session cookie is verified.
//     ctx = auth.WithEmail(ctx, "user@example.com")
//
//     // Downstream code retrieves it.
//     email, ok := auth.Email(ctx)

package auth

import "context"

// emailKey is unexported to avoid context-key collisions.
type emailKey struct{}

// WithEmail returns a new context carrying the given email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey{}, email)
}

// Email extracts the email from ctx.  It returns ("", false) if no user
// is set.
func Email(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(emailKey{}).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
