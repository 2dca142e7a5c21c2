package domain

// Session is the authenticated user as seen by one request: the decoded
// credential plus the raw token it came from, so further navigation can
// re-thread the same token.
type Session struct {
	User  Credential
	Token string
}
