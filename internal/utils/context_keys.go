package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// Returns string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

// AccountIdKey is the context key under which the authorization guard stores the resolved account id.
// It ensures that the key is unique to avoid conflicts with other context keys.
var AccountIdKey = &contextKey{"accountId"}
var TraceIdKey = &contextKey{"traceId"}
var SanitizedPayloadKey = &contextKey{"sanitizedPayload"}
