package helpers

// ContextKey is the type used for keys of context values stored by the interceptors
type ContextKey string

// ContextKeyOrderSession is the key of the order session stored in the request context
const ContextKeyOrderSession = ContextKey("order_session")
