package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that the first one given is the outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Wrap applies mws to a handler function.
func Wrap(h http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// message is a fixed ASCII literal, no escaping needed.
	_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}
