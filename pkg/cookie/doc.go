// Package cookie centralizes cookie attribute policy for a service.
//
// A Manager holds default attributes (path, domain, Secure, HttpOnly,
// SameSite) decided once at startup; every Set call derives the actual
// cookie from those defaults plus per-call options, and Delete emits the
// matching expired cookie. The SameSite=None/Secure coupling browsers
// require is enforced during option application, never per request.
//
// Plain values are written as-is. When tamper evidence is needed, create
// the manager with NewSigned and use SetSigned/GetSigned: values are
// base64-encoded and carry an HMAC-SHA256 signature, with multi-secret
// verification so signing keys can be rotated without invalidating live
// cookies.
//
//	cookies, err := cookie.New(
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cookies.Set(w, "theme", "dark", cookie.WithMaxAge(86400))
//	theme, err := cookies.Get(r, "theme")
//	cookies.Delete(w, "theme")
package cookie
