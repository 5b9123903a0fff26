// Package session attaches a lazily-persisted data bag to each HTTP
// request, identified by an opaque hex token carried in a cookie, and
// reconciles it against a shared key-value store with sliding expiration
// once the response is written.
//
// # Architecture
//
// A Manager ties three collaborators together: the Store (any key-value
// backend with get/set-with-TTL/delete semantics — memory ships in this
// package, Redis, Postgres and Mongo adapters live in their sibling
// packages), the cookie.Manager that owns the cookie attribute policy, and
// the net/http middleware that runs the per-request protocol:
//
//	cookie ──► validate ──► Store.Get ──► Session ──► handler
//	                                                     │
//	   Set-Cookie ◄── Store.Set / Store.Delete ◄── reconcile
//
// The Session itself is a small state machine. It starts fresh (or begun,
// when a valid cookie came in), can be begun, regenerated or destroyed by
// the handler, and is inspected exactly once after the handler finishes:
//
//   - never begun and no identifier: the request leaves zero trace, no
//     cookie and no store write;
//   - destroyed: the store entry is deleted and the cookie expired;
//   - otherwise the data bag is written with the configured TTL and the
//     cookie (re)issued, which slides the expiration on every response.
//
// Persistence is deliberately lazy: identifiers are generated only when a
// begun session reaches reconciliation without one, so bots and one-off
// requests never allocate store entries.
//
// # Usage
//
//	store := session.NewMemoryStore(5 * time.Minute)
//	defer store.Close()
//
//	manager, err := session.New(store)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/visit", func(w http.ResponseWriter, r *http.Request) {
//		sess := session.MustFromContext(r.Context())
//		sess.Begin()
//		visits, _ := sess.GetInt("visits")
//		sess.Set("visits", visits+1)
//		fmt.Fprintf(w, "visit #%d", visits+1)
//	})
//
//	http.ListenAndServe(":8080", manager.Middleware(mux))
//
// Configuration follows the env-tag convention; see Config for the knobs
// (TTL, cookie attributes, key prefix) and their defaults.
package session
