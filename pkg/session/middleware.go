package session

import (
	"context"
	"log/slog"
	"net/http"
)

// Middleware wires the session lifecycle into an http.Handler chain.
//
// Before the handler runs, the incoming cookie is validated and the
// session loaded from the store. After it, the session's final state is
// reconciled back: the reconciliation happens exactly once, immediately
// before the first byte of the response reaches the client, so the
// Set-Cookie header and the store are updated atomically with respect to
// the response. A handler that panics produces no cookie and no store
// write; the panic propagates to the server's recovery layer untouched.
//
// A store failure during reconciliation fails the request through the
// manager's error handler instead of sending the handler's response with
// stale session state.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.load(r)
		if err != nil {
			m.log.ErrorContext(r.Context(), "session load failed", slog.Any("error", err))
			m.errorHandler(w, r, err)
			return
		}

		ctx := WithSession(r.Context(), sess)
		cw := &commitWriter{
			ResponseWriter: w,
			manager:        m,
			session:        sess,
			ctx:            ctx,
			request:        r,
		}

		next.ServeHTTP(cw, r.WithContext(ctx))

		// Handler produced no output at all; reconcile before the
		// implicit 200 goes out.
		if !cw.committed {
			cw.WriteHeader(http.StatusOK)
		}
	})
}

// commitWriter defers session reconciliation to the last possible moment:
// the first WriteHeader or Write call. Headers are still open at that
// point, so the session cookie can be attached and a reconciliation
// failure can still turn the response into an error.
type commitWriter struct {
	http.ResponseWriter
	manager   *Manager
	session   *Session
	ctx       context.Context
	request   *http.Request
	committed bool
	failed    bool
}

func (w *commitWriter) WriteHeader(statusCode int) {
	if !w.committed {
		w.committed = true
		if err := w.manager.commit(w.ctx, w.ResponseWriter, w.session); err != nil {
			w.failed = true
			w.manager.log.ErrorContext(w.ctx, "session commit failed", slog.Any("error", err))
			w.manager.errorHandler(w.ResponseWriter, w.request, err)
			return
		}
	}
	if w.failed {
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	if w.failed {
		// The error handler already wrote the response; the handler's
		// body is dropped but reported as written so it stops cleanly.
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// Flush forces reconciliation first, then forwards to the underlying
// writer if it supports flushing.
func (w *commitWriter) Flush() {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
