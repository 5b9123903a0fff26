// Package pg provides the Postgres collaborator for sessionkit: a pgxpool
// connection helper with retries, a goose-based migration runner with the
// sessions schema embedded, a readiness probe, and a session.Store backed
// by a single upsert-per-response table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := session.New(pg.NewSessionStore(pool))
package pg
