// Package mongo provides the MongoDB collaborator for sessionkit: a
// connection helper with retries, a readiness probe, and a session.Store
// over a TTL-indexed collection.
//
//	db, err := mongo.ConnectDatabase(ctx, cfg, "app")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store := mongo.NewSessionStore(db, cfg.SessionCollection)
//	if err := store.EnsureIndexes(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := session.New(store)
package mongo
