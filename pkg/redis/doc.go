// Package redis provides the Redis collaborator for sessionkit: a
// connection helper with retries, a readiness probe, and a session.Store
// adapter over go-redis.
//
//	client, err := redis.Connect(ctx, redis.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := session.New(redis.NewSessionStore(client))
package redis
