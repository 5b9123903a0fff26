// Package config loads env-tagged configuration structs from the process
// environment, with optional .env support for local development.
//
// Every package in this module declares its own Config struct with `env`
// tags and a DefaultConfig constructor; this package is the single entry
// point that fills them at startup:
//
//	var cfg struct {
//		Session session.Config
//		Redis   redis.Config
//	}
//	config.MustLoad(&cfg)
package config
