// Package config loads runtime configuration for credstore.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   storage backend: file, sqlite, postgres, s3
//	-f string   users file path (file backend)
//	-s string   SQLite database path
//	-d string   PostgreSQL DSN
//	-sb string  S3 bucket
//	-sk string  S3 object key
//	-sg string  S3 region
//	-se string  S3 base endpoint (e.g. MinIO)
//	-su string  S3 access key
//	-sp string  S3 secret key
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "backend": "file",
//	  "file_path": "users.txt",
//	  "sqlite_path": "users.db",
//	  "postgres_dsn": "postgres://...",
//	  "s3_bucket": "credstore",
//	  "s3_key": "users.txt",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword",
//	  "log_level": "warn"
//	}
//
// Keys missing from the JSON file keep their default. Malformed JSON or flag
// values panic, like the rest of the startup path.
package config
