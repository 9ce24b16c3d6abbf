package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/credstore/internal/flagx"
)

var knownFlags = []string{"-b", "-f", "-s", "-d", "-sb", "-sk", "-sg", "-se", "-su", "-sp", "-l"}

// parseFlags populates cfg from the flags it knows about; everything else on
// the command line (-c, stray words) is filtered out first. It panics on a
// malformed flag.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file, sqlite, postgres, s3)")
	fs.StringVar(&cfg.FilePath, "f", cfg.FilePath, "users file path")
	fs.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "sqlite database path")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.S3Bucket, "sb", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Key, "sk", cfg.S3Key, "S3 object key")
	fs.StringVar(&cfg.S3Region, "sg", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "se", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "su", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "sp", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
