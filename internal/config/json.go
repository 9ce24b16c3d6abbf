package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/credstore/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from "empty" so absent keys keep their defaults.
type JsonConfig struct {
	Backend        *string `json:"backend"`
	FilePath       *string `json:"file_path"`
	SQLitePath     *string `json:"sqlite_path"`
	PostgresDSN    *string `json:"postgres_dsn"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Key          *string `json:"s3_key"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	LogLevel       *string `json:"log_level"`
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.FilePath, jc.FilePath)
	overlay(&cfg.SQLitePath, jc.SQLitePath)
	overlay(&cfg.PostgresDSN, jc.PostgresDSN)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Key, jc.S3Key)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
}
