package common

// Backend names accepted by the storage factory and the -b flag.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// RecordSeparator splits a persisted line into username and password.
// Only the first occurrence counts.
const RecordSeparator = ","
