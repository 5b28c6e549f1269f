package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// MOTOSHOP_ tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "MOTOSHOP_DB_DSN"
	EnvDBHost = "MOTOSHOP_DB_HOST"
	EnvDBUser = "MOTOSHOP_DB_USER"
	EnvDBName = "MOTOSHOP_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
