package types

type EnvName string
type ConfigMode string

const (
	EnvProd  = EnvName("prod")
	EnvDev   = EnvName("dev")
	EnvLocal = EnvName("local")
)

const (
	ConfigModeLocal = ConfigMode("LOCAL")
	ConfigModeS3    = ConfigMode("S3")
)
