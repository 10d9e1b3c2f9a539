package config

// Log prefixes shared by the binaries.
const (
	LogInfo  = "[APP] [INFO] "
	LogError = "[APP] [ERROR] "
	LogFatal = "[APP] [FATAL] "
)
