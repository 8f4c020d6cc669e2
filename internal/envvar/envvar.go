package envvar

const (
	// ConvdictEnv is the environment variable used to determine the environment
	ConvdictEnv = "CONVDICT_ENV"

	// ConvdictLogLevel is the environment variable used to set the minimum log level
	ConvdictLogLevel = "CONVDICT_LOG_LEVEL"

	// ConvdictLogFile is the environment variable used to enable logging to a rotating file
	ConvdictLogFile = "CONVDICT_LOG_FILE"

	// ConvdictFields is the environment variable used to locate the field file
	ConvdictFields = "CONVDICT_FIELDS"
)
