package trackviz

import "github.com/theoremus-urban-solutions/trackviz/internal"

// InitLogging sets the log level and optional log file for the process.
func InitLogging(level, file string) error {
	return internal.InitLogging(level, file)
}
