package config

const SourceFileExt = ".rl"

// ConfigFileNames are the project file names searched for, in order.
var ConfigFileNames = []string{"rlang.yaml", "rlang.yml"}

// IsTestMode indicates if the program is running under go test. Drivers
// use it to keep terminal detection and history files out of test runs.
var IsTestMode = false

// Color modes accepted by the color setting and the -color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const DefaultHistoryFile = ".rlang_history"

const ReplPrompt = "rlang> "
