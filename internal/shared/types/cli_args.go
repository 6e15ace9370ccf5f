package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	Project       string
	Currency      string
	ReportName    string
	ReportType    []string
	Dir           string
	SkipWorkloads bool
}
