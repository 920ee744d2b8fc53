package mimeglob

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve file names to MIME types with shared-mime-info globs"
	MsgMatchShort      = "Print the MIME types matching file names"
	MsgClassifyShort   = "Show how glob patterns are classified"
	MsgProbeShort      = "Test one pattern against one file name"
	MsgExportShort     = "Write the loaded globs"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default is $XDG_CONFIG_HOME/mimeglob/config.toml)"
	MsgFlagFormat        = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagNoSystem      = "Do not load the system glob databases"
	MsgFlagGlobs         = "Extra globs2, globs or package XML file (repeatable)"
	MsgFlagCaseSensitive = "Match the pattern case-sensitively"
	MsgFlagOutput        = "Write to this file instead of standard output"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadConfig    = "failed to load configuration"
	MsgErrBuildDatabase = "failed to build glob registry"
	MsgErrNoMatch       = "%s does not match %s"

	// Version output
	MsgVersionFormat = "mimeglob version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimRight(msgMatchExampleRaw, "\n")

	//go:embed msgs/classify-long.txt
	msgClassifyLongRaw string
	MsgClassifyLong    = strings.TrimSpace(msgClassifyLongRaw)

	//go:embed msgs/classify-example.txt
	msgClassifyExampleRaw string
	MsgClassifyExample    = strings.TrimRight(msgClassifyExampleRaw, "\n")

	//go:embed msgs/probe-long.txt
	msgProbeLongRaw string
	MsgProbeLong    = strings.TrimSpace(msgProbeLongRaw)

	//go:embed msgs/probe-example.txt
	msgProbeExampleRaw string
	MsgProbeExample    = strings.TrimRight(msgProbeExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/help-template.txt
	msgHelpTemplateRaw string
	MsgHelpTemplate    = strings.TrimSpace(msgHelpTemplateRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
