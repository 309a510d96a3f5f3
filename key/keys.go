// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

const (
	FormatBinary           = "format.binary"
	FormatSourceExtensions = "format.source-extensions"
	FormatHeaderExtensions = "format.header-extensions"

	IconsVariant = "icons"

	CliColored = "cli.colored"

	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
