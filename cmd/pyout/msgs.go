package pyout

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Declarative styling for tabular output"
	MsgValidateShort   = "Check style documents against the style reference"
	MsgMergeShort      = "Layer style documents into one"
	MsgDefaultsShort   = "Print the built-in table property defaults"
	MsgInitShort       = "Generate a starter style document"
	MsgSchemaShort     = "Show the style reference"
	MsgSwatchShort     = "Preview the styling of one field value"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgStarterWritten = "Wrote starter style to %s\n"

	// Error messages
	MsgErrInvalidStyle = "invalid style document: %s"
	MsgErrLoadStyle    = "failed to load style %s: %w"
	MsgErrLoadUser     = "failed to load user style: %w"
	MsgErrNoMergeInput = "nothing to merge: pass style files, --columns, or --user"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColumns = "Seed the base document with these columns"
	MsgFlagUser    = "Use the user style document as the base"
	MsgFlagOutput  = "Output encoding (yaml, toml, json)"
	MsgFlagWrite   = "Write the starter to a file instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimSpace(msgValidateExampleRaw)

	//go:embed msgs/merge-long.txt
	msgMergeLongRaw string
	MsgMergeLong    = strings.TrimSpace(msgMergeLongRaw)

	//go:embed msgs/merge-example.txt
	msgMergeExampleRaw string
	MsgMergeExample    = strings.TrimSpace(msgMergeExampleRaw)

	//go:embed msgs/defaults-long.txt
	msgDefaultsLongRaw string
	MsgDefaultsLong    = strings.TrimSpace(msgDefaultsLongRaw)

	//go:embed msgs/defaults-example.txt
	msgDefaultsExampleRaw string
	MsgDefaultsExample    = strings.TrimSpace(msgDefaultsExampleRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimSpace(msgInitExampleRaw)

	//go:embed msgs/schema-long.txt
	msgSchemaLongRaw string
	MsgSchemaLong    = strings.TrimSpace(msgSchemaLongRaw)

	//go:embed msgs/schema-reference.md
	msgSchemaReferenceRaw string
	MsgSchemaReference    = strings.TrimSpace(msgSchemaReferenceRaw)

	//go:embed msgs/swatch-long.txt
	msgSwatchLongRaw string
	MsgSwatchLong    = strings.TrimSpace(msgSwatchLongRaw)

	//go:embed msgs/swatch-example.txt
	msgSwatchExampleRaw string
	MsgSwatchExample    = strings.TrimSpace(msgSwatchExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
