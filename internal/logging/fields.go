package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Conversion fields.
	FieldLines      = "lines"
	FieldBlocks     = "blocks"
	FieldBlockKind  = "kind"
	FieldLanguage   = "language"
	FieldLine       = "line"
	FieldBytesIn    = "bytes_in"
	FieldBytesOut   = "bytes_out"
	FieldDuration   = "duration"
	FieldConstructs = "constructs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
