package core

// Color represents the options for enabling or disabling color output.
type Color int

const (
	ColorUnknown Color = iota
	ColorAuto
	ColorOn
	ColorOff
)

// Format represents the encoding used when writing split arguments.
type Format int

const (
	FormatUnknown Format = iota
	FormatText
	FormatTable
	FormatJSON
	FormatNDJSON
	FormatYAML
	FormatMsgPack
	FormatProtobuf
)

var formatNames = map[Format]string{
	FormatText:     "text",
	FormatTable:    "table",
	FormatJSON:     "json",
	FormatNDJSON:   "ndjson",
	FormatYAML:     "yaml",
	FormatMsgPack:  "msgpack",
	FormatProtobuf: "protobuf",
}

// FormatValues lists the accepted format names, in display order.
var FormatValues = []KeyVal[string]{
	{Key: "text", Val: "One argument per line"},
	{Key: "table", Val: "Aligned table of arguments"},
	{Key: "json", Val: "A single JSON array of records"},
	{Key: "ndjson", Val: "One JSON record per line"},
	{Key: "yaml", Val: "A YAML sequence of records"},
	{Key: "msgpack", Val: "A MessagePack array of records"},
	{Key: "protobuf", Val: "Length-delimited protobuf Structs"},
}

// String returns the name of the Format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat returns the Format with the provided name.
func ParseFormat(name string) (Format, bool) {
	for f, n := range formatNames {
		if n == name {
			return f, true
		}
	}
	return FormatUnknown, false
}

// IsBinary returns true if the Format does not produce text.
func (f Format) IsBinary() bool {
	return f == FormatMsgPack || f == FormatProtobuf
}

// Verbosity represents how verbose the output should be.
type Verbosity int

const (
	VSilent Verbosity = iota
	VNormal
	VVerbose
	VExtraVerbose
)

// KeyVal represents a generic key/value pair.
type KeyVal[T any] struct {
	Key string
	Val T
}

// PointerTo returns a pointer to the provided value.
func PointerTo[T any](t T) *T {
	return &t
}
