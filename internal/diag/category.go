package diag

// Category groups diagnostics by the phase that produced them.
type Category uint8

const (
	CategoryUnknown Category = iota
	// CategoryLexical is produced by the scanner.
	CategoryLexical
	// CategorySyntactic is produced by the translator.
	CategorySyntactic
	// CategoryIO is produced by the driver when a file cannot be read.
	CategoryIO
)

func (c Category) String() string {
	switch c {
	case CategoryLexical:
		return "Lexical"
	case CategorySyntactic:
		return "Syntactic"
	case CategoryIO:
		return "IO"
	}
	return "Unknown"
}
