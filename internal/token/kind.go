package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwInt represents the 'int' type keyword.
	KwInt // int
	// KwDouble represents the 'double' type keyword.
	KwDouble // double
	// KwChar represents the 'char' type keyword.
	KwChar // char
	// KwString represents the 'String' type keyword.
	KwString // String
	// KwBoolean represents the 'boolean' type keyword.
	KwBoolean // boolean

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwSystem represents the 'System' keyword that starts a print statement.
	KwSystem // System

	// NumberLit represents an integer or decimal literal.
	NumberLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// CharLit represents a single-quoted char literal.
	CharLit
	// BoolLit represents the reserved literals true and false.
	BoolLit

	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Percent     // %
	Assign      // =
	PlusAssign  // +=
	MinusAssign // -=
	StarAssign  // *=
	SlashAssign // /=
	EqEq        // ==
	BangEq      // !=
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	PlusPlus    // ++
	MinusMinus  // --
	AndAnd      // &&
	OrOr        // ||
	Bang        // !

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Semicolon // ;
	Dot       // .

	kindCount
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwInt:       "KwInt",
	KwDouble:    "KwDouble",
	KwChar:      "KwChar",
	KwString:    "KwString",
	KwBoolean:   "KwBoolean",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwFor:       "KwFor",
	KwWhile:     "KwWhile",
	KwSystem:    "KwSystem",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	BoolLit:     "BoolLit",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Percent:     "Percent",
	Assign:      "Assign",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	StarAssign:  "StarAssign",
	SlashAssign: "SlashAssign",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	PlusPlus:    "PlusPlus",
	MinusMinus:  "MinusMinus",
	AndAnd:      "AndAnd",
	OrOr:        "OrOr",
	Bang:        "Bang",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Semicolon:   "Semicolon",
	Dot:         "Dot",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTypeKeyword reports whether k names one of the declarable types.
func (k Kind) IsTypeKeyword() bool {
	switch k {
	case KwInt, KwDouble, KwChar, KwString, KwBoolean:
		return true
	default:
		return false
	}
}

// IsUpdateOp reports whether k starts an in-place update of an identifier
// (x++, x--, x += e, ...).
func (k Kind) IsUpdateOp() bool {
	switch k {
	case PlusPlus, MinusMinus, PlusAssign, MinusAssign, StarAssign, SlashAssign:
		return true
	default:
		return false
	}
}

func (k Kind) IsEOF() bool {
	return k == EOF
}
