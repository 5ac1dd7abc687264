package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedChar         Code = 1006
	LexEmptyChar                Code = 1007

	// Синтаксические
	SynInfo             Code = 2000
	SynInvalidStatement Code = 2001
	SynUnclosedParen    Code = 2006
	SynUnclosedBrace    Code = 2007
	SynExpectSemicolon  Code = 2012
	SynForBadHeader     Code = 2014

	SynExpectIdentifier Code = 2102
	SynExpectAssign     Code = 2103
	SynMissingValue     Code = 2104
	SynExpectLParen     Code = 2105
	SynExpectLBrace     Code = 2106
	SynBadPrintCall     Code = 2107

	// I/O
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexTokenTooLong:             "Token too long",
		LexUnterminatedChar:         "Unterminated char",
		LexEmptyChar:                "Empty char literal",
		SynInfo:                     "Syntax information",
		SynInvalidStatement:         "Invalid statement",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBrace:            "Unclosed brace",
		SynExpectSemicolon:          "Expect semicolon",
		SynForBadHeader:             "Malformed for header",
		SynExpectIdentifier:         "Expect identifier",
		SynExpectAssign:             "Expect '='",
		SynMissingValue:             "Missing value",
		SynExpectLParen:             "Expect '('",
		SynExpectLBrace:             "Expect '{'",
		SynBadPrintCall:             "Malformed print call",
		IOLoadFileError:             "Failed to load file",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Category returns the diagnostic family the code belongs to.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CategoryLexical
	case ic >= 2000 && ic < 3000:
		return CategorySyntactic
	case ic >= 4000 && ic < 5000:
		return CategoryIO
	}
	return CategoryUnknown
}
