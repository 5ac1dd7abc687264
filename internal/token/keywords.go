package token

var keywords = map[string]Kind{
	"int":     KwInt,
	"double":  KwDouble,
	"char":    KwChar,
	"String":  KwString,
	"string":  KwString,
	"boolean": KwBoolean,
	"if":      KwIf,
	"else":    KwElse,
	"for":     KwFor,
	"while":   KwWhile,
	"System":  KwSystem,
	"true":    BoolLit,
	"false":   BoolLit,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: "String" и "string" оба обозначают
// строковый тип, а "If" или "TRUE" остаются идентификаторами.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
