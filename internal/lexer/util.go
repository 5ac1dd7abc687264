package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"javapy/internal/token"

	"fortio.org/safecast"
)

// twoByteOps проверяются раньше однобайтовых: '==' никогда не режется на '=' '='.
var twoByteOps = map[[2]byte]token.Kind{
	{'=', '='}: token.EqEq,
	{'!', '='}: token.BangEq,
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{'+', '+'}: token.PlusPlus,
	{'-', '-'}: token.MinusMinus,
	{'+', '='}: token.PlusAssign,
	{'-', '='}: token.MinusAssign,
	{'*', '='}: token.StarAssign,
	{'/', '='}: token.SlashAssign,
	{'&', '&'}: token.AndAnd,
	{'|', '|'}: token.OrOr,
}

// scanTwoByteOp consumes a two-byte operator under the cursor, if any.
func (lx *Lexer) scanTwoByteOp() (token.Kind, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return token.Invalid, false
	}
	k, ok := twoByteOps[[2]byte{b0, b1}]
	if !ok {
		return token.Invalid, false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return k, true
}

// peekRune decodes the rune under the cursor; size is 0 at EOF.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	if b := lx.cursor.Peek(); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}

// bumpRune advances past the rune under the cursor.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// Идентификаторы как в Java: буквы, '_' и '$', цифры не в начале.
func isIdentStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || r == '$' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStart(r) || (r >= '0' && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
