package fnplot

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Placeholder is the rune that stands for the variable in an expression.
const Placeholder = '$'

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	col int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Scan splits an expression into tokens in source order. Runes that can't
// begin a token, including whitespace, are skipped. The only errors are
// malformed numbers and errors from src other than io.EOF.
func Scan(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// ScanString is a shortcut to scan an expression from a string.
func ScanString(s string) ([]Token, error) {
	return Scan(strings.NewReader(s))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// peek returns the next rune without consuming it. ok is false at EOF.
func (l *lexer) peek() (r rune, ok bool, err error) {
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.unreadRune()
	return r, true, nil
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Col: l.col}
		switch {
		case r == '+':
			tok.Kind, tok.Op = TokenOperator, Plus
		case r == '*':
			tok.Kind, tok.Op = TokenOperator, Multiplication
		case r == '/':
			tok.Kind, tok.Op = TokenOperator, Division
		case r == '^':
			tok.Kind, tok.Op = TokenOperator, Pow
		case r == '(':
			tok.Kind = TokenLeftParen
		case r == ')':
			tok.Kind = TokenRightParen
		case r == Placeholder:
			tok.Kind = TokenVariable
		case r == '-':
			// A minus sign is part of a number only when a digit follows it
			// directly.
			d, ok, err := l.peek()
			if err != nil {
				return tok, err
			}
			if !ok || !isDigit(d) {
				tok.Kind, tok.Op = TokenOperator, Minus
				break
			}
			l.buf.WriteRune(r)
			if err := l.number(&tok); err != nil {
				return tok, err
			}
			return tok, nil
		case isDigit(r):
			l.unreadRune()
			if err := l.number(&tok); err != nil {
				return tok, err
			}
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanName(); err != nil {
				return tok, err
			}
			tok.Kind = TokenFunction
			tok.Text = l.buf.String()
			tok.Fn = LookupFunc(tok.Text)
			return tok, nil
		default:
			continue
		}
		tok.Text = string(r)
		return tok, nil
	}
}

// number scans the digits of a number literal into the buffer and converts
// it, filling in tok.
func (l *lexer) number(tok *Token) error {
	if err := l.scanNum(tok.Col); err != nil {
		return err
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &LexError{Text: text, Kind: "number", Col: tok.Col}
	}
	tok.Kind = TokenNumber
	tok.Num = v
	tok.Text = text
	return nil
}

func (l *lexer) scanNum(col int) error {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isDigit(r):
		case r == '.':
			if dot {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return &LexError{Text: l.buf.String(), Kind: "number", Col: col}
			}
			dot = true
		default:
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanName scans a function name. The name log takes one trailing digit so
// that log2 is a single name.
func (l *lexer) scanName() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides name scanning before
				// calling scanName, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case unicode.IsLetter(r):
			l.buf.WriteRune(r)
		case isDigit(r) && l.buf.String() == "log":
			l.buf.WriteRune(r)
			return nil
		default:
			l.unreadRune()
			return nil
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
