package lang

import (
	"fmt"

	"github.com/YaNeVLAD/StateMachine/lexer"
)

// SyntaxError reports a token the grammar did not expect.
type SyntaxError struct {
	Line    int
	Message string
	Found   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %v: %v. Found: %v", e.Line, e.Message, e.Found)
}

// Parser checks a token stream against the toy-language grammar:
//
//	program    → main body end .
//	body       → defines begin statements
//	defines    → { var idList : type ; | id = expression ; }
//	statements → { id = expression ; } [ id = expression ]
//	expression → term { + term }
//	term       → factor { * factor }
//	factor     → - factor | ( expression ) | id | number
type Parser struct {
	lex *lexer.Lexer
}

func NewParser(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse consumes the whole token stream. An empty source is a valid, empty
// program.
func (p *Parser) Parse() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	return p.parseProgram()
}

func (p *Parser) peek() (*lexer.Token, error) {
	return p.lex.Peek()
}

// kindOf maps a token's rule name; tokens from unknown rules surface as a
// syntax error when consumed.
func kindOf(tok *lexer.Token) TokenKind {
	kind, err := KindFromRuleName(tok.Kind)
	if err != nil {
		return KindUnknown
	}
	return kind
}

// match consumes the next token when it has the wanted kind.
func (p *Parser) match(kind TokenKind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok == nil || kindOf(tok) != kind {
		return false, nil
	}
	if _, err := p.lex.Next(); err != nil {
		return false, err
	}
	return true, nil
}

// consume requires the next token to have the wanted kind.
func (p *Parser) consume(kind TokenKind, msg string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok != nil && kindOf(tok) == kind {
		_, err := p.lex.Next()
		return err
	}

	found := "EOF"
	line := 0
	if tok != nil {
		found = tok.Lexeme
		line = tok.Line
	}
	return &SyntaxError{Line: line, Message: msg, Found: found}
}

func (p *Parser) parseProgram() error {
	if err := p.consume(KindMain, "expected 'main'"); err != nil {
		return err
	}
	if err := p.parseBody(); err != nil {
		return err
	}
	if err := p.consume(KindEnd, "expected 'end'"); err != nil {
		return err
	}
	return p.consume(KindDot, "expected '.' after end")
}

func (p *Parser) parseBody() error {
	if err := p.parseDefines(); err != nil {
		return err
	}
	if err := p.consume(KindBegin, "expected 'begin'"); err != nil {
		return err
	}
	return p.parseStatements()
}

func (p *Parser) parseDefines() error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok == nil {
			return nil
		}

		switch kindOf(tok) {
		case KindVar:
			if err := p.parseVar(); err != nil {
				return err
			}
			if err := p.consume(KindSemicolon, "expected ';' after var definition"); err != nil {
				return err
			}
		case KindIdentifier:
			if err := p.parseConst(); err != nil {
				return err
			}
			if err := p.consume(KindSemicolon, "expected ';' after const definition"); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *Parser) parseVar() error {
	if err := p.consume(KindVar, "expected 'var'"); err != nil {
		return err
	}
	if err := p.parseIDList(); err != nil {
		return err
	}
	if err := p.consume(KindColon, "expected ':'"); err != nil {
		return err
	}
	return p.parseType()
}

func (p *Parser) parseIDList() error {
	if err := p.consume(KindIdentifier, "expected identifier"); err != nil {
		return err
	}
	for {
		ok, err := p.match(KindComma)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.consume(KindIdentifier, "expected identifier after ','"); err != nil {
			return err
		}
	}
}

func (p *Parser) parseType() error {
	if ok, err := p.match(KindInt); err != nil || ok {
		return err
	}
	if ok, err := p.match(KindFloat); err != nil || ok {
		return err
	}
	return p.unexpected("expected type (int or float)")
}

func (p *Parser) parseConst() error {
	if err := p.consume(KindIdentifier, "expected identifier for constant"); err != nil {
		return err
	}
	if err := p.consume(KindAssign, "expected '='"); err != nil {
		return err
	}
	return p.parseExpression()
}

func (p *Parser) parseStatements() error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok == nil {
			return &SyntaxError{Message: "unexpected EOF inside statements", Found: "EOF"}
		}
		if kindOf(tok) == KindEnd {
			return nil
		}

		if err := p.parseStatement(); err != nil {
			return err
		}

		tok, err = p.peek()
		if err != nil {
			return err
		}
		switch {
		case tok != nil && kindOf(tok) == KindSemicolon:
			if _, err := p.lex.Next(); err != nil {
				return err
			}
		case tok != nil && kindOf(tok) == KindEnd:
			// The last statement may omit the ';'.
		default:
			return p.unexpected("expected ';' between statements")
		}
	}
}

func (p *Parser) parseStatement() error {
	if err := p.consume(KindIdentifier, "expected identifier in assignment"); err != nil {
		return err
	}
	if err := p.consume(KindAssign, "expected '='"); err != nil {
		return err
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	for {
		ok, err := p.match(KindPlus)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}
	for {
		ok, err := p.match(KindStar)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.parseFactor(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseFactor() error {
	if ok, err := p.match(KindMinus); err != nil {
		return err
	} else if ok {
		return p.parseFactor()
	}
	if ok, err := p.match(KindLParen); err != nil {
		return err
	} else if ok {
		if err := p.parseExpression(); err != nil {
			return err
		}
		return p.consume(KindRParen, "expected ')'")
	}
	if ok, err := p.match(KindIdentifier); err != nil || ok {
		return err
	}
	if ok, err := p.match(KindNumber); err != nil || ok {
		return err
	}
	return p.unexpected("unexpected token in expression")
}

func (p *Parser) unexpected(msg string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	found := "EOF"
	line := 0
	if tok != nil {
		found = tok.Lexeme
		line = tok.Line
	}
	return &SyntaxError{Line: line, Message: msg, Found: found}
}
