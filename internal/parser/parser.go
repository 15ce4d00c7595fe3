// Package parser is a recursive-descent parser with panic-mode error
// recovery, producing the statement tree consumed by the evaluator.
package parser

import (
	"fmt"
	"strconv"

	"github.com/goloxi/loxi/internal/ast"
	"github.com/goloxi/loxi/internal/errors"
	"github.com/goloxi/loxi/internal/lexer"
	"github.com/goloxi/loxi/internal/token"
)

const maxArgs = 255

// Parser consumes a token vector produced by the lexer and builds a
// program's top-level statement list.
//
// Static rules that spec.md assigns to parse time rather than runtime
// (break/continue placement, return placement, assignment targets,
// parameter/argument counts) are enforced here via the loopDepth and
// funcDepth counters, not in the evaluator.
type Parser struct {
	tokens    []token.Token
	current   int
	errs      []*errors.ParseError
	loopDepth int
	funcDepth int
}

// New lexes source in full and returns a Parser ready to call Parse. A scan
// error aborts before any parsing begins, matching the CLI's "any scan
// error aborts the program" policy.
func New(source string) (*Parser, *lexer.Error) {
	l := lexer.New(source)
	tokens, err := l.Scan()
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

// Errors returns every parse error recorded during Parse, in source order.
func (p *Parser) Errors() []*errors.ParseError { return p.errs }

// Parse builds the program's statement list. Per spec.md's reference
// policy, a program with any parse error yields no statements: callers
// should check Errors() before using the returned slice, which is nil
// whenever Errors() is non-empty.
func (p *Parser) Parse() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if len(p.errs) > 0 {
		return nil
	}
	return stmts
}

// ---- token cursor -------------------------------------------------

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind or fails (recording a parse
// error and unwinding via panic) at the current token.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek(), message)
	return token.Token{} // unreachable: fail panics
}

// errorAt records a parse error for tok without unwinding, for mistakes that
// don't leave the parser in a desynchronized state (e.g. a misplaced break,
// an invalid assignment target).
func (p *Parser) errorAt(tok token.Token, message string) {
	lexeme := tok.Lexeme
	if tok.Kind == token.EOF {
		lexeme = "EOF"
	}
	p.errs = append(p.errs, errors.NewParseError(tok.Pos, lexeme, message))
}

// parseError is the panic payload used to unwind to synchronize(); it
// carries nothing beyond a marker because the error itself was already
// recorded by errorAt.
type parseError struct{}

func (p *Parser) fail(tok token.Token, message string) {
	p.errorAt(tok, message)
	panic(parseError{})
}

// synchronize discards tokens until it reaches a plausible restart point:
// just past a ';' or at the start of a declaration/control keyword. Called
// from the recover() in declaration() after a parse error unwinds.
func (p *Parser) synchronize() {
	p.advance()
	for !p.check(token.EOF) {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FN, token.LET, token.FOR, token.IF, token.WHILE, token.RETURN:
			return
		}
		p.advance()
	}
}

// ---- declarations ---------------------------------------------------

func (p *Parser) declaration() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.LET) {
		return p.varDecl()
	}
	if p.match(token.FN) {
		return p.function()
	}
	return p.statement()
}

func (p *Parser) varDecl() ast.Statement {
	keyword := p.previous()
	name := p.consume(token.IDENT, "expected variable name")

	var init ast.Expression
	if p.match(token.EQUAL) {
		init = p.expression()
	}

	p.expectSemicolon("expected ';' after variable declaration")
	return &ast.VarDecl{Keyword: keyword, Name: name, Init: init}
}

func (p *Parser) function() ast.Statement {
	keyword := p.previous()
	name := p.consume(token.IDENT, "expected function name")
	p.consume(token.LPAREN, "expected '(' after function name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d parameters", maxArgs))
			}
			params = append(params, p.consume(token.IDENT, "expected parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expected ')' after parameters")
	p.consume(token.LBRACE, "expected '{' before function body")
	p.funcDepth++
	body := p.blockStatements()
	p.funcDepth--

	return &ast.Function{Keyword: keyword, Name: name, Params: params, Body: body}
}

// ---- statements -------------------------------------------------------

func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.SEMICOLON):
		return &ast.Null{Semicolon: p.previous()}
	case p.check(token.LBRACE):
		lbrace := p.advance()
		return &ast.Block{LBrace: lbrace, Stmts: p.blockStatements()}
	default:
		return p.exprStatement()
	}
}

// blockStatements parses declarations up to and including the closing '}'
// of a block opened by the caller.
func (p *Parser) blockStatements() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "expected '}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Statement {
	keyword := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expected ')' after condition")
	then := p.statement()
	var elseBranch ast.Statement
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Keyword: keyword, Cond: cond, Then: then, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Statement {
	keyword := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "expected ')' after condition")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &ast.While{Keyword: keyword, Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; inc) body` into
// `{ init?; while (cond) { body; inc?; } }`, recording inc as the
// resulting While's Increment so that `continue` inside body still runs it
// before Cond is re-tested (spec.md §4.2).
func (p *Parser) forStatement() ast.Statement {
	keyword := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'for'")

	var init ast.Statement
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.LET):
		init = p.varDecl()
	default:
		init = p.exprStatement()
	}

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after loop condition")

	var increment ast.Expression
	if !p.check(token.RPAREN) {
		increment = p.expression()
	}
	p.consume(token.RPAREN, "expected ')' after for clauses")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if cond == nil {
		cond = &ast.Literal{Token: keyword, Value: true}
	}

	loop := &ast.While{Keyword: keyword, Cond: cond, Body: body, Increment: increment}

	if init == nil {
		return loop
	}
	return &ast.Block{LBrace: keyword, Stmts: []ast.Statement{init, loop}}
}

func (p *Parser) breakStatement() ast.Statement {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "`break` outside loop")
	}
	p.expectSemicolon("expected ';' after 'break'")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) continueStatement() ast.Statement {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "`continue` outside loop")
	}
	p.expectSemicolon("expected ';' after 'continue'")
	return &ast.Continue{Keyword: keyword}
}

func (p *Parser) returnStatement() ast.Statement {
	keyword := p.previous()
	if p.funcDepth == 0 {
		p.errorAt(keyword, "`return` outside function")
	}
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expectSemicolon("expected ';' after return value")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) exprStatement() ast.Statement {
	expr := p.expression()
	p.expectSemicolon("expected ';' after expression")
	return &ast.ExprStmt{Expr: expr}
}

// expectSemicolon consumes a trailing ';', failing with message if absent.
func (p *Parser) expectSemicolon(message string) {
	p.consume(token.SEMICOLON, message)
}

// ---- expressions --------------------------------------------------

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expression {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "invalid assignment target")
		return expr
	}

	return expr
}

func (p *Parser) or() ast.Expression {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expression {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for p.match(token.LPAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d arguments", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "expected ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: mustParseFloat(tok.Lexeme)}
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Lexeme}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LPAREN):
		lparen := p.previous()
		expr := p.expression()
		p.consume(token.RPAREN, "expected ')' after expression")
		return &ast.Grouping{LParen: lparen, Inner: expr}
	}

	tok := p.peek()
	p.fail(tok, "expected expression")
	return nil // unreachable: fail panics
}

// mustParseFloat converts a NUMBER token's lexeme to a float64. The lexer
// only ever produces lexemes strconv.ParseFloat accepts, so an error here
// would indicate a lexer bug, not malformed user input.
func mustParseFloat(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("parser: lexer produced an unparseable number literal: " + lexeme)
	}
	return v
}
