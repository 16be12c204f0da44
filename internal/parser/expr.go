package parser

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/token"
)

// expr := assignment
func (p *Parser) expression() (ast.Expr, bool) {
	return p.assignment()
}

// assignment := logic_or ('=' assignment)?
//
// Right-associative; the left-hand side must already have parsed as a
// Variable (spec.md §4.2's "Invalid assignment target." rule). logic_or
// sits where spec.md's `equality` used to be directly under assignment —
// SPEC_FULL.md §3.4 inserts `&&`/`||` as their own precedence level
// between equality and assignment.
func (p *Parser) assignment() (ast.Expr, bool) {
	left, ok := p.logicOr()
	if !ok {
		return nil, false
	}

	if _, ok := p.match(token.Assign); ok {
		value, ok := p.assignment()
		if !ok {
			return nil, false
		}
		variable, isVar := left.(*ast.Variable)
		if !isVar {
			p.error(diag.SynInvalidAssignment, "Invalid assignment target.")
			return nil, false
		}
		return &ast.Assign{
			Name:  variable.Name,
			Value: value,
			Depth: -1,
			Sp:    spanFromTo(left.Span(), value.Span()),
		}, true
	}
	return left, true
}

// logic_or := logic_and ('||' logic_and)*
func (p *Parser) logicOr() (ast.Expr, bool) {
	left, ok := p.logicAnd()
	if !ok {
		return nil, false
	}
	for {
		op, matched := p.match(token.OrOr)
		if !matched {
			return left, true
		}
		right, ok := p.logicAnd()
		if !ok {
			return nil, false
		}
		left = &ast.Logical{Left: left, Op: op, Right: right, Sp: spanFromTo(left.Span(), right.Span())}
	}
}

// logic_and := equality ('&&' equality)*
func (p *Parser) logicAnd() (ast.Expr, bool) {
	left, ok := p.equality()
	if !ok {
		return nil, false
	}
	for {
		op, matched := p.match(token.AndAnd)
		if !matched {
			return left, true
		}
		right, ok := p.equality()
		if !ok {
			return nil, false
		}
		left = &ast.Logical{Left: left, Op: op, Right: right, Sp: spanFromTo(left.Span(), right.Span())}
	}
}

// equality := comparison (('==' | '!=') comparison)*
func (p *Parser) equality() (ast.Expr, bool) {
	return p.binaryLevel(p.comparison, token.EqEq, token.BangEq)
}

// comparison := term (('<'|'<='|'>'|'>=') term)*
func (p *Parser) comparison() (ast.Expr, bool) {
	return p.binaryLevel(p.term, token.Lt, token.LtEq, token.Gt, token.GtEq)
}

// term := factor (('+'|'-') factor)*
func (p *Parser) term() (ast.Expr, bool) {
	return p.binaryLevel(p.factor, token.Plus, token.Minus)
}

// factor := unary (('*'|'/') unary)*
func (p *Parser) factor() (ast.Expr, bool) {
	return p.binaryLevel(p.unary, token.Star, token.Slash)
}

// binaryLevel factors out the repeated "next level, then left-associative
// loop over these operator kinds" shape shared by equality/comparison/
// term/factor.
func (p *Parser) binaryLevel(next func() (ast.Expr, bool), kinds ...token.Kind) (ast.Expr, bool) {
	left, ok := next()
	if !ok {
		return nil, false
	}
	for {
		op, matched := p.match(kinds...)
		if !matched {
			return left, true
		}
		right, ok := next()
		if !ok {
			return nil, false
		}
		left = &ast.Binary{Left: left, Op: op, Right: right, Sp: spanFromTo(left.Span(), right.Span())}
	}
}

// unary := ('!'|'-') unary | call
func (p *Parser) unary() (ast.Expr, bool) {
	if op, ok := p.match(token.Bang, token.Minus); ok {
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		return &ast.Unary{Op: op, Right: right, Sp: spanFromTo(op.Span, right.Span())}, true
	}
	return p.call()
}

// call := primary ('(' args? ')')*
func (p *Parser) call() (ast.Expr, bool) {
	expr, ok := p.primary()
	if !ok {
		return nil, false
	}
	for {
		if _, matched := p.match(token.LParen); matched {
			expr, ok = p.finishCall(expr)
			if !ok {
				return nil, false
			}
			continue
		}
		break
	}
	return expr, true
}

// args := expr (',' expr)*
func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, bool) {
	var args []ast.Expr
	if !p.check(token.RParen) {
		for {
			arg, ok := p.expression()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	paren, ok := p.expect(token.RParen, diag.SynExpectParen, "Expect ')' after arguments.")
	if !ok {
		return nil, false
	}
	return &ast.Call{Callee: callee, Arguments: args, Paren: paren, Sp: spanFromTo(callee.Span(), paren.Span)}, true
}

// primary := INT_LIT | FLOAT_LIT | STRING_LIT | 'true' | 'false'
//          | IDENT | '(' expr ')'
func (p *Parser) primary() (ast.Expr, bool) {
	switch {
	case p.check(token.IntLit), p.check(token.FloatLit), p.check(token.StringLit),
		p.check(token.KwTrue), p.check(token.KwFalse):
		tok := p.advance()
		return &ast.Literal{Token: tok, Sp: tok.Span}, true
	case p.check(token.Ident):
		tok := p.advance()
		return &ast.Variable{Name: tok, Depth: -1, Sp: tok.Span}, true
	case p.check(token.LParen):
		p.advance()
		expr, ok := p.expression()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectParen, "Expect ')' after expression."); !ok {
			return nil, false
		}
		return expr, true
	default:
		p.error(diag.SynUnexpectedToken, "Expect expression.")
		return nil, false
	}
}
