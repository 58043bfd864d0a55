package services

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate computes the numeric value of a four-function arithmetic
// expression: decimal literals, + - * /, unary minus and parentheses.
// It never fails: malformed input, trailing garbage, division by zero
// and non-finite results all yield 0 so a half-typed formula can never
// block the quote form. There are no identifiers or function calls; the
// parser has no access to any program state.
func Evaluate(expression string) float64 {
	p := &exprParser{input: expression}
	result, ok := p.parseExpr()
	if !ok {
		return 0
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// parseExpr handles + and -.
func (p *exprParser) parseExpr() (float64, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return 0, false
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, true
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			return left, true
		}
		p.pos++
		right, ok := p.parseTerm()
		if !ok {
			return 0, false
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm handles * and /.
func (p *exprParser) parseTerm() (float64, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return 0, false
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, true
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			return left, true
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, false
			}
			left /= right
		}
	}
}

// parseFactor handles literals, unary minus and parenthesized groups.
func (p *exprParser) parseFactor() (float64, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	switch p.input[p.pos] {
	case '-':
		p.pos++
		v, ok := p.parseFactor()
		return -v, ok
	case '+':
		p.pos++
		return p.parseFactor()
	case '(':
		p.pos++
		v, ok := p.parseExpr()
		if !ok {
			return 0, false
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, false
		}
		p.pos++
		return v, true
	}
	return p.parseNumber()
}

func (p *exprParser) parseNumber() (float64, bool) {
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	lit := p.input[start:p.pos]
	if strings.Count(lit, ".") > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
