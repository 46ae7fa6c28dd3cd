// Package formula implementa el evaluador de reglas de precio: un parser
// recursivo descendente sobre una gramática cerrada (cost, price, + - * /,
// paréntesis y literales decimales). El AST se evalúa directamente, sin
// ejecución dinámica de código: cualquier token fuera de la gramática
// rechaza la fórmula completa.
package formula

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain"
)

// Gramática:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | 'cost' | 'price' | '(' expr ')'
//
// Los identificadores cost/price son insensibles a mayúsculas.

type node interface {
	eval(cost, price decimal.Decimal) (decimal.Decimal, error)
}

type numberNode struct{ value decimal.Decimal }

type variableNode struct{ name string } // "cost" | "price"

type binaryNode struct {
	op          byte // '+', '-', '*', '/'
	left, right node
}

func (n numberNode) eval(_, _ decimal.Decimal) (decimal.Decimal, error) {
	return n.value, nil
}

func (n variableNode) eval(cost, price decimal.Decimal) (decimal.Decimal, error) {
	if n.name == "cost" {
		return cost, nil
	}
	return price, nil
}

func (n binaryNode) eval(cost, price decimal.Decimal) (decimal.Decimal, error) {
	l, err := n.left.eval(cost, price)
	if err != nil {
		return decimal.Zero, err
	}
	r, err := n.right.eval(cost, price)
	if err != nil {
		return decimal.Zero, err
	}
	switch n.op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		if r.IsZero() {
			return decimal.Zero, fmt.Errorf("%w: división por cero", domain.ErrInvalidFormula)
		}
		return l.Div(r), nil
	}
	return decimal.Zero, domain.ErrInvalidFormula
}

// ──────────────────────────────────────────────────────────────────────────────
// Lexer
// ──────────────────────────────────────────────────────────────────────────────

type token struct {
	kind  byte   // 'n' número, 'v' variable, u operador/paréntesis literal
	text  string // número o nombre de variable
	value decimal.Decimal
}

func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '(' || c == ')':
			toks = append(toks, token{kind: byte(c)})
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			lit := string(runes[i:j])
			v, err := decimal.NewFromString(lit)
			if err != nil {
				return nil, fmt.Errorf("%w: literal %q", domain.ErrInvalidFormula, lit)
			}
			toks = append(toks, token{kind: 'n', text: lit, value: v})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			name := strings.ToLower(string(runes[i:j]))
			if name != "cost" && name != "price" {
				return nil, fmt.Errorf("%w: identificador %q", domain.ErrInvalidFormula, name)
			}
			toks = append(toks, token{kind: 'v', text: name})
			i = j
		default:
			return nil, fmt.Errorf("%w: carácter %q", domain.ErrInvalidFormula, string(c))
		}
	}
	return toks, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Parser
// ──────────────────────────────────────────────────────────────────────────────

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != '+' && t.kind != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != '*' && t.kind != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right}
	}
}

func (p *parser) factor() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: fórmula incompleta", domain.ErrInvalidFormula)
	}
	switch t.kind {
	case 'n':
		p.pos++
		return numberNode{value: t.value}, nil
	case 'v':
		p.pos++
		return variableNode{name: t.text}, nil
	case '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != ')' {
			return nil, fmt.Errorf("%w: falta cerrar paréntesis", domain.ErrInvalidFormula)
		}
		p.pos++
		return inner, nil
	}
	return nil, fmt.Errorf("%w: token inesperado", domain.ErrInvalidFormula)
}

// parse compila la fórmula a un AST.
func parse(input string) (node, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: fórmula vacía", domain.ErrInvalidFormula)
	}
	p := &parser{toks: toks}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(toks) {
		return nil, fmt.Errorf("%w: tokens sobrantes", domain.ErrInvalidFormula)
	}
	return root, nil
}

// Validate verifica que la fórmula compile contra la gramática.
// Lo usa el CRUD de reglas para rechazar fórmulas malformadas al guardar.
func Validate(input string) error {
	_, err := parse(input)
	return err
}

// Eval parsea y evalúa la fórmula contra el costo y precio de una línea.
// El resultado solo se acepta si es >= 0; en cualquier otro caso retorna error
// y el caller deja la línea sin cambios.
func Eval(input string, cost, price decimal.Decimal) (decimal.Decimal, error) {
	root, err := parse(input)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := root.eval(cost, price)
	if err != nil {
		return decimal.Zero, err
	}
	if out.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: resultado negativo", domain.ErrInvalidFormula)
	}
	return out, nil
}
