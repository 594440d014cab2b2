package spindle

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// --- Input registry ---

// Bind maps a logical input ID such as "MoveLeft" to b, replacing any
// previous binding. Binding a nil button removes the ID.
func (k *Kernel) Bind(id string, b Button) {
	k.unwatch(id)
	if b == nil {
		delete(k.inputs, id)
		return
	}
	k.inputs[id] = b
}

// Unbind removes the binding for id.
func (k *Kernel) Unbind(id string) {
	k.unwatch(id)
	delete(k.inputs, id)
}

// Input returns the button bound to id. ok is false for unbound IDs.
func (k *Kernel) Input(id string) (b Button, ok bool) {
	b, ok = k.inputs[id]
	return b, ok
}

// Inputs returns the bound IDs in sorted order.
func (k *Kernel) Inputs() []string {
	return sortedKeys(k.inputs)
}

// IsDown reports whether the button bound to id is down. Unbound IDs are up.
func (k *Kernel) IsDown(id string) bool {
	b, ok := k.inputs[id]
	return ok && b.IsDown()
}

// Pressed reports whether the button bound to id was pressed this tick.
func (k *Kernel) Pressed(id string) bool {
	b, ok := k.inputs[id]
	return ok && b.Pressed()
}

// Released reports whether the button bound to id was released this tick.
func (k *Kernel) Released(id string) bool {
	b, ok := k.inputs[id]
	return ok && b.Released()
}

// BindExpr parses expr with ParseBinding against the kernel's keyboard and
// binds the result to id. With Config.StepComposites set, a composite result
// is watched on the keyboard until id is rebound or unbound.
func (k *Kernel) BindExpr(id, expr string) (Button, error) {
	b, err := ParseBinding(k.keyboard, expr)
	if err != nil {
		return nil, err
	}
	k.Bind(id, b)
	if _, leaf := b.(*Key); k.stepComposites && !leaf {
		k.keyboard.Watch(b)
		k.watched[id] = b
	}
	return b, nil
}

func (k *Kernel) unwatch(id string) {
	if b, ok := k.watched[id]; ok {
		k.keyboard.Unwatch(b)
		delete(k.watched, id)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// --- Binding expressions ---

// ParseBinding builds a button from a binding expression:
//
//	expr := name | and(expr, expr) | or(expr, expr) | not(expr)
//
// Names are key names and resolve through kb.Key, so each occurrence issues
// a new leaf and may hold any Unicode letters, digits and underscores.
// Operator names are case-insensitive.
func ParseBinding(kb *Keyboard, expr string) (Button, error) {
	p := &bindingParser{kb: kb, src: expr}
	b, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.peekRune())
	}
	return b, nil
}

type bindingParser struct {
	kb  *Keyboard
	src string
	pos int
}

func (p *bindingParser) errorf(format string, args ...any) error {
	return fmt.Errorf("binding %q at %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

// peekRune decodes the rune at pos. It must not be called at end of input.
func (p *bindingParser) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *bindingParser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *bindingParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func (p *bindingParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.peekRune())
	}
	p.pos++
	return nil
}

func (p *bindingParser) peek(c byte) bool {
	p.skipSpace()
	return p.pos < len(p.src) && p.src[p.pos] == c
}

func (p *bindingParser) expr() (Button, error) {
	name := p.ident()
	if name == "" {
		if p.pos >= len(p.src) {
			return nil, p.errorf("expected key name, got end of input")
		}
		return nil, p.errorf("expected key name, got %q", p.peekRune())
	}
	if !p.peek('(') {
		return p.kb.Key(name), nil
	}

	op := strings.ToLower(name)
	arity := 2
	switch op {
	case "and", "or":
	case "not":
		arity = 1
	default:
		return nil, p.errorf("unknown operator %q", name)
	}

	if err := p.expect('('); err != nil {
		return nil, err
	}
	args := make([]Button, 0, arity)
	for i := 0; i < arity; i++ {
		if i > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		b, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, b)
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}

	switch op {
	case "and":
		return And(args[0], args[1]), nil
	case "or":
		return Or(args[0], args[1]), nil
	default:
		return Not(args[0]), nil
	}
}
