package nfa

// Parse compiles a regex pattern into a Thompson NFA.
//
// Supported syntax: literal bytes, '.', the quantifiers '*' '+' '?',
// character classes [...] and [^...] with ranges, alternation '|', groups
// (...), the shorthand classes \d \D \w \W \s \S, backslash-escaped
// literals, and the anchors '^'/'$'. Anchors parse but compile to
// zero-width no-ops; they do not enforce text boundaries. Backreferences
// and lookaround are not supported.
//
// Parse is eager: a malformed pattern returns a *ParseError and no NFA.
func Parse(pattern string) (*NFA, error) {
	p := &parser{
		pattern: pattern,
		b:       NewBuilderWithCapacity(2*len(pattern) + 1),
	}

	frag, err := p.alternation()
	if err != nil {
		return nil, err
	}
	// A stray top-level ')' stops the parse; the remainder is ignored.

	accept := p.b.AddMatch()
	p.b.wire(frag.Out, accept)
	p.b.SetStart(frag.Start)
	return p.b.Build()
}

// parser is a recursive-descent parser over the pattern bytes.
// Precedence, low to high: alternation, concatenation, quantified, atom.
type parser struct {
	pattern string
	pos     int
	b       *Builder
}

func (p *parser) more() bool {
	return p.pos < len(p.pattern)
}

func (p *parser) peek() byte {
	return p.pattern[p.pos]
}

func (p *parser) fail(err error) error {
	return &ParseError{Pattern: p.pattern, Pos: p.pos, Err: err}
}

// alternation := concatenation ('|' concatenation)*
func (p *parser) alternation() (Fragment, error) {
	left, err := p.concatenation()
	if err != nil {
		return Fragment{}, err
	}

	for p.more() && p.peek() == '|' {
		p.pos++
		right, err := p.concatenation()
		if err != nil {
			return Fragment{}, err
		}

		// Split tries both operands; both dangling ends meet at a join.
		split := p.b.AddEpsilon(left.Start, right.Start)
		join := p.b.AddEpsilon(InvalidState, InvalidState)
		p.b.wire(left.Out, join)
		p.b.wire(right.Out, join)

		left = Fragment{Start: split, Out: []PatchSlot{{join, 0}}}
	}

	return left, nil
}

// concatenation := quantified*
func (p *parser) concatenation() (Fragment, error) {
	var result Fragment
	first := true

	for p.more() && p.peek() != '|' && p.peek() != ')' {
		atom, err := p.quantified()
		if err != nil {
			return Fragment{}, err
		}

		if first {
			result = atom
			first = false
			continue
		}
		p.b.wire(result.Out, atom.Start)
		result.Out = atom.Out
	}

	if first {
		// Empty operand ("", "a|", "()"): one epsilon matching the
		// empty string.
		eps := p.b.AddEpsilon(InvalidState, InvalidState)
		result = Fragment{Start: eps, Out: []PatchSlot{{eps, 0}}}
	}

	return result, nil
}

// quantified := atom ('*' | '+' | '?')?
func (p *parser) quantified() (Fragment, error) {
	base, err := p.atom()
	if err != nil {
		return Fragment{}, err
	}
	if !p.more() {
		return base, nil
	}

	switch p.peek() {
	case '*':
		p.pos++
		return p.star(base), nil
	case '+':
		p.pos++
		return p.plus(base), nil
	case '?':
		p.pos++
		return p.optional(base), nil
	}
	return base, nil
}

// atom := group | class | '.' | escape | anchor | literal
func (p *parser) atom() (Fragment, error) {
	if !p.more() {
		return Fragment{}, p.fail(ErrUnexpectedEnd)
	}

	switch c := p.peek(); c {
	case '(':
		p.pos++
		inner, err := p.alternation()
		if err != nil {
			return Fragment{}, err
		}
		if !p.more() || p.peek() != ')' {
			return Fragment{}, p.fail(ErrUnmatchedParen)
		}
		p.pos++
		return inner, nil

	case '[':
		return p.charClass()

	case '.':
		p.pos++
		return p.classAtom(AnyChar()), nil

	case '\\':
		p.pos++
		return p.escape()

	case '^', '$':
		// Anchors are accepted but carry no boundary semantics.
		p.pos++
		eps := p.b.AddEpsilon(InvalidState, InvalidState)
		return Fragment{Start: eps, Out: []PatchSlot{{eps, 0}}}, nil

	default:
		p.pos++
		return p.byteAtom(c), nil
	}
}

// charClass := '[' '^'? item* ']' where item is an escape, a range
// lo '-' hi, or a literal byte. A trailing '-' is a literal; an inverted
// range (lo > hi) contributes nothing.
func (p *parser) charClass() (Fragment, error) {
	p.pos++ // consume '['

	negated := false
	if p.more() && p.peek() == '^' {
		negated = true
		p.pos++
	}

	var set ByteSet
	for p.more() && p.peek() != ']' {
		c := p.pattern[p.pos]
		p.pos++

		switch {
		case c == '\\' && p.more():
			e := p.pattern[p.pos]
			p.pos++
			addClassEscape(&set, e)
		case p.pos+1 < len(p.pattern) && p.pattern[p.pos] == '-' && p.pattern[p.pos+1] != ']':
			p.pos++ // consume '-'
			hi := p.pattern[p.pos]
			p.pos++
			set.AddRange(c, hi)
		default:
			set.Add(c)
		}
	}

	if !p.more() {
		return Fragment{}, p.fail(ErrUnclosedClass)
	}
	p.pos++ // consume ']'

	if negated {
		set.Complement()
	}
	return p.classAtom(set), nil
}

// addClassEscape expands an escape inside a class. Only \d, \w and \s have
// class meaning here; anything else, including \D \W \S, is the literal
// escaped byte.
func addClassEscape(set *ByteSet, c byte) {
	switch c {
	case 'd':
		set.Union(Digit())
	case 'w':
		set.Union(Word())
	case 's':
		set.Union(Space())
	default:
		set.Add(c)
	}
}

// escape handles a backslash atom outside a class: the shorthand classes
// \d \D \w \W \s \S, otherwise the literal escaped byte.
func (p *parser) escape() (Fragment, error) {
	if !p.more() {
		return Fragment{}, p.fail(ErrTrailingEscape)
	}

	c := p.pattern[p.pos]
	p.pos++

	switch c {
	case 'd':
		return p.classAtom(Digit()), nil
	case 'D':
		return p.classAtom(negated(Digit())), nil
	case 'w':
		return p.classAtom(Word()), nil
	case 'W':
		return p.classAtom(negated(Word())), nil
	case 's':
		return p.classAtom(Space()), nil
	case 'S':
		return p.classAtom(negated(Space())), nil
	default:
		return p.byteAtom(c), nil
	}
}

// star wires a*: the split tries the body, the body loops back to the
// split, and the split's secondary slot dangles as the exit.
func (p *parser) star(inner Fragment) Fragment {
	split := p.b.AddEpsilon(inner.Start, InvalidState)
	p.b.wire(inner.Out, split)
	return Fragment{Start: split, Out: []PatchSlot{{split, 1}}}
}

// plus wires a+: like star, but entry runs the body once before reaching
// the split.
func (p *parser) plus(inner Fragment) Fragment {
	split := p.b.AddEpsilon(inner.Start, InvalidState)
	p.b.wire(inner.Out, split)
	return Fragment{Start: inner.Start, Out: []PatchSlot{{split, 1}}}
}

// optional wires a?: the split either enters the body or skips straight to
// the join.
func (p *parser) optional(inner Fragment) Fragment {
	split := p.b.AddEpsilon(inner.Start, InvalidState)
	join := p.b.AddEpsilon(InvalidState, InvalidState)
	p.b.wire([]PatchSlot{{split, 1}}, join)
	p.b.wire(inner.Out, join)
	return Fragment{Start: split, Out: []PatchSlot{{join, 0}}}
}

func (p *parser) byteAtom(c byte) Fragment {
	id := p.b.AddByte(c)
	return Fragment{Start: id, Out: []PatchSlot{{id, 0}}}
}

func (p *parser) classAtom(set ByteSet) Fragment {
	id := p.b.AddClass(set)
	return Fragment{Start: id, Out: []PatchSlot{{id, 0}}}
}

func negated(set ByteSet) ByteSet {
	set.Complement()
	return set
}
