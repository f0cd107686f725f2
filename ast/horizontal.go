package ast

import (
	"unicode/utf8"

	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Horizontal is inline mode content: a single run, a | list of runs or a
// bullet list.
type Horizontal interface {
	horizontal()
}

type HorizontalSingle struct {
	Tokens []Ranged[HorizontalToken]
}

// HorizontalList is | run | run |.
type HorizontalList struct {
	Runs []Ranged[HorizontalSingle]
}

type HorizontalBullets struct {
	Items []Ranged[BulletItem]
}

// BulletItem is one * item. Depth is the number of stars.
type BulletItem struct {
	Depth int
	Run   Ranged[HorizontalSingle]
}

func (HorizontalSingle) horizontal()  {}
func (HorizontalList) horizontal()    {}
func (HorizontalBullets) horizontal() {}

// HorizontalToken is one element of a run.
type HorizontalToken interface {
	horizontalToken()
}

// Text is raw inline text, kept as written including spaces.
type Text string

// EscapedChar is a backslash escaped special character, without the
// backslash.
type EscapedChar string

// InlineCmd is a \command invocation. Name keeps the \ prefix and any module.
type InlineCmd struct {
	Name   Ranged[string]
	Module *Ranged[string]
	Opts   []Ranged[CmdOption]
	Args   []Ranged[CmdArg]
}

type InlineTextEmbedding struct {
	Module *Ranged[string]
	Var    Ranged[string]
}

// InlineMath is ${...} inside inline text.
type InlineMath struct {
	Math Math
}

type InlineString string

func (Text) horizontalToken()                {}
func (EscapedChar) horizontalToken()         {}
func (InlineCmd) horizontalToken()           {}
func (InlineTextEmbedding) horizontalToken() {}
func (InlineMath) horizontalToken()          {}
func (InlineString) horizontalToken()        {}

func lowerHorizontal(span *cmn.Span) (Horizontal, error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.HORIZONTAL_SINGLE, cmn.HORIZONTAL_LIST, cmn.HORIZONTAL_BULLET_LIST)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	switch inner.Rule {
	case cmn.HORIZONTAL_SINGLE:
		return lowerHorizontalSingle(inner)
	case cmn.HORIZONTAL_LIST:
		ic := childrenOf(inner)
		runs, err := lowerEach(ic.all(cmn.HORIZONTAL_SINGLE), lowerHorizontalSingle)
		if err != nil {
			return nil, err
		}
		return HorizontalList{Runs: runs}, ic.end()
	default:
		ic := childrenOf(inner)
		items, err := lowerEach(ic.all(cmn.HORIZONTAL_BULLET), lowerBulletItem)
		if err != nil {
			return nil, err
		}
		return HorizontalBullets{Items: items}, ic.end()
	}
}

func lowerHorizontalSingle(span *cmn.Span) (HorizontalSingle, error) {
	c := childrenOf(span)
	tokens, err := lowerEach(c.all(
		cmn.STRING_CONST,
		cmn.INLINE_CMD,
		cmn.HORIZONTAL_ESCAPED_CHAR,
		cmn.INLINE_TEXT_EMBEDDING,
		cmn.MATH_TEXT,
		cmn.REGULAR_TEXT,
	), lowerHorizontalToken)
	if err != nil {
		return HorizontalSingle{}, err
	}

	return HorizontalSingle{Tokens: tokens}, c.end()
}

func lowerBulletItem(span *cmn.Span) (BulletItem, error) {
	c := childrenOf(span)
	stars, err := c.next(cmn.HORIZONTAL_BULLET_STAR)
	if err != nil {
		return BulletItem{}, err
	}
	run, err := c.next(cmn.HORIZONTAL_SINGLE)
	if err != nil {
		return BulletItem{}, err
	}
	lowered, err := lowerRanged(run, lowerHorizontalSingle)
	if err != nil {
		return BulletItem{}, err
	}

	return BulletItem{Depth: utf8.RuneCountInString(stars.Text), Run: lowered}, c.end()
}

func lowerHorizontalToken(span *cmn.Span) (HorizontalToken, error) {
	switch span.Rule {
	case cmn.REGULAR_TEXT:
		return Text(span.Text), nil
	case cmn.HORIZONTAL_ESCAPED_CHAR:
		char, err := childrenOf(span).next(cmn.HORIZONTAL_SPECIAL_CHAR)
		if err != nil {
			return nil, err
		}
		return EscapedChar(char.Text), nil
	case cmn.INLINE_CMD:
		name, module, opts, args, err := lowerCommand(span, cmn.INLINE_CMD_NAME)
		return InlineCmd{Name: name, Module: module, Opts: opts, Args: args}, err
	case cmn.INLINE_TEXT_EMBEDDING:
		module, v, err := lowerEmbedding(span)
		return InlineTextEmbedding{Module: module, Var: v}, err
	case cmn.MATH_TEXT:
		mode, err := childrenOf(span).next(cmn.MATH_MODE)
		if err != nil {
			return nil, err
		}
		m, err := lowerMath(mode)
		return InlineMath{Math: m}, err
	case cmn.STRING_CONST:
		s, err := lowerString(span)
		return InlineString(s), err
	}

	return nil, violation(span, "not a horizontal token")
}
