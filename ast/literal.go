package ast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"fortio.org/safecast"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Literal is a constant: unit, bool, int, float, length or string.
type Literal interface {
	literal()
}

type (
	UnitLiteral   struct{}
	BoolLiteral   bool
	IntLiteral    int32
	FloatLiteral  float64
	StringLiteral string
)

// Length is a number with a unit name such as 12pt. The unit set is open.
type Length struct {
	Value Ranged[float64]
	Unit  Ranged[string]
}

func (UnitLiteral) literal()   {}
func (BoolLiteral) literal()   {}
func (IntLiteral) literal()    {}
func (FloatLiteral) literal()  {}
func (StringLiteral) literal() {}
func (Length) literal()        {}

func lowerLiteral(span *cmn.Span) (Literal, error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.UNIT_CONST, cmn.BOOL_CONST, cmn.INT_CONST, cmn.FLOAT_CONST, cmn.LENGTH_CONST, cmn.STRING_CONST)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	return lowerLiteralConst(inner)
}

// lowerLiteralConst lowers one of the *_const spans directly.
func lowerLiteralConst(span *cmn.Span) (Literal, error) {
	switch span.Rule {
	case cmn.UNIT_CONST:
		return UnitLiteral{}, nil
	case cmn.BOOL_CONST:
		return lowerBool(span)
	case cmn.INT_CONST:
		return lowerInt(span)
	case cmn.FLOAT_CONST:
		return lowerFloat(span)
	case cmn.LENGTH_CONST:
		return lowerLength(span)
	case cmn.STRING_CONST:
		return lowerString(span)
	}

	return nil, violation(span, "not a literal")
}

func lowerBool(span *cmn.Span) (BoolLiteral, error) {
	switch span.Text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, violation(span, "invalid bool")
}

func lowerInt(span *cmn.Span) (IntLiteral, error) {
	c := childrenOf(span)
	digits, err := c.next(cmn.INT_HEX_CONST, cmn.INT_DECIMAL_CONST)
	if err != nil {
		return 0, err
	}
	if err := c.end(); err != nil {
		return 0, err
	}

	return decodeInt(digits)
}

func decodeInt(span *cmn.Span) (IntLiteral, error) {
	body, base := span.Text, 10
	if span.Rule == cmn.INT_HEX_CONST {
		body, base = span.Text[2:], 16
	}

	v, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newLoweringError(span, fmt.Errorf("%w: %s", ErrIntOverflow, span.Text))
		}
		return 0, violation(span, "invalid integer: %v", err)
	}
	n, err := safecast.Conv[int32](v)
	if err != nil {
		return 0, newLoweringError(span, fmt.Errorf("%w: %s", ErrIntOverflow, span.Text))
	}

	return IntLiteral(n), nil
}

func lowerFloat(span *cmn.Span) (FloatLiteral, error) {
	v, err := decodeFloat(span)
	return FloatLiteral(v), err
}

func decodeFloat(span *cmn.Span) (float64, error) {
	v, err := strconv.ParseFloat(span.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, violation(span, "invalid float: %v", err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, newLoweringError(span, fmt.Errorf("%w: %s", ErrNonFiniteFloat, span.Text))
	}

	return v, nil
}

func lowerLength(span *cmn.Span) (Length, error) {
	c := childrenOf(span)
	digit, err := c.next(cmn.LENGTH_DIGIT)
	if err != nil {
		return Length{}, err
	}
	unit, err := c.next(cmn.LENGTH_UNIT)
	if err != nil {
		return Length{}, err
	}
	value, err := decodeFloat(digit)
	if err != nil {
		return Length{}, err
	}

	return Length{
		Value: Wrap(value, digit),
		Unit:  rangedText(unit),
	}, nil
}

// lowerString decodes a backtick string. The body is trimmed on each side
// unless a # marker sits on that side.
func lowerString(span *cmn.Span) (StringLiteral, error) {
	c := childrenOf(span)
	omitLeading := c.optional(cmn.STRING_OMIT_SPACE_IDENTIFIER) != nil
	inner, err := c.next(cmn.STRING_INNER)
	if err != nil {
		return "", err
	}
	omitTrailing := c.optional(cmn.STRING_OMIT_SPACE_IDENTIFIER) != nil
	if err := c.end(); err != nil {
		return "", err
	}

	body := inner.Text
	if !omitLeading {
		body = strings.TrimLeftFunc(body, unicode.IsSpace)
	}
	if !omitTrailing {
		body = strings.TrimRightFunc(body, unicode.IsSpace)
	}

	return StringLiteral(body), nil
}
