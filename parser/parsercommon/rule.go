package parsercommon

import "fmt"

// Rule identifies a grammar rule. Every concrete tree node carries the rule
// that produced it.
type Rule int

const (
	// EOI is reported when input remains after the start rule has matched.
	EOI Rule = iota

	PROGRAM
	HEADER_STAGE
	STAGE
	HEADERS
	HEADER
	HEADER_KIND
	PKG_NAME
	PREAMBLE

	// Statements
	STATEMENT
	LET_STMT
	LET_REC_STMT
	LET_REC_INNER
	LET_MUTABLE_STMT
	LET_INLINE_STMT
	LET_BLOCK_STMT
	LET_MATH_STMT
	OPEN_STMT
	BIND_STMT
	TYPE_STMT
	TYPE_INNER
	TYPE_VARIANT
	MODULE_STMT
	SIG_STMT
	SIG_TYPE_STMT
	SIG_VAL_STMT
	SIG_DIRECT_STMT
	STRUCT_STMT
	CONSTRAINT

	// Types
	TYPE_EXPR
	TYPE_ARROW
	TYPE_PROD
	TYPE_UNARY
	TYPE_APPLICATION
	TYPE_CMD
	TYPE_CMD_KIND
	TYPE_LIST
	TYPE_RECORD
	TYPE_RECORD_UNIT
	TYPE_PARAM
	TYPE_NAME

	// Expressions
	EXPR
	MATCH_EXPR
	MATCH_ARM
	MATCH_GUARD
	CTRL_IF
	CTRL_WHILE
	DYADIC_EXPR
	BIN_OPERATOR
	UNARY_OPERATOR_EXPR
	UNARY_OPERATOR
	VARIANT_CONSTRUCTOR
	VARIANT
	CONSTRUCTOR
	APPLICATION
	APP_OPTION
	APP_OMISSION
	RECORD_MEMBER
	UNARY
	BLOCK_TEXT
	HORIZONTAL_TEXT
	MATH_TEXT
	RECORD
	RECORD_INNER
	RECORD_UNIT
	LIST
	TUPLE
	EXPR_WITH_MOD
	MOD_VAR
	MODULE_NAME
	VAR
	VAR_PTN

	// Literals
	LITERAL
	UNIT_CONST
	BOOL_CONST
	INT_CONST
	INT_HEX_CONST
	INT_DECIMAL_CONST
	FLOAT_CONST
	LENGTH_CONST
	LENGTH_DIGIT
	LENGTH_UNIT
	STRING_CONST
	STRING_OMIT_SPACE_IDENTIFIER
	STRING_INNER

	// Patterns
	MATCH_PTN
	PAT_AS
	PAT_CONS
	PAT_VARIANT
	PATTERN
	PAT_LIST
	PAT_TUPLE
	PAT_WILDCARD

	// Vertical mode
	VERTICAL_MODE
	BLOCK_CMD
	BLOCK_CMD_NAME
	BLOCK_TEXT_EMBEDDING
	CMD_EXPR_ARG
	CMD_EXPR_OPTION
	CMD_TEXT_ARG

	// Horizontal mode
	HORIZONTAL_MODE
	HORIZONTAL_SINGLE
	HORIZONTAL_LIST
	HORIZONTAL_BULLET_LIST
	HORIZONTAL_BULLET
	HORIZONTAL_BULLET_STAR
	HORIZONTAL_ESCAPED_CHAR
	HORIZONTAL_SPECIAL_CHAR
	REGULAR_TEXT
	INLINE_CMD
	INLINE_CMD_NAME
	INLINE_TEXT_EMBEDDING

	// Math mode
	MATH_MODE
	MATH_SINGLE
	MATH_LIST
	MATH_TOKEN
	MATH_SUP
	MATH_SUB
	MATH_GROUP
	MATH_UNARY
	MATH_CMD
	MATH_CMD_NAME
	MATH_CMD_EXPR_ARG
	MATH_ESCAPED_CHAR
	MATH_SPECIAL_CHAR
	MATH_SYMBOL
	MATH_CHAR

	ruleCount
)

var ruleNames = [ruleCount]string{
	EOI:                          "EOI",
	PROGRAM:                      "program",
	HEADER_STAGE:                 "header_stage",
	STAGE:                        "stage",
	HEADERS:                      "headers",
	HEADER:                       "header",
	HEADER_KIND:                  "header_kind",
	PKG_NAME:                     "pkg_name",
	PREAMBLE:                     "preamble",
	STATEMENT:                    "statement",
	LET_STMT:                     "let_stmt",
	LET_REC_STMT:                 "let_rec_stmt",
	LET_REC_INNER:                "let_rec_inner",
	LET_MUTABLE_STMT:             "let_mutable_stmt",
	LET_INLINE_STMT:              "let_inline_stmt",
	LET_BLOCK_STMT:               "let_block_stmt",
	LET_MATH_STMT:                "let_math_stmt",
	OPEN_STMT:                    "open_stmt",
	BIND_STMT:                    "bind_stmt",
	TYPE_STMT:                    "type_stmt",
	TYPE_INNER:                   "type_inner",
	TYPE_VARIANT:                 "type_variant",
	MODULE_STMT:                  "module_stmt",
	SIG_STMT:                     "sig_stmt",
	SIG_TYPE_STMT:                "sig_type_stmt",
	SIG_VAL_STMT:                 "sig_val_stmt",
	SIG_DIRECT_STMT:              "sig_direct_stmt",
	STRUCT_STMT:                  "struct_stmt",
	CONSTRAINT:                   "constraint",
	TYPE_EXPR:                    "type_expr",
	TYPE_ARROW:                   "type_arrow",
	TYPE_PROD:                    "type_prod",
	TYPE_UNARY:                   "type_unary",
	TYPE_APPLICATION:             "type_application",
	TYPE_CMD:                     "type_cmd",
	TYPE_CMD_KIND:                "type_cmd_kind",
	TYPE_LIST:                    "type_list",
	TYPE_RECORD:                  "type_record",
	TYPE_RECORD_UNIT:             "type_record_unit",
	TYPE_PARAM:                   "type_param",
	TYPE_NAME:                    "type_name",
	EXPR:                         "expr",
	MATCH_EXPR:                   "match_expr",
	MATCH_ARM:                    "match_arm",
	MATCH_GUARD:                  "match_guard",
	CTRL_IF:                      "ctrl_if",
	CTRL_WHILE:                   "ctrl_while",
	DYADIC_EXPR:                  "dyadic_expr",
	BIN_OPERATOR:                 "bin_operator",
	UNARY_OPERATOR_EXPR:          "unary_operator_expr",
	UNARY_OPERATOR:               "unary_operator",
	VARIANT_CONSTRUCTOR:          "variant_constructor",
	VARIANT:                      "variant",
	CONSTRUCTOR:                  "constructor",
	APPLICATION:                  "application",
	APP_OPTION:                   "app_option",
	APP_OMISSION:                 "app_omission",
	RECORD_MEMBER:                "record_member",
	UNARY:                        "unary",
	BLOCK_TEXT:                   "block_text",
	HORIZONTAL_TEXT:              "horizontal_text",
	MATH_TEXT:                    "math_text",
	RECORD:                       "record",
	RECORD_INNER:                 "record_inner",
	RECORD_UNIT:                  "record_unit",
	LIST:                         "list",
	TUPLE:                        "tuple",
	EXPR_WITH_MOD:                "expr_with_mod",
	MOD_VAR:                      "mod_var",
	MODULE_NAME:                  "module_name",
	VAR:                          "var",
	VAR_PTN:                      "var_ptn",
	LITERAL:                      "literal",
	UNIT_CONST:                   "unit_const",
	BOOL_CONST:                   "bool_const",
	INT_CONST:                    "int_const",
	INT_HEX_CONST:                "int_hex_const",
	INT_DECIMAL_CONST:            "int_decimal_const",
	FLOAT_CONST:                  "float_const",
	LENGTH_CONST:                 "length_const",
	LENGTH_DIGIT:                 "length_digit",
	LENGTH_UNIT:                  "length_unit",
	STRING_CONST:                 "string_const",
	STRING_OMIT_SPACE_IDENTIFIER: "string_omit_space_identifier",
	STRING_INNER:                 "string_inner",
	MATCH_PTN:                    "match_ptn",
	PAT_AS:                       "pat_as",
	PAT_CONS:                     "pat_cons",
	PAT_VARIANT:                  "pat_variant",
	PATTERN:                      "pattern",
	PAT_LIST:                     "pat_list",
	PAT_TUPLE:                    "pat_tuple",
	PAT_WILDCARD:                 "pat_wildcard",
	VERTICAL_MODE:                "vertical_mode",
	BLOCK_CMD:                    "block_cmd",
	BLOCK_CMD_NAME:               "block_cmd_name",
	BLOCK_TEXT_EMBEDDING:         "block_text_embedding",
	CMD_EXPR_ARG:                 "cmd_expr_arg",
	CMD_EXPR_OPTION:              "cmd_expr_option",
	CMD_TEXT_ARG:                 "cmd_text_arg",
	HORIZONTAL_MODE:              "horizontal_mode",
	HORIZONTAL_SINGLE:            "horizontal_single",
	HORIZONTAL_LIST:              "horizontal_list",
	HORIZONTAL_BULLET_LIST:       "horizontal_bullet_list",
	HORIZONTAL_BULLET:            "horizontal_bullet",
	HORIZONTAL_BULLET_STAR:       "horizontal_bullet_star",
	HORIZONTAL_ESCAPED_CHAR:      "horizontal_escaped_char",
	HORIZONTAL_SPECIAL_CHAR:      "horizontal_special_char",
	REGULAR_TEXT:                 "regular_text",
	INLINE_CMD:                   "inline_cmd",
	INLINE_CMD_NAME:              "inline_cmd_name",
	INLINE_TEXT_EMBEDDING:        "inline_text_embedding",
	MATH_MODE:                    "math_mode",
	MATH_SINGLE:                  "math_single",
	MATH_LIST:                    "math_list",
	MATH_TOKEN:                   "math_token",
	MATH_SUP:                     "math_sup",
	MATH_SUB:                     "math_sub",
	MATH_GROUP:                   "math_group",
	MATH_UNARY:                   "math_unary",
	MATH_CMD:                     "math_cmd",
	MATH_CMD_NAME:                "math_cmd_name",
	MATH_CMD_EXPR_ARG:            "math_cmd_expr_arg",
	MATH_ESCAPED_CHAR:            "math_escaped_char",
	MATH_SPECIAL_CHAR:            "math_special_char",
	MATH_SYMBOL:                  "math_symbol",
	MATH_CHAR:                    "math_char",
}

// String returns the grammar name of the rule, e.g. "header_stage".
func (r Rule) String() string {
	if r < 0 || r >= ruleCount {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// RuleByName looks a rule up by its grammar name.
func RuleByName(name string) (Rule, bool) {
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), true
		}
	}

	return EOI, false
}

// Rules returns every rule in declaration order.
func Rules() []Rule {
	rules := make([]Rule, 0, ruleCount)
	for r := EOI; r < ruleCount; r++ {
		rules = append(rules, r)
	}

	return rules
}
