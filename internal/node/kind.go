package node

// Kind is the 8-bit discriminant of a node record. Values are partitioned into
// contiguous ranges so that classification is a single range check:
//
//	0-15    leaf literals (tokens that survive parsing as AST leaves)
//	16-55   reserved-word keywords
//	56-71   punctuation
//	72-126  operators
//	127     end of input
//	128-255 compound AST forms
//
// Numeric assignments are stable within a release: collaborators compiled
// separately depend on them, and dumps name kinds by value. Gaps inside each
// range are reserved for future kinds and must not be reused.
type Kind uint8

// Leaf literals (0-15). Emitted by the lexer, kept verbatim in the tree.
const (
	// Ident is an identifier.
	Ident Kind = iota
	// NumberLit is a numeric literal.
	NumberLit
	// StringLit is a single- or double-quoted string literal.
	StringLit
	// RegexLit is a regular-expression literal including flags.
	RegexLit
	// TemplateFull is a template literal with no substitutions: `abc`.
	TemplateFull
	// TemplateHead is the `abc${ prefix of a substituted template.
	TemplateHead
	// TemplateMid is a }abc${ middle fragment.
	TemplateMid
	// TemplateTail is the closing }abc` fragment.
	TemplateTail
	// TrueLit is the 'true' literal.
	TrueLit
	// FalseLit is the 'false' literal.
	FalseLit
	// NullLit is the 'null' literal.
	NullLit
	// This is the 'this' expression.
	This
	// Super is the 'super' expression.
	Super

	// 13-15 reserved
)

// Reserved-word keywords (16-55). Consumed by the parser; absent from the
// final tree except as flags on compound nodes.
const (
	KwAsync Kind = iota + 16 // async
	KwAwait                  // await
	KwBreak                  // break
	KwCase                   // case
	KwCatch                  // catch
	KwClass                  // class
	KwConst                  // const
	KwContinue               // continue
	KwDebugger               // debugger
	KwDefault                // default
	KwDelete                 // delete
	KwDo                     // do
	KwElse                   // else
	KwExport                 // export
	KwExtends                // extends
	KwFinally                // finally
	KwFor                    // for
	KwFunction               // function
	KwIf                     // if
	KwImport                 // import
	KwIn                     // in
	KwInstanceof             // instanceof
	KwLet                    // let
	KwNew                    // new
	KwReturn                 // return
	KwStatic                 // static
	KwSwitch                 // switch
	KwThrow                  // throw
	KwTry                    // try
	KwTypeof                 // typeof
	KwVar                    // var
	KwVoid                   // void
	KwWhile                  // while
	KwWith                   // with
	KwYield                  // yield

	// 51-55 reserved
)

// Punctuation (56-71). Always consumed by the parser.
const (
	LBrace           Kind = iota + 56 // {
	RBrace                            // }
	LParen                            // (
	RParen                            // )
	LBracket                          // [
	RBracket                          // ]
	Semi                              // ;
	Comma                             // ,
	Colon                             // :
	Dot                               // .
	DotDotDot                         // ...
	Question                          // ?
	QuestionDot                       // ?.
	QuestionQuestion                  // ??
	Arrow                             // =>

	// 71 reserved
)

// Operators (72-126). Appear in the token stream and are copied into the Op
// field of Binary/Unary/Update/Assign compounds.
const (
	Plus               Kind = iota + 72 // +
	Minus                               // -
	Star                                // *
	Slash                               // /
	Percent                             // %
	StarStar                            // **
	PlusPlus                            // ++
	MinusMinus                          // --
	Lt                                  // <
	Gt                                  // >
	LtEq                                // <=
	GtEq                                // >=
	EqEq                                // ==
	EqEqEq                              // ===
	BangEq                              // !=
	BangEqEq                            // !==
	Shl                                 // <<
	Shr                                 // >>
	UShr                                // >>>
	Amp                                 // &
	Pipe                                // |
	Caret                               // ^
	Tilde                               // ~
	Bang                                // !
	AmpAmp                              // &&
	PipePipe                            // ||
	Eq                                  // =
	PlusEq                              // +=
	MinusEq                             // -=
	StarEq                              // *=
	SlashEq                             // /=
	PercentEq                           // %=
	StarStarEq                          // **=
	ShlEq                               // <<=
	ShrEq                               // >>=
	UShrEq                              // >>>=
	AmpEq                               // &=
	PipeEq                              // |=
	CaretEq                             // ^=
	AmpAmpEq                            // &&=
	PipePipeEq                          // ||=
	QuestionQuestionEq                  // ??=

	// 114-126 reserved
)

// EOF marks the end of the token stream. Exactly one per source unit.
const EOF Kind = 127

// Compound AST forms (128-255). Produced by the parser; Data slots carry
// indices of earlier records in the same arena.
const (
	Binary   Kind = iota + 128 // Op=operator, Data=lhs,rhs
	Unary                      // Op=operator, Data[0]=operand
	Update                     // Op=++/--, Data[0]=operand, Data[1]=1 if prefix
	Assign                     // Op=assignment operator, Data=target,value
	Ternary                    // Data[0]=cond, Data[1]=first consequent slot
	Call                       // Data[0]=callee, Data[1]=argument list
	New                        // Data[0]=callee, Data[1]=argument list
	Member                     // Data[0]=object, Data[1]=property leaf
	Index                      // Data[0]=object, Data[1]=index expression
	Array
	Object
	FuncExpr
	ArrowFunc
	Sequence
	Spread
	YieldExpr
	AwaitExpr
	Template

	Block
	Empty
	ExprStmt
	If
	While
	DoWhile
	For
	ForIn
	ForOf
	Switch
	Case
	Break
	Continue
	Return
	Throw
	Try
	Catch
	Debugger
	With
	Labeled

	VarDecl
	Declarator
	FuncDecl
	Class
	ClassBody
	Method
	Property

	ArrayPattern
	ObjectPattern
	Rest
	AssignPattern

	Import
	Export
	ImportSpec
	ExportSpec

	Program
)

// KindCount is one past the highest assigned kind.
const KindCount = Program + 1

// Range boundaries behind the classification predicates.
const (
	leafEnd       Kind = 16
	keywordEnd    Kind = 56
	punctEnd      Kind = 72
	operatorEnd   Kind = 127
	compoundStart Kind = 128
)

// IsLeaf reports whether k is a leaf literal (a token that is also a valid
// AST leaf).
func (k Kind) IsLeaf() bool { return k < leafEnd }

// IsKeyword reports whether k is a reserved-word keyword.
func (k Kind) IsKeyword() bool { return k >= leafEnd && k < keywordEnd }

// IsPunct reports whether k is punctuation.
func (k Kind) IsPunct() bool { return k >= keywordEnd && k < punctEnd }

// IsOperator reports whether k is an operator. EOF is not an operator.
func (k Kind) IsOperator() bool { return k >= punctEnd && k < operatorEnd }

// IsToken reports whether k is produced by the lexer.
func (k Kind) IsToken() bool { return k <= EOF }

// IsCompound reports whether k is a parser-produced compound form.
func (k Kind) IsCompound() bool { return k >= compoundStart }
