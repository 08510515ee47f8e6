package node

import "strconv"

var kindNames = map[Kind]string{
	Ident:        "Ident",
	NumberLit:    "Number",
	StringLit:    "String",
	RegexLit:     "Regex",
	TemplateFull: "TemplateFull",
	TemplateHead: "TemplateHead",
	TemplateMid:  "TemplateMid",
	TemplateTail: "TemplateTail",
	TrueLit:      "True",
	FalseLit:     "False",
	NullLit:      "Null",
	This:         "This",
	Super:        "Super",

	KwAsync:      "async",
	KwAwait:      "await",
	KwBreak:      "break",
	KwCase:       "case",
	KwCatch:      "catch",
	KwClass:      "class",
	KwConst:      "const",
	KwContinue:   "continue",
	KwDebugger:   "debugger",
	KwDefault:    "default",
	KwDelete:     "delete",
	KwDo:         "do",
	KwElse:       "else",
	KwExport:     "export",
	KwExtends:    "extends",
	KwFinally:    "finally",
	KwFor:        "for",
	KwFunction:   "function",
	KwIf:         "if",
	KwImport:     "import",
	KwIn:         "in",
	KwInstanceof: "instanceof",
	KwLet:        "let",
	KwNew:        "new",
	KwReturn:     "return",
	KwStatic:     "static",
	KwSwitch:     "switch",
	KwThrow:      "throw",
	KwTry:        "try",
	KwTypeof:     "typeof",
	KwVar:        "var",
	KwVoid:       "void",
	KwWhile:      "while",
	KwWith:       "with",
	KwYield:      "yield",

	LBrace:           "{",
	RBrace:           "}",
	LParen:           "(",
	RParen:           ")",
	LBracket:         "[",
	RBracket:         "]",
	Semi:             ";",
	Comma:            ",",
	Colon:            ":",
	Dot:              ".",
	DotDotDot:        "...",
	Question:         "?",
	QuestionDot:      "?.",
	QuestionQuestion: "??",
	Arrow:            "=>",

	Plus:               "+",
	Minus:              "-",
	Star:               "*",
	Slash:              "/",
	Percent:            "%",
	StarStar:           "**",
	PlusPlus:           "++",
	MinusMinus:         "--",
	Lt:                 "<",
	Gt:                 ">",
	LtEq:               "<=",
	GtEq:               ">=",
	EqEq:               "==",
	EqEqEq:             "===",
	BangEq:             "!=",
	BangEqEq:           "!==",
	Shl:                "<<",
	Shr:                ">>",
	UShr:               ">>>",
	Amp:                "&",
	Pipe:               "|",
	Caret:              "^",
	Tilde:              "~",
	Bang:               "!",
	AmpAmp:             "&&",
	PipePipe:           "||",
	Eq:                 "=",
	PlusEq:             "+=",
	MinusEq:            "-=",
	StarEq:             "*=",
	SlashEq:            "/=",
	PercentEq:          "%=",
	StarStarEq:         "**=",
	ShlEq:              "<<=",
	ShrEq:              ">>=",
	UShrEq:             ">>>=",
	AmpEq:              "&=",
	PipeEq:             "|=",
	CaretEq:            "^=",
	AmpAmpEq:           "&&=",
	PipePipeEq:         "||=",
	QuestionQuestionEq: "??=",

	EOF: "EOF",

	Binary:    "Binary",
	Unary:     "Unary",
	Update:    "Update",
	Assign:    "Assign",
	Ternary:   "Ternary",
	Call:      "Call",
	New:       "New",
	Member:    "Member",
	Index:     "Index",
	Array:     "Array",
	Object:    "Object",
	FuncExpr:  "FuncExpr",
	ArrowFunc: "ArrowFunc",
	Sequence:  "Sequence",
	Spread:    "Spread",
	YieldExpr: "Yield",
	AwaitExpr: "Await",
	Template:  "Template",

	Block:    "Block",
	Empty:    "Empty",
	ExprStmt: "ExprStmt",
	If:       "If",
	While:    "While",
	DoWhile:  "DoWhile",
	For:      "For",
	ForIn:    "ForIn",
	ForOf:    "ForOf",
	Switch:   "Switch",
	Case:     "Case",
	Break:    "Break",
	Continue: "Continue",
	Return:   "Return",
	Throw:    "Throw",
	Try:      "Try",
	Catch:    "Catch",
	Debugger: "Debugger",
	With:     "With",
	Labeled:  "Labeled",

	VarDecl:    "VarDecl",
	Declarator: "Declarator",
	FuncDecl:   "FuncDecl",
	Class:      "Class",
	ClassBody:  "ClassBody",
	Method:     "Method",
	Property:   "Property",

	ArrayPattern:  "ArrayPattern",
	ObjectPattern: "ObjectPattern",
	Rest:          "Rest",
	AssignPattern: "AssignPattern",

	Import:     "Import",
	Export:     "Export",
	ImportSpec: "ImportSpec",
	ExportSpec: "ExportSpec",

	Program: "Program",
}

// String returns a stable human-readable name for dumps and diagnostics.
// Reserved kinds render as Kind(n).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
