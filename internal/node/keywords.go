package node

var keywords = map[string]Kind{
	"async":      KwAsync,
	"await":      KwAwait,
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"debugger":   KwDebugger,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"let":        KwLet,
	"new":        KwNew,
	"return":     KwReturn,
	"static":     KwStatic,
	"switch":     KwSwitch,
	"throw":      KwThrow,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,
	"yield":      KwYield,

	// Literal words lex as leaves, not keywords.
	"true":  TrueLit,
	"false": FalseLit,
	"null":  NullLit,
	"this":  This,
	"super": Super,
}

// LookupKeyword maps an identifier to its reserved-word or literal kind.
// Lookup is case-sensitive; only lowercase forms are reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
