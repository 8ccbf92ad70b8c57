package repair

import (
	"slices"

	"github.com/fwojciec/mpheader"
)

// catalog lists the repairs needed by the manual, in application order.
// Hoisting and define handling run first because the later patterns
// assume one definition per line.
var catalog = []mpheader.Rule{
	Func("hoist-types", HoistTypes),
	Func("normalize-defines", NormalizeDefines),
	Func("hoist-defines", HoistDefines),

	Literal("join-MAX_JOB_MOV_POS_NUM", "MAX_JOB_MOV_POS _NUM", "MAX_JOB_MOV_POS_NUM"),
	Literal("underscore-space", "_ ", "_"),
	Literal("struct-LONG-brace", "structLONG", "struct { LONG"),
	Literal("sToolNo", "sTool/No", "sToolNo"),
	Literal("pointer-period", "*.", "*"),
	Literal("MS_COORD", "MS_COORD", "MP_COORD"),
	Literal("px-py-pz", "ox, py, pz", "px, py, pz"),

	Regexp("missing-pointer-comma", `((?:const\s+)?\w+\s*\*\s*\w+)\s+((?:const\s+)?\w+\s*\*)`, "${1}, ${2}"),
	Regexp("reserved-suffix", `reserved (\d)`, "reserved${1}"),
	Regexp("missing-struct-brace", `typedef\s+struct\s+([^{\s])`, "typedef struct { ${1}"),
	Regexp("struct-id-comma", `typedef\s+struct\s*\{\s*int\s+id,`, "typedef struct { int id;"),
	Regexp("trailing-comma", `[;,]\s+\)`, ")"),
	Regexp("appinfo-close", `(CHAR\s+reserved\[36\];\s*)\};`, "${1}} MP_APPINFO_SEND_DATA;"),
	Regexp("rename-mpRsSend", `int\s+mpRsClose(\([^)]+buf_len\s+\);)`, "int mpRsSend${1}"),
	Regexp("rename-mpGetCartPosEx", `LONG\s+mpGetCartPos\s+(\(\s+MP_CARTPOS_EX[^)]+\);)`, "LONG mpGetCartPosEx${1}"),
	Regexp("remove-MP_COORD", `typedef\s+struct\s*\{[^}]+\}\s*MP_COORD\s*;`, ""),
	Regexp("remove-mpClose", `LONG\s+mpClose\([^)]+\)\s*;`, ""),

	Func("dedupe-definitions", DedupeDefinitions),
}

// DefaultCatalog returns the repairs needed by the manual, in application
// order.
func DefaultCatalog() []mpheader.Rule {
	return slices.Clone(catalog)
}

// NewDefaultEngine returns an Engine running DefaultCatalog.
func NewDefaultEngine() *Engine {
	return NewEngine(catalog...)
}
