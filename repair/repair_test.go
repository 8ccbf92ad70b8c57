package repair_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mpheader"
	"github.com/fwojciec/mpheader/repair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRule(t *testing.T, name string) mpheader.Rule {
	t.Helper()
	for _, r := range repair.DefaultCatalog() {
		if r.Name() == name {
			return r
		}
	}
	require.FailNow(t, "rule not in catalog", name)
	return nil
}

func TestEngine_Repair(t *testing.T) {
	t.Parallel()

	t.Run("applies rules in order", func(t *testing.T) {
		t.Parallel()

		e := repair.NewEngine(
			repair.Func("a", func(s string) string { return s + "a" }),
			repair.Func("b", func(s string) string { return s + "b" }),
		)

		assert.Equal(t, "ab", e.Repair(""))
	})

	t.Run("applies each rule once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := repair.NewEngine(repair.Func("count", func(s string) string {
			calls++
			return s
		}))

		e.Repair("int a;")

		assert.Equal(t, 1, calls)
	})

	t.Run("with no rules returns the text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "int a;", repair.NewEngine().Repair("int a;"))
	})
}

func TestEngine_Rules(t *testing.T) {
	t.Parallel()

	e := repair.NewEngine(repair.Literal("x", "a", "b"), repair.Literal("y", "c", "d"))

	rules := e.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "x", rules[0].Name())
	assert.Equal(t, "y", rules[1].Name())

	rules[0] = nil
	assert.NotNil(t, e.Rules()[0])
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	t.Run("repeats until no occurrence is left", func(t *testing.T) {
		t.Parallel()

		r := repair.Literal("underscore-space", "_ ", "_")

		assert.Equal(t, "MP_GRP", r.Apply("MP_"+strings.Repeat(" ", 20)+"GRP"))
	})
}

func TestRegexp(t *testing.T) {
	t.Parallel()

	t.Run("repeats until the pattern stops matching", func(t *testing.T) {
		t.Parallel()

		r := repair.Regexp("collapse", `aa`, "a")

		assert.Equal(t, "a", r.Apply(strings.Repeat("a", 40)))
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	t.Run("runs hoisting first and deduplication last", func(t *testing.T) {
		t.Parallel()

		rules := repair.DefaultCatalog()
		require.NotEmpty(t, rules)
		assert.Equal(t, "hoist-types", rules[0].Name())
		assert.Equal(t, "normalize-defines", rules[1].Name())
		assert.Equal(t, "hoist-defines", rules[2].Name())
		assert.Equal(t, "dedupe-definitions", rules[len(rules)-1].Name())
	})

	t.Run("has unique rule names", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for _, r := range repair.DefaultCatalog() {
			assert.False(t, seen[r.Name()], r.Name())
			seen[r.Name()] = true
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		rules := repair.DefaultCatalog()
		rules[0] = repair.Literal("replaced", "a", "b")

		assert.Equal(t, "hoist-types", repair.DefaultCatalog()[0].Name())
	})
}

func TestDefaultCatalog_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule string
		in   string
		want string
	}{
		{"join-MAX_JOB_MOV_POS_NUM", "LONG pos[MAX_JOB_MOV_POS _NUM];", "LONG pos[MAX_JOB_MOV_POS_NUM];"},
		{"underscore-space", "MP_ GRP_ NUM", "MP_GRP_NUM"},
		{"struct-LONG-brace", "typedef structLONG x; } FOO;", "typedef struct { LONG x; } FOO;"},
		{"sToolNo", "SHORT sTool/No;", "SHORT sToolNo;"},
		{"pointer-period", "MP_POS *.pos", "MP_POS *pos"},
		{"MS_COORD", "MS_COORD coord;", "MP_COORD coord;"},
		{"px-py-pz", "LONG ox, py, pz;", "LONG px, py, pz;"},
		{"missing-pointer-comma", "LONG mpFoo(\nMP_POS *pos MP_POS *base);", "LONG mpFoo(\nMP_POS *pos, MP_POS *base);"},
		{"missing-pointer-comma", "int f(A *a B *b C *c);", "int f(A *a, B *b, C *c);"},
		{"missing-pointer-comma", "int f(const A *a const B *b);", "int f(const A *a, const B *b);"},
		{"reserved-suffix", "UCHAR reserved 2;", "UCHAR reserved2;"},
		{"missing-struct-brace", "typedef struct LONG x; } FOO;", "typedef struct { LONG x; } FOO;"},
		{"missing-struct-brace", "typedef struct { LONG x; } FOO;", "typedef struct { LONG x; } FOO;"},
		{"struct-id-comma", "typedef struct { int id, LONG x; } FOO;", "typedef struct { int id; LONG x; } FOO;"},
		{"trailing-comma", "LONG mpFoo(\nint a, );", "LONG mpFoo(\nint a);"},
		{"trailing-comma", "LONG mpFoo(\nint a; , );", "LONG mpFoo(\nint a);"},
		{"appinfo-close", "typedef struct { CHAR reserved[36]; };", "typedef struct { CHAR reserved[36]; } MP_APPINFO_SEND_DATA;"},
		{"rename-mpRsSend", "int mpRsClose(\nint fd, char *buf, int buf_len );", "int mpRsSend(\nint fd, char *buf, int buf_len );"},
		{"rename-mpRsSend", "int mpRsClose(\nint fd);", "int mpRsClose(\nint fd);"},
		{"rename-mpGetCartPosEx", "LONG mpGetCartPos (\n MP_CARTPOS_EX_SEND_DATA *s);", "LONG mpGetCartPosEx(\n MP_CARTPOS_EX_SEND_DATA *s);"},
		{"remove-MP_COORD", "typedef struct { LONG x; } MP_COORD;int a;", "int a;"},
		{"remove-mpClose", "LONG mpClose(\nvoid);int a;", "int a;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.rule, func(t *testing.T) {
			t.Parallel()

			r := catalogRule(t, tt.rule)

			assert.Equal(t, tt.want, r.Apply(tt.in))
		})
	}
}

func TestHoistTypes(t *testing.T) {
	t.Parallel()

	t.Run("moves an allow-listed type ahead of its first use", func(t *testing.T) {
		t.Parallel()

		in := "LONG mpFoo(MP_POS *p);\ntypedef struct { LONG x; } MP_POS;\n"

		got := repair.HoistTypes(in)

		assert.Equal(t, "typedef struct { LONG x; } MP_POS;LONG mpFoo(MP_POS *p);\n\n", got)
	})

	t.Run("prepends in reverse order of discovery", func(t *testing.T) {
		t.Parallel()

		in := "int a;\ntypedef struct { int x; } MP_POS;\ntypedef enum { A } MP_INTP_TYPE;\n"

		got := repair.HoistTypes(in)

		assert.Equal(t, "typedef enum { A } MP_INTP_TYPE;typedef struct { int x; } MP_POS;int a;\n\n\n", got)
	})

	t.Run("hoists simple typedefs ahead of struct dirent", func(t *testing.T) {
		t.Parallel()

		in := "int a;\ntypedef int BOOL;\nstruct dirent { char d_name[32]; };\n"

		got := repair.HoistTypes(in)

		assert.Equal(t, "typedef int BOOL;struct dirent { char d_name[32]; };int a;\n\n\n", got)
	})

	t.Run("hoists a leading simple typedef above the types that use it", func(t *testing.T) {
		t.Parallel()

		in := "typedef LONG MP_AXIS;\nint mpFoo(void);\ntypedef struct { MP_AXIS a; } MP_POS;\n"

		got := repair.HoistTypes(in)

		assert.Equal(t, "typedef LONG MP_AXIS;typedef struct { MP_AXIS a; } MP_POS;\nint mpFoo(void);\n\n", got)
		assert.Equal(t, got, repair.HoistTypes(got))
	})

	t.Run("leaves other aggregates in place", func(t *testing.T) {
		t.Parallel()

		in := "int a;\ntypedef struct { int x; } OTHER;\n"

		assert.Equal(t, in, repair.HoistTypes(in))
	})

	t.Run("leaves definitions already at the top in place", func(t *testing.T) {
		t.Parallel()

		in := "#define N 1\ntypedef int BOOL;typedef struct { int x; } MP_POS;int a;"

		assert.Equal(t, in, repair.HoistTypes(in))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		in := "int a;\ntypedef int BOOL;\ntypedef struct { int x; } MP_POS;\nstruct dirent { char c; };\ntypedef union { int i; } DIR;\n"

		once := repair.HoistTypes(in)

		assert.Equal(t, once, repair.HoistTypes(once))
	})
}

func TestNormalizeDefines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"starts a new line and drops the semicolon", "int a;#define MAX_NUM  10;", "int a;\n#define MAX_NUM 10"},
		{"unwraps a parenthesised number", "#define MP_GRP_NUM (4)", "#define MP_GRP_NUM 4"},
		{"leaves a normal define alone", "int a;\n#define A 1\n", "int a;\n#define A 1\n"},
		{"collapses spacing after the keyword", "#define   B 2\n", "#define B 2\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, repair.NormalizeDefines(tt.in))
		})
	}
}

func TestHoistDefines(t *testing.T) {
	t.Parallel()

	t.Run("moves defines to the top keeping first occurrences in order", func(t *testing.T) {
		t.Parallel()

		in := "int a;\n#define A 1\nint b;\n#define B 2\n#define A 1\n"

		got := repair.HoistDefines(in)

		assert.Equal(t, "#define A 1\n#define B 2\nint a;\nint b;\n", got)
	})

	t.Run("keeps repeated non-define lines", func(t *testing.T) {
		t.Parallel()

		in := "int a;\nint a;\n"

		assert.Equal(t, in, repair.HoistDefines(in))
	})

	t.Run("keeps defines with different values", func(t *testing.T) {
		t.Parallel()

		in := "#define A 1\n#define A 2"

		assert.Equal(t, in, repair.HoistDefines(in))
	})
}

func TestDedupeDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("keeps the first of several tagged structs", func(t *testing.T) {
		t.Parallel()

		in := "struct Foo { int a; };\nint x;\nstruct Foo { long b; };\nstruct Foo { char c; };"

		got := repair.DedupeDefinitions(in)

		assert.Equal(t, "struct Foo { int a; };\nint x;\n\n", got)
	})

	t.Run("keeps the first typedef of a name", func(t *testing.T) {
		t.Parallel()

		in := "typedef struct { int a; } FOO;\ntypedef enum { X } FOO;"

		got := repair.DedupeDefinitions(in)

		assert.Equal(t, "typedef struct { int a; } FOO;\n", got)
	})

	t.Run("keeps distinct names", func(t *testing.T) {
		t.Parallel()

		in := "struct A { int a; };\nstruct B { int a; };\ntypedef struct { int a; } C;"

		assert.Equal(t, in, repair.DedupeDefinitions(in))
	})
}

func TestDefaultEngine(t *testing.T) {
	t.Parallel()

	body := strings.Join([]string{
		"LONG mpGetCartPos(",
		"MP_CTRL_GRP_SEND_DATA *sData, MP_CART_POS_RSP_DATA *rData);",
		"#define MP_GRP_NUM (4);",
		"typedef struct { MP_POS pos; } MP_GRP_POS_INFO;",
		"typedef struct { LONG data[8]; } MP_POS;",
		"typedef int BOOL;",
		"#define MP_GRP_NUM (4)",
		"struct Foo { int a; };",
		"struct Foo { int b; };",
		"LONG mpClose(",
		"void);",
		"",
	}, "\n")

	t.Run("produces the repaired header body", func(t *testing.T) {
		t.Parallel()

		got := repair.NewDefaultEngine().Repair(body)

		want := "#define MP_GRP_NUM 4\n" +
			"typedef int BOOL;" +
			"typedef struct { LONG data[8]; } MP_POS;" +
			"typedef struct { MP_POS pos; } MP_GRP_POS_INFO;" +
			"LONG mpGetCartPos(\n" +
			"MP_CTRL_GRP_SEND_DATA *sData, MP_CART_POS_RSP_DATA *rData);\n" +
			"\n\n\n" +
			"struct Foo { int a; };\n" +
			"\n\n"
		assert.Equal(t, want, got)
	})

	t.Run("places MP_POS before its first use", func(t *testing.T) {
		t.Parallel()

		got := repair.NewDefaultEngine().Repair(body)

		def := strings.Index(got, "} MP_POS;")
		use := strings.Index(got, "MP_POS pos;")
		require.GreaterOrEqual(t, def, 0)
		require.GreaterOrEqual(t, use, 0)
		assert.Less(t, def, use)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		e := repair.NewDefaultEngine()
		once := e.Repair(body)

		assert.Equal(t, once, e.Repair(once))
	})
}
