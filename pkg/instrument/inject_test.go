package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smith-xyz/autologger/pkg/levels"
	"github.com/smith-xyz/autologger/pkg/logging"
	"github.com/smith-xyz/autologger/pkg/settings"
)

// function sum(a,b){ try { risky(); } catch(ex) { } }
func sumWithTry() (fn, catchClause *fakeLoc) {
	catchBody := block(1, 42)
	catchClause = &fakeLoc{catch: true, catchParam: "ex", body: catchBody}
	fnBody := block(1, 17, otherStmt("try { risky(); } catch (ex) {}"))
	fn = &fakeLoc{own: "sum", body: fnBody, params: []Param{{"a", true}, {"b", true}}}
	return fn, catchClause
}

func TestTryInject_FunctionAndCatch(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{})
	fn, catchClause := sumWithTry()

	assert.True(t, TryInject(fn, u))
	assert.True(t, TryInject(catchClause, u))

	assert.Equal(t, []string{
		`console.log("[file.js:1:17]", "sum")`,
		"try { risky(); } catch (ex) {}",
	}, fn.body.rendered())
	assert.Equal(t, []string{
		`console.error("[file.js:1:42]", "catchClause", ex)`,
	}, catchClause.body.rendered())
	assert.Equal(t, 2, u.Inserted)
}

func TestTryInject_Idempotent(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{})
	fn, _ := sumWithTry()

	assert.True(t, TryInject(fn, u))
	assert.False(t, TryInject(fn, u))

	assert.Len(t, fn.body.stmts, 2)
	assert.Equal(t, 1, u.Inserted)
}

func TestTryInject_PromiseCatch(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{})
	handler := &fakeLoc{
		arrow:  true,
		callee: "catch",
		inList: true,
		body:   block(17, 26, otherStmt("const x = 1")),
		params: []Param{{Name: "reason", Identifier: true}},
	}

	require.True(t, TryInject(handler, u))
	assert.Equal(t, `console.error("[file.js:17:26]", "memberExpressionCatch", reason)`, handler.body.rendered()[0])
}

func TestTryInject_Skips(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{})

	tests := []struct {
		name string
		loc  *fakeLoc
	}{
		{"no name", &fakeLoc{body: block(1, 1)}},
		{"no body", &fakeLoc{own: "declared"}},
		{"expression body", &fakeLoc{arrow: true, container: "inc", body: &fakeLoc{}}},
		{"no position", &fakeLoc{own: "synthetic", body: &fakeLoc{block: true}}},
		{"already logged", &fakeLoc{own: "done", body: block(1, 1,
			exprStmt{call{member{ident("console"), ident("info")}, []Node{lit("x")}}})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := 0
			if tt.loc.body != nil {
				before = len(tt.loc.body.stmts)
			}

			assert.False(t, TryInject(tt.loc, u))
			if tt.loc.body != nil {
				assert.Len(t, tt.loc.body.stmts, before)
			}
		})
	}
	assert.Equal(t, 0, u.Inserted)
}

func TestTryInject_NoMethod(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{LoggingData: &logging.Data{
		Levels: map[string]levels.Data{"log": {MatchSource: "nothing-matches-this"}},
	}})
	fn := &fakeLoc{own: "sum", body: block(1, 1)}

	assert.False(t, TryInject(fn, u))
	assert.Empty(t, fn.body.stmts)
}

func TestTryInject_OtherLoggerCallDoesNotCount(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{LoggingData: &logging.Data{Name: "myLogger", Source: "path/to/file"}})
	fn := &fakeLoc{own: "sum", body: block(1, 19, exprStmt{call{member{ident("console"), ident("log")}, nil}})}

	require.True(t, TryInject(fn, u))
	assert.Equal(t, `myLogger.log("[file.js:1:19]", "sum")`, fn.body.rendered()[0])
}

func TestTryInject_FunctionNameOverride(t *testing.T) {
	u := newUnit(t, "file.js", settings.Options{LoggingData: &logging.Data{
		Levels: map[string]levels.Data{
			"warn": {MatchFunctionName: "^sum$"},
			"log":  {MatchFunctionName: "^never$"},
		},
	}})

	sum := &fakeLoc{own: "sum", body: block(1, 1)}
	sub := &fakeLoc{own: "sub", body: block(5, 1)}

	assert.True(t, TryInject(sum, u))
	assert.False(t, TryInject(sub, u))
	assert.Equal(t, `console.warn("[file.js:1:1]", "sum")`, sum.body.rendered()[0])
}

func TestFunctionOrCatchEnter_Eligibility(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		opts     settings.Options
		loc      func() *fakeLoc
		want     bool
	}{
		{"included", "src/file.js", settings.Options{}, func() *fakeLoc { return &fakeLoc{own: "a", body: block(1, 1)} }, true},
		{"not a js file", "src/file.ts", settings.Options{}, func() *fakeLoc { return &fakeLoc{own: "a", body: block(1, 1)} }, false},
		{"excluded by default", "src/__tests__/file.js", settings.Options{}, func() *fakeLoc { return &fakeLoc{own: "a", body: block(1, 1)} }, false},
		{"excluded regardless of include", "src/__tests__/file.js", settings.Options{SourceMatcher: "__tests__"}, func() *fakeLoc { return &fakeLoc{own: "a", body: block(1, 1)} }, false},
		{"custom exclude", "src/legacy/file.js", settings.Options{SourceExcludeMatcher: []any{"legacy"}}, func() *fakeLoc { return &fakeLoc{own: "a", body: block(1, 1)} }, false},
		{"generated", "src/file.js", settings.Options{}, func() *fakeLoc { return &fakeLoc{own: "a", generated: true, body: block(1, 1)} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUnit(t, tt.filename, tt.opts)
			assert.Equal(t, tt.want, FunctionOrCatchEnter(tt.loc(), u))
		})
	}
}

func TestProgramEnter(t *testing.T) {
	custom := settings.Options{LoggingData: &logging.Data{Name: "myLogger", Source: "path/to/file"}}

	t.Run("adds import once", func(t *testing.T) {
		u := newUnit(t, "src/file.js", custom)
		p := &fakeProgram{stmts: []Node{otherStmt("function sum() {}")}}

		assert.True(t, ProgramEnter(p, u))
		assert.False(t, ProgramEnter(p, u))

		require.Len(t, p.stmts, 2)
		assert.Equal(t, `import myLogger from "path/to/file"`, render(p.stmts[0]))
	})

	t.Run("default logger", func(t *testing.T) {
		u := newUnit(t, "src/file.js", settings.Options{LoggingData: &logging.Data{Source: "ignored"}})
		p := &fakeProgram{}

		assert.False(t, ProgramEnter(p, u))
		assert.Empty(t, p.stmts)
	})

	t.Run("already bound", func(t *testing.T) {
		u := newUnit(t, "src/file.js", custom)
		p := &fakeProgram{bindings: map[string]bool{"myLogger": true}}

		assert.False(t, ProgramEnter(p, u))
		assert.Empty(t, p.stmts)
	})

	t.Run("no source", func(t *testing.T) {
		u := newUnit(t, "src/file.js", settings.Options{LoggingData: &logging.Data{Name: "myLogger"}})
		p := &fakeProgram{}

		assert.False(t, ProgramEnter(p, u))
	})

	t.Run("excluded file", func(t *testing.T) {
		u := newUnit(t, "node_modules/x/file.js", custom)
		p := &fakeProgram{}

		assert.False(t, ProgramEnter(p, u))
		assert.Empty(t, p.stmts)
	})
}

func TestNewUnit_SourceDefaultsToFilename(t *testing.T) {
	u := NewUnit("a/b.js", "", &settings.Settings{}, fakeFactory{})
	assert.Equal(t, "a/b.js", u.Source)

	u = NewUnit("/root/a/b.js", "a/b.js", &settings.Settings{}, fakeFactory{})
	assert.Equal(t, "a/b.js", u.Source)
}
