package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name   string
		loc    *fakeLoc
		want   string
		wantOK bool
	}{
		{"catch clause wins over everything", &fakeLoc{catch: true, own: "fn"}, "catchClause", true},
		{"own identifier", &fakeLoc{own: "sum"}, "sum", true},
		{"own identifier before container", &fakeLoc{own: "fnName", container: "varName"}, "fnName", true},
		{"container identifier", &fakeLoc{container: "anonymousFnConst"}, "anonymousFnConst", true},
		{"container before assignment", &fakeLoc{container: "a", assignProp: "b"}, "a", true},
		{"assignment property", &fakeLoc{assignProp: "prop", assignIdent: "x"}, "prop", true},
		{"assignment identifier", &fakeLoc{assignIdent: "myFn"}, "myFn", true},
		{"assignment before own key", &fakeLoc{assignIdent: "a", ownKey: "b"}, "a", true},
		{"own key", &fakeLoc{ownKey: "keyFnAuto", parentKey: "x"}, "keyFnAuto", true},
		{"parent key", &fakeLoc{parentKey: "keyFnArrow", callee: "catch"}, "keyFnArrow", true},
		{"promise catch", &fakeLoc{callee: "catch", inList: true}, "memberExpressionCatch", true},
		{"other callee falls through to list index", &fakeLoc{callee: "then", inList: true, index: 0}, "array-item-0", true},
		{"list index", &fakeLoc{inList: true, index: 3}, "array-item-3", true},
		{"nothing", &fakeLoc{}, "", false},
		{"callee without list", &fakeLoc{callee: "map"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveName(tt.loc)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
