package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/templexp"
)

func TestExpandWith_ParameterExpansion(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
		errMsg   string
	}{
		{name: "plain text untouched", template: "no vars here", want: "no vars here"},
		{name: "basic expansion", template: `log=${LEVEL}`, want: "log=debug"},
		{name: "missing expands to empty", template: `x=${MISSING}`, want: "x="},
		{name: "colon fallback treats empty as unset", template: `${EMPTY:-fallback}`, want: "fallback"},
		{name: "fallback without colon keeps empty", template: `x=${EMPTY-fallback}`, want: "x="},
		{name: "alternate when set", template: `${LEVEL:+verbose}`, want: "verbose"},
		{name: "alternate when empty", template: `[${EMPTY:+verbose}]`, want: "[]"},
		{name: "nested fallback", template: `${MISSING:-${LEVEL}}`, want: "debug"},
		{name: "assignment visible later", template: `${NEW:=value}-${NEW}`, want: "value-value"},
		{name: "literal dollar", template: `$$${LEVEL}`, want: "$debug"},
		{name: "bare dollar kept", template: `cost $5`, want: "cost $5"},
		{name: "unknown expression kept", template: `${1abc}`, want: "${1abc}"},
		{name: "unterminated kept", template: `${LEVEL`, want: "${LEVEL"},
		{name: "required missing", template: `${MISSING:?config dir required}`, errMsg: "config dir required"},
		{name: "required default message", template: `${MISSING?}`, errMsg: "parameter null or not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := templexp.Vars{"LEVEL": "debug", "EMPTY": ""}
			got, err := templexp.ExpandWith(tt.template, vars)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandWith_AssignmentStaysLocal(t *testing.T) {
	vars := templexp.Vars{}
	_, err := templexp.ExpandWith(`${MODEL:=gpt-4}`, vars)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", vars["MODEL"], "赋值写回变量表")

	got, err := templexp.ExpandWith(`${MODEL}`, nil)
	require.NoError(t, err)
	assert.Empty(t, got, "nil 变量表不共享之前的赋值")
}

func TestExpandTemplate_UsesEnvironment(t *testing.T) {
	t.Setenv("CLIKIT_TEMPLEXP_NAME", "from-env")

	got, err := templexp.ExpandTemplate(`{"name": "${CLIKIT_TEMPLEXP_NAME:-fallback}", "port": ${CLIKIT_TEMPLEXP_PORT:-80}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "from-env", "port": 80}`, got)
}
