package setup_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/setup"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

func env(values map[string]string) setup.Option {
	return setup.WithEnv(func(key string) (string, bool) {
		v, ok := values[key]

		return v, ok
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "help", err: fmt.Errorf("app: %w", clitree.ErrHelp), want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: &setup.ExitError{Code: 3}, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", setup.Exit(4, errors.New("boom"))), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, setup.ExitCode(tt.err))
		})
	}
}

func TestRun_Success(t *testing.T) {
	var errOut bytes.Buffer

	code := setup.Run(context.Background(), func(context.Context) error {
		return nil
	}, setup.WithErrorOutput(&errOut), env(nil))

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
}

func TestRun_Error(t *testing.T) {
	var errOut bytes.Buffer

	code := setup.Run(context.Background(), func(context.Context) error {
		return errors.New("something failed")
	}, setup.WithErrorOutput(&errOut), env(nil))

	assert.Equal(t, 1, code)
	assert.Equal(t, "ERROR: something failed\n", errOut.String())
}

func TestRun_Help(t *testing.T) {
	var errOut bytes.Buffer

	code := setup.Run(context.Background(), func(context.Context) error {
		return clitree.ErrHelp
	}, setup.WithErrorOutput(&errOut), env(nil))

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
}

func TestRun_SilentExitError(t *testing.T) {
	var errOut bytes.Buffer

	code := setup.Run(context.Background(), func(context.Context) error {
		return &setup.ExitError{Code: 2}
	}, setup.WithErrorOutput(&errOut), env(nil))

	assert.Equal(t, 2, code)
	assert.Empty(t, errOut.String())
}

func TestRun_DebugChain(t *testing.T) {
	var errOut bytes.Buffer
	root := errors.New("root cause")

	code := setup.Run(context.Background(), func(context.Context) error {
		return fmt.Errorf("load: %w", root)
	}, setup.WithErrorOutput(&errOut), env(map[string]string{"DEBUG": "1"}))

	assert.Equal(t, 1, code)
	out := errOut.String()
	assert.Contains(t, out, "ERROR: load: root cause\n")
	assert.Contains(t, out, "DEBUG: Error chain:\n*fmt.wrapError: load: root cause\n  *errors.errorString: root cause")
	assert.NotContains(t, out, "Stacktrace")

	errOut.Reset()
	setup.Run(context.Background(), func(context.Context) error {
		return root
	}, setup.WithErrorOutput(&errOut), env(map[string]string{"DEBUG": "1", "DEBUG_BACKTRACE": "1"}))
	assert.Contains(t, errOut.String(), "DEBUG: Stacktrace:\n")
}

func TestRun_Reporter(t *testing.T) {
	var out bytes.Buffer
	reporter := ui.New("app", ui.WithOutput(&out), ui.WithErrorOutput(&out), ui.WithColors(false), ui.WithDebug(true))

	code := setup.Run(context.Background(), func(context.Context) error {
		return errors.New("boom")
	}, setup.WithReporter(reporter), env(map[string]string{"DEBUG": "1"}))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[app]: [ERROR]: boom\n")
	assert.Contains(t, out.String(), "[app]: [DEBUG]: Error chain:\n*errors.errorString: boom\n")
}
