package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cloak.dev/pkg/cloak/internal/controller"
	"cloak.dev/pkg/cloak/internal/domain"
	domainmocks "cloak.dev/pkg/cloak/internal/domain/mocks"
	m "cloak.dev/pkg/cloak/internal/model"
)

func swapEngine(t *testing.T, replacement domain.Engine) {
	t.Helper()

	originalEngine := engine
	engine = replacement

	t.Cleanup(func() { engine = originalEngine })
}

func swapUI(t *testing.T, replacement controller.UI) {
	t.Helper()

	originalUI := ui
	ui = replacement

	t.Cleanup(func() { ui = originalUI })
}

func TestObfuscateCmd_Defaults(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	swapEngine(t, mockEngine)

	cmd := newRootCmd()
	cmd.AddCommand(newObfuscateCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	swapUI(t, controller.NewSimpleUI(cmd))

	mockEngine.On("Obfuscate", mock.Anything, mock.MatchedBy(func(args domain.ObfuscateArgs) bool {
		return args.Input == m.Path("build/app.jar") &&
			args.Output == m.Path("build/app-obf.jar") &&
			args.Mapping == "" &&
			args.Threads == 1 &&
			args.Policy.Enabled("strings") &&
			args.Policy.Transformer("methods").Order == 2
	})).Return(m.RunSummary{RunID: "run-42", Applied: []string{"marker", "fields"}}, nil)

	cmd.SetArgs(testArgs(t, "obfuscate", "build/app.jar"))
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "run-42")
	assert.Contains(t, output.String(), "marker, fields")

	mockEngine.AssertExpectations(t)
}

func TestObfuscateCmd_Flags(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	swapEngine(t, mockEngine)

	cmd := newRootCmd()
	cmd.AddCommand(newObfuscateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	swapUI(t, controller.NewSimpleUI(cmd))

	mockEngine.On("Obfuscate", mock.Anything, mock.MatchedBy(func(args domain.ObfuscateArgs) bool {
		return args.Output == m.Path("out.jar") &&
			args.Mapping == m.Path("mapping.yaml") &&
			args.Threads == 4 &&
			len(args.Policy.Libraries) == 2 &&
			args.Policy.Libraries[0] == m.Path("libs") &&
			args.Policy.Libraries[1] == m.Path("extra.jar")
	})).Return(m.RunSummary{}, nil)

	cmd.SetArgs(testArgs(t, "obfuscate", "-o", "out.jar", "--mapping", "mapping.yaml", "-p", "4", "--libs", "libs", "--libs", "extra.jar", "in.jar"))
	err := cmd.Execute()
	require.NoError(t, err)

	mockEngine.AssertExpectations(t)
}

func TestObfuscateCmd_PropagatesFailure(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	swapEngine(t, mockEngine)

	cmd := newRootCmd()
	cmd.AddCommand(newObfuscateCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	swapUI(t, controller.NewSimpleUI(cmd))

	failure := &domain.TransformError{Transformer: "strings", Err: errors.New("decoder name taken")}
	mockEngine.On("Obfuscate", mock.Anything, mock.Anything).Return(m.RunSummary{}, failure)

	cmd.SetArgs(testArgs(t, "obfuscate", "in.jar"))
	err := cmd.Execute()
	require.Error(t, err)

	var transformErr *domain.TransformError
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, "strings", transformErr.Transformer)
	assert.NotContains(t, output.String(), "Encrypted strings")
}

func TestObfuscateCmd_RequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newObfuscateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs(testArgs(t, "obfuscate"))
	require.Error(t, cmd.Execute())
}

func TestNewObfuscateCmd(t *testing.T) {
	cmd := newObfuscateCmd()

	assert.Equal(t, "obfuscate INPUT", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, obfuscateLongDescription, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup(outputFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(runParallelFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(librariesFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(mappingFlagName))
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input m.Path
		want  m.Path
	}{
		{"app.jar", "app-obf.jar"},
		{"build/app.jar", "build/app-obf.jar"},
		{"archive", "archive-obf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, defaultOutputPath(tt.input))
		})
	}
}
