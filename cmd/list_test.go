package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cloak.dev/pkg/cloak/internal/controller"
	"cloak.dev/pkg/cloak/internal/domain"
	domainmocks "cloak.dev/pkg/cloak/internal/domain/mocks"
	m "cloak.dev/pkg/cloak/internal/model"
)

func TestListCmd(t *testing.T) {
	mockEngine := domainmocks.NewMockEngine(t)
	swapEngine(t, mockEngine)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	swapUI(t, controller.NewSimpleUI(cmd))

	mockEngine.On("Inspect", mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.Input == m.Path("app.jar") && args.Policy.Enabled("fields")
	})).Return([]m.UnitReport{
		{Name: "com/example/Main", Super: "java/lang/Object", Methods: 2, Transformers: []string{"fields", "methods"}},
	}, nil)

	cmd.SetArgs(testArgs(t, "list", "app.jar"))
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "com/example/Main")
	assert.Contains(t, output.String(), "fields,methods")

	mockEngine.AssertExpectations(t)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list INPUT", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
}
