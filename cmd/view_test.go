package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minipack.dev/pkg/minipack/internal/domain"
	domainmocks "minipack.dev/pkg/minipack/internal/domain/mocks"
	m "minipack.dev/pkg/minipack/internal/model"
)

func TestViewCmd_PassesInputFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withMockedWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Input: m.Path("graph.json")}).Return(nil).Once()

	cmd.SetArgs([]string{"view", "graph.json"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withMockedWorkflow(t, mockWorkflow)

	for _, args := range [][]string{{"view"}, {"view", "a.json", "b.json"}} {
		cmd := newRootCmd()
		cmd.AddCommand(newViewCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		cmd.SetArgs(args)
		require.Error(t, cmd.Execute())
	}
}

func TestViewCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withMockedWorkflow(t, mockWorkflow)
	loadErr := errors.New("invalid graph in graph.json")

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(loadErr).Once()

	cmd.SetArgs([]string{"view", "graph.json"})
	err := cmd.Execute()
	require.ErrorIs(t, err, loadErr)
}
