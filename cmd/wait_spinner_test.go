package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitSpinnerShowsElapsedOnlyForSlowReplies(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	model := newWaitSpinnerModel(waitLabel("fr"), nil, clock)

	now = now.Add(time.Second)
	updated, _ := model.Update(spinner.TickMsg{})
	model = updated.(waitSpinnerModel)
	assert.Contains(t, model.View(), "Réflexion en cours…")
	assert.NotContains(t, model.View(), "1s")

	now = now.Add(11 * time.Second)
	updated, _ = model.Update(spinner.TickMsg{})
	model = updated.(waitSpinnerModel)
	assert.Contains(t, model.View(), "Réflexion en cours… 12s")
}

func TestWaitSpinnerQuitsWithWorkError(t *testing.T) {
	t.Parallel()

	workErr := errors.New("boom")
	model := newWaitSpinnerModel(waitLabel("de"), nil, nil)
	assert.Equal(t, "Thinking…", model.label)

	updated, cmd := model.Update(waitDoneMsg{err: workErr})
	model = updated.(waitSpinnerModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, model.err, workErr)
	assert.Empty(t, model.View())
}
