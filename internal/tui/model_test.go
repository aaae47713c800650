package tui

import (
	"context"
	"strings"
	"testing"

	"animalbase/internal/domain/animals"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()

	svc := animals.NewService(animals.SourceFunc(func(context.Context) ([]animals.RawAnimal, error) {
		return []animals.RawAnimal{
			{Fullname: "Mandu the amazing cat", Age: 10},
			{Fullname: "Mia the black cat", Age: 8},
			{Fullname: "Leeroy the growing dog", Age: 3},
		}, nil
	}), nil)
	require.NoError(t, svc.Load(context.Background()))
	return New(context.Background(), svc)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestStarToggle(t *testing.T) {
	m := press(t, newModel(t), "s")
	require.True(t, m.snap.View[0].Star)

	m = press(t, m, "s")
	require.False(t, m.snap.View[0].Star)
}

func TestWinnerConflictDialog(t *testing.T) {
	m := press(t, newModel(t), "w", "down", "w")

	require.NotNil(t, m.conflict)
	require.Equal(t, animals.ConflictType, m.conflict.Kind)
	require.Contains(t, m.View(), "You can only have one winner of a type")
	require.Contains(t, m.View(), "Mandu the amazing cat")

	// quitar a Mandu desde el diálogo no promueve a Mia
	m = press(t, m, "1")
	require.Nil(t, m.conflict)
	for _, a := range m.snap.View {
		require.False(t, a.Winner, a.Name)
	}
}

func TestWinnerConflictDismiss(t *testing.T) {
	m := press(t, newModel(t), "w", "down", "w", "esc")

	require.Nil(t, m.conflict)
	require.True(t, m.snap.View[0].Winner)
	require.False(t, m.snap.View[1].Winner)
}

func TestFilterCycle(t *testing.T) {
	m := press(t, newModel(t), "f")
	require.Equal(t, "cat", m.snap.Filter)
	require.Len(t, m.snap.View, 2)

	m = press(t, m, "f")
	require.Equal(t, "dog", m.snap.Filter)
	require.Len(t, m.snap.View, 1)

	m = press(t, m, "f")
	require.Equal(t, animals.Wildcard, m.snap.Filter)
	require.Len(t, m.snap.View, 3)
}

func TestSortByAgeTogglesDirection(t *testing.T) {
	m := press(t, newModel(t), "4")
	require.Equal(t, "Mandu", m.snap.View[0].Name)
	require.Contains(t, m.status, "desc")

	m = press(t, m, "4")
	require.Equal(t, "Leeroy", m.snap.View[0].Name)
	require.Contains(t, m.status, "asc")
}

func TestCursorStaysInRange(t *testing.T) {
	m := press(t, newModel(t), "up", "down", "down", "down", "down")
	require.Equal(t, 2, m.cursor)

	m = press(t, m, "f", "f")
	require.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	_, cmd := newModel(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewLoadError(t *testing.T) {
	svc := animals.NewService(nil, nil)
	_ = svc.Load(context.Background())

	out := New(context.Background(), svc).View()
	require.Contains(t, out, "Could not load the animals")
	require.False(t, strings.Contains(out, "filter:"))
}

func TestTableMarksWinnersAndStars(t *testing.T) {
	view := []animals.Animal{
		{Name: "Mandu", Desc: "amazing", Type: "cat", Age: 10, Star: true, Winner: true},
		{Name: "Leeroy", Desc: "growing", Type: "dog", Age: 3},
	}
	out := Table(view, nil, -1)

	require.Equal(t, 1, strings.Count(out, starOn))
	require.Equal(t, 1, strings.Count(out, starOff))
	require.Equal(t, 1, strings.Count(out, trophyOn))
	require.Contains(t, out, "1 name ▼")
}

func TestStatusClearsOnNextAction(t *testing.T) {
	m := press(t, newModel(t), "4")
	require.NotEmpty(t, m.status)

	m = press(t, m, "s")
	require.Empty(t, m.status)
	require.NotContains(t, m.View(), "sorted by")
}

func TestReloadErrorClearsOnNextAction(t *testing.T) {
	calls := 0
	svc := animals.NewService(animals.SourceFunc(func(context.Context) ([]animals.RawAnimal, error) {
		calls++
		if calls == 2 {
			return nil, animals.ErrLoadFailed
		}
		return []animals.RawAnimal{{Fullname: "Mandu the amazing cat", Age: 10}}, nil
	}), nil)
	require.NoError(t, svc.Load(context.Background()))

	m := press(t, New(context.Background(), svc), "r")
	require.Contains(t, m.status, "load failed")

	m = press(t, m, "r")
	require.Equal(t, "reloaded", m.status)

	m = press(t, m, "s")
	require.Empty(t, m.status)
	require.True(t, m.snap.View[0].Star)
}
