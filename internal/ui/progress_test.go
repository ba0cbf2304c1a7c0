package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safefloat/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("scan", "/src", files, nil).(*progressModel)
}

func TestApplyEventTracksFiles(t *testing.T) {
	m := newTestModel("/src/a.go", "/src/pkg/b.go")

	m.applyEvent(driver.Event{File: "/src/a.go", Stage: driver.StageParse, Status: driver.StatusWorking})
	assert.Equal(t, "parsing", m.items[0].status)
	assert.InDelta(t, 0.15, m.percent(), 1e-9)

	m.applyEvent(driver.Event{File: "/src/a.go", Stage: driver.StageCheck, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "/src/pkg/b.go", Stage: driver.StageCheck, Status: driver.StatusError, Cached: true})
	assert.Equal(t, "done", m.items[0].status)
	assert.Equal(t, "error", m.items[1].status)
	assert.True(t, m.items[1].cached)
	assert.InDelta(t, 1.0, m.percent(), 1e-9)

	// unknown files are ignored
	assert.Nil(t, m.applyEvent(driver.Event{File: "/elsewhere.go", Status: driver.StatusDone}))
}

func TestApplyEventRunLabel(t *testing.T) {
	m := newTestModel("/src/a.go")
	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusWorking})
	assert.Equal(t, "parsing", m.stageLabel)
}

func TestViewListsRelativeNames(t *testing.T) {
	m := newTestModel("/src/a.go", "/src/pkg/b.go", "/other/c.go")
	m.applyEvent(driver.Event{File: "/src/pkg/b.go", Stage: driver.StageCheck, Status: driver.StatusDone, Cached: true})
	m.done = true

	view := m.View()
	assert.Contains(t, view, "done: scan")
	assert.Contains(t, view, " a.go")
	assert.Contains(t, view, " pkg/b.go")
	assert.Contains(t, view, "/other/c.go")
	assert.Contains(t, view, "done*")
}

func TestViewEmpty(t *testing.T) {
	assert.Empty(t, newTestModel().View())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdefghij", 2))
}
