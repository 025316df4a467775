package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameDims is the fixed character grid of every frame.
var frameDims = GridDimensions{Width: 100, Height: 50}

// Model represents the Bubble Tea application model
type Model struct {
	plan       ZoomPlan
	dims       GridDimensions
	frameDelay time.Duration
	showHUD    bool
	clear      bool

	frame int      // index of the frame in lines
	lines []string // rendered glyph rows of the current frame
	done  bool
}

func InitialModel(cfg Config) Model {
	m := Model{
		plan: ZoomPlan{
			TargetZoom: cfg.Zoom,
			TargetDx:   cfg.Dx,
			TargetDy:   cfg.Dy,
			Frames:     cfg.Frames,
		},
		dims:       frameDims,
		frameDelay: time.Duration(cfg.FrameDelayMs) * time.Millisecond,
		showHUD:    cfg.HUD,
		clear:      cfg.Clear,
	}
	m.lines = Render(m.plan.WindowAt(0), m.dims)
	return m
}

type frameTickMsg time.Time

func (m *Model) frameTickCmd() tea.Cmd {
	return tea.Tick(m.frameDelay, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// nextFrameCmd clears the display, if enabled, and waits for the next frame.
func (m *Model) nextFrameCmd() tea.Cmd {
	if !m.clear {
		return m.frameTickCmd()
	}
	return tea.Batch(tea.ClearScreen, m.frameTickCmd())
}

func (m *Model) Init() tea.Cmd {
	return m.nextFrameCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}

	case frameTickMsg:
		if m.frame+1 >= m.plan.Frames {
			m.done = true
			return m, tea.Quit
		}
		m.frame++
		m.lines = Render(m.plan.WindowAt(m.frame), m.dims)
		return m, m.nextFrameCmd()
	}
	return m, nil
}

var hudStyle = lipgloss.NewStyle().Bold(true)

func (m *Model) View() string {
	frame := strings.Join(m.lines, "\n")
	if !m.showHUD {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, hudStyle.Render(m.status()))
}

func (m *Model) status() string {
	cx, cy := m.plan.CenterAt(m.frame)
	return fmt.Sprintf("frame %d/%d  zoom %.4g  center (%.6g, %.6g)",
		m.frame+1, m.plan.Frames, m.plan.ZoomAt(m.frame), cx, cy)
}
