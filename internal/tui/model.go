// Package tui provides an interactive terminal session for classifying waste.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode says what the text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputSamplePath
	inputListing
)

// Model holds the TUI state for one classification session.
type Model struct {
	ctx      context.Context
	session  *session.Session
	market   *marketplace.Market
	lastErr  error
	listing  *model.Listing
	keymap   KeyMap
	status   string
	help     help.Model
	input    textinput.Model
	spinner  spinner.Model
	mode     inputMode
	width    int
	quitting bool
	// classifying is set when a classify command is dispatched, before the
	// session itself reports StateClassifying.
	classifying bool
}

// NewModel creates a model driving sess. market may be nil, which disables listing.
func NewModel(ctx context.Context, sess *session.Session, market *marketplace.Market) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		ctx:     ctx,
		session: sess,
		market:  market,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		input:   ti,
		spinner: s,
		status:  "Press o to open a photo of your waste item.",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)

	case sampleLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.listing = nil
		m.status = fmt.Sprintf("Loaded %s. Press c to classify.", msg.name)
		return m, nil

	case classifiedMsg:
		return m.handleClassified(msg), nil

	case listedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.listing = msg.listing
		m.status = fmt.Sprintf("Listed %.1f kg of %s at ₹%.0f/kg.", msg.listing.WeightKg, msg.listing.Material, msg.listing.PricePerKg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Open):
		if m.classifying || m.session.State() == session.StateClassifying {
			m.lastErr = session.ErrClassificationInFlight
			return m, nil
		}
		return m.startInput(inputSamplePath, "path/to/photo.jpg"), textinput.Blink

	case key.Matches(msg, m.keymap.Classify):
		if m.classifying {
			return m, nil
		}
		switch m.session.State() {
		case session.StateIdle:
			m.lastErr = session.ErrNoSample
			return m, nil
		case session.StateClassifying, session.StateClassified:
			return m, nil
		}
		m.lastErr = nil
		m.classifying = true
		m.status = "Analyzing with AI..."
		return m, tea.Batch(classifyCmd(m.ctx, m.session), m.spinner.Tick)

	case key.Matches(msg, m.keymap.Reset):
		m.session.Reset()
		m.classifying = false
		m.lastErr = nil
		m.listing = nil
		m.status = "Session reset. Press o to open another photo."
		return m, nil

	case key.Matches(msg, m.keymap.Sell):
		return m.beginListing()
	}

	return m, nil
}

func (m Model) handleClassified(msg classifiedMsg) Model {
	if errors.Is(msg.err, common.ErrStaleResult) {
		// The session moved on while this was running.
		return m
	}
	m.classifying = false
	if msg.err != nil {
		m.lastErr = msg.err
		if common.IsRetryable(msg.err) {
			m.status = "Classification failed. Press c to try again."
		}
		return m
	}

	m.lastErr = nil
	if best := msg.result.BestAction(); best != nil {
		m.status = fmt.Sprintf("Best option: %s.", best.Title)
	}
	if _, ok := msg.result.Actions.Sell(); ok && m.market != nil {
		m.status += " Press s to list it on the marketplace."
	}
	return m
}

func (m Model) beginListing() (tea.Model, tea.Cmd) {
	if m.market == nil {
		m.lastErr = errors.New("marketplace is not configured")
		return m, nil
	}

	result := m.session.Result()
	if _, err := marketplace.DraftFromResult(result); err != nil {
		m.lastErr = err
		return m, nil
	}

	return m.startInput(inputListing, "weight kg, location (e.g. 2.5, Sector 15 Noida)"), textinput.Blink
}

func (m Model) startInput(mode inputMode, placeholder string) Model {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.mode = inputNone
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()

		switch mode {
		case inputSamplePath:
			return m, loadSampleCmd(m.session, value)
		case inputListing:
			req, err := parseListingInput(value)
			if err != nil {
				m.lastErr = err
				return m, nil
			}
			return m, listCmd(m.ctx, m.market, m.session.Result(), req)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseListingInput reads "weight, location".
func parseListingInput(value string) (marketplace.ListRequest, error) {
	weightStr, location, ok := strings.Cut(value, ",")
	if !ok {
		return marketplace.ListRequest{}, fmt.Errorf("%w: expected \"weight, location\"", common.ErrInvalidInput)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
	if err != nil || weight <= 0 {
		return marketplace.ListRequest{}, fmt.Errorf("%w: weight must be a positive number", common.ErrInvalidInput)
	}

	return marketplace.ListRequest{
		WeightKg: weight,
		Location: strings.TrimSpace(location),
	}, nil
}
