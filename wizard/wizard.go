/*
Package wizard walks a user through building a configuration file in the
terminal: pick a marker preset or type custom markers, choose the
synthesis alphabet and sizing, decide on compression and an optional seed
phrase. The result is a config.Config ready to save.
*/
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dtinel/sneaky/config"
	"github.com/dtinel/sneaky/stegano"
)

// Preset is a ready-made marker pair the user can pick instead of typing
// code points by hand.
type Preset struct {
	Name string
	Zero rune
	One  rune
}

// Presets offered on the first screen. The last entry switches to custom
// marker entry.
var Presets = []Preset{
	{"invisible: zero width space / non-joiner", stegano.DefaultZero, stegano.DefaultOne},
	{"invisible: zero width joiner / non-joiner", '‍', '‌'},
	{"visible: letters z and o", 'z', 'o'},
	{"custom markers", 0, 0},
}

type step int

const (
	stepPreset step = iota
	stepZero
	stepOne
	stepAlphabet
	stepFactor
	stepCompress
	stepPhrase
	stepDone
)

// Model is the bubbletea model behind the wizard. Use New to build one.
type Model struct {
	step    step
	cursor  int
	checked int
	input   textinput.Model
	problem string
	aborted bool

	zero     rune
	one      rune
	alphabet string
	factor   int
	compress bool
	phrase   string
}

func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()
	return Model{
		checked: -1,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up":
		if m.selecting() && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.selecting() && m.cursor < m.optionCount()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.confirm()
	}
	return m.updateInput(msg)
}

// selecting reports whether the current step is a list, not a text input.
func (m Model) selecting() bool {
	return m.step == stepPreset || m.step == stepCompress
}

func (m Model) optionCount() int {
	if m.step == stepPreset {
		return len(Presets)
	}
	return 2 // compress: no / yes
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.selecting() || m.step == stepDone {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

/*
confirm validates the current answer and moves to the next step. A bad
answer sets problem and stays put, so the user can correct it in place.
*/
func (m Model) confirm() (tea.Model, tea.Cmd) {
	m.problem = ""
	switch m.step {
	case stepPreset:
		m.checked = m.cursor
		p := Presets[m.cursor]
		if p.Zero == 0 && p.One == 0 {
			m.toInput(stepZero, "", "marker rune for 0, e.g. U+200B or a letter")
			return m, nil
		}
		m.zero, m.one = p.Zero, p.One
		m.toInput(stepAlphabet, string(stegano.DefaultAlphabet), "")
		return m, nil

	case stepZero:
		r, err := config.ParseRune(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.problem = err.Error()
			return m, nil
		}
		m.zero = r
		m.toInput(stepOne, "", "marker rune for 1")
		return m, nil

	case stepOne:
		r, err := config.ParseRune(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.problem = err.Error()
			return m, nil
		}
		if r == m.zero {
			m.problem = "the two markers must differ"
			return m, nil
		}
		m.one = r
		m.toInput(stepAlphabet, string(stegano.DefaultAlphabet), "")
		return m, nil

	case stepAlphabet:
		alphabet := m.input.Value()
		if strings.TrimSpace(alphabet) == "" {
			m.problem = "the alphabet cannot be empty"
			return m, nil
		}
		free := 0
		for _, r := range alphabet {
			if r != m.zero && r != m.one {
				free++
			}
		}
		if free == 0 {
			m.problem = "the alphabet holds nothing but the markers"
			return m, nil
		}
		m.alphabet = alphabet
		m.toInput(stepFactor, strconv.Itoa(stegano.DefaultCarrierFactor), "")
		return m, nil

	case stepFactor:
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || n < 1 {
			m.problem = "the carrier factor must be a positive number"
			return m, nil
		}
		m.factor = n
		m.step = stepCompress
		m.cursor = 0
		m.checked = -1
		return m, nil

	case stepCompress:
		m.checked = m.cursor
		m.compress = m.cursor == 1
		m.toInput(stepPhrase, "", "seed phrase, empty to seed from the clock")
		return m, nil

	case stepPhrase:
		m.phrase = m.input.Value()
		m.step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toInput(next step, value, placeholder string) {
	m.step = next
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
}

func (m Model) View() string {
	var b strings.Builder
	switch m.step {
	case stepPreset:
		b.WriteString("Which marker pair should carry the bits?\n\n")
		for i, p := range Presets {
			checked := "[ ]"
			if m.checked == i {
				checked = "[x]"
			}
			line := fmt.Sprintf("%s %s", checked, p.Name)
			if m.cursor == i {
				line = "\033[1;32m" + line + "\033[0m"
			}
			b.WriteString(line + "\n")
		}
	case stepZero:
		b.WriteString("Marker rune standing for 0:\n\n" + m.input.View() + "\n")
	case stepOne:
		b.WriteString("Marker rune standing for 1:\n\n" + m.input.View() + "\n")
	case stepAlphabet:
		b.WriteString("Alphabet for synthesized carriers:\n\n" + m.input.View() + "\n")
	case stepFactor:
		b.WriteString("Synthesized carrier runes per secret token:\n\n" + m.input.View() + "\n")
	case stepCompress:
		b.WriteString("Compress payloads by default?\n\n")
		for i, name := range []string{"no", "yes"} {
			checked := "[ ]"
			if m.checked == i {
				checked = "[x]"
			}
			line := fmt.Sprintf("%s %s", checked, name)
			if m.cursor == i {
				line = "\033[1;32m" + line + "\033[0m"
			}
			b.WriteString(line + "\n")
		}
	case stepPhrase:
		b.WriteString("Seed phrase (optional):\n\n" + m.input.View() + "\n")
	case stepDone:
		return "Configuration ready.\n"
	}
	if m.problem != "" {
		b.WriteString("\n" + m.problem + "\n")
	}
	b.WriteString("\nPress esc to quit.\n")
	return b.String()
}

// Config returns the assembled configuration and whether the wizard ran
// to completion.
func (m Model) Config() (*config.Config, bool) {
	if m.aborted || m.step != stepDone {
		return nil, false
	}
	return &config.Config{
		Zero:          config.FormatRune(m.zero),
		One:           config.FormatRune(m.one),
		Alphabet:      m.alphabet,
		CarrierFactor: m.factor,
		Compress:      m.compress,
		SeedPhrase:    m.phrase,
	}, true
}

// Run executes the wizard against the terminal. ok is false when the user
// backed out.
func Run() (c *config.Config, ok bool, err error) {
	final, err := tea.NewProgram(New()).Run()
	if err != nil {
		return nil, false, err
	}
	m, isModel := final.(Model)
	if !isModel {
		return nil, false, fmt.Errorf("wizard returned unexpected model %T", final)
	}
	c, ok = m.Config()
	return c, ok, nil
}
