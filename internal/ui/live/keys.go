package live

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Answer key.Binding
	Submit key.Binding
	Erase  key.Binding
	Next   key.Binding
	Replay key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Answer: key.NewBinding(key.WithKeys(letterKeys()...), key.WithHelp("a-z", "answer")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Next:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "next")),
		Replay: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Abort:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// helpKeys implements help.KeyMap for the bindings relevant to a phase.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

func (k keyMap) forPhase(phase Phase, manyAnswers, allowReplay bool) helpKeys {
	switch phase {
	case PhaseQuestion:
		if manyAnswers {
			return helpKeys{k.Answer, k.Submit, k.Erase, k.Abort}
		}
		return helpKeys{k.Answer, k.Abort}
	case PhaseFeedback:
		return helpKeys{k.Next, k.Abort}
	default:
		if allowReplay {
			return helpKeys{k.Replay, k.Quit}
		}
		return helpKeys{k.Quit}
	}
}

func letterKeys() []string {
	keys := make([]string, 0, 52)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r), string(r-'a'+'A'))
	}
	return keys
}
