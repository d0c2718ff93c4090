package engine

// State is an interpreter state.
type State int

const (
	// StateHello greets once and moves to navigate.
	StateHello State = iota
	// StateNavigate is the steady state: movement, reads and mode entry.
	StateNavigate
	// StateMostChoice waits for the axis to move along as far as possible.
	StateMostChoice
	// StateNewChoice waits for the direction to insert in.
	StateNewChoice
	// StateNew inserts every word it hears until "done".
	StateNew
	// StateDeleteChoice waits for "word" or "value".
	StateDeleteChoice
	// StateMoveChoice waits for the direction to move the word or value.
	StateMoveChoice
	// StateDig narrows a prefix search word by word.
	StateDig
	// StateQuit is terminal.
	StateQuit
)

var stateNames = [...]string{
	StateHello:        "hello",
	StateNavigate:     "navigate",
	StateMostChoice:   "most",
	StateNewChoice:    "newchoice",
	StateNew:          "new",
	StateDeleteChoice: "delete",
	StateMoveChoice:   "move",
	StateDig:          "dig",
	StateQuit:         "quit",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// transition handles one word in one state. It returns the next state and
// whether the word was understood.
type transition func(s *Session, word string) (next State, ok bool, err error)

var transitions = [...]transition{
	StateHello:        (*Session).hello,
	StateNavigate:     (*Session).navigate,
	StateMostChoice:   (*Session).mostChoice,
	StateNewChoice:    (*Session).newChoice,
	StateNew:          (*Session).newWords,
	StateDeleteChoice: (*Session).deleteChoice,
	StateMoveChoice:   (*Session).moveChoice,
	StateDig:          (*Session).dig,
	StateQuit:         (*Session).quit,
}
