package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLetter           // A-Z typed into the active row
	ActionBackspace        // Backspace - delete last letter
	ActionSubmit           // Enter - submit the row
	ActionNewRound         // Ctrl+N - start a new round
	ActionModeEasy         // 1
	ActionModeMedium       // 2
	ActionModeHard         // 3
	ActionStats            // Tab - toggle statistics
	ActionHelp             // ? - toggle full help
	ActionBack             // Esc - leave the current view
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionBackspace:
		return "Backspace"
	case ActionSubmit:
		return "Submit"
	case ActionNewRound:
		return "NewRound"
	case ActionModeEasy:
		return "ModeEasy"
	case ActionModeMedium:
		return "ModeMedium"
	case ActionModeHard:
		return "ModeHard"
	case ActionStats:
		return "Stats"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded key press.
type Input struct {
	Action Action
	Letter rune // Uppercase A-Z, set only for ActionLetter
}
