package tui

// loadedMsg reports the outcome of the initial (or re-triggered) session load.
type loadedMsg struct {
	err error
}

// selectionChangedMsg reports that a selection-changing call finished and the
// model should re-read the session views.
type selectionChangedMsg struct {
	err error
}

// actionDoneMsg reports the outcome of a state-mutating action with an
// operator-facing toast on success.
type actionDoneMsg struct {
	err   error
	toast string
}
