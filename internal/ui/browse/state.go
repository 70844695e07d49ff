package browse

import "tokenwise/internal/store"

// State holds the loaded session page and the last load error.
type State struct {
	Sessions []store.Session
	Total    int
	Err      error
	Loaded   bool
}

// applySessions installs a freshly loaded page.
func applySessions(state State, msg SessionsMsg) State {
	state.Sessions = msg.Sessions
	state.Total = msg.Total
	state.Err = nil
	state.Loaded = true
	return state
}

// applyError records a load failure without discarding the current page.
func applyError(state State, msg ErrMsg) State {
	state.Err = msg.Err
	state.Loaded = true
	return state
}
