package model

// Snapshot is the read-only state handed to observers. Every field is a
// copy; presentation code can hold it without touching engine-owned state.
type Snapshot struct {
	Config     Config
	Session    SessionState
	Statistics Statistics
}

// Progress returns the current session progress, in [0, 1].
func (snapshot Snapshot) Progress() float64 {
	return snapshot.Session.Progress(snapshot.Config)
}
