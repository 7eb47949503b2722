package models

// ViewState identifies which screen a client session is on.
type ViewState string

const (
	ViewHome       ViewState = "HOME"
	ViewAnalyze    ViewState = "ANALYZE"
	ViewProList    ViewState = "PRO_LIST"
	ViewJoin       ViewState = "JOIN"
	ViewHowItWorks ViewState = "HOW_IT_WORKS"
)

// Valid reports whether v is a known view.
func (v ViewState) Valid() bool {
	switch v {
	case ViewHome, ViewAnalyze, ViewProList, ViewJoin, ViewHowItWorks:
		return true
	}
	return false
}

// ViewSession is the top-level navigation state for one client: the current
// view, the last analysis result (if any) and the active category filter.
type ViewSession struct {
	ID             string          `json:"id"`
	CurrentView    ViewState       `json:"currentView"`
	AnalysisResult *AnalysisResult `json:"analysisResult,omitempty"`
	ActiveFilter   *Category       `json:"activeFilter,omitempty"`
}
