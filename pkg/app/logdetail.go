package app

import "tableflip.dev/vita/pkg/health"

// LogDetailOpened shows a log and kicks off catalog hydration for its
// referenced item.
type LogDetailOpened struct{ Log *health.Log }

func (LogDetailOpened) Name() string     { return "logDetail/opened" }
func (LogDetailOpened) feature() feature { return featureLogDetail }

// LogDetailHydrated lands the log with its catalog item attached.
type LogDetailHydrated struct{ Log *health.Log }

func (LogDetailHydrated) Name() string     { return "logDetail/didHydrate" }
func (LogDetailHydrated) feature() feature { return featureLogDetail }

// LogDetailHydrateFailed surfaces a hydration error; the bare log stays on
// screen.
type LogDetailHydrateFailed struct{ Err error }

func (LogDetailHydrateFailed) Name() string     { return "logDetail/hydrateFailed" }
func (LogDetailHydrateFailed) feature() feature { return featureLogDetail }

// LogDeleteRequested asks middleware to delete the opened log.
type LogDeleteRequested struct{ ID string }

func (LogDeleteRequested) Name() string     { return "logDetail/onDeletePressed" }
func (LogDeleteRequested) feature() feature { return featureLogDetail }

// LogDeleteSucceeded removes the log from every cache.
type LogDeleteSucceeded struct{ ID string }

func (LogDeleteSucceeded) Name() string     { return "logDetail/onDeleteSuccess" }
func (LogDeleteSucceeded) feature() feature { return featureLogDetail }

// LogDeleteFailed surfaces a delete error.
type LogDeleteFailed struct{ Err error }

func (LogDeleteFailed) Name() string     { return "logDetail/onDeleteFailure" }
func (LogDeleteFailed) feature() feature { return featureLogDetail }

func reduceLogDetail(s AppState, a Action) AppState {
	switch act := a.(type) {
	case LogDetailOpened:
		s.LogDetail = LogDetailState{Log: act.Log, IsLoading: act.Log != nil && act.Log.ItemID() != ""}
	case LogDetailHydrated:
		s.LogDetail.Log = act.Log
		s.LogDetail.IsLoading = false
		s.LogDetail.Err = nil
	case LogDetailHydrateFailed:
		s.LogDetail.IsLoading = false
		s.LogDetail.Err = act.Err
	case LogDeleteRequested:
		s.LogDetail.IsDeleting = true
		s.LogDetail.Err = nil
	case LogDeleteSucceeded:
		s.LogDetail.IsDeleting = false
		s.LogDetail.DeleteSuccess = true
		s.Global = withLogRemoved(s.Global, act.ID)
	case LogDeleteFailed:
		s.LogDetail.IsDeleting = false
		s.LogDetail.Err = act.Err
	}
	return s
}
