package app

import "context"

// feature selects which sub-reducer handles an action. The unexported method
// on Action keeps the union closed: every variant lives in this package and
// is handled by exactly one reducer path.
type feature int

const (
	featureGlobal feature = iota
	featureHome
	featureCreateLog
	featureViewLogs
	featureLogDetail
	featureReminders
	featureReminderDetail
	featureSettings
)

// Action is one state-changing event. Every variant declares its own stable
// name for tracing; nothing inspects action types reflectively.
type Action interface {
	Name() string
	feature() feature
}

// Dispatch re-enters the store with a follow-up action. Middleware must use
// it for every result; it enqueues and never runs the reducer inline.
type Dispatch func(Action)

// Middleware inspects each dispatched action after the reducer has run.
// State is read-only here; the only way to change it is dispatching another
// action. A middleware that starts async work does so on its own goroutine
// and reports back through d.
type Middleware func(ctx context.Context, s AppState, a Action, d Dispatch)
