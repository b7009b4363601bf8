package app

// Reduce is the root reducer: a pure function from (state, action) to the
// next state. Same inputs, same output. Each action's feature tag routes it
// to exactly one sub-reducer.
func Reduce(s AppState, a Action) AppState {
	if a == nil {
		return s
	}
	switch a.feature() {
	case featureGlobal:
		return reduceGlobal(s, a)
	case featureHome:
		return reduceHome(s, a)
	case featureCreateLog:
		return reduceCreateLog(s, a)
	case featureViewLogs:
		return reduceViewLogs(s, a)
	case featureLogDetail:
		return reduceLogDetail(s, a)
	case featureReminders:
		return reduceReminders(s, a)
	case featureReminderDetail:
		return reduceReminderDetail(s, a)
	case featureSettings:
		return reduceSettings(s, a)
	}
	return s
}
