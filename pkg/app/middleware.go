package app

import (
	"errors"
	"time"

	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
)

// errNoUser guards every middleware that needs an initialized user.
var errNoUser = errors.New("app: no user initialized")

// Services bundles the service layer the middleware chain talks to.
type Services struct {
	Users         services.UserService
	Logs          services.LogService
	Reminders     services.ReminderService
	Notifications services.NotificationService
	Analytics     services.AnalyticsService
}

// NewServices wires the full service layer over one persistence handle.
// notificationsEnabled mirrors the platform notification permission.
func NewServices(p store.Persistence, notificationsEnabled bool) Services {
	return Services{
		Users:         services.NewUserService(p),
		Logs:          services.NewLogService(p),
		Reminders:     services.NewReminderService(p, time.Now),
		Notifications: services.NewNotificationService(p, notificationsEnabled),
		Analytics:     services.NewAnalyticsService(p, time.Now),
	}
}

// DefaultMiddleware is the standard chain, in dispatch order.
func DefaultMiddleware(svc Services) []Middleware {
	return []Middleware{
		AppInitMiddleware(svc),
		LogMiddleware(svc),
		SearchMiddleware(svc),
		CreateLogMiddleware(svc),
		ReminderMiddleware(svc),
		SettingsMiddleware(svc),
		AnalyticsMiddleware(svc),
	}
}

// NewDefaultStore is the production wiring: initial state plus the default
// chain over the given services.
func NewDefaultStore(svc Services, opts ...Option) *Store {
	opts = append([]Option{WithMiddleware(DefaultMiddleware(svc)...)}, opts...)
	return New(InitialState(), opts...)
}
