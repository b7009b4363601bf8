package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
	"tableflip.dev/vita/pkg/store"
	"tableflip.dev/vita/pkg/timeutil"
)

// Show prints the current user and their settings.
type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show user, no persistence")
	}
	u, err := services.ResolveCurrentUser(ctx, services.NewUserService(n.Persistence))
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	f := color.New(color.Faint)
	fmt.Println("")
	_, _ = b.Println(u.ID)
	_, _ = f.Printf("created       %s\n", u.Created.Local().Format("January 2, 2006"))
	_, _ = f.Printf("mood window   %s\n", u.Settings.MoodWindow)
	_, _ = f.Printf("symptom window %s\n", u.Settings.SymptomWindow)
	if u.Account != nil {
		_, _ = f.Printf("linked to     %s (%s)\n", u.Account.Provider, u.Account.AccountID)
	}
	return nil
}

// Settings persists new analytics windows on the current user.
type Settings struct {
	Persistence store.Persistence

	MoodWindow    string
	SymptomWindow string
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not update settings, no persistence")
	}
	users := services.NewUserService(n.Persistence)
	u, err := services.ResolveCurrentUser(ctx, users)
	if err != nil {
		return err
	}

	updated := u.Clone()
	if n.MoodWindow != "" {
		_, label, err := timeutil.ParseWindow(n.MoodWindow)
		if err != nil {
			return err
		}
		updated.Settings.MoodWindow = label
	}
	if n.SymptomWindow != "" {
		_, label, err := timeutil.ParseWindow(n.SymptomWindow)
		if err != nil {
			return err
		}
		updated.Settings.SymptomWindow = label
	}
	if err := users.Save(ctx, updated); err != nil {
		return err
	}
	fmt.Printf("mood window %s, symptom window %s\n",
		updated.Settings.MoodWindow, updated.Settings.SymptomWindow)
	return nil
}

// Link attaches an external account to the current user so the journal can
// be restored elsewhere.
type Link struct {
	Persistence store.Persistence

	Provider  string
	AccountID string
}

func (n *Link) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not link, no persistence")
	}
	if n.Provider == "" || n.AccountID == "" {
		return errors.New("link: provider and account id are required")
	}
	users := services.NewUserService(n.Persistence)
	u, err := services.ResolveCurrentUser(ctx, users)
	if err != nil {
		return err
	}

	linked := u.Clone()
	linked.Account = &health.ExternalAccount{
		Provider:  n.Provider,
		AccountID: n.AccountID,
		LinkedAt:  health.Timestamp{Time: time.Now()},
	}
	if err := users.Save(ctx, linked); err != nil {
		return err
	}
	fmt.Printf("linked %s to %s\n", linked.ID, n.Provider)
	return nil
}

// Restore switches the bookmark to the user owning the external account.
type Restore struct {
	Persistence store.Persistence

	Provider  string
	AccountID string
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not restore, no persistence")
	}
	users := services.NewUserService(n.Persistence)
	restored, err := users.FindByAccount(ctx, health.ExternalAccount{
		Provider:  n.Provider,
		AccountID: n.AccountID,
	})
	if err != nil {
		return err
	}
	if err := users.SetCurrentUserID(restored.ID); err != nil {
		return err
	}
	fmt.Printf("restored %s from %s\n", restored.ID, n.Provider)
	return nil
}
