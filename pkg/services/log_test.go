package services

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

func testDeps(t *testing.T) (store.Persistence, *health.User) {
	t.Helper()
	p, err := store.Load(store.FixedConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	u := health.NewUser()
	if err := p.StoreUser(u); err != nil {
		t.Fatalf("store user: %v", err)
	}
	return p, u
}

func TestGetLogsFilters(t *testing.T) {
	p, u := testDeps(t)
	svc := NewLogService(p)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)
	mood := health.NewLog(health.CategoryMood, "morning")
	mood.Mood = &health.MoodDetail{Rank: health.MoodGood}
	mood.Created = health.Timestamp{Time: base}

	note := health.NewLog(health.CategoryNote, "later note")
	note.Notes = "body"
	note.Created = health.Timestamp{Time: base.Add(48 * time.Hour)}

	for _, l := range []*health.Log{mood, note} {
		if err := svc.SaveLog(ctx, l, u); err != nil {
			t.Fatalf("save log: %v", err)
		}
	}

	got, err := svc.GetLogs(ctx, u, ListOptions{Category: health.CategoryMood})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(got) != 1 || got[0].ID != mood.ID {
		t.Fatalf("expected only the mood log, got %d", len(got))
	}

	got, err = svc.GetLogs(ctx, u, ListOptions{From: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(got) != 1 || got[0].ID != note.ID {
		t.Fatalf("expected only the later note, got %d", len(got))
	}

	got, err = svc.GetLogs(ctx, u, ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(got) != 1 || got[0].ID != note.ID {
		t.Fatalf("expected newest log first with limit, got %d", len(got))
	}
}

func TestSaveLogValidates(t *testing.T) {
	p, u := testDeps(t)
	svc := NewLogService(p)

	l := health.NewLog(health.CategoryMedication, "Advil")
	l.Medication = &health.MedicationDetail{ItemID: "m1"}
	if err := svc.SaveLog(context.Background(), l, u); err == nil {
		t.Fatalf("expected missing dosage to fail validation")
	}
}

func TestInitLogDetailsHydrates(t *testing.T) {
	p, u := testDeps(t)
	svc := NewLogService(p)
	ctx := context.Background()

	item := health.NewCatalogItem(health.CategoryMedication, "Advil", u.ID)
	if err := svc.SaveCatalogItem(ctx, item, u); err != nil {
		t.Fatalf("save catalog item: %v", err)
	}

	l := health.NewLog(health.CategoryMedication, "Advil")
	l.Medication = &health.MedicationDetail{ItemID: item.ID, Dosage: "10mg"}

	hydrated, err := svc.InitLogDetails(ctx, l, u)
	if err != nil {
		t.Fatalf("init log details: %v", err)
	}
	if hydrated.Item == nil || hydrated.Item.Name != "Advil" {
		t.Fatalf("expected hydrated item, got %+v", hydrated.Item)
	}
	if l.Item != nil {
		t.Fatalf("hydration mutated the input log")
	}

	// Already hydrated logs pass through without another lookup.
	again, err := svc.InitLogDetails(ctx, hydrated, u)
	if err != nil {
		t.Fatalf("init log details: %v", err)
	}
	if again != hydrated {
		t.Fatalf("expected pass-through for hydrated log")
	}

	// Unknown item id carries the not-found reason.
	orphan := health.NewLog(health.CategoryMedication, "Mystery")
	orphan.Medication = &health.MedicationDetail{ItemID: "missing", Dosage: "1"}
	if _, err := svc.InitLogDetails(ctx, orphan, u); !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSearchCatalog(t *testing.T) {
	p, u := testDeps(t)
	svc := NewLogService(p)
	ctx := context.Background()

	for _, name := range []string{"Advil", "Aspirin", "Tylenol"} {
		item := health.NewCatalogItem(health.CategoryMedication, name, u.ID)
		if err := svc.SaveCatalogItem(ctx, item, u); err != nil {
			t.Fatalf("save catalog item: %v", err)
		}
	}
	run := health.NewCatalogItem(health.CategoryActivity, "Running", u.ID)
	if err := svc.SaveCatalogItem(ctx, run, u); err != nil {
		t.Fatalf("save catalog item: %v", err)
	}

	got, err := svc.SearchCatalog(ctx, "adv", u, health.CategoryMedication)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Advil" {
		t.Fatalf("expected Advil, got %d results", len(got))
	}

	// Category filter excludes other kinds even on broad queries.
	got, err = svc.SearchCatalog(ctx, "", u, health.CategoryMedication)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 medications, got %d", len(got))
	}
}

func TestUserServiceRoundTrip(t *testing.T) {
	p, _ := testDeps(t)
	svc := NewUserService(p)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := svc.SetCurrentUserID(u.ID); err != nil {
		t.Fatalf("set current user: %v", err)
	}
	id, err := svc.CurrentUserID()
	if err != nil || id != u.ID {
		t.Fatalf("expected bookmark %q, got %q err %v", u.ID, id, err)
	}

	if _, err := svc.Get(ctx, "nope"); !IsNotFound(err) {
		t.Fatalf("expected not-found reason, got %v", err)
	}

	u.Settings.MoodWindow = "1w"
	if err := svc.Save(ctx, u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, err := svc.Get(ctx, u.ID)
	if err != nil || got.Settings.MoodWindow != "1w" {
		t.Fatalf("expected updated settings, got %+v err %v", got, err)
	}

	u.Settings.MoodWindow = "bogus"
	if err := svc.Save(ctx, u); err == nil {
		t.Fatalf("expected invalid window to fail validation")
	}
}
