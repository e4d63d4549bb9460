package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pixelquest/internal/storage"
)

func newTestService(t *testing.T, rng RandomSource) (*Service, context.Context) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewServiceWithRNG(db, rng)
	if err := svc.Bootstrap(ctx, "2026-09-01"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return svc, ctx
}

func setProfilePoints(t *testing.T, svc *Service, ctx context.Context, points int) {
	t.Helper()
	p, err := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if err != nil || p == nil {
		t.Fatalf("get profile: %v", err)
	}
	p.TotalPoints = points
	if err := svc.ProfileRepo().Update(ctx, p); err != nil {
		t.Fatalf("update profile: %v", err)
	}
}

func firstCategory(t *testing.T, svc *Service, ctx context.Context, name string) *storage.Category {
	t.Helper()
	cat, err := svc.CategoryRepo().GetByName(ctx, name)
	if err != nil || cat == nil {
		t.Fatalf("category %q: %v", name, err)
	}
	return cat
}

func TestBootstrapSeedsDefaults(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))

	cats, err := svc.CategoryRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != len(storage.DefaultCategories) {
		t.Fatalf("categories=%d, want %d", len(cats), len(storage.DefaultCategories))
	}

	p, err := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if err != nil || p == nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != storage.DefaultProfileName || p.TotalPoints != 0 || p.Streak != 0 {
		t.Fatalf("fresh profile %+v", p)
	}

	// Bootstrap again: defaults are seeded once.
	if err := svc.Bootstrap(ctx, "2026-09-01"); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	cats, _ = svc.CategoryRepo().ListAll(ctx)
	if len(cats) != len(storage.DefaultCategories) {
		t.Fatalf("categories duplicated: %d", len(cats))
	}
}

func TestCreateTaskFreezesPoints(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))
	cat := firstCategory(t, svc, ctx, "Study")

	task, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:      "  read chapter 4  ",
		CategoryID: cat.ID,
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "read chapter 4" {
		t.Fatalf("title=%q, want trimmed", task.Title)
	}
	if task.Points != 20 {
		t.Fatalf("points=%d, want 20", task.Points)
	}
	if task.Period != string(PeriodDaily) {
		t.Fatalf("period=%q, want default daily", task.Period)
	}

	_, err = svc.CreateTask(ctx, CreateTaskInput{Title: "   ", CategoryID: cat.ID, Difficulty: DifficultyEasy})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("blank title err=%v, want ErrEmptyTitle", err)
	}
}

func TestToggleTaskPersists(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))
	cat := firstCategory(t, svc, ctx, "Work")

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "send report", CategoryID: cat.ID, Difficulty: DifficultyHard})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Result.Completed || res.Result.PointsDelta != 30 {
		t.Fatalf("toggle result %+v", res.Result)
	}

	stored, _ := svc.TaskRepo().Get(ctx, task.ID)
	if stored == nil || !stored.Completed {
		t.Fatalf("completion not persisted: %+v", stored)
	}
	p, _ := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if p.TotalPoints != 30 || p.Streak != 1 {
		t.Fatalf("profile points=%d streak=%d, want 30/1", p.TotalPoints, p.Streak)
	}

	// Un-complete: points come back, streak stays.
	if _, err := svc.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	p, _ = svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if p.TotalPoints != 0 || p.Streak != 1 {
		t.Fatalf("profile points=%d streak=%d, want 0/1", p.TotalPoints, p.Streak)
	}
}

func TestDeleteCategoryGuard(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))
	cat := firstCategory(t, svc, ctx, "Home")

	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "water plants", CategoryID: cat.ID, Difficulty: DifficultyEasy}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.DeleteCategory(ctx, cat.ID)
	var inUse CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("err=%v, want CategoryInUseError", err)
	}
	if inUse.Name != "Home" || inUse.TaskCount != 1 {
		t.Fatalf("error detail %+v", inUse)
	}

	// Empty category deletes fine.
	empty := firstCategory(t, svc, ctx, "Play")
	if err := svc.DeleteCategory(ctx, empty.ID); err != nil {
		t.Fatalf("delete empty: %v", err)
	}
}

func TestDrawPersistsAndGates(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(7))
	setProfilePoints(t, svc, ctx, 250)

	res1, err := svc.Draw(ctx)
	if err != nil {
		t.Fatalf("draw 1: %v", err)
	}
	if res1.NewBalance != 150 || res1.Card.ID == 0 {
		t.Fatalf("draw 1 result %+v", res1)
	}

	res2, err := svc.Draw(ctx)
	if err != nil {
		t.Fatalf("draw 2: %v", err)
	}
	if res2.NewBalance != 50 {
		t.Fatalf("balance after draw 2 = %d, want 50", res2.NewBalance)
	}

	_, err = svc.Draw(ctx)
	var insufficient InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("draw 3 err=%v, want InsufficientFundsError", err)
	}

	// The failed draw wrote nothing.
	n, _ := svc.CardRepo().Count(ctx)
	if n != 2 {
		t.Fatalf("cards=%d, want 2", n)
	}
	p, _ := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if p.TotalPoints != 50 {
		t.Fatalf("points=%d, want 50", p.TotalPoints)
	}

	// Newest draw sits at the top of the inventory.
	inv, _ := svc.CardRepo().ListAll(ctx)
	if inv[0].ID != res2.Card.ID {
		t.Fatalf("inventory head=%d, want latest draw %d", inv[0].ID, res2.Card.ID)
	}
}

func TestMergeFlow(t *testing.T) {
	// Every draw rolls common (0.1) and picks the first template with minimum
	// stats, so three draws give three identical Slimes.
	rng := &scriptedRNG{floats: []float64{0.1}, ints: []int{0}}
	svc, ctx := newTestService(t, rng)
	setProfilePoints(t, svc, ctx, 300)

	for i := 0; i < 3; i++ {
		if _, err := svc.Draw(ctx); err != nil {
			t.Fatalf("draw %d: %v", i+1, err)
		}
	}

	groups, err := svc.MergeableGroups(ctx)
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("groups=%d, want 1", len(groups))
	}
	key := groups[0].Key
	if key.Name != "Slime" || key.Rarity != RarityCommon || key.StarLevel != 1 {
		t.Fatalf("key=%+v", key)
	}

	out, err := svc.Merge(ctx, key)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if out.NewCard.StarLevel != 2 {
		t.Fatalf("star=%d, want 2", out.NewCard.StarLevel)
	}

	inv, _ := svc.CardRepo().ListAll(ctx)
	if len(inv) != 1 {
		t.Fatalf("inventory=%d, want 1 after 3->1 merge", len(inv))
	}
	if inv[0].ID != out.NewCard.ID || inv[0].StarLevel != 2 {
		t.Fatalf("persisted card %+v", inv[0])
	}

	// The consumed group is gone.
	if _, err := svc.Merge(ctx, key); err == nil {
		t.Fatalf("expected merge of consumed group to fail")
	}
}

func TestServiceDailyReset(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))
	cat := firstCategory(t, svc, ctx, "Study")

	daily, _ := svc.CreateTask(ctx, CreateTaskInput{Title: "stretch", CategoryID: cat.ID, Difficulty: DifficultyEasy})
	once, _ := svc.CreateTask(ctx, CreateTaskInput{Title: "file taxes", CategoryID: cat.ID, Difficulty: DifficultyHard, Period: PeriodOnce})
	if _, err := svc.ToggleTask(ctx, daily.ID); err != nil {
		t.Fatalf("toggle daily: %v", err)
	}
	if _, err := svc.ToggleTask(ctx, once.ID); err != nil {
		t.Fatalf("toggle once: %v", err)
	}

	// Same day: nothing to do.
	did, err := svc.DailyReset(ctx, "2026-09-01")
	if err != nil || did {
		t.Fatalf("same-day reset did=%v err=%v", did, err)
	}

	did, err = svc.DailyReset(ctx, "2026-09-02")
	if err != nil || !did {
		t.Fatalf("next-day reset did=%v err=%v", did, err)
	}

	d, _ := svc.TaskRepo().Get(ctx, daily.ID)
	if d.Completed {
		t.Fatalf("daily task still completed after reset")
	}
	o, _ := svc.TaskRepo().Get(ctx, once.ID)
	if !o.Completed {
		t.Fatalf("once task was reset")
	}

	// Points and streak survive the day change.
	p, _ := svc.ProfileRepo().Get(ctx, storage.MainProfileKey)
	if p.TotalPoints != 40 || p.Streak != 2 {
		t.Fatalf("profile points=%d streak=%d, want 40/2", p.TotalPoints, p.Streak)
	}
	if p.LastActiveDate != "2026-09-02" {
		t.Fatalf("last active=%q", p.LastActiveDate)
	}
}

func TestResolveCategory(t *testing.T) {
	svc, ctx := newTestService(t, NewSeededRNG(1))
	study := firstCategory(t, svc, ctx, "Study")

	byName, err := svc.ResolveCategory(ctx, "study")
	if err != nil || byName.ID != study.ID {
		t.Fatalf("by name: %v / %+v", err, byName)
	}

	byID, err := svc.ResolveCategory(ctx, "1")
	if err != nil || byID == nil {
		t.Fatalf("by id: %v", err)
	}

	if _, err := svc.ResolveCategory(ctx, "nope"); err == nil {
		t.Fatalf("expected unknown category to fail")
	}
}
