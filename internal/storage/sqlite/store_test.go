package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/quest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "questlog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newQuest(id, title, category, parentID string) quest.Quest {
	return quest.Quest{
		ID:        id,
		Title:     title,
		Category:  category,
		ParentID:  parentID,
		CreatedAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func mustCreate(t *testing.T, store *Store, q quest.Quest) quest.Quest {
	t.Helper()
	created, err := store.CreateQuest(context.Background(), q)
	if err != nil {
		t.Fatalf("create quest %s: %v", q.ID, err)
	}
	return created
}

func TestCreateQuestAppendsPositions(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	root := mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	if root.Position != 0 {
		t.Fatalf("root position = %d, want 0", root.Position)
	}

	a := mustCreate(t, store, newQuest("a", "Shoes", "Preparation", "root"))
	b := mustCreate(t, store, newQuest("b", "Run 5km", "Training", "root"))
	c := mustCreate(t, store, newQuest("c", "Join a club", "Social", "root"))

	if a.Position != 0 || b.Position != 1 || c.Position != 2 {
		t.Fatalf("positions = %d/%d/%d, want 0/1/2", a.Position, b.Position, c.Position)
	}

	children, err := store.ChildQuests(ctx, "root")
	if err != nil {
		t.Fatalf("child quests: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("children = %d, want 3", len(children))
	}
	for i, want := range []string{"a", "b", "c"} {
		if children[i].ID != want {
			t.Fatalf("children[%d] = %q, want %q", i, children[i].ID, want)
		}
	}
}

func TestGetQuestMissingReportsNotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, found, err := store.GetQuest(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get quest: %v", err)
	}
	if found {
		t.Fatal("expected miss for unknown id")
	}
}

func TestMainQuest(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.MainQuest(ctx)
	if err != nil {
		t.Fatalf("main quest: %v", err)
	}
	if found {
		t.Fatal("expected no main quest before onboarding")
	}

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	main, found, err := store.MainQuest(ctx)
	if err != nil {
		t.Fatalf("main quest: %v", err)
	}
	if !found || main.ID != "root" {
		t.Fatalf("main quest = (%q, %t)", main.ID, found)
	}
}

func TestQuestDeadlineRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	deadline := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	q := newQuest("root", "Run a Marathon", quest.CategoryMain, "")
	q.Deadline = deadline
	mustCreate(t, store, q)

	got, found, err := store.GetQuest(ctx, "root")
	if err != nil || !found {
		t.Fatalf("get quest: found=%t err=%v", found, err)
	}
	if !got.Deadline.Equal(deadline) {
		t.Fatalf("deadline = %v, want %v", got.Deadline, deadline)
	}

	// Clearing the deadline maps back to NULL, not the epoch.
	got.Deadline = time.Time{}
	if err := store.UpdateQuest(ctx, got); err != nil {
		t.Fatalf("update quest: %v", err)
	}
	got, _, err = store.GetQuest(ctx, "root")
	if err != nil {
		t.Fatalf("get quest: %v", err)
	}
	if !got.Deadline.IsZero() {
		t.Fatalf("cleared deadline = %v, want zero", got.Deadline)
	}
}

func TestChildProgress(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	total, completed, err := store.ChildProgress(ctx, "root")
	if err != nil {
		t.Fatalf("child progress: %v", err)
	}
	if total != 0 || completed != 0 {
		t.Fatalf("progress = %d/%d, want 0/0", completed, total)
	}

	for _, id := range []string{"a", "b", "c"} {
		mustCreate(t, store, newQuest(id, "Task "+id, "Training", "root"))
	}
	for _, id := range []string{"a", "b"} {
		q, _, _ := store.GetQuest(ctx, id)
		q.Completed = true
		if err := store.UpdateQuest(ctx, q); err != nil {
			t.Fatalf("update quest: %v", err)
		}
	}

	total, completed, err = store.ChildProgress(ctx, "root")
	if err != nil {
		t.Fatalf("child progress: %v", err)
	}
	if total != 3 || completed != 2 {
		t.Fatalf("progress = %d/%d, want 2/3", completed, total)
	}
}

func TestUpdateQuestPositionLeavesOthersAlone(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	for _, id := range []string{"a", "b", "c"} {
		mustCreate(t, store, newQuest(id, "Task "+id, "Training", "root"))
	}

	// Reorder c before a; b keeps its prior position.
	if err := store.UpdateQuestPosition(ctx, "c", 0); err != nil {
		t.Fatalf("update position: %v", err)
	}
	if err := store.UpdateQuestPosition(ctx, "a", 1); err != nil {
		t.Fatalf("update position: %v", err)
	}

	children, err := store.ChildQuests(ctx, "root")
	if err != nil {
		t.Fatalf("child quests: %v", err)
	}
	got := []string{children[0].ID, children[1].ID, children[2].ID}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDeleteQuestCascadesToChildren(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	mustCreate(t, store, newQuest("a", "Task a", "Training", "root"))
	mustCreate(t, store, newQuest("b", "Task b", "Training", "root"))

	if err := store.DeleteQuest(ctx, "root"); err != nil {
		t.Fatalf("delete quest: %v", err)
	}

	all, err := store.ListQuests(ctx)
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected cascade delete, got %d quests", len(all))
	}
}

func TestDeleteQuestKeepsSiblingPositionGaps(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	for _, id := range []string{"a", "b", "c"} {
		mustCreate(t, store, newQuest(id, "Task "+id, "Training", "root"))
	}

	if err := store.DeleteQuest(ctx, "b"); err != nil {
		t.Fatalf("delete quest: %v", err)
	}

	children, err := store.ChildQuests(ctx, "root")
	if err != nil {
		t.Fatalf("child quests: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	// Positions are not compacted; relative order still holds.
	if children[0].ID != "a" || children[0].Position != 0 {
		t.Fatalf("first child = %q pos %d", children[0].ID, children[0].Position)
	}
	if children[1].ID != "c" || children[1].Position != 2 {
		t.Fatalf("second child = %q pos %d", children[1].ID, children[1].Position)
	}
}

func TestSettingsUpsertAtFixedKey(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if found {
		t.Fatal("expected no settings before onboarding")
	}

	first := hero.NewSettings()
	if err := store.PutSettings(ctx, first); err != nil {
		t.Fatalf("put settings: %v", err)
	}

	// A second put converges on the same row instead of duplicating.
	second := first
	second.HeroName = "Aria"
	second.ApplyXP(200)
	if err := store.PutSettings(ctx, second); err != nil {
		t.Fatalf("put settings again: %v", err)
	}

	got, found, err := store.GetSettings(ctx)
	if err != nil || !found {
		t.Fatalf("get settings: found=%t err=%v", found, err)
	}
	if got.HeroName != "Aria" || got.XP != 200 || got.Level != 1 {
		t.Fatalf("settings = %+v", got)
	}
	if !got.LastQuoteDate.IsZero() {
		t.Fatalf("quote date = %v, want zero", got.LastQuoteDate)
	}
}

func TestSettingsQuoteDateRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	settings := hero.NewSettings()
	stamp := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	settings.CacheQuote("Onward.", stamp)
	if err := store.PutSettings(ctx, settings); err != nil {
		t.Fatalf("put settings: %v", err)
	}

	got, found, err := store.GetSettings(ctx)
	if err != nil || !found {
		t.Fatalf("get settings: found=%t err=%v", found, err)
	}
	if got.DailyQuote != "Onward." {
		t.Fatalf("quote = %q", got.DailyQuote)
	}
	if !got.LastQuoteDate.Equal(stamp) {
		t.Fatalf("quote date = %v, want %v", got.LastQuoteDate, stamp)
	}
}

func TestFullResetEmptiesBothTables(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, newQuest("root", "Run a Marathon", quest.CategoryMain, ""))
	mustCreate(t, store, newQuest("a", "Task a", "Training", "root"))
	if err := store.PutSettings(ctx, hero.NewSettings()); err != nil {
		t.Fatalf("put settings: %v", err)
	}

	if err := store.DeleteAllQuests(ctx); err != nil {
		t.Fatalf("delete all quests: %v", err)
	}
	if err := store.DeleteSettings(ctx); err != nil {
		t.Fatalf("delete settings: %v", err)
	}

	quests, err := store.ListQuests(ctx)
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	if len(quests) != 0 {
		t.Fatalf("quests after reset = %d, want 0", len(quests))
	}
	_, found, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if found {
		t.Fatal("expected settings removed after reset")
	}
}
