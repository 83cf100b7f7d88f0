package sqlitekv

import (
	"context"
	"testing"
	"time"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKV(t *testing.T) {
	db := openTest(t)
	ctx := context.Background()
	if _, ok, err := db.Get(ctx, "isLoggedIn"); err != nil || ok {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}
	if err := db.Set(ctx, "isLoggedIn", "true"); err != nil {
		t.Fatal(err)
	}
	if err := db.Set(ctx, "isLoggedIn", "false"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := db.Get(ctx, "isLoggedIn")
	if err != nil || !ok || v != "false" {
		t.Fatalf("get after overwrite: %q %v %v", v, ok, err)
	}
	if err := db.Delete(ctx, "isLoggedIn"); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete(ctx, "isLoggedIn"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, ok, _ := db.Get(ctx, "isLoggedIn"); ok {
		t.Fatal("key survived delete")
	}
}

func TestEventsRange(t *testing.T) {
	db := openTest(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	if err := db.PutEvent(ctx, base, "influencer_added", map[string]any{"campaign": "campaign1"}); err != nil {
		t.Fatal(err)
	}
	if err := db.PutEvent(ctx, base.Add(time.Minute), "members_removed", nil); err != nil {
		t.Fatal(err)
	}
	if err := db.PutEvent(ctx, base.Add(2*time.Hour), "influencer_added", nil); err != nil {
		t.Fatal(err)
	}
	all, err := db.LoadEventsRange(ctx, base, base.Add(time.Hour), "")
	if err != nil || len(all) != 2 {
		t.Fatalf("range all: %v %v", all, err)
	}
	if all[0].Payload != `{"campaign":"campaign1"}` || !all[0].TS.Equal(base) {
		t.Fatalf("first event: %+v", all[0])
	}
	added, err := db.LoadEventsRange(ctx, base, base.Add(3*time.Hour), "influencer_added")
	if err != nil || len(added) != 2 {
		t.Fatalf("typed range: %v %v", added, err)
	}
}
