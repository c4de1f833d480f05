package sheet_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/campus-conduct/drl-server/internal/db"
	"github.com/campus-conduct/drl-server/internal/sheet"
)

func openSQLStore(t *testing.T) *sheet.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "sheets.db")
	h, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return sheet.NewSQLStore(h)
}

func TestSQLStorePagination(t *testing.T) {
	st := openSQLStore(t)
	ctx := context.Background()
	for _, id := range []string{"sv001", "sv002", "sv003"} {
		if err := st.Put(ctx, sheet.NewSheet(id, "HK1_2024")); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	// offset alone must skip rows, same as the in-memory store
	got, err := st.List(ctx, sheet.ListOpts{PeriodID: "HK1_2024", Offset: 1})
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(got) != 2 || got[0].StudentID != "sv002" || got[1].StudentID != "sv003" {
		t.Fatalf("offset-only list wrong: %+v", got)
	}

	got, err = st.List(ctx, sheet.ListOpts{PeriodID: "HK1_2024", Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list limit+offset: %v", err)
	}
	if len(got) != 1 || got[0].StudentID != "sv002" {
		t.Fatalf("limit+offset list wrong: %+v", got)
	}

	got, err = st.List(ctx, sheet.ListOpts{PeriodID: "HK1_2024", Limit: 2})
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(got) != 2 || got[0].StudentID != "sv001" {
		t.Fatalf("limit-only list wrong: %+v", got)
	}
}
