package snapshots

import (
	"os"
	"testing"
)

func TestFSStoreLoadSeason(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	if err := w.WriteSeasonSnapshot("2022-23", seasonRecords("2022-23", "BOS")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewFSStore(dir)
	snap, err := store.LoadSeason("2022-23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Season != "2022-23" || snap.Count != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if len(snap.Records) != 1 || snap.Records[0].Team != "BOS" {
		t.Fatalf("unexpected records: %+v", snap.Records)
	}
	if snap.Records[0].RestDays == nil || *snap.Records[0].RestDays != 1 {
		t.Fatalf("rest days not preserved through JSON: %v", snap.Records[0].RestDays)
	}
}

func TestFSStoreLoadMissingSeason(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadSeason("1999-00"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFSStoreRequiresSeason(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadSeason(""); err == nil {
		t.Fatal("expected error for empty season")
	}
}

func TestFSStoreListSeasons(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	for _, season := range []string{"2021-22", "2022-23"} {
		if err := w.WriteSeasonSnapshot(season, seasonRecords(season, "BOS")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	store := NewFSStore(dir)
	tags, err := store.ListSeasons()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0] != "2021-22" || tags[1] != "2022-23" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestFSStoreListSeasonsWithoutManifest(t *testing.T) {
	store := NewFSStore(t.TempDir())
	tags, err := store.ListSeasons()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", tags)
	}
}
