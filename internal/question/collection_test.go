package question

import (
	"reflect"
	"sync"
	"testing"
)

func sampleCollection(t *testing.T) *Collection {
	t.Helper()
	records := []Question{
		{ID: "a", Text: "A?", Difficulty: DifficultyHard, Topic: "Lookup", IdealAnswer: "a"},
		{ID: "b", Text: "B?", Difficulty: DifficultyEasy, Topic: "Formulas", IdealAnswer: "b"},
		{ID: "c", Text: "C?", Difficulty: DifficultyMedium, Topic: "Lookup", IdealAnswer: "c"},
		{ID: "d", Text: "D?", Difficulty: DifficultyEasy, Topic: "Charts", IdealAnswer: "d"},
	}
	collection, err := NewCollection(records)
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	return collection
}

func TestNewCollectionRejectsInvalid(t *testing.T) {
	collection, err := NewCollection([]Question{{ID: "x"}})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if collection != nil {
		t.Fatalf("expected nil collection")
	}
}

func TestCollectionIsolatedFromInput(t *testing.T) {
	records := []Question{validRecord("q1")}
	collection, err := NewCollection(records)
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	records[0].Text = "changed"
	got := collection.Records()
	got[0].Topic = "changed"
	stored, _ := collection.Get("q1")
	if stored.Text == "changed" || stored.Topic == "changed" {
		t.Fatalf("collection mutated through caller slices: %+v", stored)
	}
}

func TestCollectionQueries(t *testing.T) {
	collection := sampleCollection(t)

	if got := collection.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("unexpected ids %v", got)
	}
	if got := collection.Topics(); !reflect.DeepEqual(got, []string{"Lookup", "Formulas", "Charts"}) {
		t.Fatalf("unexpected topics %v", got)
	}
	if _, ok := collection.Get("missing"); ok {
		t.Fatalf("expected missing id lookup to fail")
	}

	lookup := collection.Filter(Filter{Topic: "Lookup"})
	if len(lookup) != 2 || lookup[0].ID != "a" || lookup[1].ID != "c" {
		t.Fatalf("unexpected topic filter result %+v", lookup)
	}
	easy := collection.Filter(Filter{Difficulty: DifficultyEasy})
	if len(easy) != 2 || easy[0].ID != "b" || easy[1].ID != "d" {
		t.Fatalf("unexpected difficulty filter result %+v", easy)
	}
	none := collection.Filter(Filter{Difficulty: DifficultyEasy, Topic: "Lookup"})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
	if all := collection.Filter(Filter{}); len(all) != collection.Len() {
		t.Fatalf("expected empty filter to match all, got %d", len(all))
	}
}

func TestSortedByDifficultyIsStable(t *testing.T) {
	collection := sampleCollection(t)
	sorted := collection.SortedByDifficulty()
	ids := make([]string, 0, len(sorted))
	for _, q := range sorted {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"b", "d", "c", "a"}) {
		t.Fatalf("unexpected order %v", ids)
	}
	if collection.IDs()[0] != "a" {
		t.Fatalf("sorting must not reorder the collection")
	}
}

func TestFingerprintAndEqual(t *testing.T) {
	first := sampleCollection(t)
	second := sampleCollection(t)
	if !Equal(first, second) {
		t.Fatalf("expected identical collections to be equal")
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Fatalf("expected identical fingerprints")
	}
	if len(first.Fingerprint()) != 64 {
		t.Fatalf("expected sha256 hex digest, got %q", first.Fingerprint())
	}

	reordered, err := NewCollection(first.SortedByDifficulty())
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	if Equal(first, reordered) {
		t.Fatalf("expected different order to be unequal")
	}
	if first.Fingerprint() == reordered.Fingerprint() {
		t.Fatalf("expected order to change the fingerprint")
	}
}

func TestCollectionConcurrentReaders(t *testing.T) {
	collection := sampleCollection(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := collection.Get("c"); !ok {
					t.Errorf("expected c to exist")
					return
				}
				_ = collection.Filter(Filter{Topic: "Lookup"})
				_ = collection.Fingerprint()
			}
		}()
	}
	wg.Wait()
}
