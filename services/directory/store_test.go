package directory

import (
	"reflect"
	"testing"

	"handymatch/models"
)

func testSeed() []models.Professional {
	return []models.Professional{
		{ID: "a", Name: "Ana", Category: models.CategoryElectrician, Rating: 4.8, HourlyRate: 95, Distance: "2.5 km", Email: "ana@example.com"},
		{ID: "b", Name: "Bruno", Category: models.CategoryPlumber, Rating: 4.9, HourlyRate: 85, Distance: "1.2 km", Email: "bruno@example.com"},
		{ID: "c", Name: "Clara", Category: models.CategoryElectrician, Rating: 4.8, HourlyRate: 80, Distance: "6.7 km", Email: "clara@example.com"},
		{ID: "d", Name: "Davi", Category: models.CategoryPlumber, Rating: 4.5, HourlyRate: 110, Distance: "4.8 km", Email: "davi@example.com"},
	}
}

func ids(pros []models.Professional) []string {
	out := make([]string, len(pros))
	for i, p := range pros {
		out[i] = p.ID
	}
	return out
}

func TestAddPrependsRecord(t *testing.T) {
	store := NewStore(testSeed())
	store.Add(models.Professional{ID: "new", Category: models.CategoryPainter, Email: "new@example.com"})

	snapshot := store.Snapshot()
	if snapshot[0].ID != "new" {
		t.Fatalf("expected new record first, got %s", snapshot[0].ID)
	}
	if store.Len() != 5 {
		t.Fatalf("expected 5 records, got %d", store.Len())
	}
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	store := NewStore(testSeed())
	filter := models.CategoryElectrician
	got := store.Query(&filter, SortByRating)

	// Both electricians share a rating; the stable sort keeps their
	// original relative order.
	if !reflect.DeepEqual(ids(got), []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", ids(got))
	}
}

func TestUnmatchedFilterYieldsEmptyNotError(t *testing.T) {
	store := NewStore(testSeed())
	filter := models.CategoryRoofer
	got := store.Query(&filter, SortByRating)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}

func TestSortByRatingDescending(t *testing.T) {
	store := NewStore(testSeed())
	got := store.Query(nil, SortByRating)
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("rating order violated at %d: %v", i, ids(got))
		}
	}
	if got[0].ID != "b" {
		t.Fatalf("expected highest-rated first, got %s", got[0].ID)
	}
}

func TestSortByPriceAscending(t *testing.T) {
	store := NewStore(testSeed())
	got := store.Query(nil, SortByPrice)
	if !reflect.DeepEqual(ids(got), []string{"c", "b", "a", "d"}) {
		t.Fatalf("expected [c b a d], got %v", ids(got))
	}
}

func TestSortByDistanceAscending(t *testing.T) {
	store := NewStore(testSeed())
	got := store.Query(nil, SortByDistance)
	if !reflect.DeepEqual(ids(got), []string{"b", "a", "d", "c"}) {
		t.Fatalf("expected [b a d c], got %v", ids(got))
	}
}

func TestQueryIsDeterministicAndPure(t *testing.T) {
	store := NewStore(testSeed())
	filter := models.CategoryPlumber

	first := store.Query(&filter, SortByPrice)
	second := store.Query(&filter, SortByPrice)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated query diverged: %v vs %v", ids(first), ids(second))
	}

	// Sorting a query result must not disturb the underlying order.
	store.Query(nil, SortByPrice)
	if !reflect.DeepEqual(ids(store.Snapshot()), []string{"a", "b", "c", "d"}) {
		t.Fatalf("query mutated the store: %v", ids(store.Snapshot()))
	}
}

func TestRemoveByEmailIsIdempotent(t *testing.T) {
	store := NewStore(testSeed())

	if removed := store.RemoveByEmail("clara@example.com"); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if removed := store.RemoveByEmail("clara@example.com"); removed != 0 {
		t.Fatalf("expected 0 removed on repeat, got %d", removed)
	}
	if _, ok := store.FindByEmail("clara@example.com"); ok {
		t.Fatal("removed record still findable")
	}
	for _, p := range store.Query(nil, SortByRating) {
		if p.ID == "c" {
			t.Fatal("removed record still returned by query")
		}
	}
}

func TestDistanceParsing(t *testing.T) {
	near := models.Professional{Distance: "1,5 km"}
	far := models.Professional{Distance: "12.0 km"}
	unknown := models.Professional{Distance: "perto"}

	if near.DistanceKM() != 1.5 {
		t.Fatalf("expected 1.5, got %v", near.DistanceKM())
	}
	if far.DistanceKM() != 12.0 {
		t.Fatalf("expected 12.0, got %v", far.DistanceKM())
	}
	if unknown.DistanceKM() <= far.DistanceKM() {
		t.Fatal("unparseable distance should sort after parseable ones")
	}
}
