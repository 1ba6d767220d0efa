package hashtable

import (
	"math/rand"
	"testing"
)

func mod4(key uint32) uint32 { return key % 4 }

// chainKeys returns the keys of bucket b from head to tail.
func chainKeys[V any](t *Table[V], b int) []uint32 {
	var keys []uint32
	for e := t.buckets[b]; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func equalKeys(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_ZeroBucketsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0, ...) did not panic")
		}
	}()
	New[string](0, mod4)
}

func TestNew_BucketsStartEmpty(t *testing.T) {
	tbl := New[string](4, mod4)
	if tbl.Buckets() != 4 {
		t.Errorf("Buckets() = %d, want 4", tbl.Buckets())
	}
	for b := 0; b < 4; b++ {
		if keys := chainKeys(tbl, b); len(keys) != 0 {
			t.Errorf("bucket %d = %v, want empty", b, keys)
		}
	}
}

func TestInsert_ChainsAtHead(t *testing.T) {
	tbl := New[string](4, mod4)
	tbl.Insert(5, "five")
	tbl.Insert(9, "nine")
	tbl.Insert(2, "two")

	if got := chainKeys(tbl, 1); !equalKeys(got, []uint32{9, 5}) {
		t.Errorf("bucket 1 = %v, want [9 5]", got)
	}
	if got := chainKeys(tbl, 2); !equalKeys(got, []uint32{2}) {
		t.Errorf("bucket 2 = %v, want [2]", got)
	}
	if v, ok := tbl.Get(9); !ok || v != "nine" {
		t.Errorf("Get(9) = %q, %v, want \"nine\", true", v, ok)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
}

func TestInsert_ReplaceReturnsOld(t *testing.T) {
	tbl := New[string](4, mod4)
	if _, replaced := tbl.Insert(5, "a"); replaced {
		t.Error("first Insert(5) reported a replacement")
	}
	old, replaced := tbl.Insert(5, "b")
	if !replaced || old != "a" {
		t.Errorf("Insert(5, b) = %q, %v, want \"a\", true", old, replaced)
	}
	if got := chainKeys(tbl, 1); !equalKeys(got, []uint32{5}) {
		t.Errorf("bucket 1 = %v, want a single entry", got)
	}
	if v, _ := tbl.Get(5); v != "b" {
		t.Errorf("Get(5) = %q, want \"b\"", v)
	}
}

func TestRemove_TailKeepsChain(t *testing.T) {
	tbl := New[string](4, mod4)
	tbl.Insert(5, "five")
	tbl.Insert(9, "nine")
	tbl.Insert(2, "two")

	v, ok := tbl.Remove(5)
	if !ok || v != "five" {
		t.Fatalf("Remove(5) = %q, %v, want \"five\", true", v, ok)
	}
	if v, ok := tbl.Get(9); !ok || v != "nine" {
		t.Errorf("Get(9) after Remove(5) = %q, %v, want \"nine\", true", v, ok)
	}
	if tbl.Has(5) {
		t.Error("Has(5) = true after Remove")
	}
}

func TestRemove_HeadKeepsChain(t *testing.T) {
	tbl := New[string](4, mod4)
	tbl.Insert(5, "five")
	tbl.Insert(9, "nine")
	tbl.Insert(13, "thirteen")

	if _, ok := tbl.Remove(13); !ok {
		t.Fatal("Remove(13) = false, want true")
	}
	if got := chainKeys(tbl, 1); !equalKeys(got, []uint32{9, 5}) {
		t.Errorf("bucket 1 = %v, want [9 5]", got)
	}
	if _, ok := tbl.Remove(9); !ok {
		t.Fatal("Remove(9) = false, want true")
	}
	if v, ok := tbl.Get(5); !ok || v != "five" {
		t.Errorf("Get(5) = %q, %v, want \"five\", true", v, ok)
	}
}

func TestRemove_AbsentLeavesTableUnchanged(t *testing.T) {
	tbl := New[string](4, mod4)
	tbl.Insert(5, "five")
	tbl.Insert(9, "nine")
	tbl.Insert(2, "two")

	before := make([][]uint32, 4)
	for b := range before {
		before[b] = chainKeys(tbl, b)
	}

	for _, key := range []uint32{1, 13, 6, 0} {
		if v, ok := tbl.Remove(key); ok {
			t.Errorf("Remove(%d) = %q, true, want absent", key, v)
		}
	}
	for b := range before {
		if got := chainKeys(tbl, b); !equalKeys(got, before[b]) {
			t.Errorf("bucket %d = %v, want %v", b, got, before[b])
		}
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
}

func TestDelete_ReleasesValue(t *testing.T) {
	var released []string
	tbl := New(4, mod4, WithRelease(func(_ uint32, v string) {
		released = append(released, v)
	}))
	tbl.Insert(5, "five")
	tbl.Delete(5)
	tbl.Delete(5)

	if len(released) != 1 || released[0] != "five" {
		t.Errorf("released = %v, want [five]", released)
	}
	if tbl.Has(5) {
		t.Error("Has(5) = true after Delete")
	}
}

func TestRemove_DoesNotRelease(t *testing.T) {
	calls := 0
	tbl := New(4, mod4, WithRelease(func(uint32, int) { calls++ }))
	tbl.Insert(1, 1)
	tbl.Insert(1, 2)
	tbl.Remove(1)
	if calls != 0 {
		t.Errorf("release called %d times, want 0 (caller owns removed and displaced values)", calls)
	}
}

func TestDestroy_ReleasesEverything(t *testing.T) {
	live := make(map[uint32]bool)
	tbl := New(3, func(k uint32) uint32 { return k }, WithRelease(func(k uint32, _ *int) {
		if !live[k] {
			t.Errorf("key %d released twice or never inserted", k)
		}
		delete(live, k)
	}))

	for k := uint32(0); k < 100; k++ {
		n := int(k)
		tbl.Insert(k, &n)
		live[k] = true
	}

	tbl.Destroy()
	if len(live) != 0 {
		t.Errorf("%d values leaked after Destroy", len(live))
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d after Destroy, want 0", tbl.Len())
	}
	for b := 0; b < tbl.Buckets(); b++ {
		if keys := chainKeys(tbl, b); len(keys) != 0 {
			t.Errorf("bucket %d = %v after Destroy, want empty", b, keys)
		}
	}

	// A second teardown finds nothing to release.
	tbl.Destroy()
}

func TestTable_MatchesReferenceMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tbl := New[int](7, func(k uint32) uint32 { return k })
	ref := make(map[uint32]int)

	for i := 0; i < 5000; i++ {
		key := uint32(rng.Intn(64))
		switch rng.Intn(3) {
		case 0, 1:
			old, replaced := tbl.Insert(key, i)
			want, present := ref[key]
			if replaced != present || (present && old != want) {
				t.Fatalf("step %d: Insert(%d) = %d, %v, want %d, %v", i, key, old, replaced, want, present)
			}
			ref[key] = i
		case 2:
			v, ok := tbl.Remove(key)
			want, present := ref[key]
			if ok != present || (present && v != want) {
				t.Fatalf("step %d: Remove(%d) = %d, %v, want %d, %v", i, key, v, ok, want, present)
			}
			delete(ref, key)
		}
	}

	if tbl.Len() != len(ref) {
		t.Errorf("Len() = %d, want %d", tbl.Len(), len(ref))
	}
	for key := uint32(0); key < 64; key++ {
		v, ok := tbl.Get(key)
		want, present := ref[key]
		if ok != present || v != want {
			t.Errorf("Get(%d) = %d, %v, want %d, %v", key, v, ok, want, present)
		}
	}

	seen := 0
	tbl.Each(func(key uint32, v int) {
		seen++
		if ref[key] != v {
			t.Errorf("Each visited %d=%d, want %d", key, v, ref[key])
		}
	})
	if seen != len(ref) {
		t.Errorf("Each visited %d entries, want %d", seen, len(ref))
	}
}

func TestStats(t *testing.T) {
	tbl := New[string](4, mod4)
	tbl.Insert(1, "a")
	tbl.Insert(5, "b")
	tbl.Insert(9, "c")
	tbl.Insert(2, "d")

	s := tbl.Stats()
	if s.Entries != 4 || s.UsedBuckets != 2 || s.LongestChain != 3 {
		t.Errorf("Stats() = %+v, want 4 entries, 2 used buckets, longest chain 3", s)
	}
	if s.LoadFactor != 1.0 {
		t.Errorf("LoadFactor = %v, want 1", s.LoadFactor)
	}
}
