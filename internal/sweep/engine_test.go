package sweep

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/spf13/afero"
)

// lockedFs fails deletions of the listed paths the way Windows does for
// files held open by another process, and counts every attempt.
type lockedFs struct {
	afero.Fs
	locked   map[string]bool
	attempts atomic.Int64
}

func newLockedFs(base afero.Fs, locked ...string) *lockedFs {
	m := make(map[string]bool, len(locked))
	for _, p := range locked {
		m[filepath.Clean(p)] = true
	}
	return &lockedFs{Fs: base, locked: m}
}

func (l *lockedFs) Remove(name string) error {
	l.attempts.Add(1)
	if l.locked[filepath.Clean(name)] {
		return &os.PathError{Op: "remove", Path: name, Err: syscall.EBUSY}
	}
	return l.Fs.Remove(name)
}

func (l *lockedFs) RemoveAll(name string) error {
	l.attempts.Add(1)
	if l.locked[filepath.Clean(name)] {
		return &os.PathError{Op: "unlinkat", Path: name, Err: syscall.EBUSY}
	}
	return l.Fs.RemoveAll(name)
}

func writeFile(t *testing.T, fs afero.Fs, path string, size int) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := fs.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func checkTotals(t *testing.T, res Result) {
	t.Helper()
	if res.ItemsDeleted+res.ItemsFailed != res.TotalCandidates {
		t.Errorf("deleted (%d) + failed (%d) != candidates (%d)",
			res.ItemsDeleted, res.ItemsFailed, res.TotalCandidates)
	}
}

// populate builds the three-files-and-an-empty-folder scenario under dir.
func populate(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	writeFile(t, fs, filepath.Join(dir, "a.tmp"), 10)
	writeFile(t, fs, filepath.Join(dir, "b.tmp"), 20)
	writeFile(t, fs, filepath.Join(dir, "c.tmp"), 30)
	mkdir(t, fs, filepath.Join(dir, "empty"))
}

func TestSweepRemovesFilesAndFolders(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/cache"
	populate(t, fs, dir)

	res := New(fs).Sweep([]string{dir})

	want := Result{ItemsDeleted: 4, TotalCandidates: 4, BytesReclaimed: 60}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
	if res.Outcome() != Complete {
		t.Errorf("Outcome = %v, expected %v", res.Outcome(), Complete)
	}

	left, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("swept directory itself should remain: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("expected empty directory, %d entries left", len(left))
	}
}

func TestSweepOnDisk(t *testing.T) {
	fs := afero.NewOsFs()
	dir := t.TempDir()
	populate(t, fs, dir)
	writeFile(t, fs, filepath.Join(dir, "nested", "deep", "blob.bin"), 4096)

	res := New(fs, WithWorkers(2)).Sweep([]string{dir})

	want := Result{ItemsDeleted: 5, TotalCandidates: 5, BytesReclaimed: 60 + 4096}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "nested")); !os.IsNotExist(err) {
		t.Errorf("nested folder should be gone, stat err = %v", err)
	}
}

func TestSweepSubdirectoryCountsOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/cache"
	writeFile(t, fs, filepath.Join(dir, "GPUCache", "data_0"), 100)
	writeFile(t, fs, filepath.Join(dir, "GPUCache", "data_1"), 200)
	writeFile(t, fs, filepath.Join(dir, "GPUCache", "index", "idx"), 50)

	res := New(fs).Sweep([]string{dir})

	want := Result{ItemsDeleted: 1, TotalCandidates: 1, BytesReclaimed: 350}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
}

func TestSweepLockedFiles(t *testing.T) {
	base := afero.NewMemMapFs()
	dir := "/temp"
	for i, name := range []string{"1.log", "2.log", "3.log", "4.log", "5.log"} {
		writeFile(t, base, filepath.Join(dir, name), (i+1)*100)
	}
	fs := newLockedFs(base, filepath.Join(dir, "2.log"), filepath.Join(dir, "4.log"))

	res := New(fs).Sweep([]string{dir})
	checkTotals(t, res)

	want := Result{ItemsDeleted: 3, ItemsFailed: 2, TotalCandidates: 5, BytesReclaimed: 100 + 300 + 500}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
	if res.Outcome() != Partial {
		t.Errorf("Outcome = %v, expected %v", res.Outcome(), Partial)
	}
}

func TestSweepFailedFolderAddsNoBytes(t *testing.T) {
	base := afero.NewMemMapFs()
	dir := "/cache"
	writeFile(t, base, filepath.Join(dir, "busy", "f"), 1000)
	writeFile(t, base, filepath.Join(dir, "ok.bin"), 7)
	fs := newLockedFs(base, filepath.Join(dir, "busy"))

	res := New(fs).Sweep([]string{dir})
	checkTotals(t, res)

	want := Result{ItemsDeleted: 1, ItemsFailed: 1, TotalCandidates: 2, BytesReclaimed: 7}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
}

func TestSweepNothingRemoved(t *testing.T) {
	base := afero.NewMemMapFs()
	dir := "/cache"
	writeFile(t, base, filepath.Join(dir, "in-use.db"), 64)
	fs := newLockedFs(base, filepath.Join(dir, "in-use.db"))

	released := 0
	e := New(fs)
	e.releaseMemory = func() { released++ }

	res := e.Sweep([]string{dir})
	if res.Outcome() != NothingRemoved {
		t.Errorf("Outcome = %v, expected %v", res.Outcome(), NothingRemoved)
	}
	if res.BytesReclaimed != 0 {
		t.Errorf("BytesReclaimed = %d, expected 0", res.BytesReclaimed)
	}
	if released != 0 {
		t.Errorf("memory released %d times after removing nothing", released)
	}
}

func TestSweepEmptyMakesNoAttempts(t *testing.T) {
	base := afero.NewMemMapFs()
	mkdir(t, base, "/a")
	mkdir(t, base, "/b")
	fs := newLockedFs(base)

	res := New(fs).Sweep([]string{"/a", "/b", "/missing"})

	if res != (Result{}) {
		t.Errorf("Sweep() = %+v, expected zero result", res)
	}
	if res.Outcome() != Empty {
		t.Errorf("Outcome = %v, expected %v", res.Outcome(), Empty)
	}
	if n := fs.attempts.Load(); n != 0 {
		t.Errorf("expected no deletion attempts, got %d", n)
	}
}

func TestSweepTwiceIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/cache"
	populate(t, fs, dir)
	e := New(fs)

	first := e.Sweep([]string{dir})
	if first.Outcome() != Complete {
		t.Fatalf("first sweep outcome = %v, expected %v", first.Outcome(), Complete)
	}

	second := e.Sweep([]string{dir})
	if second.Outcome() != Empty {
		t.Errorf("second sweep outcome = %v, expected %v", second.Outcome(), Empty)
	}
}

func TestSweepMultipleDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	populate(t, fs, "/one")
	writeFile(t, fs, "/two/x", 5)
	mkdir(t, fs, "/two/y")

	released := 0
	e := New(fs)
	e.releaseMemory = func() { released++ }

	// Duplicates are swept once.
	res := e.Sweep([]string{"/one", "/two", "/one/"})

	want := Result{ItemsDeleted: 6, TotalCandidates: 6, BytesReclaimed: 65}
	if res != want {
		t.Errorf("Sweep() = %+v, expected %+v", res, want)
	}
	if released != 1 {
		t.Errorf("memory released %d times, expected 1", released)
	}
}

func TestSweepOrderIndependent(t *testing.T) {
	build := func() afero.Fs {
		base := afero.NewMemMapFs()
		for i := 0; i < 40; i++ {
			writeFile(t, base, filepath.Join("/c", "f"+strconv.Itoa(i)), i+1)
		}
		for i := 0; i < 10; i++ {
			writeFile(t, base, filepath.Join("/c", "d"+strconv.Itoa(i), "inner"), 1000)
		}
		return newLockedFs(base, "/c/f0", "/c/d3", "/c/f25")
	}

	orders := map[string]func([]candidate){
		"enumeration": nil,
		"reversed":    func(c []candidate) { slices.Reverse(c) },
		"shuffled": func(c []candidate) {
			r := rand.New(rand.NewSource(42))
			r.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
		},
		"dirs first": func(c []candidate) {
			slices.SortStableFunc(c, func(a, b candidate) int {
				switch {
				case a.isDir == b.isDir:
					return 0
				case a.isDir:
					return -1
				default:
					return 1
				}
			})
		},
	}

	var baseline *Result
	for name, arrange := range orders {
		e := New(build(), WithWorkers(8))
		e.arrange = arrange
		res := e.Sweep([]string{"/c"})
		checkTotals(t, res)

		if baseline == nil {
			baseline = &res
			continue
		}
		if res != *baseline {
			t.Errorf("%s order: Sweep() = %+v, expected %+v", name, res, *baseline)
		}
	}

	if baseline.ItemsFailed != 3 || baseline.TotalCandidates != 50 {
		t.Errorf("unexpected baseline %+v", *baseline)
	}
}

func TestSweepManyFilesConcurrently(t *testing.T) {
	fs := afero.NewMemMapFs()
	var want int64
	for i := 0; i < 500; i++ {
		writeFile(t, fs, filepath.Join("/bulk", "f"+strconv.Itoa(i)), i)
		want += int64(i)
	}

	res := New(fs, WithWorkers(16)).Sweep([]string{"/bulk"})
	checkTotals(t, res)

	if res.ItemsDeleted != 500 || res.BytesReclaimed != want {
		t.Errorf("Sweep() = %+v, expected 500 items and %d bytes", res, want)
	}
}

func TestRemoveVanishedFolderFails(t *testing.T) {
	e := New(afero.NewMemMapFs())

	r := e.remove(candidate{path: "/gone", isDir: true})
	if r.Removed() {
		t.Error("removing a vanished folder should fail")
	}

	r = e.remove(candidate{path: "/gone.txt"})
	if r.Removed() {
		t.Error("removing a vanished file should fail")
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		res  Result
		want Outcome
	}{
		{Result{}, Empty},
		{Result{ItemsFailed: 2, TotalCandidates: 2}, NothingRemoved},
		{Result{ItemsDeleted: 1, ItemsFailed: 1, TotalCandidates: 2}, Partial},
		{Result{ItemsDeleted: 2, TotalCandidates: 2}, Complete},
	}

	for _, tt := range tests {
		if got := tt.res.Outcome(); got != tt.want {
			t.Errorf("%+v.Outcome() = %v, expected %v", tt.res, got, tt.want)
		}
	}
}
