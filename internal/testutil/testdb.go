package testutil

import (
	"path/filepath"
	"testing"

	"shell-casino/internal/store"
)

// OpenTestStore opens a throwaway snapshot store on a temp file. The
// file and the handle go away with the test.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "casino-test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close test store: %v", err)
		}
	})
	return st
}
