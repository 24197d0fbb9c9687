package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", `[
		{"slack_id":"U1","username":"ada","projects_count":3,"coding_time_seconds":7200,"devlogs_count":9,"badges":["early"]},
		{"slack_id":"U2","username":"grace","projects_count":5,"coding_time_seconds":3600,"devlogs_count":2},
		{"slack_id":"U3","username":"linus","projects_count":1,"coding_time_seconds":9000,"devlogs_count":4}
	]`)
	writeFixture(t, dir, "projects.json", `[
		{"slack_id":"U1","title":"Reef Scanner","description":"Sonar toy","category":"hardware","total_seconds_coded":5000,"devlogs_count":7,"created_at":"2025-07-01T00:00:00Z"},
		{"slack_id":"U2","title":"Shell Shop","description":"Web store","category":"web","total_seconds_coded":2000,"devlogs_count":3,"created_at":"2025-08-01T00:00:00Z"},
		{"slack_id":"U2","title":"","description":"untitled scrap"},
		{"slack_id":"U3","title":"Tide Clock","description":"Moon math","category":"hardware","total_seconds_coded":8000,"devlogs_count":1,"created_at":"2025-06-01T00:00:00Z"}
	]`)
	writeFixture(t, dir, "shells.json", `[
		{"slack_id":"U1","shells":420},
		{"slack_id":"U2","shells":900},
		{"slack_id":"U2","shells":100},
		{"slack_id":"U3","shells":50}
	]`)
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return d
}

func TestLoadJoinsShells(t *testing.T) {
	d := loadFixture(t)
	if got := d.UserShells("U2"); got != 1000 {
		t.Fatalf("UserShells(U2) = %d, want 1000", got)
	}
	if got := d.UserShells("unknown"); got != 0 {
		t.Fatalf("UserShells(unknown) = %d, want 0", got)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	d, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() on empty dir error = %v", err)
	}
	if len(d.Users) != 0 || len(d.Projects) != 0 {
		t.Fatalf("expected empty dataset, got %+v", d)
	}
	if rows := d.TopUsers("shells", 10); len(rows) != 0 {
		t.Fatalf("TopUsers on empty = %+v", rows)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", `{"not": "a user shape`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for corrupt users.json")
	}
}

func TestLoadUsersObjectShape(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", `{
		"1001": {"slack_id":"U9","username":"mel","projects_count":2},
		"1002": {"slack_id":"U8","username":"kay","projects_count":4}
	}`)
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Users) != 2 {
		t.Fatalf("users = %+v", d.Users)
	}
}

func TestTopUsersMetrics(t *testing.T) {
	d := loadFixture(t)
	cases := []struct {
		by    string
		first string
	}{
		{"shells", "grace"},
		{"hours", "linus"},
		{"projects", "grace"},
		{"devlogs", "ada"},
		{"bogus", "grace"},
	}
	for _, tc := range cases {
		rows := d.TopUsers(tc.by, 0)
		if len(rows) != 3 {
			t.Fatalf("TopUsers(%s) len = %d", tc.by, len(rows))
		}
		if rows[0].Username != tc.first {
			t.Fatalf("TopUsers(%s) first = %s, want %s", tc.by, rows[0].Username, tc.first)
		}
		if rows[0].Rank != 1 || rows[2].Rank != 3 {
			t.Fatalf("TopUsers(%s) ranks = %d..%d", tc.by, rows[0].Rank, rows[2].Rank)
		}
	}
	if rows := d.TopUsers("shells", 2); len(rows) != 2 {
		t.Fatalf("limit ignored: %d rows", len(rows))
	}
}

func TestSearchProjects(t *testing.T) {
	d := loadFixture(t)

	all := d.SearchProjects("", "", "devlogs", 0)
	if len(all) != 3 {
		t.Fatalf("expected untitled project dropped, got %d", len(all))
	}
	if all[0].Title != "Reef Scanner" {
		t.Fatalf("devlogs sort first = %s", all[0].Title)
	}

	byQuery := d.SearchProjects("tide", "", "devlogs", 0)
	if len(byQuery) != 1 || byQuery[0].Title != "Tide Clock" {
		t.Fatalf("query match = %+v", byQuery)
	}

	byCategory := d.SearchProjects("", "hardware", "hours", 0)
	if len(byCategory) != 2 || byCategory[0].Title != "Tide Clock" {
		t.Fatalf("category+hours = %+v", byCategory)
	}

	newest := d.SearchProjects("", "", "newest", 1)
	if len(newest) != 1 || newest[0].Title != "Shell Shop" {
		t.Fatalf("newest = %+v", newest)
	}
}

func TestStats(t *testing.T) {
	d := loadFixture(t)
	s := d.Stats()
	if s.Users != 3 || s.Projects != 4 {
		t.Fatalf("counts = %d users %d projects", s.Users, s.Projects)
	}
	if s.TotalShells != 1470 {
		t.Fatalf("TotalShells = %d, want 1470", s.TotalShells)
	}
	if s.TotalCodingSeconds != 19800 || s.TotalDevlogs != 15 {
		t.Fatalf("totals = %+v", s)
	}
	if s.ProjectsByCategory["hardware"] != 2 || s.ProjectsByCategory["web"] != 1 {
		t.Fatalf("categories = %+v", s.ProjectsByCategory)
	}
	if len(s.TopMakers) != 3 || s.TopMakers[0].Username != "grace" {
		t.Fatalf("top makers = %+v", s.TopMakers)
	}
}
