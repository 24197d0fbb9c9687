// Package dataset serves the event's static JSON snapshots: users,
// projects and shell payouts, joined by slack_id. The files are
// produced ahead of time by the scraping scripts and are read-only
// here; queries never touch the casino state.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type User struct {
	SlackID           string   `json:"slack_id"`
	Username          string   `json:"username"`
	ProjectsCount     int64    `json:"projects_count"`
	CodingTimeSeconds int64    `json:"coding_time_seconds"`
	DevlogsCount      int64    `json:"devlogs_count"`
	Badges            []string `json:"badges,omitempty"`
}

type Project struct {
	SlackID           string    `json:"slack_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category,omitempty"`
	TotalSecondsCoded int64     `json:"total_seconds_coded"`
	DevlogsCount      int64     `json:"devlogs_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type ShellRecord struct {
	SlackID string `json:"slack_id"`
	Shells  int64  `json:"shells"`
}

// LeaderRow is a user with its shell payout joined in.
type LeaderRow struct {
	Rank int `json:"rank"`
	User
	Shells int64 `json:"shells"`
}

type Stats struct {
	Users              int            `json:"users"`
	Projects           int            `json:"projects"`
	TotalShells        int64          `json:"total_shells"`
	TotalCodingSeconds int64          `json:"total_coding_seconds"`
	TotalDevlogs       int64          `json:"total_devlogs"`
	ProjectsByCategory map[string]int `json:"projects_by_category"`
	TopMakers          []LeaderRow    `json:"top_makers"`
}

type Dataset struct {
	Users    []User
	Projects []Project
	Shells   []ShellRecord

	shellsBySlack map[string]int64
}

// Load reads the snapshot files from dir. A missing file just leaves
// that slice empty; a file that exists but cannot be parsed is an
// error, surfaced at startup rather than per query.
func Load(dir string) (*Dataset, error) {
	d := &Dataset{}
	if err := readJSON(filepath.Join(dir, "users.json"), decodeUsers(&d.Users)); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "projects.json"), into(&d.Projects)); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "shells.json"), into(&d.Shells)); err != nil {
		return nil, err
	}
	d.shellsBySlack = make(map[string]int64, len(d.Shells))
	for _, r := range d.Shells {
		d.shellsBySlack[r.SlackID] += r.Shells
	}
	return d, nil
}

func readJSON(path string, decode func([]byte) error) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := decode(raw); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

func into[T any](dst *[]T) func([]byte) error {
	return func(raw []byte) error {
		return json.Unmarshal(raw, dst)
	}
}

// decodeUsers accepts both snapshot shapes seen in the wild: a plain
// array, or an object keyed by an upstream ID with users as values.
func decodeUsers(dst *[]User) func([]byte) error {
	return func(raw []byte) error {
		var arr []User
		if err := json.Unmarshal(raw, &arr); err == nil {
			*dst = arr
			return nil
		}
		var obj map[string]User
		if err := json.Unmarshal(raw, &obj); err != nil {
			return err
		}
		users := make([]User, 0, len(obj))
		for _, u := range obj {
			users = append(users, u)
		}
		sort.Slice(users, func(i, j int) bool { return users[i].SlackID < users[j].SlackID })
		*dst = users
		return nil
	}
}

// UserShells returns the joined shell payout for one user.
func (d *Dataset) UserShells(slackID string) int64 {
	return d.shellsBySlack[slackID]
}

// TopUsers ranks users by the given metric: shells, hours, projects or
// devlogs. Unknown metrics rank by shells.
func (d *Dataset) TopUsers(by string, limit int) []LeaderRow {
	rows := make([]LeaderRow, 0, len(d.Users))
	for _, u := range d.Users {
		rows = append(rows, LeaderRow{User: u, Shells: d.shellsBySlack[u.SlackID]})
	}
	less := func(a, b LeaderRow) bool { return a.Shells > b.Shells }
	switch by {
	case "hours":
		less = func(a, b LeaderRow) bool { return a.CodingTimeSeconds > b.CodingTimeSeconds }
	case "projects":
		less = func(a, b LeaderRow) bool { return a.ProjectsCount > b.ProjectsCount }
	case "devlogs":
		less = func(a, b LeaderRow) bool { return a.DevlogsCount > b.DevlogsCount }
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// SearchProjects filters by a case-insensitive query over title,
// description and category, then sorts by newest, hours or devlogs.
// Projects without a title and description are dropped, matching the
// site's gallery.
func (d *Dataset) SearchProjects(query, category, sortBy string, limit int) []Project {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Project, 0, len(d.Projects))
	for _, p := range d.Projects {
		if p.Title == "" || p.Description == "" {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	switch sortBy {
	case "newest":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case "hours":
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSecondsCoded > out[j].TotalSecondsCoded })
	default: // devlogs
		sort.SliceStable(out, func(i, j int) bool { return out[i].DevlogsCount > out[j].DevlogsCount })
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Stats aggregates the totals the stats page charts.
func (d *Dataset) Stats() Stats {
	s := Stats{
		Users:              len(d.Users),
		Projects:           len(d.Projects),
		ProjectsByCategory: map[string]int{},
	}
	for _, u := range d.Users {
		s.TotalCodingSeconds += u.CodingTimeSeconds
		s.TotalDevlogs += u.DevlogsCount
	}
	for _, r := range d.Shells {
		s.TotalShells += r.Shells
	}
	for _, p := range d.Projects {
		if p.Category != "" {
			s.ProjectsByCategory[p.Category]++
		}
	}
	s.TopMakers = d.TopUsers("shells", 5)
	return s
}
