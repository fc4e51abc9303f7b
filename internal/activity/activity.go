// Package activity projects posts into a flattened, filterable,
// date-grouped feed of reaction, comment, and status records. It is a pure
// read-side view: records are recomputed on demand and never persisted.
//
// Reactions and comments carry real event timestamps since they gained a
// Timestamp field; records without one (legacy stored data, seeds) fall
// back to a deterministic index-derived time. Ordering is therefore
// approximate chronology, not an authoritative audit trail.
package activity

import (
	"fmt"
	"sort"
	"time"

	"classroom/backend/internal/config"
	"classroom/backend/internal/models"
)

const day = 24 * time.Hour

// FromPosts explodes each post into zero-or-more activity records. now
// anchors the synthetic fallback timestamps.
func FromPosts(posts []models.Post, now time.Time) []models.Activity {
	var records []models.Activity

	for _, p := range posts {
		title := titleOf(p)
		tag := tagOf(p)

		for i, r := range p.Reactions {
			ts := r.Timestamp
			if ts.IsZero() {
				ts = now.Add(-time.Duration(i+1) * day)
			}
			records = append(records, models.Activity{
				ID:        fmt.Sprintf("%s-reaction-%s-%s", p.ID, r.User, r.Emoji),
				Kind:      models.ActivityReaction,
				PostID:    p.ID,
				PostTitle: title,
				PostTag:   tag,
				User:      r.User,
				Content:   r.Emoji,
				Timestamp: ts,
			})
		}

		for i, c := range p.Comments {
			ts := c.Timestamp
			if ts.IsZero() {
				ts = now.Add(-time.Duration(i+2) * day)
			}
			records = append(records, models.Activity{
				ID:        fmt.Sprintf("%s-comment-%s-%d", p.ID, c.User, i),
				Kind:      models.ActivityComment,
				PostID:    p.ID,
				PostTitle: title,
				PostTag:   tag,
				User:      c.User,
				Content:   c.Content,
				Timestamp: ts,
			})
		}

		// One status record per post, for every status value.
		records = append(records, models.Activity{
			ID:        fmt.Sprintf("%s-status-%s", p.ID, p.Status),
			Kind:      models.ActivityStatus,
			PostID:    p.ID,
			PostTitle: title,
			PostTag:   tag,
			User:      "Admin",
			Content:   string(p.Status),
			Timestamp: p.UpdatedAt,
		})
	}

	return records
}

// Filter keeps the records matching the given kind and category tag. An
// empty kind or tag means no filtering on that axis.
func Filter(records []models.Activity, kind models.ActivityKind, tag string) []models.Activity {
	var out []models.Activity
	for _, rec := range records {
		if kind != "" && rec.Kind != kind {
			continue
		}
		if tag != "" && rec.PostTag != tag {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SortNewestFirst orders records by timestamp, newest first. The sort is
// stable so records sharing a timestamp keep their derivation order.
func SortNewestFirst(records []models.Activity) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}

// Group is one calendar day of activity records.
type Group struct {
	Label   string
	Records []models.Activity
}

// GroupByDay buckets records by calendar day, labeled Today, Yesterday, or
// a formatted date. Records are expected sorted newest-first; groups come
// out in encounter order.
func GroupByDay(records []models.Activity, now time.Time) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, rec := range records {
		label := dayLabel(rec.Timestamp, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

func dayLabel(ts, now time.Time) string {
	switch {
	case sameDay(ts, now):
		return "Today"
	case sameDay(ts, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return ts.Format("January 2, 2006")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func titleOf(p models.Post) string {
	runes := []rune(p.Content)
	if len(runes) <= config.PostTitleMaxLen {
		return p.Content
	}
	return string(runes[:config.PostTitleMaxLen]) + "..."
}

func tagOf(p models.Post) string {
	if len(p.Categories) > 0 {
		return p.Categories[0]
	}
	return config.DefaultCategory
}
