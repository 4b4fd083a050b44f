package models

import (
	"testing"
	"time"
)

func TestMarkCompleteThenIncomplete(t *testing.T) {
	item := CleaningChecklistItem{ID: "c1", Name: "Degrease hood", Area: "Kitchen"}

	now := time.Now()
	item.MarkComplete("Sam", "Used degreaser X", now)

	if !item.Completed {
		t.Error("item should be completed")
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(now) {
		t.Error("completedAt should be set")
	}
	if item.CompletedBy != "Sam" || item.Notes != "Used degreaser X" {
		t.Error("completion metadata should be recorded")
	}

	// Reopening must not leave stale completion metadata behind
	item.MarkIncomplete()

	if item.Completed {
		t.Error("item should no longer be completed")
	}
	if item.CompletedAt != nil {
		t.Error("completedAt should be cleared")
	}
	if item.CompletedBy != "" {
		t.Error("completedBy should be cleared")
	}
	if item.Notes != "" {
		t.Error("notes should be cleared")
	}
}

func TestValidFrequency(t *testing.T) {
	for _, f := range []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAsNeeded} {
		if !ValidFrequency(f) {
			t.Errorf("%q should be valid", f)
		}
	}
	for _, f := range []string{"", "hourly", "Daily"} {
		if ValidFrequency(f) {
			t.Errorf("%q should be invalid", f)
		}
	}
}
