package model

import (
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := map[string]Priority{
		"low":      PriorityLow,
		"HIGH":     PriorityHigh,
		" Urgent ": PriorityUrgent,
		"medium":   PriorityMedium,
		"":         PriorityMedium,
		"critical": PriorityMedium,
	}
	for in, want := range tests {
		if got := ParsePriority(in); got != want {
			t.Errorf("ParsePriority(%q) = %q, want %q", in, got, want)
		}
		if !ParsePriority(in).Valid() {
			t.Errorf("ParsePriority(%q) produced an invalid priority", in)
		}
	}
}

func TestParseUserType(t *testing.T) {
	if ut, ok := ParseUserType("Gmail"); !ok || ut != UserTypeGmail {
		t.Errorf("expected gmail, got %q %v", ut, ok)
	}
	if ut, ok := ParseUserType("custom"); !ok || ut != UserTypeCustom {
		t.Errorf("expected custom, got %q %v", ut, ok)
	}
	if _, ok := ParseUserType("admin"); ok {
		t.Error("expected admin to be rejected")
	}
}

func TestOwnerValid(t *testing.T) {
	if (Owner{UserID: "u1"}).Valid() {
		t.Error("owner without user type must be invalid")
	}
	if !(Owner{UserID: "u1", UserType: UserTypeGmail}).Valid() {
		t.Error("expected valid owner")
	}
}

func TestTaskIsCompleted(t *testing.T) {
	now := time.Now()
	if (Task{Completed: true}).IsCompleted() {
		t.Error("completed without completedAt must not count")
	}
	if !(Task{Completed: true, CompletedAt: &now}).IsCompleted() {
		t.Error("expected completed task")
	}
}
