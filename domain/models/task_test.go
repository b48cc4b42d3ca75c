package models

import "testing"

func TestParseTaskStatus(t *testing.T) {
	cases := []struct {
		input string
		want  TaskStatus
	}{
		{"PENDING", StatusPending},
		{"pending", StatusPending},
		{"In_Progress", StatusInProgress},
		{"COMPLETED", StatusCompleted},
		{"cancelled", StatusCancelled},
	}

	for _, tc := range cases {
		got, err := ParseTaskStatus(tc.input)
		if err != nil {
			t.Fatalf("ParseTaskStatus(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTaskStatus(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseTaskStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "DONE", "IN PROGRESS", "ARCHIVED"} {
		if _, err := ParseTaskStatus(input); err == nil {
			t.Fatalf("ParseTaskStatus(%q) should fail", input)
		}
	}
}

func TestParseTaskPriority(t *testing.T) {
	cases := []struct {
		input string
		want  TaskPriority
	}{
		{"LOW", PriorityLow},
		{"medium", PriorityMedium},
		{"High", PriorityHigh},
		{"URGENT", PriorityUrgent},
	}

	for _, tc := range cases {
		got, err := ParseTaskPriority(tc.input)
		if err != nil {
			t.Fatalf("ParseTaskPriority(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTaskPriority(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if _, err := ParseTaskPriority("CRITICAL"); err == nil {
		t.Fatal("ParseTaskPriority(\"CRITICAL\") should fail")
	}
}

func TestParseRole(t *testing.T) {
	if role, err := ParseRole("admin"); err != nil || role != RoleAdmin {
		t.Fatalf("ParseRole(\"admin\") = %q, %v", role, err)
	}
	if role, err := ParseRole("USER"); err != nil || role != RoleUser {
		t.Fatalf("ParseRole(\"USER\") = %q, %v", role, err)
	}
	if _, err := ParseRole("superadmin"); err == nil {
		t.Fatal("ParseRole(\"superadmin\") should fail")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatal("ParseRole(\"\") should fail")
	}
}
