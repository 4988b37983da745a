package models

import (
	"strings"
	"testing"

	"github.com/studyapp/studygroup/internal/apperr"
)

func TestValidateStudyGroupName_Bounds(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"too short", "Abcd", true},
		{"minimum length", "Abcde", false},
		{"maximum length", strings.Repeat("a", 30), false},
		{"too long", strings.Repeat("a", 31), true},
		{"empty", "", true},
		{"whitespace only", "     ", true},
		{"short after trimming", "  abc   ", true},
		{"valid after trimming", "  Algebra Wizards  ", false},
		{"multibyte characters counted as runes", "数学学习小组数学学习小组", false},
		{"multibyte maximum length", strings.Repeat("数", 30), false},
		{"multibyte too short", "数学", true},
		{"multibyte too long", strings.Repeat("数", 31), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStudyGroupName(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				if apperr.KindOf(err) != apperr.KindInvalidArgument {
					t.Fatalf("expected invalid argument kind, got %v", apperr.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error for %q, got %v", tc.input, err)
			}
		})
	}
}

func TestAddUser_Idempotent(t *testing.T) {
	group := StudyGroup{Name: "Algebra Wizards", Subject: SubjectMath}
	user := User{ID: 1, Name: "John Doe", Email: "john@example.com"}

	if err := group.AddUser(&user); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := group.AddUser(&user); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(group.Members) != 1 {
		t.Fatalf("expected 1 member after duplicate add, got %d", len(group.Members))
	}
	if !group.HasMember(1) {
		t.Fatalf("expected user 1 to be a member")
	}
}

func TestAddUser_NilUser(t *testing.T) {
	group := StudyGroup{Name: "Algebra Wizards", Subject: SubjectMath}
	err := group.AddUser(nil)
	if err == nil {
		t.Fatalf("expected error for nil user")
	}
	if apperr.KindOf(err) != apperr.KindInvalidArgument {
		t.Fatalf("expected invalid argument kind, got %v", apperr.KindOf(err))
	}
}

func TestRemoveUser_AbsentIsNoOp(t *testing.T) {
	group := StudyGroup{Name: "Algebra Wizards", Subject: SubjectMath}
	user := User{ID: 1, Name: "John Doe", Email: "john@example.com"}

	if err := group.RemoveUser(&user); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if err := group.RemoveUser(&user); err != nil {
		t.Fatalf("remove absent twice: %v", err)
	}
	if len(group.Members) != 0 {
		t.Fatalf("expected empty member set, got %d", len(group.Members))
	}
}

func TestRemoveUser_RemovesByID(t *testing.T) {
	group := StudyGroup{Name: "Algebra Wizards", Subject: SubjectMath}
	first := User{ID: 1, Name: "John Doe", Email: "john@example.com"}
	second := User{ID: 2, Name: "Jane Smith", Email: "jane@example.com"}

	if err := group.AddUser(&first); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := group.AddUser(&second); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if err := group.RemoveUser(&first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(group.Members) != 1 || group.Members[0].ID != 2 {
		t.Fatalf("expected only user 2 to remain, got %+v", group.Members)
	}
}

func TestRemoveUser_NilUser(t *testing.T) {
	group := StudyGroup{Name: "Algebra Wizards", Subject: SubjectMath}
	if err := group.RemoveUser(nil); err == nil {
		t.Fatalf("expected error for nil user")
	}
}

func TestParseSubject(t *testing.T) {
	cases := []struct {
		input string
		want  Subject
	}{
		{"Math", SubjectMath},
		{"math", SubjectMath},
		{"MATH", SubjectMath},
		{"chemistry", SubjectChemistry},
		{" Physics ", SubjectPhysics},
	}
	for _, tc := range cases {
		got, err := ParseSubject(tc.input)
		if err != nil {
			t.Fatalf("ParseSubject(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSubject(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseSubject_Invalid(t *testing.T) {
	for _, input := range []string{"Biology", "", "  ", "Mathematics"} {
		_, err := ParseSubject(input)
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		if apperr.KindOf(err) != apperr.KindInvalidArgument {
			t.Fatalf("expected invalid argument kind for %q, got %v", input, apperr.KindOf(err))
		}
		if !strings.Contains(err.Error(), "Math, Chemistry, Physics") {
			t.Fatalf("expected message to name valid subjects, got %q", err.Error())
		}
	}
}
