package dto

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"plain array", `["3","4"]`, []string{"3", "4"}, false},
		{"string-wrapped array", `"[\"3\",\"4\"]"`, []string{"3", "4"}, false},
		{"empty payload", ``, nil, true},
		{"not json", `"{{nope"`, nil, true},
		{"empty list", `[]`, nil, true},
		{"object instead of list", `{"a":"b"}`, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOptions(json.RawMessage(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseOptions(%q) expected error, got %v", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions(%q) returned error: %v", tc.raw, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseOptions(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseAnsweredQuestions(t *testing.T) {
	raw := `[{"questionID":7,"selectedAnswer":"4"},{"questionID":9}]`
	answers, err := ParseAnsweredQuestions(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParseAnsweredQuestions returned error: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(answers))
	}
	if answers[0].QuestionID != 7 || answers[0].SelectedAnswer != "4" {
		t.Errorf("first answer = %+v", answers[0])
	}
	if answers[1].QuestionID != 9 {
		t.Errorf("second answer = %+v", answers[1])
	}
}

func TestParseAnsweredQuestions_StringWrapped(t *testing.T) {
	// kontrak lama: client mengirim payload sebagai string JSON
	raw := `"[{\"questionID\":7}]"`
	answers, err := ParseAnsweredQuestions(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParseAnsweredQuestions returned error: %v", err)
	}
	if len(answers) != 1 || answers[0].QuestionID != 7 {
		t.Errorf("answers = %+v", answers)
	}
}

func TestParseAnsweredQuestions_Invalid(t *testing.T) {
	invalid := []string{
		``,
		`[]`,
		`[{"selectedAnswer":"4"}]`, // tanpa questionID
		`"not a list"`,
	}
	for _, raw := range invalid {
		if _, err := ParseAnsweredQuestions(json.RawMessage(raw)); err == nil {
			t.Errorf("ParseAnsweredQuestions(%q) expected error", raw)
		}
	}
}
