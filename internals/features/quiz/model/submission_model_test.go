package model

import (
	"reflect"
	"testing"
)

func TestSubmission_SetAndParseAnsweredQuestions(t *testing.T) {
	var s SubmissionModel
	in := []AnsweredQuestion{
		{QuestionID: 1, SelectedAnswer: "4"},
		{QuestionID: 2},
	}
	if err := s.SetAnsweredQuestions(in); err != nil {
		t.Fatalf("SetAnsweredQuestions returned error: %v", err)
	}

	out, err := s.ParseAnsweredQuestions()
	if err != nil {
		t.Fatalf("ParseAnsweredQuestions returned error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: in=%+v out=%+v", in, out)
	}
}

func TestSubmission_SetAnsweredQuestions_Rejects(t *testing.T) {
	var s SubmissionModel
	if err := s.SetAnsweredQuestions(nil); err == nil {
		t.Error("empty answer list accepted")
	}
	if err := s.SetAnsweredQuestions([]AnsweredQuestion{{SelectedAnswer: "4"}}); err == nil {
		t.Error("answer without questionID accepted")
	}
}

func TestSubmission_AnsweredQuestionIDs_Dedup(t *testing.T) {
	var s SubmissionModel
	err := s.SetAnsweredQuestions([]AnsweredQuestion{
		{QuestionID: 3}, {QuestionID: 1}, {QuestionID: 3},
	})
	if err != nil {
		t.Fatalf("SetAnsweredQuestions returned error: %v", err)
	}

	ids, err := s.AnsweredQuestionIDs()
	if err != nil {
		t.Fatalf("AnsweredQuestionIDs returned error: %v", err)
	}
	if !reflect.DeepEqual(ids, []uint{3, 1}) {
		t.Errorf("ids = %v, want [3 1]", ids)
	}
}
