package services

import (
	"testing"

	"bomserver/server/types"
)

// TestSuggestionService_Suggest проверяет подбор по явному списку кандидатов
func TestSuggestionService_Suggest(t *testing.T) {
	service := NewSuggestionService(setupUploadService(t))

	resp, err := service.Suggest(types.SuggestColumnRequest{
		Header:     "Yazaki PN",
		Candidates: []string{"PRICE", "YAZAKI PN", "DESCRIPTION"},
		TopN:       2,
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if len(resp.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(resp.Suggestions))
	}
	if resp.Suggestions[0].Column != "YAZAKI PN" {
		t.Errorf("top suggestion = %q, want YAZAKI PN", resp.Suggestions[0].Column)
	}
	if resp.Suggestions[0].Score != 1.0 {
		t.Errorf("top score = %v, want 1.0", resp.Suggestions[0].Score)
	}
}

// TestSuggestionService_Suggest_FromSheet проверяет подбор по колонкам листа
func TestSuggestionService_Suggest_FromSheet(t *testing.T) {
	uploads := setupUploadService(t)
	service := NewSuggestionService(uploads)

	upload, err := uploads.ProcessUpload("bom.csv", sampleCSV)
	if err != nil {
		t.Fatalf("ProcessUpload() error = %v", err)
	}

	resp, err := service.Suggest(types.SuggestColumnRequest{
		Header: "yazaki_pn",
		FileID: upload.FileID,
		Sheet:  upload.SheetNames[0],
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions from sheet columns")
	}
	if resp.Suggestions[0].Column != "YAZAKI PN" {
		t.Errorf("top suggestion = %q, want YAZAKI PN", resp.Suggestions[0].Column)
	}
}

// TestSuggestionService_Suggest_NoCandidates проверяет 400 без кандидатов
func TestSuggestionService_Suggest_NoCandidates(t *testing.T) {
	service := NewSuggestionService(setupUploadService(t))

	_, err := service.Suggest(types.SuggestColumnRequest{Header: "PN"})
	if err == nil {
		t.Fatal("expected error without candidates")
	}
	assertAppErrorStatus(t, err, 400)
}
