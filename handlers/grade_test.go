package handlers_test

import (
	"net/http"
	"testing"

	"tahfidz/models"
)

func TestSubmitGradeCompletesRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	var created createResponse
	decodeBody(t, postJSON(t, srv.URL+"/api/requests", map[string]string{
		"studentId": "1234567890", "teacherId": "GURU001", "surahName": "An-Nas",
	}), &created)

	resp := postJSON(t, srv.URL+"/api/grades", map[string]interface{}{
		"requestId": created.ID,
		"studentId": "1234567890",
		"teacherId": "GURU001",
		"surahName": "An-Nas",
		"score":     90,
		"notes":     "Good",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var graded createResponse
	decodeBody(t, resp, &graded)
	if !graded.Success || graded.ID == 0 {
		t.Fatalf("unexpected grade response: %+v", graded)
	}

	// The request left the pending list.
	var pending []models.PendingRequest
	decodeBody(t, getResp(t, srv.URL+"/api/requests/pending/GURU001"), &pending)
	if len(pending) != 0 {
		t.Fatalf("expected empty pending list, got %d entries", len(pending))
	}

	// The ledger shows the evaluation with both names.
	var leger []models.LegerEntry
	decodeBody(t, getResp(t, srv.URL+"/api/leger"), &leger)
	if len(leger) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(leger))
	}
	entry := leger[0]
	if entry.Score != 90 || entry.SurahName != "An-Nas" {
		t.Fatalf("unexpected ledger entry: %+v", entry)
	}
	if entry.StudentName != "Ahmad Fauzi" || entry.TeacherName != "Ust. Abdullah" {
		t.Fatalf("unexpected participant names: %+v", entry)
	}
	if entry.Notes == nil || *entry.Notes != "Good" {
		t.Fatalf("unexpected notes: %+v", entry.Notes)
	}

	// So does the student's own history, and only theirs.
	var history []models.HistoryEntry
	decodeBody(t, getResp(t, srv.URL+"/api/history/1234567890"), &history)
	if len(history) != 1 || history[0].Score != 90 {
		t.Fatalf("unexpected history: %+v", history)
	}
	var otherHistory []models.HistoryEntry
	decodeBody(t, getResp(t, srv.URL+"/api/history/0987654321"), &otherHistory)
	if len(otherHistory) != 0 {
		t.Fatalf("expected empty history for the other student, got %d", len(otherHistory))
	}
}

func TestLegerOrdering(t *testing.T) {
	srv, database := newTestServer(t)

	// Seed grades with explicit dates out of insertion order.
	rows := []struct {
		surah, date string
	}{
		{"Al-Fil", "2024-01-02 08:00:00"},
		{"An-Nas", "2024-01-03 08:00:00"},
		{"Al-Lahab", "2024-01-01 08:00:00"},
	}
	for i, r := range rows {
		_, err := database.Exec(
			"INSERT INTO grades (request_id, student_id, teacher_id, surah_name, score, notes, grade_date) VALUES (?, ?, ?, ?, ?, NULL, ?)",
			i+1, "1234567890", "GURU001", r.surah, 80, r.date,
		)
		if err != nil {
			t.Fatalf("insert grade: %v", err)
		}
	}

	var leger []models.LegerEntry
	decodeBody(t, getResp(t, srv.URL+"/api/leger"), &leger)
	if len(leger) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(leger))
	}
	want := []string{"An-Nas", "Al-Fil", "Al-Lahab"}
	for i, surah := range want {
		if leger[i].SurahName != surah {
			t.Fatalf("position %d: expected %s, got %s", i, surah, leger[i].SurahName)
		}
	}
}

func TestHistoryFiltersByStudent(t *testing.T) {
	srv, database := newTestServer(t)

	inserts := []struct {
		student, surah string
	}{
		{"1234567890", "An-Nas"},
		{"0987654321", "Al-Fil"},
		{"1234567890", "Al-Lahab"},
	}
	for i, r := range inserts {
		_, err := database.Exec(
			"INSERT INTO grades (request_id, student_id, teacher_id, surah_name, score, notes) VALUES (?, ?, ?, ?, ?, NULL)",
			i+1, r.student, "GURU002", r.surah, 85,
		)
		if err != nil {
			t.Fatalf("insert grade: %v", err)
		}
	}

	var history []models.HistoryEntry
	decodeBody(t, getResp(t, srv.URL+"/api/history/1234567890"), &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	for _, e := range history {
		if e.StudentID != "1234567890" {
			t.Fatalf("foreign student in history: %+v", e)
		}
		if e.TeacherName != "Ustz. Khadijah" {
			t.Fatalf("unexpected teacher name: %+v", e)
		}
	}
}

func TestGradeUnknownRequestTolerated(t *testing.T) {
	srv, database := newTestServer(t)

	// Grading a request id nobody issued still records the grade; the status
	// update just touches zero rows.
	resp := postJSON(t, srv.URL+"/api/grades", map[string]interface{}{
		"requestId": 999,
		"studentId": "1234567890",
		"teacherId": "GURU001",
		"surahName": "An-Nas",
		"score":     70,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM grades").Scan(&count); err != nil {
		t.Fatalf("count grades: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 grade, got %d", count)
	}
}

func TestGradeZeroScoreAccepted(t *testing.T) {
	srv, _ := newTestServer(t)

	var created createResponse
	decodeBody(t, postJSON(t, srv.URL+"/api/requests", map[string]string{
		"studentId": "0987654321", "teacherId": "GURU002", "surahName": "Al-Ikhlas",
	}), &created)

	resp := postJSON(t, srv.URL+"/api/grades", map[string]interface{}{
		"requestId": created.ID,
		"studentId": "0987654321",
		"teacherId": "GURU002",
		"surahName": "Al-Ikhlas",
		"score":     0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for score 0, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGradeMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/grades", map[string]interface{}{
		"requestId": 1,
		"studentId": "1234567890",
		"teacherId": "GURU001",
		"surahName": "An-Nas",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing score, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGradeAtomicity(t *testing.T) {
	srv, database := newTestServer(t)

	var created createResponse
	decodeBody(t, postJSON(t, srv.URL+"/api/requests", map[string]string{
		"studentId": "1234567890", "teacherId": "GURU001", "surahName": "An-Nas",
	}), &created)

	// Breaking the requests table makes the second statement of the
	// transaction fail; the grade insert must roll back with it.
	if _, err := database.Exec("ALTER TABLE requests RENAME TO requests_gone"); err != nil {
		t.Fatalf("rename table: %v", err)
	}

	resp := postJSON(t, srv.URL+"/api/grades", map[string]interface{}{
		"requestId": created.ID,
		"studentId": "1234567890",
		"teacherId": "GURU001",
		"surahName": "An-Nas",
		"score":     90,
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var gradeCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM grades").Scan(&gradeCount); err != nil {
		t.Fatalf("count grades: %v", err)
	}
	if gradeCount != 0 {
		t.Fatalf("partial write observed: %d grade rows after failed transaction", gradeCount)
	}

	var status string
	err := database.QueryRow("SELECT status FROM requests_gone WHERE id = ?", created.ID).Scan(&status)
	if err != nil {
		t.Fatalf("query request: %v", err)
	}
	if status != "pending" {
		t.Fatalf("expected request still pending, got %s", status)
	}
}
