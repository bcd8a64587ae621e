package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tahfidz/models"
)

// SubmitGradeHandler records a teacher's evaluation and closes the request it
// resolves. Both writes happen in one transaction: a grade without the status
// flip, or the flip without the grade, must never be observable.
func SubmitGradeHandler(c *gin.Context) {
	var req models.SubmitGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	tx, err := db.Begin()
	if err != nil {
		log.Printf("Error starting transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer tx.Rollback() // Will be ignored if tx.Commit() is called

	result, err := tx.Exec(
		"INSERT INTO grades (request_id, student_id, teacher_id, surah_name, score, notes) VALUES (?, ?, ?, ?, ?, ?)",
		req.RequestID, req.StudentID, req.TeacherID, req.SurahName, *req.Score, req.Notes,
	)
	if err != nil {
		log.Printf("Error inserting grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving grade"})
		return
	}

	// An unknown or already-completed request id is tolerated here: the
	// update then touches zero rows and the grade row still lands.
	_, err = tx.Exec(
		"UPDATE requests SET status = ? WHERE id = ?",
		models.StatusCompleted, req.RequestID,
	)
	if err != nil {
		log.Printf("Error updating request status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving grade"})
		return
	}

	gradeID, err := result.LastInsertId()
	if err != nil {
		log.Printf("Error getting last insert ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving grade"})
		return
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Error committing transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": gradeID})
}

// GetLegerHandler returns the full grade ledger, most recent first
func GetLegerHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	rows, err := db.Query(`
		SELECT g.id, g.request_id, g.student_id, g.teacher_id, g.surah_name, g.score, g.notes, g.grade_date,
			s.name AS student_name, t.name AS teacher_name
		FROM grades g
		JOIN users s ON g.student_id = s.id
		JOIN users t ON g.teacher_id = t.id
		ORDER BY g.grade_date DESC`,
	)
	if err != nil {
		log.Printf("Error querying leger: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	leger := []models.LegerEntry{}
	for rows.Next() {
		var e models.LegerEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.StudentID, &e.TeacherID, &e.SurahName, &e.Score, &e.Notes, &e.GradeDate, &e.StudentName, &e.TeacherName); err != nil {
			log.Printf("Error scanning leger entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		leger = append(leger, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading leger: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, leger)
}

// GetStudentHistoryHandler returns one student's grades, most recent first
func GetStudentHistoryHandler(c *gin.Context) {
	studentID := c.Param("studentId")

	db := c.MustGet("db").(*sql.DB)

	rows, err := db.Query(`
		SELECT g.id, g.request_id, g.student_id, g.teacher_id, g.surah_name, g.score, g.notes, g.grade_date,
			t.name AS teacher_name
		FROM grades g
		JOIN users t ON g.teacher_id = t.id
		WHERE g.student_id = ?
		ORDER BY g.grade_date DESC`,
		studentID,
	)
	if err != nil {
		log.Printf("Error querying history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	history := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.StudentID, &e.TeacherID, &e.SurahName, &e.Score, &e.Notes, &e.GradeDate, &e.TeacherName); err != nil {
			log.Printf("Error scanning history entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, history)
}
