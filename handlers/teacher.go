package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tahfidz/models"
)

// GetTeachersHandler lists every teacher as {id, name}, in store order
func GetTeachersHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	rows, err := db.Query("SELECT id, name FROM users WHERE role = ?", models.RoleTeacher)
	if err != nil {
		log.Printf("Error querying teachers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	teachers := []models.TeacherInfo{}
	for rows.Next() {
		var t models.TeacherInfo
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			log.Printf("Error scanning teacher: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading teachers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, teachers)
}

// GetPendingRequestsHandler lists a teacher's ungraded requests, each joined
// with the student's display name
func GetPendingRequestsHandler(c *gin.Context) {
	teacherID := c.Param("teacherId")

	db := c.MustGet("db").(*sql.DB)

	rows, err := db.Query(`
		SELECT r.id, r.student_id, r.teacher_id, r.surah_name, r.status, r.request_date, u.name AS student_name
		FROM requests r
		JOIN users u ON r.student_id = u.id
		WHERE r.teacher_id = ? AND r.status = ?`,
		teacherID, models.StatusPending,
	)
	if err != nil {
		log.Printf("Error querying pending requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	requests := []models.PendingRequest{}
	for rows.Next() {
		var r models.PendingRequest
		if err := rows.Scan(&r.ID, &r.StudentID, &r.TeacherID, &r.SurahName, &r.Status, &r.RequestDate, &r.StudentName); err != nil {
			log.Printf("Error scanning pending request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading pending requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
