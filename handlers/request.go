package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tahfidz/models"
)

// CreateRequestHandler records a student's ask for an evaluation session.
// The referenced ids are taken on trust; there is no duplicate check, so a
// student may hold several pending requests for the same surah.
func CreateRequestHandler(c *gin.Context) {
	var req models.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	result, err := db.Exec(
		"INSERT INTO requests (student_id, teacher_id, surah_name) VALUES (?, ?, ?)",
		req.StudentID, req.TeacherID, req.SurahName,
	)
	if err != nil {
		log.Printf("Error inserting request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving request"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Printf("Error getting last insert ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving request ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
