package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tahfidz/auth"
	"tahfidz/models"
)

// LoginHandler authenticates a user against the exact id/password/role
// triple. The failure response is the same whichever field was wrong.
func LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var user models.UserInfo
	err := db.QueryRow(
		"SELECT id, name, role FROM users WHERE id = ? AND password = ? AND role = ?",
		req.ID, req.Password, req.Role,
	).Scan(&user.ID, &user.Name, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "ID atau Password salah"})
		} else {
			log.Printf("Error querying user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	tokenString, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   tokenString,
	})
}

// MeHandler returns the identity behind a session token
func MeHandler(c *gin.Context) {
	userID := c.MustGet("userID").(string)
	role := c.MustGet("role").(string)

	db := c.MustGet("db").(*sql.DB)

	var user models.UserInfo
	err := db.QueryRow(
		"SELECT id, name, role FROM users WHERE id = ? AND role = ?",
		userID, role,
	).Scan(&user.ID, &user.Name, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Error querying user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
