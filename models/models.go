package models

import "time"

// Role values as stored and sent on the wire
const (
	RoleStudent = "siswa"
	RoleTeacher = "guru"
)

// Request status lifecycle: pending until graded, completed after
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// LoginRequest for authentication
type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=siswa guru"`
}

// UserInfo is a user's public identity; the password never leaves the store
type UserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TeacherInfo is the projection returned by the teacher listing
type TeacherInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateRequestRequest is a student asking a teacher for an evaluation session
type CreateRequestRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	TeacherID string `json:"teacherId" binding:"required"`
	SurahName string `json:"surahName" binding:"required"`
}

// SubmitGradeRequest carries a teacher's evaluation of one request.
// Score is a pointer so an explicit 0 passes the required check.
type SubmitGradeRequest struct {
	RequestID int     `json:"requestId" binding:"required"`
	StudentID string  `json:"studentId" binding:"required"`
	TeacherID string  `json:"teacherId" binding:"required"`
	SurahName string  `json:"surahName" binding:"required"`
	Score     *int    `json:"score" binding:"required"`
	Notes     *string `json:"notes"`
}

// PendingRequest is a request row joined with the student's display name
type PendingRequest struct {
	ID          int       `json:"id"`
	StudentID   string    `json:"student_id"`
	TeacherID   string    `json:"teacher_id"`
	SurahName   string    `json:"surah_name"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"request_date"`
	StudentName string    `json:"student_name"`
}

// LegerEntry is a grade row joined with both participant names
type LegerEntry struct {
	ID          int       `json:"id"`
	RequestID   int       `json:"request_id"`
	StudentID   string    `json:"student_id"`
	TeacherID   string    `json:"teacher_id"`
	SurahName   string    `json:"surah_name"`
	Score       int       `json:"score"`
	Notes       *string   `json:"notes"`
	GradeDate   time.Time `json:"grade_date"`
	StudentName string    `json:"student_name"`
	TeacherName string    `json:"teacher_name"`
}

// HistoryEntry is a grade row in one student's history, joined with the
// teacher's display name
type HistoryEntry struct {
	ID          int       `json:"id"`
	RequestID   int       `json:"request_id"`
	StudentID   string    `json:"student_id"`
	TeacherID   string    `json:"teacher_id"`
	SurahName   string    `json:"surah_name"`
	Score       int       `json:"score"`
	Notes       *string   `json:"notes"`
	GradeDate   time.Time `json:"grade_date"`
	TeacherName string    `json:"teacher_name"`
}
