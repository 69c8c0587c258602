package dto

import "github.com/noah-isme/student-records/internal/models"

// Notice severities rendered above the active form.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeWarning = "warning"
	NoticeInfo    = "info"
)

// Notice is the one-line outcome message shown after an action.
type Notice struct {
	Level   string
	Message string
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Label  string
	Path   string
	Active bool
}

// StudentForm carries the editable fields as posted by the browser.
type StudentForm struct {
	ID         int64  `form:"id"`
	Name       string `form:"name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Department string `form:"department"`
	Year       int    `form:"year"`
}

// StudentPage is the view model for every mode of the UI.
type StudentPage struct {
	Title       string
	Heading     string
	Mode        string
	Menu        []MenuItem
	Notice      *Notice
	Columns     []string
	Students    []models.Student
	IDs         []int64
	SelectedID  int64
	Loaded      bool
	Form        StudentForm
	Departments []string
	Years       []int
}

// IDSelect feeds the shared id picker partial.
type IDSelect struct {
	Page   StudentPage
	Submit bool
}
