package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-records/internal/dto"
	"github.com/noah-isme/student-records/internal/models"
	"github.com/noah-isme/student-records/internal/service"
	appErrors "github.com/noah-isme/student-records/pkg/errors"
	"github.com/noah-isme/student-records/pkg/response"
)

const appTitle = "STUDENT MANAGEMENT SYSTEM"

const (
	msgAdded    = "Student added successfully"
	msgUpdated  = "Student updated successfully"
	msgDeleted  = "Student deleted successfully"
	msgEmpty    = "No students found"
	msgBadForm  = "Invalid form submission"
	msgBadID    = "Select a student ID"
	csvFilename = "students.csv"
	pdfFilename = "students.pdf"
)

type studentMode struct {
	label    string
	path     string
	heading  string
	template string
}

var (
	modeAdd    = studentMode{label: "Add Student", path: "/students/add", heading: "Add New Student", template: "add.tmpl"}
	modeView   = studentMode{label: "View Students", path: "/students", heading: "All Students", template: "view.tmpl"}
	modeUpdate = studentMode{label: "Update Student", path: "/students/update", heading: "Update Student Details", template: "update.tmpl"}
	modeDelete = studentMode{label: "Delete Student", path: "/students/delete", heading: "Delete Student", template: "delete.tmpl"}

	studentModes = []studentMode{modeAdd, modeView, modeUpdate, modeDelete}
)

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
	IDs(ctx context.Context) ([]int64, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id int64, req service.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentExporter interface {
	CSV(ctx context.Context) ([]byte, error)
	PDF(ctx context.Context) ([]byte, error)
}

// StudentHandler serves the student record forms.
type StudentHandler struct {
	students studentService
	exports  studentExporter
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, exports studentExporter) *StudentHandler {
	return &StudentHandler{students: students, exports: exports}
}

// Index godoc
// @Summary Select a mode from the sidebar menu
// @Tags Students
// @Param menu query string false "Menu label" Enums(Add Student, View Students, Update Student, Delete Student)
// @Success 303
// @Router / [get]
func (h *StudentHandler) Index(c *gin.Context) {
	label := c.DefaultQuery("menu", modeAdd.label)
	for _, mode := range studentModes {
		if mode.label == label {
			response.Redirect(c, mode.path)
			return
		}
	}
	response.Redirect(c, modeAdd.path)
}

// AddForm godoc
// @Summary Render the Add Student form
// @Tags Students
// @Produce html
// @Success 200
// @Router /students/add [get]
func (h *StudentHandler) AddForm(c *gin.Context) {
	response.Page(c, http.StatusOK, modeAdd.template, newStudentPage(modeAdd))
}

// Add godoc
// @Summary Save a new student
// @Tags Students
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param phone formData string false "Phone"
// @Param department formData string true "Department" Enums(CSE, AIML, DS, ECE)
// @Param year formData int true "Year" Enums(1, 2, 3, 4)
// @Success 200
// @Failure 400
// @Failure 409
// @Router /students/add [post]
func (h *StudentHandler) Add(c *gin.Context) {
	page := newStudentPage(modeAdd)
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		page.Form = form
		renderFailure(c, modeAdd, page, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgBadForm))
		return
	}

	_, err := h.students.Create(c.Request.Context(), service.CreateStudentRequest{
		Name:       form.Name,
		Email:      form.Email,
		Phone:      form.Phone,
		Department: form.Department,
		Year:       form.Year,
	})
	if err != nil {
		page.Form = form
		renderFailure(c, modeAdd, page, err)
		return
	}
	page.Notice = &dto.Notice{Level: dto.NoticeSuccess, Message: msgAdded}
	response.Page(c, http.StatusOK, modeAdd.template, page)
}

// View godoc
// @Summary Render the table of all students
// @Tags Students
// @Produce html
// @Success 200
// @Router /students [get]
func (h *StudentHandler) View(c *gin.Context) {
	page := newStudentPage(modeView)
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		renderFailure(c, modeView, page, err)
		return
	}
	page.Students = students
	if len(students) == 0 {
		page.Notice = &dto.Notice{Level: dto.NoticeInfo, Message: msgEmpty}
	}
	response.Page(c, http.StatusOK, modeView.template, page)
}

// UpdateForm godoc
// @Summary Render the Update Student form pre-filled with the selected student
// @Tags Students
// @Produce html
// @Param id query int false "Student ID, defaults to the first one"
// @Success 200
// @Failure 404
// @Router /students/update [get]
func (h *StudentHandler) UpdateForm(c *gin.Context) {
	page := newStudentPage(modeUpdate)
	if !h.loadIDs(c, modeUpdate, &page) {
		return
	}
	id, err := selectedID(c.Query("id"), page.IDs)
	if err != nil {
		renderFailure(c, modeUpdate, page, err)
		return
	}
	page.SelectedID = id

	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		renderFailure(c, modeUpdate, page, err)
		return
	}
	page.Form = formFromStudent(student)
	page.Loaded = true
	response.Page(c, http.StatusOK, modeUpdate.template, page)
}

// Update godoc
// @Summary Overwrite every field of a student
// @Tags Students
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id formData int true "Student ID"
// @Param name formData string false "Name"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param department formData string true "Department" Enums(CSE, AIML, DS, ECE)
// @Param year formData int true "Year" Enums(1, 2, 3, 4)
// @Success 200
// @Failure 400
// @Failure 409
// @Router /students/update [post]
func (h *StudentHandler) Update(c *gin.Context) {
	page := newStudentPage(modeUpdate)
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		renderFailure(c, modeUpdate, page, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgBadForm))
		return
	}
	page.Form = form
	page.SelectedID = form.ID

	_, updateErr := h.students.Update(c.Request.Context(), form.ID, service.UpdateStudentRequest{
		Name:       form.Name,
		Email:      form.Email,
		Phone:      form.Phone,
		Department: form.Department,
		Year:       form.Year,
	})

	ids, err := h.students.IDs(c.Request.Context())
	if err != nil {
		renderFailure(c, modeUpdate, page, err)
		return
	}
	page.IDs = ids
	page.Loaded = containsID(ids, form.ID)
	if updateErr != nil {
		renderFailure(c, modeUpdate, page, updateErr)
		return
	}
	page.Notice = &dto.Notice{Level: dto.NoticeSuccess, Message: msgUpdated}
	response.Page(c, http.StatusOK, modeUpdate.template, page)
}

// DeleteForm godoc
// @Summary Render the Delete Student form
// @Tags Students
// @Produce html
// @Param id query int false "Preselected student ID"
// @Success 200
// @Router /students/delete [get]
func (h *StudentHandler) DeleteForm(c *gin.Context) {
	page := newStudentPage(modeDelete)
	if !h.loadIDs(c, modeDelete, &page) {
		return
	}
	id, err := selectedID(c.Query("id"), page.IDs)
	if err != nil {
		renderFailure(c, modeDelete, page, err)
		return
	}
	page.SelectedID = id
	response.Page(c, http.StatusOK, modeDelete.template, page)
}

// Delete godoc
// @Summary Remove a student
// @Tags Students
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id formData int true "Student ID"
// @Success 200
// @Failure 400
// @Router /students/delete [post]
func (h *StudentHandler) Delete(c *gin.Context) {
	page := newStudentPage(modeDelete)
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		renderFailure(c, modeDelete, page, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgBadForm))
		return
	}

	deleteErr := h.students.Delete(c.Request.Context(), form.ID)

	ids, err := h.students.IDs(c.Request.Context())
	if err != nil {
		renderFailure(c, modeDelete, page, err)
		return
	}
	page.IDs = ids
	if len(ids) > 0 {
		page.SelectedID = ids[0]
	}
	if deleteErr != nil {
		renderFailure(c, modeDelete, page, deleteErr)
		return
	}
	page.Notice = &dto.Notice{Level: dto.NoticeWarning, Message: msgDeleted}
	response.Page(c, http.StatusOK, modeDelete.template, page)
}

// ExportCSV godoc
// @Summary Download the student table as CSV
// @Tags Students
// @Produce text/csv
// @Success 200
// @Router /students/export.csv [get]
func (h *StudentHandler) ExportCSV(c *gin.Context) {
	body, err := h.exports.CSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, csvFilename, "text/csv; charset=utf-8", body)
}

// ExportPDF godoc
// @Summary Download the student table as PDF
// @Tags Students
// @Produce application/pdf
// @Success 200
// @Router /students/export.pdf [get]
func (h *StudentHandler) ExportPDF(c *gin.Context) {
	body, err := h.exports.PDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, pdfFilename, "application/pdf", body)
}

// loadIDs fills page.IDs and reports whether the caller should go on
// rendering the id-driven form. An empty table renders the info notice.
func (h *StudentHandler) loadIDs(c *gin.Context, mode studentMode, page *dto.StudentPage) bool {
	ids, err := h.students.IDs(c.Request.Context())
	if err != nil {
		renderFailure(c, mode, *page, err)
		return false
	}
	if len(ids) == 0 {
		page.Notice = &dto.Notice{Level: dto.NoticeInfo, Message: msgEmpty}
		response.Page(c, http.StatusOK, mode.template, *page)
		return false
	}
	page.IDs = ids
	return true
}

func newStudentPage(mode studentMode) dto.StudentPage {
	menu := make([]dto.MenuItem, 0, len(studentModes))
	for _, m := range studentModes {
		menu = append(menu, dto.MenuItem{Label: m.label, Path: m.path, Active: m.label == mode.label})
	}
	return dto.StudentPage{
		Title:       appTitle,
		Heading:     mode.heading,
		Mode:        mode.label,
		Menu:        menu,
		Columns:     service.StudentColumns,
		Departments: models.Departments,
		Years:       models.Years,
		Form:        dto.StudentForm{Department: models.Departments[0], Year: models.Years[0]},
	}
}

func renderFailure(c *gin.Context, mode studentMode, page dto.StudentPage, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	page.Notice = &dto.Notice{Level: dto.NoticeError, Message: appErr.Message}
	response.Page(c, appErr.Status, mode.template, page)
}

// selectedID parses the id query value, falling back to the first id.
func selectedID(raw string, ids []int64) (int64, error) {
	if raw == "" {
		return ids[0], nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, msgBadID)
	}
	return id, nil
}

// formFromStudent pre-fills the editable fields. Stored values outside the
// choice lists fall back to the first option.
func formFromStudent(student *models.Student) dto.StudentForm {
	form := dto.StudentForm{
		ID:         student.ID,
		Name:       student.Name,
		Email:      student.Email,
		Phone:      student.Phone,
		Department: student.Department,
		Year:       student.Year,
	}
	if !models.IsDepartment(form.Department) {
		form.Department = models.Departments[0]
	}
	if !models.IsYear(form.Year) {
		form.Year = models.Years[0]
	}
	return form
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
