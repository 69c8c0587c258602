package response

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/student-records/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w, engine
}

func TestPage(t *testing.T) {
	c, w, engine := newContext()
	engine.SetHTMLTemplate(template.Must(template.New("hello").Parse(`<p>{{.}}</p>`)))

	Page(c, http.StatusConflict, "hello", "<b>")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "<p>&lt;b&gt;</p>", w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestAttachment(t *testing.T) {
	c, w, _ := newContext()

	Attachment(c, "students.csv", "text/csv", []byte("ID\n"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="students.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "ID\n", w.Body.String())
}

func TestError(t *testing.T) {
	c, w, _ := newContext()
	Error(c, appErrors.Clone(appErrors.ErrNotFound, "Student not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", w.Body.String())

	c, w, _ = newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, c.Errors, 1)
}

func TestRedirect(t *testing.T) {
	c, w, _ := newContext()
	Redirect(c, "/students")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/students", w.Header().Get("Location"))
}
