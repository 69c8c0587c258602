package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-records/internal/models"
	"github.com/noah-isme/student-records/pkg/dberrors"
)

var (
	// ErrStudentNotFound is returned when no row has the requested id.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateEmail is returned when a write collides with the email UNIQUE constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS students (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT UNIQUE,
    phone TEXT,
    department TEXT,
    year INTEGER
)`

const postgresSchema = `CREATE TABLE IF NOT EXISTS students (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE,
    phone TEXT,
    department TEXT,
    year INTEGER
)`

const studentColumns = `id, name, COALESCE(email, '') AS email, COALESCE(phone, '') AS phone, COALESCE(department, '') AS department, COALESCE(year, 0) AS year`

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// StudentRepository is the record store for the students table.
type StudentRepository struct {
	db      *sqlx.DB
	metrics queryObserver
}

// NewStudentRepository constructs a StudentRepository. metrics may be nil.
func NewStudentRepository(db *sqlx.DB, metrics queryObserver) *StudentRepository {
	return &StudentRepository{db: db, metrics: metrics}
}

// Initialize creates the students table when it does not exist yet.
func (r *StudentRepository) Initialize(ctx context.Context) error {
	schema := sqliteSchema
	if r.db.DriverName() == "postgres" {
		schema = postgresSchema
	}
	defer r.observe("students.initialize", time.Now())
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initialize students table: %w", err)
	}
	return nil
}

// Insert stores a new student and returns the id assigned by the store.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (int64, error) {
	query := r.db.Rebind(`INSERT INTO students (name, email, phone, department, year) VALUES (?, ?, ?, ?, ?) RETURNING id`)
	defer r.observe("students.insert", time.Now())

	var id int64
	err := r.db.GetContext(ctx, &id, query, student.Name, student.Email, student.Phone, student.Department, student.Year)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, fmt.Errorf("insert student %q: %w", student.Email, ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("insert student: %w", err)
	}
	student.ID = id
	return id, nil
}

// ListAll returns every student in primary key order.
func (r *StudentRepository) ListAll(ctx context.Context) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY id ASC`, studentColumns)
	defer r.observe("students.list", time.Now())

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetByID fetches one student.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM students WHERE id = ?`, studentColumns))
	defer r.observe("students.get", time.Now())

	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get student %d: %w", id, ErrStudentNotFound)
		}
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	return &student, nil
}

// Update overwrites every non-id column. An unknown id is not an error.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := r.db.Rebind(`UPDATE students SET name = ?, email = ?, phone = ?, department = ?, year = ? WHERE id = ?`)
	defer r.observe("students.update", time.Now())

	_, err := r.db.ExecContext(ctx, query, student.Name, student.Email, student.Phone, student.Department, student.Year, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("update student %d: %w", student.ID, ErrDuplicateEmail)
		}
		return fmt.Errorf("update student %d: %w", student.ID, err)
	}
	return nil
}

// DeleteByID removes a student. An unknown id is not an error.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM students WHERE id = ?`)
	defer r.observe("students.delete", time.Now())

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return nil
}

// Ping checks the store is reachable.
func (r *StudentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *StudentRepository) observe(label string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveDBQuery(label, time.Since(start))
}
