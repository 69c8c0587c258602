package models

// Student is the single record kept by the system.
type Student struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"`
	Phone      string `db:"phone" json:"phone"`
	Department string `db:"department" json:"department"`
	Year       int    `db:"year" json:"year"`
}

// Departments lists the selectable departments in display order.
var Departments = []string{"CSE", "AIML", "DS", "ECE"}

// Years lists the selectable academic years in display order.
var Years = []int{1, 2, 3, 4}

// IsDepartment reports whether d is one of Departments.
func IsDepartment(d string) bool {
	for _, candidate := range Departments {
		if candidate == d {
			return true
		}
	}
	return false
}

// IsYear reports whether y is one of Years.
func IsYear(y int) bool {
	return y >= Years[0] && y <= Years[len(Years)-1]
}
