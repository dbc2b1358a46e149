package dataset

// Column names of the student table
const (
	ColStudentID = "student_id"
	ColHSGPA     = "hs_gpa"
	ColMajor     = "major"
	ColSex       = "sex"
	ColState     = "state"
)

// Column names of the course table
const (
	ColTerm     = "term"
	ColSubject  = "subject"
	ColCatalog  = "catalog"
	ColGrade    = "grade"
	ColGPAOther = "gpa_other"
)

// StudentColumns is the required schema of the student table
var StudentColumns = []string{ColStudentID, ColHSGPA, ColMajor, ColSex, ColState}

// CourseColumns is the required schema of the course table. gpa_other
// is the student's GPA computed over every course except that row's.
var CourseColumns = []string{ColStudentID, ColTerm, ColSubject, ColCatalog, ColGrade, ColGPAOther}
