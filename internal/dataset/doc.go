// Package dataset loads the university record tables into gota DataFrames
// with fixed column schemas and joins them on the student identifier.
//
// Two flat tables feed the pipeline: a student table (one row per student,
// attributes plus high-school GPA) and a course table (one row per student
// and course, with the earned grade and the GPA excluding that course).
// Both may be stored gzip-compressed.
package dataset
