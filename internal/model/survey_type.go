package model

// SurveyType partitions both response records and question catalog entries.
type SurveyType string

const (
	SurveyTypeStudent SurveyType = "student"
	SurveyTypeTeacher SurveyType = "teacher"
)

// Valid reports whether the survey type is one of the known values.
func (t SurveyType) Valid() bool {
	return t == SurveyTypeStudent || t == SurveyTypeTeacher
}

// Gender of a respondent.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// AgeRange buckets used by both surveys.
type AgeRange string

const (
	AgeRange8to15  AgeRange = "8-15"
	AgeRange15to24 AgeRange = "15-24"
	AgeRange24to32 AgeRange = "24-32"
	AgeRange32to40 AgeRange = "32-40"
	AgeRange40Plus AgeRange = "40+"
)

// AgeRanges is the fixed enumeration order used for cross-tabulations.
var AgeRanges = []AgeRange{AgeRange8to15, AgeRange15to24, AgeRange24to32, AgeRange32to40, AgeRange40Plus}

// Genders is the fixed enumeration order used for cross-tabulations.
var Genders = []Gender{GenderMale, GenderFemale}

// SessionLengths are the allowed per-session minute counts.
var SessionLengths = []int{20, 30, 45, 60}
