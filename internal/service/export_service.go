package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/logger"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportService builds XLSX snapshots of both survey tables for offline
// analysis by the field team.
type ExportService struct {
	students StudentSurveyStore
	teachers TeacherSurveyStore
	log      zerolog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(students StudentSurveyStore, teachers TeacherSurveyStore, log zerolog.Logger) *ExportService {
	return &ExportService{
		students: students,
		teachers: teachers,
		log:      logger.Component(log, "export_service"),
	}
}

var studentExportHeader = []string{
	"ID", "Full Name", "Age Range", "Gender", "Phone", "Quran Experience",
	"Taken Online Lessons", "Time Preference", "Session Length (min)",
	"Frequency", "Fair Price (ETB)", "Subjects", "Willing To Try", "Submitted At",
}

var teacherExportHeader = []string{
	"ID", "Full Name", "Age Range", "Gender", "Phone", "Background",
	"Tried Online Teaching", "Students / Week", "Session Length (min)",
	"Fair Rate (ETB)", "Confident Topics", "Would Join", "Early Access", "Submitted At",
}

func studentExportRow(r *model.StudentSurvey) []string {
	phone := ""
	if r.PhoneNumber != nil {
		phone = *r.PhoneNumber
	}
	experience := ""
	if r.QuranExperience != nil {
		experience = string(*r.QuranExperience)
	}
	return []string{
		strconv.Itoa(r.ID),
		r.FullName,
		string(r.AgeRange),
		string(r.Gender),
		phone,
		experience,
		yesNo(r.TakenOnlineLessons),
		string(r.TimePreference),
		strconv.Itoa(r.PreferredSessionLength),
		string(r.PreferredFrequency),
		strconv.FormatFloat(r.FairPriceETB, 'f', 2, 64),
		strings.Join(r.SubjectsOfInterest, ", "),
		yesNo(r.WillingToTry),
		r.SubmittedAt.Format(time.RFC3339),
	}
}

func teacherExportRow(r *model.TeacherSurvey) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.FullName,
		string(r.AgeRange),
		string(r.Gender),
		r.PhoneNumber,
		string(r.TeachingBackground),
		yesNo(r.TriedOnlineTeaching),
		strconv.Itoa(r.StudentsPerWeek),
		strconv.Itoa(r.PreferredSessionLength),
		strconv.FormatFloat(r.FairRateETB, 'f', 2, 64),
		strings.Join(r.ConfidentTopics, ", "),
		yesNo(r.WouldJoinPlatform),
		yesNo(r.WantsEarlyAccess),
		r.SubmittedAt.Format(time.RFC3339),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Workbook builds a two-sheet workbook with all responses, most recent
// first. The caller owns the file and must Close it.
func (s *ExportService) Workbook(ctx context.Context) (*excelize.File, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Students"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet("Teachers"); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	studentRows := make([][]string, 0, len(students))
	for i := range students {
		studentRows = append(studentRows, studentExportRow(&students[i]))
	}
	teacherRows := make([][]string, 0, len(teachers))
	for i := range teachers {
		teacherRows = append(teacherRows, teacherExportRow(&teachers[i]))
	}

	if err := fillSheet(f, "Students", studentExportHeader, studentRows); err != nil {
		return nil, err
	}
	if err := fillSheet(f, "Teachers", teacherExportHeader, teacherRows); err != nil {
		return nil, err
	}

	s.log.Info().Int("students", len(students)).Int("teachers", len(teachers)).Msg("export workbook built")
	return f, nil
}

func fillSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A1", end, bold)
	_ = f.AutoFilter(sheet, "A1:"+end, nil)

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
