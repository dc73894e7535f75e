package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/model"
)

func TestWorkbookLayout(t *testing.T) {
	students := &stubStudentStore{records: []model.StudentSurvey{
		studentFixture(1, func(r *model.StudentSurvey) {
			r.FullName = "Amina Yusuf"
			r.PhoneNumber = strPtr("+251911000001")
		}),
	}}
	teachers := &stubTeacherStore{records: []model.TeacherSurvey{
		teacherFixture(1, func(r *model.TeacherSurvey) { r.FullName = "Ustaz Kemal" }),
	}}

	svc := NewExportService(students, teachers, zerolog.Nop())
	workbook, err := svc.Workbook(context.Background())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Students" || sheets[1] != "Teachers" {
		t.Fatalf("sheets = %v, want [Students Teachers]", sheets)
	}

	header, err := workbook.GetCellValue("Students", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "ID" {
		t.Errorf("Students!A1 = %q, want ID", header)
	}

	name, err := workbook.GetCellValue("Students", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "Amina Yusuf" {
		t.Errorf("Students!B2 = %q, want Amina Yusuf", name)
	}

	teacherName, err := workbook.GetCellValue("Teachers", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if teacherName != "Ustaz Kemal" {
		t.Errorf("Teachers!B2 = %q, want Ustaz Kemal", teacherName)
	}
}

func TestWorkbookEmptyTables(t *testing.T) {
	svc := NewExportService(&stubStudentStore{}, &stubTeacherStore{}, zerolog.Nop())
	workbook, err := svc.Workbook(context.Background())
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Students")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Students rows = %d, want header only", len(rows))
	}
}
