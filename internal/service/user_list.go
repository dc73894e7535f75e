package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ustazlink/survey-backend/internal/model"
)

// UserListFilter selects and pages the merged respondent directory.
// UserType is "all", "student" or "teacher"; the remaining filters reuse
// the analytics semantics. Search matches name or phone, case-insensitive.
type UserListFilter struct {
	UserType         string
	Gender           *model.Gender
	AgeRange         *model.AgeRange
	MinPrice         *float64
	MaxPrice         *float64
	Frequency        *model.Frequency
	SessionLength    *int
	PlatformInterest *PlatformInterestFilter
	Search           string
	Page             int
	PageSize         int
}

// UserSummary is one row of the respondent directory. The ID is prefixed
// with the population so student and teacher rows never collide.
type UserSummary struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	FullName         string     `json:"name"`
	PhoneNumber      *string    `json:"phone"`
	Gender           string     `json:"gender"`
	AgeRange         string     `json:"age_range"`
	SessionLength    int        `json:"session_length"`
	Frequency        *string    `json:"frequency"`
	Price            float64    `json:"price"`
	PlatformInterest bool       `json:"platform_interest"`
	Subjects         []string   `json:"subjects"`
	SubmittedAt      *time.Time `json:"submitted_at"`
}

// UserListReport is one page of the merged directory.
type UserListReport struct {
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Users      []UserSummary `json:"users"`
}

func studentSummary(r *model.StudentSurvey) UserSummary {
	freq := string(r.PreferredFrequency)
	submitted := r.SubmittedAt
	return UserSummary{
		ID:               fmt.Sprintf("student_%d", r.ID),
		Type:             "student",
		FullName:         r.FullName,
		PhoneNumber:      r.PhoneNumber,
		Gender:           string(r.Gender),
		AgeRange:         string(r.AgeRange),
		SessionLength:    r.PreferredSessionLength,
		Frequency:        &freq,
		Price:            r.FairPriceETB,
		PlatformInterest: r.WillingToTry,
		Subjects:         r.SubjectsOfInterest,
		SubmittedAt:      &submitted,
	}
}

func teacherSummary(r *model.TeacherSurvey) UserSummary {
	phone := r.PhoneNumber
	submitted := r.SubmittedAt
	return UserSummary{
		ID:               fmt.Sprintf("teacher_%d", r.ID),
		Type:             "teacher",
		FullName:         r.FullName,
		PhoneNumber:      &phone,
		Gender:           string(r.Gender),
		AgeRange:         string(r.AgeRange),
		SessionLength:    r.PreferredSessionLength,
		Frequency:        nil,
		Price:            r.FairRateETB,
		PlatformInterest: r.WouldJoinPlatform,
		Subjects:         r.ConfidentTopics,
		SubmittedAt:      &submitted,
	}
}

func matchesSearch(u *UserSummary, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(u.FullName), needle) {
		return true
	}
	return u.PhoneNumber != nil && strings.Contains(strings.ToLower(*u.PhoneNumber), needle)
}

// UserList merges both survey tables into one directory page, most recent
// submissions first. Rows without a timestamp sort last.
func (s *AnalyticsService) UserList(ctx context.Context, filter UserListFilter) (*UserListReport, error) {
	analyticsFilter := AnalyticsFilter{
		Gender:           filter.Gender,
		AgeRange:         filter.AgeRange,
		MinPrice:         filter.MinPrice,
		MaxPrice:         filter.MaxPrice,
		Frequency:        filter.Frequency,
		SessionLength:    filter.SessionLength,
		PlatformInterest: filter.PlatformInterest,
	}

	var users []UserSummary

	if filter.UserType == "all" || filter.UserType == "student" {
		records, err := s.students.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range filterStudents(records, analyticsFilter.studentPredicates()) {
			users = append(users, studentSummary(&r))
		}
	}
	if filter.UserType == "all" || filter.UserType == "teacher" {
		records, err := s.teachers.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range filterTeachers(records, analyticsFilter.teacherPredicates()) {
			users = append(users, teacherSummary(&r))
		}
	}

	if needle := strings.ToLower(strings.TrimSpace(filter.Search)); needle != "" {
		kept := users[:0]
		for i := range users {
			if matchesSearch(&users[i], needle) {
				kept = append(kept, users[i])
			}
		}
		users = kept
	}

	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i].SubmittedAt, users[j].SubmittedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size < 1 {
		size = 1
	}

	total := len(users)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return &UserListReport{
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Users:      append([]UserSummary{}, users[start:end]...),
	}, nil
}
