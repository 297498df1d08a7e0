package service

import (
	"time"

	"github.com/AnTengye/accreditation/model"
)

func newContract(university, management, program, degree, endDate string) model.Contract {
	return model.Contract{
		University: university,
		Management: management,
		Program:    program,
		Degree:     degree,
		StartDate:  model.ParseDate("2020-01-01"),
		EndDate:    model.ParseDate(endDate),
	}
}

// fixedNow is the reference instant used by status tests
var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func daysFrom(now time.Time, days int) model.Date {
	return model.ParseDate(now.AddDate(0, 0, days).Format(model.DateLayout))
}

func sampleContracts() []model.Contract {
	return []model.Contract{
		newContract("King Saud University", "Engineering", "Computer Science", "Bachelor", "2024-06-01"),
		newContract("Qassim University", "Health", "Nursing", "Bachelor", "2025-08-01"),
		newContract("King Saud University", "Health", "Pharmacy", "Master", "2025-03-15"),
		newContract("Umm Al-Qura University", "Islamic", "Sharia", "PhD", "2026-02-01"),
		newContract("King Saud University", "Engineering", "Civil Engineering", "Bachelor", ""),
		newContract("Qassim University", "Engineering", "Computer Engineering", "Master", "2025-12-31"),
	}
}
