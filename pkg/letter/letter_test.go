package letter_test

import (
	"time"

	"github.com/dmitrymomot/resignly/pkg/letter"
)

// fixedNow pins "today" to January 20, 2025 in UTC.
var fixedNow = time.Date(2025, time.January, 20, 15, 4, 5, 0, time.UTC)

func pinned() []letter.Option {
	return []letter.Option{
		letter.WithClock(func() time.Time { return fixedNow }),
		letter.WithLocation(time.UTC),
	}
}

func sampleData() letter.Data {
	return letter.Data{
		EmployeeName:     "John Doe",
		EmployeePosition: "Software Engineer",
		CompanyName:      "Tech Corp",
		SupervisorName:   "Jane Smith",
		LastWorkingDate:  "2025-02-15",
		ResignationDate:  "2025-02-01",
		Reason:           "Career advancement",
		CustomMessage:    "Thank you for everything",
	}
}
