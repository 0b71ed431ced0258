package models

import "time"

// Remote resource records. The client holds ephemeral copies of these in the
// fetch cache, keyed by logical query name; the backend owns the data and
// enforces all referential integrity.

// TuitionStatus tracks a posting through moderation and assignment.
type TuitionStatus string

const (
	TuitionPending  TuitionStatus = "pending"
	TuitionApproved TuitionStatus = "approved"
	TuitionAssigned TuitionStatus = "assigned"
	TuitionClosed   TuitionStatus = "closed"
)

// TuitionPost is a student's request for a tutor.
type TuitionPost struct {
	ID           string        `json:"_id"`
	StudentID    string        `json:"studentId"`
	StudentName  string        `json:"studentName"`
	Title        string        `json:"title"`
	Class        string        `json:"class"`
	Subjects     []string      `json:"subjects"`
	Medium       string        `json:"medium"`
	Location     string        `json:"location"`
	DaysPerWeek  int           `json:"daysPerWeek"`
	SalaryTk     int64         `json:"salary"`
	Requirements string        `json:"requirements,omitempty"`
	Status       TuitionStatus `json:"status"`
	Applications int           `json:"applicationCount,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ApplicationStatus tracks a tutor's application to a posting.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Application is a tutor's bid on a tuition posting.
type Application struct {
	ID               string            `json:"_id"`
	TuitionID        string            `json:"tuitionId"`
	TuitionTitle     string            `json:"tuitionTitle,omitempty"`
	TutorID          string            `json:"tutorId"`
	TutorName        string            `json:"tutorName"`
	TutorEmail       string            `json:"tutorEmail"`
	TutorPhotoURL    string            `json:"tutorPhotoUrl,omitempty"`
	ExpectedSalaryTk int64             `json:"expectedSalary"`
	Message          string            `json:"message,omitempty"`
	Status           ApplicationStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// TutorProfile is the public profile a tutor maintains.
type TutorProfile struct {
	UserID        string   `json:"userId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Institution   string   `json:"institution,omitempty"`
	Department    string   `json:"department,omitempty"`
	Qualification string   `json:"qualification,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Subjects      []string `json:"subjects,omitempty"`
	Location      string   `json:"location,omitempty"`
	HourlyRateTk  int64    `json:"hourlyRate,omitempty"`
	Verified      bool     `json:"verified"`
}

// OngoingTuition is an active engagement between a student and a hired tutor.
type OngoingTuition struct {
	ID              string    `json:"_id"`
	TuitionID       string    `json:"tuitionId"`
	TuitionTitle    string    `json:"tuitionTitle"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	TutorID         string    `json:"tutorId"`
	TutorName       string    `json:"tutorName"`
	MonthlySalaryTk int64     `json:"monthlySalary"`
	Status          string    `json:"status"`
	StartedAt       time.Time `json:"startedAt"`
}

// Transaction is a completed (or attempted) checkout, as recorded by the backend.
type Transaction struct {
	ID          string    `json:"_id"`
	TuitionID   string    `json:"tuitionId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName,omitempty"`
	TutorID     string    `json:"tutorId"`
	TutorName   string    `json:"tutorName,omitempty"`
	AmountTk    int64     `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentRef  string    `json:"paymentRef"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlatformSettings is the admin-editable platform configuration.
type PlatformSettings struct {
	ServiceFeePercent float64 `json:"serviceFeePercent"`
	ContactEmail      string  `json:"contactEmail"`
	ContactPhone      string  `json:"contactPhone,omitempty"`
	MaintenanceMode   bool    `json:"maintenanceMode"`
}

// User is a platform account as the admin views list it.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudentStats feeds the student dashboard and shell badges.
type StudentStats struct {
	PostedTuitions   int   `json:"postedTuitions"`
	PendingApprovals int   `json:"pendingApprovals"`
	NewApplications  int   `json:"newApplications"`
	OngoingTuitions  int   `json:"ongoingTuitions"`
	TotalSpentTk     int64 `json:"totalSpent"`
}

// TutorStats feeds the tutor dashboard and shell badges.
type TutorStats struct {
	ApplicationsSent    int   `json:"applicationsSent"`
	PendingApplications int   `json:"pendingApplications"`
	OngoingTuitions     int   `json:"ongoingTuitions"`
	TotalEarnedTk       int64 `json:"totalEarned"`
}

// AdminStats feeds the admin analytics dashboard.
type AdminStats struct {
	TotalUsers        int   `json:"totalUsers"`
	TotalStudents     int   `json:"totalStudents"`
	TotalTutors       int   `json:"totalTutors"`
	TotalTuitions     int   `json:"totalTuitions"`
	PendingTuitions   int   `json:"pendingTuitions"`
	TotalTransactions int   `json:"totalTransactions"`
	RevenueTk         int64 `json:"revenue"`
}
