package domain

import (
	"strings"
	"time"
)

// EmailValidity represents the tri-state validity of the email field
type EmailValidity string

const (
	EmailUnknown EmailValidity = "unknown"
	EmailValid   EmailValidity = "valid"
	EmailInvalid EmailValidity = "invalid"
)

// SubmissionStatus represents the lifecycle state of a form
type SubmissionStatus string

const (
	StatusEditing    SubmissionStatus = "editing"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSubmitted  SubmissionStatus = "submitted"
)

// Required field names, used in missing-field reports and field errors
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldAge       = "age"
	FieldPhoto     = "photo"
	FieldDate      = "date"
	FieldTimeSlot  = "timeSlot"
)

// Photo represents an uploaded photo file
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the photo size in bytes
func (p *Photo) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// IsImage returns true if the content type is an image/* type
func (p *Photo) IsImage() bool {
	return p != nil && strings.HasPrefix(p.ContentType, "image/")
}

// FormState represents the booking form filled in by a single user
type FormState struct {
	FirstName        string
	LastName         string
	Email            string
	Age              int
	Photo            *Photo
	SelectedDate     *time.Time
	SelectedTimeSlot *TimeSlot
	EmailValidity    EmailValidity
	Status           SubmissionStatus
}

// NewFormState returns a form with initial defaults
func NewFormState() FormState {
	return FormState{
		Age:           DefaultAge,
		EmailValidity: EmailUnknown,
		Status:        StatusEditing,
	}
}

// IsEditing returns true if field edits are permitted
func (f FormState) IsEditing() bool {
	return f.Status == StatusEditing
}

// IsSubmitted returns true once the submission has been acknowledged
func (f FormState) IsSubmitted() bool {
	return f.Status == StatusSubmitted
}

// MissingFields lists required fields that are not set (or not valid, for email)
func (f FormState) MissingFields() []string {
	missing := make([]string, 0)
	if f.FirstName == "" {
		missing = append(missing, FieldFirstName)
	}
	if f.LastName == "" {
		missing = append(missing, FieldLastName)
	}
	if f.Email == "" || f.EmailValidity != EmailValid {
		missing = append(missing, FieldEmail)
	}
	if f.Age == 0 {
		missing = append(missing, FieldAge)
	}
	if f.Photo == nil {
		missing = append(missing, FieldPhoto)
	}
	if f.SelectedDate == nil {
		missing = append(missing, FieldDate)
	}
	if f.SelectedTimeSlot == nil {
		missing = append(missing, FieldTimeSlot)
	}
	return missing
}

// IsComplete returns true if every required field is set and the email is valid
func (f FormState) IsComplete() bool {
	return len(f.MissingFields()) == 0
}

// Application is the validated payload handed to the submission endpoint
type Application struct {
	FormID    string
	FirstName string
	LastName  string
	Email     string
	Age       int
	Photo     Photo
	Date      time.Time
	TimeSlot  TimeSlot
}

// FullName returns "FirstName LastName"
func (a *Application) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
