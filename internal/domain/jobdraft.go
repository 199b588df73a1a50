package domain

import "strings"

// JobField is one question of the job posting conversation
type JobField string

const (
	JobTitle        JobField = "job_title"
	JobType         JobField = "job_type"
	JobWorkLocation JobField = "work_location"
	JobSalary       JobField = "salary"
	JobDeadline     JobField = "deadline"
	JobDescription  JobField = "description"
	JobClientType   JobField = "client_type"
	JobCompanyName  JobField = "company_name"
	JobVerified     JobField = "verified"
	JobPreviousJobs JobField = "previous_jobs"
	JobLink         JobField = "job_link"
)

// JobFields lists the questions in the order they are asked
var JobFields = []JobField{
	JobTitle,
	JobType,
	JobWorkLocation,
	JobSalary,
	JobDeadline,
	JobDescription,
	JobClientType,
	JobCompanyName,
	JobVerified,
	JobPreviousJobs,
	JobLink,
}

const (
	VerifiedYes = "✅"
	VerifiedNo  = "No"
)

// JobDraft collects a job posting one answer at a time
type JobDraft struct {
	step       int
	submission JobSubmission
}

// NewJobDraft starts a draft at the first question
func NewJobDraft() *JobDraft {
	return &JobDraft{}
}

// Current returns the field being asked, or "" once the draft is complete
func (d *JobDraft) Current() JobField {
	if d.Done() {
		return ""
	}
	return JobFields[d.step]
}

// Done reports whether every question has been answered
func (d *JobDraft) Done() bool {
	return d.step >= len(JobFields)
}

// Answer stores text for the current field and moves on.
// It returns false and stays on the field when the answer is not accepted.
func (d *JobDraft) Answer(text string) bool {
	if d.Done() {
		return false
	}

	value := strings.TrimSpace(text)
	field := d.Current()
	if field == JobVerified {
		normalized, ok := ParseVerified(value)
		if !ok {
			return false
		}
		value = normalized
	}

	d.set(field, FormValue(value))
	d.step++
	return true
}

// Submission returns the collected answers
func (d *JobDraft) Submission() JobSubmission {
	return d.submission
}

func (d *JobDraft) set(field JobField, value FormValue) {
	s := &d.submission
	switch field {
	case JobTitle:
		s.JobTitle = value
	case JobType:
		s.JobType = value
	case JobWorkLocation:
		s.WorkLocation = value
	case JobSalary:
		s.Salary = value
	case JobDeadline:
		s.Deadline = value
	case JobDescription:
		s.Description = value
	case JobClientType:
		s.ClientType = value
	case JobCompanyName:
		s.CompanyName = value
	case JobVerified:
		s.Verified = value
	case JobPreviousJobs:
		s.PreviousJobs = value
	case JobLink:
		s.JobLink = value
	}
}

// ParseVerified accepts "✅", "yes" or "no" in any case
func ParseVerified(text string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", VerifiedYes:
		return VerifiedYes, true
	case "no":
		return VerifiedNo, true
	}
	return "", false
}
