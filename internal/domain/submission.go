package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FormValue is a form field that may arrive as any JSON value
type FormValue string

// UnmarshalJSON accepts any JSON value. Arrays, such as checkbox groups,
// are joined with ", " and objects are kept as compact JSON.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	text, err := formText(raw)
	if err != nil {
		return err
	}
	*v = FormValue(text)
	return nil
}

func formText(raw interface{}) (string, error) {
	switch value := raw.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case json.Number:
		return value.String(), nil
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			text, err := formText(item)
			if err != nil {
				return "", err
			}
			if text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, ", "), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

func (v FormValue) String() string {
	return string(v)
}

// JobSubmission is the form data of a job posting
type JobSubmission struct {
	JobTitle     FormValue `json:"job_title"`
	JobType      FormValue `json:"job_type"`
	WorkLocation FormValue `json:"work_location"`
	Salary       FormValue `json:"salary"`
	Deadline     FormValue `json:"deadline"`
	Description  FormValue `json:"description"`
	ClientType   FormValue `json:"client_type"`
	CompanyName  FormValue `json:"company_name"`
	Verified     FormValue `json:"verified"`
	PreviousJobs FormValue `json:"previous_jobs"`
	JobLink      FormValue `json:"job_link"`
}

// SubmissionEvent is the body of a form submission webhook
type SubmissionEvent struct {
	Data *JobSubmission `json:"data"`
}

// RelayPost is a formatted message ready to be posted to the channel
type RelayPost struct {
	HTML      string
	ButtonURL string
}
