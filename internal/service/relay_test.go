package service

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"hustlex/internal/domain"
	"hustlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "script tag", input: "<script>x</script>", expected: "&lt;script&gt;x&lt;/script&gt;"},
		{name: "ampersand first", input: "&lt;", expected: "&amp;lt;"},
		{name: "quotes", input: `"a" 'b'`, expected: "&quot;a&quot; &#39;b&#39;"},
		{name: "plain", input: "Driver", expected: "Driver"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeHTML(tt.input))
		})
	}
}

func TestBuildPost(t *testing.T) {
	sub := testutil.NewTestSubmission("<script>x</script>")

	post := BuildPost(sub, "https://hustlex.example")

	assert.True(t, strings.HasPrefix(post.HTML, "<b>📢 New Job Posted!</b>\n\n"))
	assert.Contains(t, post.HTML, "<b>Job Title:</b> &lt;script&gt;x&lt;/script&gt;\n")
	assert.NotContains(t, post.HTML, "<script>")
	assert.Contains(t, post.HTML, "<b>Location:</b> Addis Ababa\n")
	assert.Contains(t, post.HTML, "<b>Previous Jobs:</b> 3\n\n")
	assert.True(t, strings.HasSuffix(post.HTML, "From: https://hustlex.example"))
	assert.Equal(t, "https://hustlex.example/jobs/1", post.ButtonURL)

	for _, label := range []string{
		"Job Title", "Job Type", "Location", "Salary", "Deadline",
		"Description", "Client Type", "Company Name", "Verified", "Previous Jobs",
	} {
		assert.Contains(t, post.HTML, "<b>"+label+":</b>")
	}
}

func TestBuildPost_EmptySubmission(t *testing.T) {
	post := BuildPost(domain.JobSubmission{}, "https://hustlex.example")

	assert.Contains(t, post.HTML, "<b>Job Title:</b> \n")
	assert.Equal(t, "https://hustlex.example", post.ButtonURL)
}

func TestBuildPost_TruncatesDescription(t *testing.T) {
	sub := domain.JobSubmission{Description: domain.FormValue("  " + strings.Repeat("ሀ", 1600) + "  ")}

	post := BuildPost(sub, "")

	start := strings.Index(post.HTML, "<b>Description:</b> ") + len("<b>Description:</b> ")
	end := strings.Index(post.HTML[start:], "\n") + start
	description := post.HTML[start:end]

	assert.Equal(t, MaxDescriptionLength+1, utf8.RuneCountInString(description))
	assert.True(t, strings.HasSuffix(description, "…"))
}

func TestBuildPost_ShortDescriptionUntouched(t *testing.T) {
	sub := domain.JobSubmission{Description: domain.FormValue(strings.Repeat("a", MaxDescriptionLength))}

	post := BuildPost(sub, "")

	assert.Contains(t, post.HTML, strings.Repeat("a", MaxDescriptionLength)+"\n")
	assert.NotContains(t, post.HTML, "…")
}

func TestDetailsURL(t *testing.T) {
	const site = "https://hustlex.example"

	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{name: "empty falls back", link: "", expected: site},
		{name: "whitespace falls back", link: "   ", expected: site},
		{name: "full url", link: " https://jobs.example/42 ", expected: "https://jobs.example/42"},
		{name: "http kept", link: "http://jobs.example", expected: "http://jobs.example"},
		{name: "missing scheme", link: "jobs.example/42", expected: "https://jobs.example/42"},
		{name: "unparsable", link: "https://%zz", expected: site},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetailsURL(tt.link, site))
		})
	}
}

func TestRelayService_Relay(t *testing.T) {
	sub := testutil.NewTestSubmission("Driver")
	expected := BuildPost(sub, "https://hustlex.example")

	poster := new(testutil.MockPoster)
	poster.On("Post", expected).Return(nil).Once()

	service := NewRelayService(poster, testutil.NewTestLogger())
	assert.NoError(t, service.Relay(sub, "https://hustlex.example"))
	poster.AssertExpectations(t)
}

func TestRelayService_RelayFails(t *testing.T) {
	poster := new(testutil.MockPoster)
	poster.On("Post", mock.Anything).Return(errors.New("Bad Request: chat not found")).Once()

	service := NewRelayService(poster, testutil.NewTestLogger())
	err := service.Relay(domain.JobSubmission{}, "https://hustlex.example")

	assert.EqualError(t, err, "Bad Request: chat not found")
	poster.AssertExpectations(t)
}
