package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"hustlex/internal/domain"

	"go.uber.org/zap"
)

// MaxDescriptionLength is the description cut-off in runes
const MaxDescriptionLength = 1500

// Poster delivers a formatted post to the channel
type Poster interface {
	Post(post domain.RelayPost) error
}

// RelayService turns job submissions into channel posts
type RelayService struct {
	poster Poster
	logger *zap.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(poster Poster, logger *zap.Logger) *RelayService {
	return &RelayService{
		poster: poster,
		logger: logger,
	}
}

// Relay formats the submission and posts it once, without retries
func (s *RelayService) Relay(submission domain.JobSubmission, siteURL string) error {
	post := BuildPost(submission, siteURL)

	if err := s.poster.Post(post); err != nil {
		s.logger.Error("Telegram send error",
			zap.Error(err),
			zap.String("job_title", submission.JobTitle.String()),
		)
		return err
	}

	s.logger.Info("Job posted to channel",
		zap.String("job_title", submission.JobTitle.String()),
		zap.String("button_url", post.ButtonURL),
	)
	return nil
}

// &, <, >, " and ' in that order; & goes first so entities are not escaped twice
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML makes text safe for Telegram's HTML parse mode
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BuildPost renders the channel message and the "View Details" link
func BuildPost(sub domain.JobSubmission, siteURL string) domain.RelayPost {
	esc := func(v domain.FormValue) string { return EscapeHTML(v.String()) }
	description := truncate(strings.TrimSpace(sub.Description.String()), MaxDescriptionLength)

	var b strings.Builder
	b.WriteString("<b>📢 New Job Posted!</b>\n\n")
	fmt.Fprintf(&b, "<b>Job Title:</b> %s\n", esc(sub.JobTitle))
	fmt.Fprintf(&b, "<b>Job Type:</b> %s\n", esc(sub.JobType))
	fmt.Fprintf(&b, "<b>Location:</b> %s\n", esc(sub.WorkLocation))
	fmt.Fprintf(&b, "<b>Salary:</b> %s\n", esc(sub.Salary))
	fmt.Fprintf(&b, "<b>Deadline:</b> %s\n", esc(sub.Deadline))
	fmt.Fprintf(&b, "<b>Description:</b> %s\n", EscapeHTML(description))
	fmt.Fprintf(&b, "<b>Client Type:</b> %s\n", esc(sub.ClientType))
	fmt.Fprintf(&b, "<b>Company Name:</b> %s\n", esc(sub.CompanyName))
	fmt.Fprintf(&b, "<b>Verified:</b> %s\n", esc(sub.Verified))
	fmt.Fprintf(&b, "<b>Previous Jobs:</b> %s\n\n", esc(sub.PreviousJobs))
	fmt.Fprintf(&b, "From: %s", EscapeHTML(siteURL))

	return domain.RelayPost{
		HTML:      b.String(),
		ButtonURL: DetailsURL(sub.JobLink.String(), siteURL),
	}
}

// DetailsURL returns the submission's own link, or siteURL when it has none.
// Links without a scheme get https://, unusable links fall back to siteURL.
func DetailsURL(link, siteURL string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return siteURL
	}

	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" {
		return siteURL
	}
	return parsed.String()
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}
