package handler

import (
	"hustlex/internal/domain"
	"hustlex/internal/metrics"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePostJob starts the job posting conversation
func (h *Handler) handlePostJob(c tele.Context) error {
	return h.withSession(c, func(cs *chatSession) error {
		jobs := cs.session.Dictionary().Jobs
		if h.publisher == nil {
			return c.Send(jobs.Unavailable)
		}

		// Restarting drops the previous draft
		cs.draft = domain.NewJobDraft()

		h.logger.Info("Job posting started", zap.Int64("chat_id", c.Chat().ID))
		return c.Send(jobs.Prompt(cs.draft.Current()))
	})
}

// answerDraft stores one answer and asks the next question, posting once the draft is complete
func (h *Handler) answerDraft(c tele.Context, cs *chatSession, text string) error {
	jobs := cs.session.Dictionary().Jobs

	if !cs.draft.Answer(text) {
		return c.Send(jobs.VerifiedRetry)
	}
	if !cs.draft.Done() {
		return c.Send(jobs.Prompt(cs.draft.Current()))
	}

	submission := cs.draft.Submission()
	cs.draft = nil
	metrics.RecordAction("post_job")

	if err := h.publisher.Relay(submission, h.siteURL); err != nil {
		h.logger.Error("Failed to post job",
			zap.Error(err),
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("job_title", submission.JobTitle.String()),
		)
		return c.Send(jobs.Failed(err.Error()))
	}

	h.logger.Info("Job posted from chat",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("job_title", submission.JobTitle.String()),
	)
	return c.Send(jobs.Posted)
}

// cancelDraft aborts the job posting conversation. The caller holds cs.mu.
func (h *Handler) cancelDraft(c tele.Context, cs *chatSession) error {
	cs.draft = nil
	h.logger.Info("Job posting cancelled", zap.Int64("chat_id", c.Chat().ID))
	return c.Send(cs.session.Dictionary().Jobs.Cancelled)
}
