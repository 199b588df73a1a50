package testutil

import (
	"testing"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"
	"hustlex/internal/repository/local"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestResolver loads the embedded locales
func NewTestResolver(t *testing.T) *i18n.Resolver {
	t.Helper()
	resolver, err := i18n.NewResolver()
	require.NoError(t, err)
	return resolver
}

// NewMemoryRepo creates a profile repository over fresh in-memory storage
func NewMemoryRepo() *local.ProfileRepo {
	return local.NewProfileRepo(local.NewMemoryStorage(), NewTestLogger())
}

// NewTestIdentity creates a Telegram identity
func NewTestIdentity(firstName, lastName, username string) domain.Identity {
	return domain.Identity{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
	}
}

// NewTestSubmission creates a fully populated job submission
func NewTestSubmission(title string) domain.JobSubmission {
	return domain.JobSubmission{
		JobTitle:     domain.FormValue(title),
		JobType:      "Full-time",
		WorkLocation: "Addis Ababa",
		Salary:       "15000 ETB",
		Deadline:     "2026-11-01",
		Description:  "Deliver parcels around Bole.",
		ClientType:   "Company",
		CompanyName:  "Acme",
		Verified:     "yes",
		PreviousJobs: "3",
		JobLink:      "https://hustlex.example/jobs/1",
	}
}
