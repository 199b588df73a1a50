package testutil

import (
	"hustlex/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock for ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Load() domain.Profile {
	args := m.Called()
	return args.Get(0).(domain.Profile)
}

func (m *MockProfileRepository) Save(profile domain.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) LoadLanguage() domain.Language {
	args := m.Called()
	return args.Get(0).(domain.Language)
}

func (m *MockProfileRepository) SaveLanguage(lang domain.Language) error {
	args := m.Called(lang)
	return args.Error(0)
}

// MockPoster is a mock for the channel poster
type MockPoster struct {
	mock.Mock
}

func (m *MockPoster) Post(post domain.RelayPost) error {
	args := m.Called(post)
	return args.Error(0)
}
