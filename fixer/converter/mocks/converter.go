package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type Converter struct {
	mock.Mock
}

func (m *Converter) Convert(from string, to string, amount float64, date time.Time) (float64, error) {
	args := m.Called(from, to, amount, date)
	return args.Get(0).(float64), args.Error(1)
}
