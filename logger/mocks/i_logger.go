package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type ILogger struct {
	mock.Mock
}

func (m *ILogger) Trace() string {
	args := m.Called()
	return args.String(0)
}

func (m *ILogger) SetLabel(key, value string) {
	m.Called(key, value)
}

func (m *ILogger) SetLabels(labels map[string]string) {
	m.Called(labels)
}

func (m *ILogger) End(ctx *gin.Context) {
	m.Called(ctx)
}

func (m *ILogger) Debug(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Info(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Print(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Warning(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Error(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Fatal(v ...interface{}) {
	m.Called(v...)
}

func (m *ILogger) Debugf(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}

func (m *ILogger) Infof(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}

func (m *ILogger) Printf(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}

func (m *ILogger) Warningf(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}

func (m *ILogger) Errorf(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}

func (m *ILogger) Fatalf(format string, v ...interface{}) {
	m.Called(append([]interface{}{format}, v...)...)
}
