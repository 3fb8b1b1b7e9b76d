package logger

import (
	"testing"

	"github.com/groupbuy/procurements/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "debug level", logLvl: "debug"},
		{name: "info level", logLvl: "info"},
		{name: "warn level", logLvl: "warn"},
		{name: "error level", logLvl: "error"},
		{name: "unsupported level", logLvl: "trace", expectErr: true},
		{name: "empty level", logLvl: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
