package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Output: DefaultOutputFile, PreviewRows: 5, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero preview rows", mutate: func(c *Config) { c.PreviewRows = 0 }},
		{name: "negative preview rows", mutate: func(c *Config) { c.PreviewRows = -1 }, wantErr: true},
		{name: "missing output", mutate: func(c *Config) { c.Output = "" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
