package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", ":50051", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":50051"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-a=:50051", "-x=junk"},
			allowed: []string{"-a"},
			want:    []string{"-a=:50051"},
		},
		{
			name:    "bool flag without value",
			args:    []string{"-demo", "-a", ":1"},
			allowed: []string{"-demo"},
			want:    []string{"-demo"},
		},
		{
			name:    "drops everything when nothing allowed",
			args:    []string{"-a", ":1", "-d", "dsn"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "multiple allowed flags",
			args:    []string{"-a", ":1", "-ignored", "-d", "postgres://x"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":1", "-d", "postgres://x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
