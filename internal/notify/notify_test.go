package notify

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTerminalNotifier_Notify(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name   string
		notice Notice
		want   string
	}{
		{
			name:   "with title",
			notice: Notice{Title: "Translation failed", Message: "Unsupported language pair", Severity: SeverityDestructive},
			want:   "Translation failed: Unsupported language pair\n",
		},
		{
			name:   "message only",
			notice: Notice{Message: "Please wait before translating again."},
			want:   "Please wait before translating again.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewTerminalNotifier(&buf).Notify(tt.notice)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCollector(t *testing.T) {
	var collector Collector
	collector.Notify(Notice{Message: "a"})
	collector.Notify(Notice{Message: "b", Severity: SeverityDestructive})

	notices := collector.Notices()
	assert.Equal(t, []Notice{
		{Message: "a"},
		{Message: "b", Severity: SeverityDestructive},
	}, notices)

	notices[0].Message = "changed"
	assert.Equal(t, "a", collector.Notices()[0].Message)
}

func TestNotice_String(t *testing.T) {
	assert.Equal(t, "Error: boom", Notice{Title: "Error", Message: "boom"}.String())
	assert.Equal(t, "boom", Notice{Message: "boom"}.String())
	assert.Equal(t, "destructive", SeverityDestructive.String())
	assert.Equal(t, "default", SeverityDefault.String())
}
