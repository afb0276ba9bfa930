package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		tags    []string
		wantErr bool
	}{
		{name: "valid", title: "Morning reading", tags: []string{"psalms", "hope"}},
		{name: "no tags", title: "Morning reading"},
		{name: "empty title", title: "", wantErr: true},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLen+1), wantErr: true},
		{name: "title at limit", title: strings.Repeat("a", MaxTitleLen)},
		{name: "too many tags", title: "t", tags: make([]string, MaxTags+1), wantErr: true},
		{name: "empty tag", title: "t", tags: []string{""}, wantErr: true},
		{name: "tag too long", title: "t", tags: []string{strings.Repeat("x", MaxTagLen+1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.title, tt.tags)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
