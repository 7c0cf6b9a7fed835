package handlers

import (
	"testing"

	"github.com/google/uuid"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name        string
		page, size  int
		defaultSize int
		wantLimit   int
		wantOffset  int
	}{
		{"first page", 1, 20, 20, 20, 0},
		{"third page", 3, 20, 20, 20, 40},
		{"custom size", 2, 5, 20, 5, 5},
		{"zero page falls back to first", 0, 10, 20, 10, 0},
		{"negative page falls back to first", -4, 10, 20, 10, 0},
		{"zero size falls back to default", 2, 0, 50, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageWindow(tt.page, tt.size, tt.defaultSize)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("pageWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, tt.defaultSize, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestMayPostToConversation(t *testing.T) {
	member := uuid.New()
	other := uuid.New()
	outsider := uuid.New()
	participants := []uuid.UUID{member, other}

	if !mayPostToConversation(participants, member) {
		t.Error("participant must be allowed to post")
	}
	if mayPostToConversation(participants, outsider) {
		t.Error("a user outside the conversation must not be allowed to post")
	}
	if mayPostToConversation(nil, member) {
		t.Error("an unknown conversation has no posters")
	}
}
