package comments

import (
	"testing"

	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func member(name string, email string) workspaces_dto.WorkspaceMemberResponseDTO {
	return workspaces_dto.WorkspaceMemberResponseDTO{
		UserID: uuid.New(),
		Name:   name,
		Email:  email,
	}
}

func Test_ExtractMentionedMembers(t *testing.T) {
	author := member("Author", "author@example.com")
	alice := member("Alice Smith", "alice.smith@example.com")
	bob := member("Bob", "bob@example.com")
	members := []workspaces_dto.WorkspaceMemberResponseDTO{author, alice, bob}

	tests := []struct {
		name     string
		text     string
		expected []uuid.UUID
	}{
		{"no mentions", "just a plain comment", nil},
		{"full first name", "ping @alice about this", []uuid.UUID{alice.UserID}},
		{"case insensitive", "ping @ALICE", []uuid.UUID{alice.UserID}},
		{"space-stripped name", "cc @alicesmith", []uuid.UUID{alice.UserID}},
		{"last name part", "ask @smith", []uuid.UUID{alice.UserID}},
		{"email local part", "ask @alice.smith please", []uuid.UUID{alice.UserID}},
		{"multiple members", "@alice and @bob take a look", []uuid.UUID{alice.UserID, bob.UserID}},
		{"duplicate mention collapses", "@alice @alice @smith", []uuid.UUID{alice.UserID}},
		{"unknown token", "hello @nobody", nil},
		{"author excluded", "thanks @author", nil},
		{"email-like text mentions nobody", "mail me at foo@bob.example", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMentionedMembers(tt.text, members, author.UserID)

			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}

			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}
