package comments

import (
	"regexp"
	"strings"

	workspaces_dto "taskboard-backend/internal/features/workspaces/dto"

	"github.com/google/uuid"
)

var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9._-]+)`)

// ExtractMentionedMembers resolves @tokens in a comment against the
// workspace member list. A token matches a member when it equals,
// case-insensitively, the member's display name, the name with spaces
// removed, any space-separated part of the name, or the local part of
// the member's email. The author is never mentioned by their own
// comment and each member is returned at most once.
func ExtractMentionedMembers(
	text string,
	members []workspaces_dto.WorkspaceMemberResponseDTO,
	authorID uuid.UUID,
) []uuid.UUID {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, strings.ToLower(match[1]))
	}

	mentioned := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)

	for _, member := range members {
		if member.UserID == authorID || seen[member.UserID] {
			continue
		}

		if memberMatchesAnyToken(member, tokens) {
			mentioned = append(mentioned, member.UserID)
			seen[member.UserID] = true
		}
	}

	return mentioned
}

func memberMatchesAnyToken(
	member workspaces_dto.WorkspaceMemberResponseDTO,
	tokens []string,
) bool {
	candidates := memberNameCandidates(member)

	for _, token := range tokens {
		if candidates[token] {
			return true
		}
	}

	return false
}

func memberNameCandidates(
	member workspaces_dto.WorkspaceMemberResponseDTO,
) map[string]bool {
	candidates := make(map[string]bool)

	name := strings.ToLower(strings.TrimSpace(member.Name))
	if name != "" {
		candidates[name] = true
		candidates[strings.ReplaceAll(name, " ", "")] = true

		for _, part := range strings.Fields(name) {
			candidates[part] = true
		}
	}

	email := strings.ToLower(member.Email)
	if at := strings.Index(email, "@"); at > 0 {
		candidates[email[:at]] = true
	}

	return candidates
}
