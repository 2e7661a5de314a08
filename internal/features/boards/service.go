package boards

import (
	"errors"
	"fmt"
	"time"

	workspaces_interfaces "taskboard-backend/internal/features/workspaces/interfaces"

	"github.com/google/uuid"
)

type BoardService struct {
	boardRepository *BoardRepository

	broadcaster workspaces_interfaces.EventBroadcaster
}

func (s *BoardService) SetBroadcaster(
	broadcaster workspaces_interfaces.EventBroadcaster,
) {
	s.broadcaster = broadcaster
}

// CreateBoard appends a board at the end of the workspace's ordering.
func (s *BoardService) CreateBoard(
	workspaceID uuid.UUID,
	request *CreateBoardRequest,
) (*Board, error) {
	count, err := s.boardRepository.CountWorkspaceBoards(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count workspace boards: %w", err)
	}

	now := time.Now().UTC()
	board := &Board{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        request.Name,
		Order:       int(count),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.boardRepository.CreateBoard(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "boards-updated", board)

	return board, nil
}

func (s *BoardService) GetWorkspaceBoards(workspaceID uuid.UUID) (*ListBoardsResponse, error) {
	workspaceBoards, err := s.boardRepository.GetWorkspaceBoards(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace boards: %w", err)
	}

	return &ListBoardsResponse{Boards: workspaceBoards}, nil
}

// GetWorkspaceBoard resolves a board only if it belongs to the given
// workspace. Boards from other workspaces are reported as missing.
func (s *BoardService) GetWorkspaceBoard(
	workspaceID uuid.UUID,
	boardID uuid.UUID,
) (*Board, error) {
	board, err := s.boardRepository.GetBoardByID(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if board == nil || board.WorkspaceID != workspaceID {
		return nil, nil
	}

	return board, nil
}

// ReorderBoards replaces the workspace's board ordering. The request
// must list every board of the workspace exactly once.
func (s *BoardService) ReorderBoards(
	workspaceID uuid.UUID,
	request *ReorderBoardsRequest,
) (*ListBoardsResponse, error) {
	existingBoards, err := s.boardRepository.GetWorkspaceBoards(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace boards: %w", err)
	}

	if len(request.BoardIDs) != len(existingBoards) {
		return nil, errors.New("board list does not match workspace boards")
	}

	existingIDs := make(map[uuid.UUID]bool, len(existingBoards))
	for _, board := range existingBoards {
		existingIDs[board.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(request.BoardIDs))
	for _, boardID := range request.BoardIDs {
		if !existingIDs[boardID] || seen[boardID] {
			return nil, errors.New("board list does not match workspace boards")
		}
		seen[boardID] = true
	}

	if err := s.boardRepository.ReorderBoards(workspaceID, request.BoardIDs); err != nil {
		return nil, fmt.Errorf("failed to reorder boards: %w", err)
	}

	response, err := s.GetWorkspaceBoards(workspaceID)
	if err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastToWorkspace(workspaceID, "boards-updated", response)

	return response, nil
}

// OnBeforeWorkspaceDeletion removes the workspace's boards. Task
// cleanup runs before this listener so no tasks reference the boards
// by the time they are deleted.
func (s *BoardService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.boardRepository.RemoveWorkspaceBoards(workspaceID)
}
