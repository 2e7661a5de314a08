package boards

import "github.com/google/uuid"

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type ReorderBoardsRequest struct {
	BoardIDs []uuid.UUID `json:"boardIds" binding:"required"`
}

type ListBoardsResponse struct {
	Boards []*Board `json:"boards"`
}
