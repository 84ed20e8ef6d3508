package service

import (
	"context"

	"listapi/internal/model"
)

// ListService defines the use cases for the item list.
type ListService interface {
	// Items returns the fixed item sequence, always in the same order.
	// The operation performs no I/O and cannot fail, so there is no error return.
	Items(ctx context.Context) []string
}

// listService is a concrete implementation of ListService.
type listService struct{}

// NewListService constructs a new ListService.
func NewListService() ListService {
	return &listService{}
}

// Items returns the canonical item sequence as a fresh slice per call.
func (s *listService) Items(_ context.Context) []string {
	return model.ListItems()
}
