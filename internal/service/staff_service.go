package service

import (
	"context"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffService reviews staff signup requests. Only the owner may approve or
// reject; approval activates the staff account atomically with the request
// state change.
type StaffService interface {
	List(ctx context.Context, status string) (*dto.StaffRequestListResponse, error)
	Approve(ctx context.Context, requestID, reviewerID uuid.UUID, reviewerRole string) (*dto.StaffRequestResponse, error)
	Reject(ctx context.Context, requestID, reviewerID uuid.UUID, reviewerRole string) (*dto.StaffRequestResponse, error)
}

type staffService struct {
	requests repository.StaffRequestRepository
	users    repository.UserRepository
	notifier Notifier
}

func NewStaffService(
	requests repository.StaffRequestRepository,
	users repository.UserRepository,
	notifier Notifier,
) StaffService {
	return &staffService{requests: requests, users: users, notifier: notifier}
}

func (s *staffService) List(ctx context.Context, status string) (*dto.StaffRequestListResponse, error) {
	requests, total, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, *staffRequestToResponse(&requests[i]))
	}
	return &dto.StaffRequestListResponse{Data: items, Total: total}, nil
}

func (s *staffService) Approve(ctx context.Context, requestID, reviewerID uuid.UUID, reviewerRole string) (*dto.StaffRequestResponse, error) {
	return s.review(ctx, requestID, reviewerID, reviewerRole, true)
}

func (s *staffService) Reject(ctx context.Context, requestID, reviewerID uuid.UUID, reviewerRole string) (*dto.StaffRequestResponse, error) {
	return s.review(ctx, requestID, reviewerID, reviewerRole, false)
}

// review applies the owner's decision. The role check runs before any read so
// a staff caller can never even probe request existence. Approval flips the
// request to active and the linked user to active in one transaction; a
// rejected user stays inactive.
func (s *staffService) review(ctx context.Context, requestID, reviewerID uuid.UUID, reviewerRole string, approve bool) (*dto.StaffRequestResponse, error) {
	if reviewerRole != "owner" {
		return nil, ErrOwnerOnly
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, notFound(err)
	}
	if req.Status != model.StaffPending {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if approve {
		req.Status = model.StaffActive
	} else {
		req.Status = model.StaffRejected
	}
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now

	err = runTx(ctx, s.requests.DB(), func(tx *gorm.DB) error {
		if err := s.requests.UpdateTx(tx, req); err != nil {
			return err
		}
		if approve {
			return s.users.SetActiveTx(tx, req.UserID, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType, title := "staff_rejected", "Staff request rejected"
	if approve {
		eventType, title = "staff_approved", "Staff request approved"
	}
	notifyBestEffort(ctx, s.notifier, dto.NotificationEvent{
		Type:    eventType,
		Title:   title,
		Message: req.Name + " (" + req.Email + ")",
	})
	return staffRequestToResponse(req), nil
}

func staffRequestToResponse(r *model.StaffRequest) *dto.StaffRequestResponse {
	resp := &dto.StaffRequestResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.ReviewedBy != nil {
		v := r.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if r.ReviewedAt != nil {
		v := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}
