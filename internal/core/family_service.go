package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"go.uber.org/zap"

	"healthtrack-backend-go/internal/db"
	"healthtrack-backend-go/internal/models"
	"healthtrack-backend-go/pkg/messagequeue"
)

// familyService implements FamilyService. Invitations only create the
// pending link and emit an event; delivering the invitation (email,
// push) belongs to whoever consumes the queue.
type familyService struct {
	family    db.FamilyRepository
	publisher messagequeue.MessageQueue
	queueName string
	logger    *zap.Logger
}

// NewFamilyService creates a FamilyService.
func NewFamilyService(family db.FamilyRepository, publisher messagequeue.MessageQueue, queueName string, logger *zap.Logger) FamilyService {
	return &familyService{family: family, publisher: publisher, queueName: queueName, logger: logger}
}

func (s *familyService) ListMembers(ctx context.Context, adminID string) ([]*models.FamilyLink, error) {
	links, err := s.family.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	return links, nil
}

func (s *familyService) Invite(ctx context.Context, adminID string, req models.InviteFamilyRequest) (*models.FamilyLink, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, validationErr("invalid invitee email %q", req.Email)
	}
	if req.FullName == "" {
		return nil, validationErr("invitee name is required")
	}
	if req.Relationship == "" {
		return nil, validationErr("relationship is required")
	}

	link := &models.FamilyLink{
		AdminID:      adminID,
		Email:        req.Email,
		FullName:     req.FullName,
		Relationship: req.Relationship,
		Status:       models.LinkStatusPending,
		Permissions:  req.Permissions,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.family.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create family invitation: %w", err)
	}

	// Invitation delivery is delegated; a publish failure does not undo
	// the link.
	if body, err := json.Marshal(link); err == nil {
		if err := s.publisher.Publish(s.queueName, body); err != nil {
			s.logger.Warn("failed to publish family invitation event",
				zap.String("link", link.ID), zap.Error(err))
		}
	}
	return link, nil
}
