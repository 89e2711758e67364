package service

import (
	"context"
	"fmt"

	"github.com/diagnosis/carnet/internal/domain"
	"github.com/diagnosis/carnet/internal/repository"
)

// ContactService validates input and delegates to the repository. The owner
// id always comes from the authenticated caller, never from the payload.
type ContactService interface {
	ListContacts(ctx context.Context, ownerID int64) ([]domain.Contact, error)
	CreateContact(ctx context.Context, ownerID int64, req *domain.CreateContactRequest) (*domain.Contact, error)
	UpdateContact(ctx context.Context, id, ownerID int64, patch *domain.ContactPatch) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id, ownerID int64) (*domain.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) ListContacts(ctx context.Context, ownerID int64) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) CreateContact(ctx context.Context, ownerID int64, req *domain.CreateContactRequest) (*domain.Contact, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.Create(ctx, ownerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, id, ownerID int64, patch *domain.ContactPatch) (*domain.Contact, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	contact, err := s.contactRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}
	return contact, nil
}
