package service

import (
	"context"
	"fmt"

	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/repository"
)

// EnquiryService captures buyer enquiries and general contact messages.
type EnquiryService struct {
	enquiries repository.EnquiryRepository
	messages  repository.MessageRepository
}

func NewEnquiryService(enquiries repository.EnquiryRepository, messages repository.MessageRepository) *EnquiryService {
	return &EnquiryService{enquiries: enquiries, messages: messages}
}

func (s *EnquiryService) CreateEnquiry(ctx context.Context, enquiry *domain.Enquiry) error {
	if enquiry.Name == "" || enquiry.Phone == "" {
		return fmt.Errorf("name and phone are required")
	}
	return s.enquiries.Create(ctx, enquiry)
}

func (s *EnquiryService) ListEnquiries(ctx context.Context) ([]domain.Enquiry, error) {
	return s.enquiries.List(ctx)
}

func (s *EnquiryService) SetEnquiryRead(ctx context.Context, id string, read bool) (*domain.Enquiry, error) {
	return s.enquiries.SetRead(ctx, id, read)
}

func (s *EnquiryService) CreateMessage(ctx context.Context, msg *domain.Message) error {
	if msg.Name == "" || msg.Phone == "" {
		return fmt.Errorf("name and phone are required")
	}
	return s.messages.Create(ctx, msg)
}

func (s *EnquiryService) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}

func (s *EnquiryService) SetMessageRead(ctx context.Context, id string, read bool) (*domain.Message, error) {
	return s.messages.SetRead(ctx, id, read)
}
