package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendOrderReceived(ctx context.Context, email, name string, order *domain.RentalOrder) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your rental request #%d for %s to %s. An agent will evaluate it shortly.\n\nBest regards,\nThe Rental Team",
		name, order.ID, order.StartDate, order.EndDate)
	return s.send(email, fmt.Sprintf("Rental Request #%d Received", order.ID), body)
}

func (s *emailService) SendOrderEvaluated(ctx context.Context, email, name string, order *domain.RentalOrder, approved bool, notes string) error {
	decision := "approved"
	if !approved {
		decision = "rejected"
	}
	body := fmt.Sprintf("Hello %s,\n\nYour rental request #%d was %s.", name, order.ID, decision)
	if notes != "" {
		body += fmt.Sprintf("\n\nAgent notes: %s", notes)
	}
	body += "\n\nBest regards,\nThe Rental Team"
	return s.send(email, fmt.Sprintf("Rental Request #%d %s", order.ID, decision), body)
}

func (s *emailService) SendOrderCancelled(ctx context.Context, email, name string, order *domain.RentalOrder, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nRental order #%d was cancelled.", name, order.ID)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Rental Team"
	return s.send(email, fmt.Sprintf("Rental Order #%d Cancelled", order.ID), body)
}

func (s *emailService) SendOrderCompleted(ctx context.Context, email, name string, order *domain.RentalOrder) error {
	body := fmt.Sprintf("Hello %s,\n\nRental order #%d is now completed. Thank you for renting with us.\n\nBest regards,\nThe Rental Team",
		name, order.ID)
	return s.send(email, fmt.Sprintf("Rental Order #%d Completed", order.ID), body)
}
