package repository

import (
	"time"

	"github.com/spec-kit/console-service/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedClients returns the demo client accounts the console boots with.
// Account c1 is the portal's "current" client.
func SeedClients() []domain.ClientAccount {
	return []domain.ClientAccount{
		{
			ID:              "1",
			Name:            "Client Alpha",
			Email:           "alpha@example.com",
			SubscriptionEnd: date(2024, time.December, 31),
			Points:          1000,
			AllowedFeatures: domain.NewFeatureSet(domain.FeatureFacebookExtraction, domain.FeatureAIGateway),
			TokenStatus:     domain.TokenStatusValid,
		},
		{
			ID:              "2",
			Name:            "Client Beta",
			Email:           "beta@example.com",
			SubscriptionEnd: date(2025, time.June, 30),
			Points:          500,
			AllowedFeatures: domain.NewFeatureSet(domain.FeatureWhatsAppCampaign),
			TokenStatus:     domain.TokenStatusInvalid,
		},
		{
			ID:              "c1",
			Name:            "Demo Client",
			Email:           "client@example.com",
			SubscriptionEnd: date(2024, time.December, 31),
			Points:          1500,
			AllowedFeatures: domain.NewFeatureSet(
				domain.FeatureFacebookExtraction,
				domain.FeatureAIGateway,
				domain.FeatureFacebookDataPoints,
				domain.FeatureOnlineExtraction,
				domain.FeatureSMSCampaign,
			),
			TokenStatus: domain.TokenStatusValid,
		},
	}
}

// SeedTickets returns the demo support tickets.
func SeedTickets() []domain.SupportTicket {
	return []domain.SupportTicket{
		{
			ID:         "t1",
			ClientID:   "1",
			ClientName: "Client Alpha",
			Subject:    "Login Issue",
			Message:    "Cannot login to my account.",
			Status:     domain.TicketStatusOpen,
			CreatedAt:  date(2023, time.October, 1),
		},
		{
			ID:         "t2",
			ClientID:   "2",
			ClientName: "Client Beta",
			Subject:    "Feature Request",
			Message:    "Need access to SMS campaign tool.",
			Status:     domain.TicketStatusProcessing,
			CreatedAt:  date(2023, time.October, 5),
		},
	}
}

// SeedRecords returns the mocked audience catalog for the point-based
// data feature.
func SeedRecords() []domain.AudienceRecord {
	return []domain.AudienceRecord{
		{ID: "fb1", Name: "John Doe", Country: "Egypt", City: "Cairo", Education: "Cairo University", Job: "Engineer", PhoneNumber: "+201000000001"},
		{ID: "fb2", Name: "Jane Smith", Country: "Egypt", City: "Alexandria", Education: "Alexandria University", Job: "Doctor", PhoneNumber: "+201000000002"},
		{ID: "fb3", Name: "Ahmed Ali", Country: "USA", City: "New York", Job: "Developer", PhoneNumber: "+12120000003"},
	}
}
