package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SellerProfile is the slice of publisher data checkout needs: the
// organization flag picks the commission rate, the country picks the
// payout currency.
type SellerProfile struct {
	UserID         uuid.UUID
	Email          string
	DisplayName    string
	IsOrganization bool
	CountryCode    string
}

// SellerDirectoryAdapter exposes publisher data to the orders and
// notifications packages through the auth repository. The adapter prevents
// import cycles while keeping user storage private to this package.
type SellerDirectoryAdapter struct {
	repo Repository
}

func NewSellerDirectoryAdapter(repo Repository) *SellerDirectoryAdapter {
	return &SellerDirectoryAdapter{
		repo: repo,
	}
}

// GetSellerProfile fetches the checkout-relevant profile of an event's publisher.
func (sda *SellerDirectoryAdapter) GetSellerProfile(ctx context.Context, userID uuid.UUID) (*SellerProfile, error) {
	user, err := sda.repo.GetUserByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seller %s: %w", userID, err)
	}

	displayName := user.FirstName + " " + user.LastName
	if user.IsOrganization && user.OrganizationName != "" {
		displayName = user.OrganizationName
	}

	return &SellerProfile{
		UserID:         user.ID,
		Email:          user.Email,
		DisplayName:    displayName,
		IsOrganization: user.IsOrganization,
		CountryCode:    user.CountryCode,
	}, nil
}

// GetRecipient resolves the email and name used to address a notification.
func (sda *SellerDirectoryAdapter) GetRecipient(ctx context.Context, userID uuid.UUID) (email, name string, err error) {
	user, err := sda.repo.GetUserByID(ctx, userID.String())
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return user.Email, user.FirstName + " " + user.LastName, nil
}
