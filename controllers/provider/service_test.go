package provider

import (
	"errors"
	"testing"

	"github.com/sudharlo/sapzap/models"
)

func verifiedProvider() *models.ServiceProvider {
	return &models.ServiceProvider{
		KYC: models.KYCDetails{Verified: true, Submitted: true},
	}
}

func TestValidateOffering(t *testing.T) {
	activeService := &models.Service{Active: true}
	activeCategory := &models.ServiceCategory{Active: true}

	cases := []struct {
		name     string
		provider *models.ServiceProvider
		service  *models.Service
		category *models.ServiceCategory
		want     error
	}{
		{"all preconditions met", verifiedProvider(), activeService, activeCategory, nil},
		{"kyc not verified", &models.ServiceProvider{}, activeService, activeCategory, errKYCNotVerified},
		{"service inactive", verifiedProvider(), &models.Service{Active: false}, activeCategory, errServiceInactive},
		{"category inactive", verifiedProvider(), activeService, &models.ServiceCategory{Active: false}, errCategoryInactive},
		{"category missing", verifiedProvider(), activeService, nil, errCategoryInactive},
		// KYC is checked before the service, so an unverified provider
		// with an inactive service still sees the KYC message.
		{"kyc checked first", &models.ServiceProvider{}, &models.Service{Active: false}, nil, errKYCNotVerified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateOffering(tc.provider, tc.service, tc.category); !errors.Is(got, tc.want) {
				t.Errorf("validateOffering() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateOfferingMessagesAreDistinct(t *testing.T) {
	msgs := map[string]bool{}
	for _, err := range []error{errKYCNotVerified, errServiceInactive, errCategoryInactive} {
		if msgs[err.Error()] {
			t.Errorf("duplicate precondition message %q", err.Error())
		}
		msgs[err.Error()] = true
	}
}

func TestOfferingMutationAllowed(t *testing.T) {
	cases := []struct {
		name       string
		disabling  bool
		hasOngoing bool
		want       error
	}{
		{"disable with ongoing bookings", true, true, errOngoingBookings},
		{"disable with no ongoing bookings", true, false, nil},
		{"enable with ongoing bookings", false, true, nil},
		{"enable with no ongoing bookings", false, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := offeringMutationAllowed(tc.disabling, tc.hasOngoing); !errors.Is(got, tc.want) {
				t.Errorf("offeringMutationAllowed(%v, %v) = %v, want %v", tc.disabling, tc.hasOngoing, got, tc.want)
			}
		})
	}
}
