package meta

import (
	"encoding/json"
	"errors"
	"time"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// ErrInvalidToken is returned when debug_token reports an unusable token.
var ErrInvalidToken = errors.New("meta: access token is invalid")

// FactoryAccount maps a vendor ad account onto the mirror row.
func FactoryAccount(account *metadomain.AdAccount) *domain.Account {
	status := domain.AccountStatusInactive
	switch {
	case account.IsActive():
		status = domain.AccountStatusActive
	case account.AccountStatus == 2:
		status = domain.AccountStatusDisabled
	}

	return &domain.Account{
		ID:           account.AccountID,
		Name:         account.Name,
		Status:       status,
		VendorStatus: account.AccountStatus,
		Currency:     account.Currency,
		Timezone:     account.TimezoneName,
		BusinessID:   account.Business.ID,
		BusinessName: account.Business.Name,
	}
}

// FactoryCampaign maps a vendor campaign onto the mirror row.
func FactoryCampaign(accountID string, campaign *metadomain.Campaign) *domain.Campaign {
	return &domain.Campaign{
		ID:              campaign.ID,
		AccountID:       accountID,
		Name:            campaign.Name,
		Status:          campaign.Status,
		EffectiveStatus: campaign.EffectiveStatus,
		Objective:       campaign.Objective,
		BuyingType:      campaign.BuyingType,
		DailyBudget:     campaign.DailyBudget,
		LifetimeBudget:  campaign.LifetimeBudget,
		StartTime:       campaign.StartTime,
		StopTime:        campaign.StopTime,
		LastUpdated:     time.Now(),
	}
}

// FactoryAdSet maps a vendor ad set onto the mirror row.
func FactoryAdSet(accountID string, adSet *metadomain.AdSet) *domain.AdSet {
	return &domain.AdSet{
		ID:               adSet.ID,
		AccountID:        accountID,
		CampaignID:       adSet.CampaignID,
		Name:             adSet.Name,
		Status:           adSet.Status,
		EffectiveStatus:  adSet.EffectiveStatus,
		OptimizationGoal: adSet.OptimizationGoal,
		BillingEvent:     adSet.BillingEvent,
		BidStrategy:      adSet.BidStrategy,
		DailyBudget:      adSet.DailyBudget,
		Targeting:        adSet.Targeting,
		LastUpdated:      time.Now(),
	}
}

// FactoryAd maps a vendor ad onto the mirror row, serializing the creative
// into the denormalized JSONB column.
func FactoryAd(accountID string, ad *metadomain.Ad) (*domain.Ad, error) {
	var creative json.RawMessage
	if ad.Creative.ID != "" {
		serialized, err := json.Marshal(ad.Creative)
		if err != nil {
			return nil, err
		}
		creative = serialized
	}

	return &domain.Ad{
		ID:              ad.ID,
		AccountID:       accountID,
		CampaignID:      ad.CampaignID,
		AdSetID:         ad.AdsetID,
		Name:            ad.Name,
		Status:          ad.Status,
		EffectiveStatus: ad.EffectiveStatus,
		Creative:        creative,
		LastUpdated:     time.Now(),
	}, nil
}
