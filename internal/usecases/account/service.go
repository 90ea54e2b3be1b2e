package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// ErrNoBusinessID is returned by Discover when no business ID is configured.
var ErrNoBusinessID = errors.New("no business ID configured")

// StatusReport is the per-account mirror summary served to the dashboard.
type StatusReport struct {
	Account   *domain.Account `json:"account"`
	Campaigns int             `json:"campaigns"`
	AdSets    int             `json:"ad_sets"`
	Ads       int             `json:"ads"`
}

type Service interface {
	List(statuses []domain.AccountStatus) ([]*domain.Account, error)
	GetStatus(accountID string) (*StatusReport, error)
	Discover(ctx context.Context) ([]*domain.Account, error)
}

type service struct {
	cfg          *config.Config
	integrator   meta.Integrator
	accountRepo  repository.AccountRepository
	campaignRepo repository.CampaignRepository
	adSetRepo    repository.AdSetRepository
	adRepo       repository.AdRepository
}

func NewService(
	cfg *config.Config,
	integrator meta.Integrator,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
) Service {
	return &service{
		cfg:          cfg,
		integrator:   integrator,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		adSetRepo:    adSetRepo,
		adRepo:       adRepo,
	}
}

func (s *service) List(statuses []domain.AccountStatus) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.List(statuses)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

func (s *service) GetStatus(accountID string) (*StatusReport, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	if account == nil {
		return nil, nil
	}

	campaigns, err := s.campaignRepo.CountByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("counting campaigns: %w", err)
	}
	adSets, err := s.adSetRepo.CountByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("counting ad sets: %w", err)
	}
	ads, err := s.adRepo.CountByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("counting ads: %w", err)
	}

	return &StatusReport{
		Account:   account,
		Campaigns: campaigns,
		AdSets:    adSets,
		Ads:       ads,
	}, nil
}

// Discover lists the ad accounts of the configured business and upserts them
// into the mirror. Accounts already known keep their stored status.
func (s *service) Discover(ctx context.Context) ([]*domain.Account, error) {
	if s.cfg.Meta.BusinessID == "" {
		return nil, ErrNoBusinessID
	}

	accounts, err := s.integrator.FetchAccountsByBusiness(ctx, s.cfg.Meta.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("listing business ad accounts: %w", err)
	}

	for _, account := range accounts {
		existing, err := s.accountRepo.GetByID(account.ID)
		if err != nil {
			return nil, fmt.Errorf("loading account: %w", err)
		}
		if existing != nil {
			account.Status = existing.Status
		}

		if err := s.accountRepo.SaveOrUpdate(account); err != nil {
			return nil, fmt.Errorf("saving account: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"business_id": s.cfg.Meta.BusinessID,
		"accounts":    len(accounts),
	}).Info("account discovery completed")

	return accounts, nil
}
