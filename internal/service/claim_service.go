package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/port"
)

// ClaimSummary is a claim row augmented with its computed underpayment.
type ClaimSummary struct {
	domain.Claim
	Underpayment decimal.Decimal `json:"underpayment"`
}

// ClaimPage is one page of claim summaries.
type ClaimPage struct {
	Claims   []ClaimSummary `json:"claims"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ClaimView is the full detail view of a single claim.
type ClaimView struct {
	ClaimSummary
	Detail   *domain.ClaimDetail `json:"detail,omitempty"`
	CPTCodes []string            `json:"cpt_codes,omitempty"`
	Flags    []domain.Flag       `json:"flags"`
	Notes    []domain.Note       `json:"notes"`
}

// FilterOptions lists the distinct values available for list filtering.
type FilterOptions struct {
	Statuses []string `json:"statuses"`
	Insurers []string `json:"insurers"`
}

// ClaimService defines read operations over ingested claims.
type ClaimService interface {
	List(ctx context.Context, filter port.ClaimFilter, page, pageSize int) (*ClaimPage, error)
	Get(ctx context.Context, claimID string) (*ClaimView, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	ExportData(ctx context.Context) ([]domain.Claim, map[string]*domain.ClaimDetail, error)
}

type claimService struct {
	claimRepo  port.ClaimRepository
	detailRepo port.ClaimDetailRepository
	flagRepo   port.FlagRepository
	noteRepo   port.NoteRepository
}

// NewClaimService creates a new ClaimService implementation.
func NewClaimService(
	claimRepo port.ClaimRepository,
	detailRepo port.ClaimDetailRepository,
	flagRepo port.FlagRepository,
	noteRepo port.NoteRepository,
) ClaimService {
	return &claimService{
		claimRepo:  claimRepo,
		detailRepo: detailRepo,
		flagRepo:   flagRepo,
		noteRepo:   noteRepo,
	}
}

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

func (s *claimService) List(ctx context.Context, filter port.ClaimFilter, page, pageSize int) (*ClaimPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	claims, total, err := s.claimRepo.List(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("claim.List: %w", err)
	}

	summaries := make([]ClaimSummary, 0, len(claims))
	for i := range claims {
		summaries = append(summaries, ClaimSummary{
			Claim:        claims[i],
			Underpayment: claims[i].UnderpaymentAmount(),
		})
	}

	return &ClaimPage{
		Claims:   summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *claimService) Get(ctx context.Context, claimID string) (*ClaimView, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	view := &ClaimView{
		ClaimSummary: ClaimSummary{
			Claim:        *claim,
			Underpayment: claim.UnderpaymentAmount(),
		},
		Flags: []domain.Flag{},
		Notes: []domain.Note{},
	}

	detail, err := s.detailRepo.GetByClaimID(ctx, claim.ID)
	switch {
	case err == nil:
		view.Detail = detail
		view.CPTCodes = detail.CPTCodeList()
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("claim.Get detail: %w", err)
	}

	flags, err := s.flagRepo.ListByClaim(ctx, claim.ID)
	if err != nil {
		return nil, fmt.Errorf("claim.Get flags: %w", err)
	}
	if flags != nil {
		view.Flags = flags
	}

	notes, err := s.noteRepo.ListByClaim(ctx, claim.ID)
	if err != nil {
		return nil, fmt.Errorf("claim.Get notes: %w", err)
	}
	if notes != nil {
		view.Notes = notes
	}

	return view, nil
}

// ExportData loads every claim plus its detail row, keyed by external claim ID,
// for the export writers.
func (s *claimService) ExportData(ctx context.Context) ([]domain.Claim, map[string]*domain.ClaimDetail, error) {
	claims, err := s.claimRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("claim.ExportData: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(claims))
	byInternal := make(map[uuid.UUID]string, len(claims))
	for i := range claims {
		ids = append(ids, claims[i].ID)
		byInternal[claims[i].ID] = claims[i].ClaimID
	}

	details, err := s.detailRepo.ListByClaimIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("claim.ExportData details: %w", err)
	}

	detailMap := make(map[string]*domain.ClaimDetail, len(details))
	for i := range details {
		if claimID, ok := byInternal[details[i].ClaimID]; ok {
			detailMap[claimID] = &details[i]
		}
	}
	return claims, detailMap, nil
}

func (s *claimService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	statuses, err := s.claimRepo.DistinctStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("claim.FilterOptions: %w", err)
	}
	insurers, err := s.claimRepo.DistinctInsurers(ctx)
	if err != nil {
		return nil, fmt.Errorf("claim.FilterOptions: %w", err)
	}
	return &FilterOptions{Statuses: statuses, Insurers: insurers}, nil
}
