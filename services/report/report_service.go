package reportservice

import (
	"assettracker/models"
	"assettracker/providers"
	"assettracker/repository"
	"assettracker/utils"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_report_service.go -package=reportservice assettracker/services/report ReportService

// NarrativePlaceholder replaces the summary whenever the summarizer is
// unavailable or fails.
const NarrativePlaceholder = "An automated summary is not available for this report. The data below reflects the selected filters."

const dateLayout = "2006-01-02"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type ReportService interface {
	GenerateReport(ctx context.Context, session models.Session, req GenerateReportReq) (ReportFile, error)
}

type reportService struct {
	assetRepo  repository.AssetRepository
	orgRepo    repository.OrganizationRepository
	summarizer providers.Summarizer
	logger     providers.ZapLoggerProvider
	now        func() time.Time
}

func NewReportService(
	assetRepo repository.AssetRepository,
	orgRepo repository.OrganizationRepository,
	summarizer providers.Summarizer,
	logger providers.ZapLoggerProvider,
) ReportService {
	return &reportService{
		assetRepo:  assetRepo,
		orgRepo:    orgRepo,
		summarizer: summarizer,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *reportService) GenerateReport(ctx context.Context, session models.Session, req GenerateReportReq) (ReportFile, error) {
	if err := session.RequireOrganization(); err != nil {
		return ReportFile{}, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return ReportFile{}, err
	}
	renderer, ok := renderers()[req.Format]
	if !ok {
		return ReportFile{}, fmt.Errorf("%w: unsupported report format %q", models.ErrInvalidInput, req.Format)
	}

	filter, err := buildFilter(session.OrgID, req)
	if err != nil {
		return ReportFile{}, err
	}

	sections, promptData, err := s.loadSections(ctx, req.Type, filter)
	if err != nil {
		return ReportFile{}, err
	}

	orgName, orgSlug := s.organizationLabel(ctx, session.OrgID)
	generatedAt := s.now()
	doc := Document{
		Title:        reportTitle(req.Type),
		Organization: orgName,
		GeneratedAt:  generatedAt,
		Narrative:    s.narrative(ctx, req.Type, orgName, promptData),
		Sections:     append([]Section{filterSection(req)}, sections...),
	}

	content, err := renderer.Render(doc)
	if err != nil {
		s.logger.GetLogger().Error("failed to render report", zap.String("type", req.Type), zap.String("format", req.Format), zap.Error(err))
		return ReportFile{}, fmt.Errorf("failed to render report: %w", err)
	}

	s.logger.GetLogger().Info("report generated",
		zap.String("org_id", session.OrgID), zap.String("type", req.Type), zap.String("format", req.Format), zap.Int("bytes", len(content)))
	return ReportFile{
		Filename:    fmt.Sprintf("%s_report_%s_%s.%s", req.Type, orgSlug, generatedAt.UTC().Format(dateLayout), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

// loadSections queries the data for reportType and lays it out. The second
// return value is the data embedded in the summarizer prompt.
func (s *reportService) loadSections(ctx context.Context, reportType string, filter models.ReportFilter) ([]Section, interface{}, error) {
	switch reportType {
	case ReportTypeAllAssets, ReportTypeAssetAssignments:
		assigned := reportType == ReportTypeAssetAssignments
		assets, err := s.assetRepo.ListReportAssets(ctx, filter, assigned)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load report data: %w", err)
		}
		if len(assets) == 0 {
			return nil, nil, fmt.Errorf("%w: no data found for the selected report criteria", models.ErrNoDataFound)
		}
		if assigned {
			return assignmentSections(assets), promptAssets(assets), nil
		}
		return assetSections(assets), promptAssets(assets), nil

	case ReportTypeStatusSummary:
		buckets, err := s.assetRepo.CountAssetsByStatus(ctx, filter)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load report data: %w", err)
		}
		if len(buckets) == 0 {
			return nil, nil, fmt.Errorf("%w: no data found for the selected report criteria", models.ErrNoDataFound)
		}
		return statusSections(buckets), buckets, nil
	}
	return nil, nil, fmt.Errorf("%w: unsupported report type %q", models.ErrInvalidInput, reportType)
}

func (s *reportService) narrative(ctx context.Context, reportType, orgName string, data interface{}) string {
	if s.summarizer == nil {
		return NarrativePlaceholder
	}
	payload, err := jsoniter.Marshal(data)
	if err != nil {
		s.logger.GetLogger().Warn("failed to encode summarizer prompt data", zap.Error(err))
		return NarrativePlaceholder
	}

	prompt := fmt.Sprintf(
		"You are writing the executive summary of a %s for the organization %q. "+
			"Summarize the key facts and notable patterns in two short paragraphs of plain text without markdown. Data (JSON): %s",
		strings.ToLower(reportTitle(reportType)), orgName, payload)

	text, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		s.logger.GetLogger().Warn("summarizer unavailable, using placeholder narrative", zap.Error(err))
		return NarrativePlaceholder
	}
	return text
}

// organizationLabel returns the display name and filename slug of the
// organization, falling back to its identity provider id.
func (s *reportService) organizationLabel(ctx context.Context, orgID string) (string, string) {
	org, err := s.orgRepo.GetOrganizationByClerkID(ctx, orgID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.GetLogger().Warn("failed to load organization for report", zap.String("org_id", orgID), zap.Error(err))
		}
		return orgID, slugify(orgID)
	}
	if org.Slug != nil && *org.Slug != "" {
		return org.Name, slugify(*org.Slug)
	}
	return org.Name, slugify(org.Name)
}

func buildFilter(orgID string, req GenerateReportReq) (models.ReportFilter, error) {
	filter := models.ReportFilter{OrganizationID: orgID}
	if req.DateFrom != nil && strings.TrimSpace(*req.DateFrom) != "" {
		from, err := parseDate(*req.DateFrom)
		if err != nil {
			return filter, fmt.Errorf("%w: dateFrom: %v", models.ErrInvalidInput, err)
		}
		filter.DateFrom = &from
	}
	if req.DateTo != nil && strings.TrimSpace(*req.DateTo) != "" {
		to, err := parseDate(*req.DateTo)
		if err != nil {
			return filter, fmt.Errorf("%w: dateTo: %v", models.ErrInvalidInput, err)
		}
		end := endOfDay(to)
		filter.DateTo = &end
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return filter, fmt.Errorf("%w: dateFrom is after dateTo", models.ErrInvalidInput)
	}
	if req.StatusFilter != nil && strings.TrimSpace(*req.StatusFilter) != "" {
		status := strings.TrimSpace(*req.StatusFilter)
		filter.Status = &status
	}
	return filter, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns the
// start of that day in UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func slugify(s string) string {
	slug := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return "organization"
	}
	return slug
}

func reportTitle(reportType string) string {
	switch reportType {
	case ReportTypeAssetAssignments:
		return "Asset Assignments Report"
	case ReportTypeStatusSummary:
		return "Asset Status Summary Report"
	default:
		return "All Assets Report"
	}
}

func filterSection(req GenerateReportReq) Section {
	value := func(p *string) string {
		if p == nil || strings.TrimSpace(*p) == "" {
			return "Any"
		}
		return strings.TrimSpace(*p)
	}
	return Section{
		Heading: "Filters",
		KeyValues: []KeyValue{
			{Key: "Date from", Value: value(req.DateFrom)},
			{Key: "Date to", Value: value(req.DateTo)},
			{Key: "Status", Value: value(req.StatusFilter)},
		},
	}
}

func assetSections(assets []models.AssetDetails) []Section {
	assigned := 0
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		if a.AssignedTo != nil {
			assigned++
		}
		rows = append(rows, []string{
			a.Title, a.Model, a.SerialNumber, a.Status, assigneeName(a.AssignedTo), a.CreatedAt.UTC().Format(dateLayout),
		})
	}
	return []Section{
		{
			Heading: "Overview",
			KeyValues: []KeyValue{
				{Key: "Total assets", Value: strconv.Itoa(len(assets))},
				{Key: "Assigned", Value: strconv.Itoa(assigned)},
				{Key: "Unassigned", Value: strconv.Itoa(len(assets) - assigned)},
			},
		},
		{
			Heading: "Assets",
			Table: &Table{
				Columns: []string{"Title", "Model", "Serial Number", "Status", "Assigned To", "Created"},
				Rows:    rows,
			},
		},
	}
}

func assignmentSections(assets []models.AssetDetails) []Section {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		email := ""
		if a.AssignedTo != nil {
			email = a.AssignedTo.Email
		}
		rows = append(rows, []string{assigneeName(a.AssignedTo), email, a.Title, a.SerialNumber, a.Status})
	}
	return []Section{
		{
			Heading:   "Overview",
			KeyValues: []KeyValue{{Key: "Assigned assets", Value: strconv.Itoa(len(assets))}},
		},
		{
			Heading: "Assignments",
			Table: &Table{
				Columns: []string{"Assignee", "Email", "Asset", "Serial Number", "Status"},
				Rows:    rows,
			},
		},
	}
}

func statusSections(buckets []models.CountBucket) []Section {
	total := 0
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		total += b.Count
		rows = append(rows, []string{b.Key, strconv.Itoa(b.Count)})
	}
	return []Section{
		{
			Heading:   "Overview",
			KeyValues: []KeyValue{{Key: "Total assets", Value: strconv.Itoa(total)}},
		},
		{
			Heading: "Status Breakdown",
			Table:   &Table{Columns: []string{"Status", "Count"}, Rows: rows},
		},
	}
}

func assigneeName(a *models.AssigneeSummary) string {
	if a == nil {
		return "Unassigned"
	}
	var parts []string
	if a.FirstName != nil && *a.FirstName != "" {
		parts = append(parts, *a.FirstName)
	}
	if a.LastName != nil && *a.LastName != "" {
		parts = append(parts, *a.LastName)
	}
	if len(parts) == 0 {
		return a.Email
	}
	return strings.Join(parts, " ")
}

type promptAsset struct {
	Title        string `json:"title"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	Status       string `json:"status"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func promptAssets(assets []models.AssetDetails) []promptAsset {
	out := make([]promptAsset, 0, len(assets))
	for _, a := range assets {
		p := promptAsset{
			Title:        a.Title,
			Model:        a.Model,
			SerialNumber: a.SerialNumber,
			Status:       a.Status,
			CreatedAt:    a.CreatedAt.UTC().Format(dateLayout),
		}
		if a.AssignedTo != nil {
			p.AssignedTo = assigneeName(a.AssignedTo)
		}
		out = append(out, p)
	}
	return out
}
