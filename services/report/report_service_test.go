package reportservice

import (
	"archive/zip"
	"assettracker/models"
	"assettracker/providers"
	"assettracker/repository"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	fixedNow      = time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	reportSession = models.Session{UserID: "user_1", OrgID: "org_1", OrgRole: "org:admin"}
)

type reportMocks struct {
	assets     *repository.MockAssetRepository
	orgs       *repository.MockOrganizationRepository
	summarizer *providers.MockSummarizer
}

func newTestReportService(t *testing.T) (*reportService, reportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	m := reportMocks{
		assets:     repository.NewMockAssetRepository(ctrl),
		orgs:       repository.NewMockOrganizationRepository(ctrl),
		summarizer: providers.NewMockSummarizer(ctrl),
	}
	return &reportService{
		assetRepo:  m.assets,
		orgRepo:    m.orgs,
		summarizer: m.summarizer,
		logger:     mockLogger,
		now:        func() time.Time { return fixedNow },
	}, m
}

func sampleAssets() []models.AssetDetails {
	first := "Ada"
	clerkID := "user_2"
	return []models.AssetDetails{
		{
			Asset: models.Asset{ID: uuid.New(), Title: "Laptop", Model: "X1", SerialNumber: "SN-1", Status: models.AssetStatusActive, CreatedAt: fixedNow},
			AssignedToClerkUserID: &clerkID,
			AssignedTo:            &models.AssigneeSummary{ClerkUserID: clerkID, Email: "ada@example.com", FirstName: &first},
		},
		{
			Asset: models.Asset{ID: uuid.New(), Title: "Monitor", Model: "U27", SerialNumber: "SN-2", Status: models.AssetStatusMaintenance, CreatedAt: fixedNow},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestGenerateReportRetiredFilterHasNoData(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.assets.EXPECT().ListReportAssets(ctx, gomock.Any(), false).DoAndReturn(func(_ context.Context, filter models.ReportFilter, _ bool) ([]models.AssetDetails, error) {
		require.NotNil(t, filter.Status)
		assert.Equal(t, models.AssetStatusRetired, *filter.Status)
		assert.Equal(t, "org_1", filter.OrganizationID)
		return nil, nil
	})
	m.summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.GenerateReport(ctx, reportSession, GenerateReportReq{
		Type:         ReportTypeAllAssets,
		Format:       FormatPDF,
		StatusFilter: strPtr(models.AssetStatusRetired),
	})
	assert.ErrorIs(t, err, models.ErrNoDataFound)
}

func TestGenerateReportRejectsInput(t *testing.T) {
	tests := []struct {
		name        string
		session     models.Session
		req         GenerateReportReq
		expectedErr error
	}{
		{"unauthenticated", models.Session{}, GenerateReportReq{Type: ReportTypeAllAssets, Format: FormatPDF}, models.ErrUnauthenticated},
		{"no organization", models.Session{UserID: "user_1"}, GenerateReportReq{Type: ReportTypeAllAssets, Format: FormatPDF}, models.ErrNoActiveOrganization},
		{"unknown type", reportSession, GenerateReportReq{Type: "inventory", Format: FormatPDF}, models.ErrInvalidInput},
		{"unknown format", reportSession, GenerateReportReq{Type: ReportTypeAllAssets, Format: "csv"}, models.ErrInvalidInput},
		{"bad date", reportSession, GenerateReportReq{Type: ReportTypeAllAssets, Format: FormatPDF, DateFrom: strPtr("17/05/2024")}, models.ErrInvalidInput},
		{"inverted range", reportSession, GenerateReportReq{Type: ReportTypeAllAssets, Format: FormatPDF, DateFrom: strPtr("2024-05-18"), DateTo: strPtr("2024-05-17")}, models.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestReportService(t)
			_, err := svc.GenerateReport(context.Background(), tc.session, tc.req)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestGenerateReportFormats(t *testing.T) {
	slug := "acme-corp"
	tests := []struct {
		format      string
		contentType string
		filename    string
		magic       string
	}{
		{FormatPDF, "application/pdf", "all_assets_report_acme-corp_2024-05-17.pdf", "%PDF"},
		{FormatWord, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "all_assets_report_acme-corp_2024-05-17.docx", "PK"},
		{FormatExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "all_assets_report_acme-corp_2024-05-17.xlsx", "PK"},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			svc, m := newTestReportService(t)
			ctx := context.Background()

			m.assets.EXPECT().ListReportAssets(ctx, gomock.Any(), false).Return(sampleAssets(), nil)
			m.orgs.EXPECT().GetOrganizationByClerkID(ctx, "org_1").Return(models.Organization{ClerkOrgID: "org_1", Name: "Acme Corp", Slug: &slug}, nil)
			m.summarizer.EXPECT().Summarize(ctx, gomock.Any()).Return("Two assets, one assigned.", nil)

			file, err := svc.GenerateReport(ctx, reportSession, GenerateReportReq{Type: ReportTypeAllAssets, Format: tc.format})
			require.NoError(t, err)
			assert.Equal(t, tc.contentType, file.ContentType)
			assert.Equal(t, tc.filename, file.Filename)
			assert.True(t, bytes.HasPrefix(file.Content, []byte(tc.magic)))
		})
	}
}

func TestGenerateReportPlaceholderNarrative(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.assets.EXPECT().ListReportAssets(ctx, gomock.Any(), true).Return(sampleAssets()[:1], nil)
	m.orgs.EXPECT().GetOrganizationByClerkID(ctx, "org_1").Return(models.Organization{}, models.ErrNotFound)
	m.summarizer.EXPECT().Summarize(ctx, gomock.Any()).Return("", context.DeadlineExceeded)

	file, err := svc.GenerateReport(ctx, reportSession, GenerateReportReq{Type: ReportTypeAssetAssignments, Format: FormatWord})
	require.NoError(t, err)
	assert.Equal(t, "asset_assignments_report_org-1_2024-05-17.docx", file.Filename)

	body := docxBody(t, file.Content)
	assert.Contains(t, body, NarrativePlaceholder)
	assert.Contains(t, body, "ada@example.com")
	assert.NotContains(t, body, "Monitor")
}

func TestGenerateStatusSummaryExcel(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.assets.EXPECT().CountAssetsByStatus(ctx, gomock.Any()).Return([]models.CountBucket{
		{Key: models.AssetStatusActive, Count: 4},
		{Key: models.AssetStatusRetired, Count: 1},
	}, nil)
	m.orgs.EXPECT().GetOrganizationByClerkID(ctx, "org_1").Return(models.Organization{Name: "Acme Corp"}, nil)
	m.summarizer.EXPECT().Summarize(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Acme Corp")
		assert.Contains(t, prompt, `"count":4`)
		return "Mostly active.", nil
	})

	file, err := svc.GenerateReport(ctx, reportSession, GenerateReportReq{Type: ReportTypeStatusSummary, Format: FormatExcel})
	require.NoError(t, err)
	assert.Equal(t, "asset_status_summary_report_acme-corp_2024-05-17.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Asset Status Summary Report", title)

	narrative, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Mostly active.", narrative)

	rows, err := f.GetRows("Status Breakdown")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Status", "Count"}, {"Active", "4"}, {"Retired", "1"}}, rows)
}

func TestBuildFilterDateRange(t *testing.T) {
	filter, err := buildFilter("org_1", GenerateReportReq{
		DateFrom:     strPtr("2024-05-01"),
		DateTo:       strPtr("2024-05-17"),
		StatusFilter: strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.Equal(t, time.Date(2024, 5, 17, 23, 59, 59, 999000000, time.UTC), *filter.DateTo)
	assert.Nil(t, filter.Status)
}

func TestNarrativeWithoutSummarizer(t *testing.T) {
	svc, _ := newTestReportService(t)
	svc.summarizer = nil
	assert.Equal(t, NarrativePlaceholder, svc.narrative(context.Background(), ReportTypeAllAssets, "Acme", []string{"x"}))
}

func TestNarrativeOnSummarizerError(t *testing.T) {
	svc, m := newTestReportService(t)
	m.summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
	assert.Equal(t, NarrativePlaceholder, svc.narrative(context.Background(), ReportTypeAllAssets, "Acme", []string{"x"}))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-corp", slugify("  Acme Corp! "))
	assert.Equal(t, "org-2abc", slugify("org_2abc"))
	assert.Equal(t, "organization", slugify("***"))
}

func docxBody(t *testing.T, content []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatal("word/document.xml missing")
	return ""
}

func TestSheetNameIsUnique(t *testing.T) {
	used := map[string]bool{"Summary": true}
	assert.Equal(t, "Summary 2", sheetName("Summary", used))
	long := sheetName(strings.Repeat("a", 40), used)
	assert.Len(t, long, maxSheetNameLen)
}

func TestWordRendererWritesSectionsAndTable(t *testing.T) {
	doc := Document{
		Title:        "All Assets Report",
		Organization: "Acme Corp",
		GeneratedAt:  fixedNow,
		Narrative:    "first line\nsecond line",
		Sections: []Section{{
			Heading:   "Totals",
			KeyValues: []KeyValue{{Key: "Assets", Value: "7"}},
			Table:     &Table{Columns: []string{"Serial", "Assignee"}, Rows: [][]string{{"SN-1", "ada@example.com"}}},
		}},
	}

	content, err := wordRenderer{}.Render(doc)
	require.NoError(t, err)

	body := docxBody(t, content)
	for _, want := range []string{"All Assets Report", "Acme Corp", "second line", "Totals", "Assets: ", "Serial", "SN-1", "ada@example.com"} {
		assert.Contains(t, body, want)
	}
	assert.Contains(t, body, "w:tbl")
}
