package reportservice

const (
	ReportTypeAllAssets        = "all_assets"
	ReportTypeAssetAssignments = "asset_assignments"
	ReportTypeStatusSummary    = "asset_status_summary"

	FormatPDF   = "pdf"
	FormatWord  = "word"
	FormatExcel = "excel"
)

type GenerateReportReq struct {
	Type         string  `json:"type" validate:"required,oneof=all_assets asset_assignments asset_status_summary"`
	Format       string  `json:"format" validate:"required,oneof=pdf word excel"`
	DateFrom     *string `json:"dateFrom"`
	DateTo       *string `json:"dateTo"`
	StatusFilter *string `json:"statusFilter"`
}

// ReportFile is a rendered report ready to be sent as an attachment.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
