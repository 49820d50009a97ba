package config

const (
	defaultInventoryFile   = "~/.local/share/reconcile/inventory.json"
	defaultExportFile      = "~/.local/share/reconcile/export.md"
	defaultDatabasePath    = "~/.local/share/reconcile/projects.db"
	defaultReportPath      = "~/.local/share/reconcile/reconciliation_report.json"
	defaultDecisionPath    = "~/.local/share/reconcile/manual_reconciliation.json"
	defaultLogDir          = "~/.local/share/reconcile/logs"
	defaultCDNHostname     = "vz-6b68e26c-531.b-cdn.net"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultConfidenceFloor = 0.4
	defaultReviewThreshold = 0.7
	defaultTitleDiscount   = 0.9
	defaultInsertChunkSize = 50
)

// defaultExcludedCollections lists CDN collections that hold non-portfolio
// content and never participate in reconciliation.
var defaultExcludedCollections = []string{
	"Talent Reels for Portals",
	"Phoneado",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	excluded := make([]string, len(defaultExcludedCollections))
	copy(excluded, defaultExcludedCollections)

	return Config{
		Paths: Paths{
			InventoryFile: defaultInventoryFile,
			ExportFile:    defaultExportFile,
			DatabasePath:  defaultDatabasePath,
			ReportPath:    defaultReportPath,
			DecisionPath:  defaultDecisionPath,
			LogDir:        defaultLogDir,
		},
		CDN: CDN{
			Hostname:            defaultCDNHostname,
			ExcludedCollections: excluded,
		},
		Matching: Matching{
			ConfidenceFloor: defaultConfidenceFloor,
			ReviewThreshold: defaultReviewThreshold,
			TitleDiscount:   defaultTitleDiscount,
		},
		Apply: Apply{
			InsertChunkSize: defaultInsertChunkSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
